package intake

import (
	"time"

	"task-intake/pkg/taskparse"
)

// ParseInput is the input for parsing a single line of task text.
type ParseInput struct {
	Text string
	// ReferenceTime is the instant relative dates resolve against. Zero means now.
	ReferenceTime time.Time
}

// Display holds the human-readable labels of a task's schedule fields.
// Absent fields render as "".
type Display struct {
	DueDate       string `json:"due_date"`
	DueTime       string `json:"due_time"`
	EstimatedTime string `json:"estimated_time"`
}

// ParseOutput is the result of the parse operation.
type ParseOutput struct {
	Task    taskparse.ParseResult
	Display Display
	Cached  bool
}

// FormatInput carries stored fields in their persisted string form.
// Empty strings and a nil EstimatedMinutes mean the field is absent.
type FormatInput struct {
	DueDate          string
	DueTime          string
	EstimatedMinutes *int
	ReferenceTime    time.Time
}

// FormatOutput is the result of the format operation.
type FormatOutput struct {
	Display Display
}
