package telegram

import (
	"strings"

	"task-intake/internal/intake"
	"task-intake/pkg/taskparse"
)

var priorityLabels = map[taskparse.Priority]string{
	taskparse.PriorityHigh:   "Cao",
	taskparse.PriorityMedium: "Trung bình",
	taskparse.PriorityLow:    "Thấp",
}

// buildSummary renders a parsed task as a chat reply. Lines for absent fields are omitted.
func buildSummary(out intake.ParseOutput) string {
	var b strings.Builder
	b.WriteString("✅ Đã ghi nhận công việc\n")
	b.WriteString("📝 " + out.Task.Title + "\n")
	b.WriteString("⚡ Ưu tiên: " + priorityLabels[out.Task.Priority])

	if when := joinNonEmpty(out.Display.DueDate, out.Display.DueTime); when != "" {
		b.WriteString("\n📅 " + when)
	}
	if out.Display.EstimatedTime != "" {
		b.WriteString("\n⏱ " + out.Display.EstimatedTime)
	}
	if len(out.Task.Tags) > 0 {
		b.WriteString("\n🏷 #" + strings.Join(out.Task.Tags, " #"))
	}
	return b.String()
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
