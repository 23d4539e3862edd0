package intake

import "errors"

// Domain-specific errors for the intake package.
var (
	ErrEmptyInput     = errors.New("input text is empty")
	ErrInputTooLong   = errors.New("input text is too long")
	ErrInvalidDueDate = errors.New("due date must be formatted as YYYY-MM-DD")
	ErrInvalidDueTime = errors.New("due time must be formatted as HH:MM")
	ErrInvalidMinutes = errors.New("estimated minutes must be positive")
)
