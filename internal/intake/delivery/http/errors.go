package http

import (
	"errors"

	"task-intake/internal/intake"
	pkgErrors "task-intake/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// It returns nil for errors the domain does not know about.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intake.ErrEmptyInput),
		errors.Is(err, intake.ErrInputTooLong),
		errors.Is(err, intake.ErrInvalidDueDate),
		errors.Is(err, intake.ErrInvalidDueTime),
		errors.Is(err, intake.ErrInvalidMinutes):
		return pkgErrors.NewBadRequest(err.Error())
	default:
		return nil
	}
}
