package usecase

import (
	"context"

	"task-intake/internal/intake"
	"task-intake/pkg/taskparse"
)

// Format parses stored string fields and renders them as display labels.
func (uc *implUseCase) Format(ctx context.Context, input intake.FormatInput) (intake.FormatOutput, error) {
	var date *taskparse.Date
	if input.DueDate != "" {
		d, err := taskparse.ParseDate(input.DueDate)
		if err != nil {
			uc.l.Warnf(ctx, "internal.intake.usecase.Format: %v", err)
			return intake.FormatOutput{}, intake.ErrInvalidDueDate
		}
		date = &d
	}

	var clock *taskparse.Clock
	if input.DueTime != "" {
		c, err := taskparse.ParseClock(input.DueTime)
		if err != nil {
			uc.l.Warnf(ctx, "internal.intake.usecase.Format: %v", err)
			return intake.FormatOutput{}, intake.ErrInvalidDueTime
		}
		clock = &c
	}

	if input.EstimatedMinutes != nil && *input.EstimatedMinutes <= 0 {
		return intake.FormatOutput{}, intake.ErrInvalidMinutes
	}

	ref := uc.reference(input.ReferenceTime)
	return intake.FormatOutput{
		Display: uc.display(date, clock, input.EstimatedMinutes, ref),
	}, nil
}
