package usecase

import (
	"time"

	"task-intake/internal/intake"
	"task-intake/pkg/taskparse"
)

func (uc *implUseCase) reference(t time.Time) time.Time {
	if t.IsZero() {
		return uc.now()
	}
	return t
}

func (uc *implUseCase) display(date *taskparse.Date, clock *taskparse.Clock, minutes *int, ref time.Time) intake.Display {
	return intake.Display{
		DueDate:       uc.formatter.FormatDueDate(date, ref),
		DueTime:       uc.formatter.FormatTime(clock),
		EstimatedTime: uc.formatter.FormatEstimatedTime(minutes),
	}
}

func cacheKey(text string, day taskparse.Date) string {
	return day.String() + "|" + text
}

// cloneResult deep-copies r so callers cannot mutate cached values.
func cloneResult(r taskparse.ParseResult) taskparse.ParseResult {
	out := r
	out.Tags = append(make([]string, 0, len(r.Tags)), r.Tags...)
	if r.DueDate != nil {
		d := *r.DueDate
		out.DueDate = &d
	}
	if r.DueTime != nil {
		c := *r.DueTime
		out.DueTime = &c
	}
	if r.EstimatedMinutes != nil {
		m := *r.EstimatedMinutes
		out.EstimatedMinutes = &m
	}
	return out
}
