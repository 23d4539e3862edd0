package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"task-intake/internal/intake"
	"task-intake/pkg/taskparse"
)

// Parse validates the text, runs the extraction pipeline and renders display labels.
// Results are cached per text and reference day, the only inputs the pipeline reads.
func (uc *implUseCase) Parse(ctx context.Context, input intake.ParseInput) (intake.ParseOutput, error) {
	text := strings.TrimSpace(norm.NFC.String(input.Text))
	if text == "" {
		return intake.ParseOutput{}, intake.ErrEmptyInput
	}
	if n := utf8.RuneCountInString(text); uc.maxLength > 0 && n > uc.maxLength {
		uc.l.Warnf(ctx, "internal.intake.usecase.Parse: input has %d runes, limit %d", n, uc.maxLength)
		return intake.ParseOutput{}, intake.ErrInputTooLong
	}

	ref := uc.reference(input.ReferenceTime)
	key := cacheKey(text, taskparse.DateOf(uc.cal.StartOfDay(ref)))

	result, cached := uc.cache.Get(key)
	if !cached {
		result = uc.parser.Parse(text, ref)
		uc.cache.Add(key, result)
	}

	uc.l.Debugf(ctx, "internal.intake.usecase.Parse: title=%q priority=%s due=%v at=%v tags=%v cached=%t",
		result.Title, result.Priority, result.DueDate, result.DueTime, result.Tags, cached)

	task := cloneResult(result)
	return intake.ParseOutput{
		Task:    task,
		Display: uc.display(task.DueDate, task.DueTime, task.EstimatedMinutes, ref),
		Cached:  cached,
	}, nil
}
