package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"task-intake/internal/intake"
	"task-intake/internal/intake/usecase"
	"task-intake/pkg/datemath"
	"task-intake/pkg/taskparse"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// Wednesday, May 1, 2024
var now = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, maxLength int) intake.UseCase {
	t.Helper()
	cal, err := datemath.NewCalendar("UTC")
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}
	return usecase.New(
		&mockLogger{},
		taskparse.NewParser(taskparse.DefaultLexicon(), cal),
		taskparse.NewFormatter(taskparse.DefaultLocale(), cal),
		cal,
		usecase.Config{
			MaxInputLength: maxLength,
			CacheSize:      8,
			CacheTTL:       time.Minute,
			Now:            func() time.Time { return now },
		},
	)
}

func TestParse(t *testing.T) {
	uc := newUseCase(t, 200)
	ctx := context.Background()

	out, err := uc.Parse(ctx, intake.ParseInput{Text: "Họp nhóm @work #gấp ngày mai lúc 3h chiều (1h30p)"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantDisplay := intake.Display{DueDate: "Ngày mai", DueTime: "3 PM", EstimatedTime: "1h 30p"}
	if diff := cmp.Diff(wantDisplay, out.Display); diff != "" {
		t.Errorf("Display mismatch (-want +got):\n%s", diff)
	}
	if out.Task.Title != "Họp nhóm" || out.Task.Priority != taskparse.PriorityHigh {
		t.Errorf("unexpected task: %+v", out.Task)
	}
	if out.Cached {
		t.Errorf("first parse should not be cached")
	}
}

func TestParseCachesPerReferenceDay(t *testing.T) {
	uc := newUseCase(t, 200)
	ctx := context.Background()
	text := "Nộp báo cáo ngày mai"

	first, _ := uc.Parse(ctx, intake.ParseInput{Text: text})
	first.Task.DueDate.Day = 28 // callers must not be able to poison the cache

	second, err := uc.Parse(ctx, intake.ParseInput{Text: "  " + text + " ", ReferenceTime: now.Add(3 * time.Hour)})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !second.Cached {
		t.Errorf("same text on the same day should hit the cache")
	}
	if second.Task.DueDate.Day != 2 {
		t.Errorf("cached DueDate = %v, want 2024-05-02", second.Task.DueDate)
	}

	nextDay, _ := uc.Parse(ctx, intake.ParseInput{Text: text, ReferenceTime: now.AddDate(0, 0, 1)})
	if nextDay.Cached {
		t.Errorf("a different reference day must not hit the cache")
	}
	if nextDay.Task.DueDate.Day != 3 {
		t.Errorf("DueDate = %v, want 2024-05-03", nextDay.Task.DueDate)
	}
}

func TestParseRejectsInput(t *testing.T) {
	uc := newUseCase(t, 10)
	ctx := context.Background()

	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"Empty", "", intake.ErrEmptyInput},
		{"Blank", " \t\n", intake.ErrEmptyInput},
		{"Too long", strings.Repeat("á", 11), intake.ErrInputTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Parse(ctx, intake.ParseInput{Text: tt.text})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := uc.Parse(ctx, intake.ParseInput{Text: strings.Repeat("á", 10)}); err != nil {
		t.Errorf("input at the limit should be accepted, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	uc := newUseCase(t, 200)
	ctx := context.Background()
	ninety := 90
	zero := 0

	tests := []struct {
		name    string
		input   intake.FormatInput
		want    intake.Display
		wantErr error
	}{
		{
			name:  "All fields",
			input: intake.FormatInput{DueDate: "2024-05-01", DueTime: "09:30", EstimatedMinutes: &ninety},
			want:  intake.Display{DueDate: "Hôm nay", DueTime: "9:30 AM", EstimatedTime: "1h 30p"},
		},
		{
			name:  "Absent fields",
			input: intake.FormatInput{},
			want:  intake.Display{},
		},
		{
			name:  "Far date with explicit reference",
			input: intake.FormatInput{DueDate: "2024-05-20", ReferenceTime: now.AddDate(0, 0, -1)},
			want:  intake.Display{DueDate: "20 thg 5"},
		},
		{
			name:    "Bad date",
			input:   intake.FormatInput{DueDate: "01/05/2024"},
			wantErr: intake.ErrInvalidDueDate,
		},
		{
			name:    "Bad time",
			input:   intake.FormatInput{DueTime: "25:00"},
			wantErr: intake.ErrInvalidDueTime,
		},
		{
			name:    "Zero minutes",
			input:   intake.FormatInput{EstimatedMinutes: &zero},
			wantErr: intake.ErrInvalidMinutes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Format(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Format() error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, out.Display); diff != "" {
				t.Errorf("Display mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
