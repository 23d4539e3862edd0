package taskparse_test

import (
	"testing"

	"task-intake/pkg/taskparse"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		snippet string
		want    taskparse.Clock
		wantOK  bool
	}{
		{"lúc 3h chiều", taskparse.Clock{Hour: 15}, true},
		{"lúc 8h tối", taskparse.Clock{Hour: 20}, true},
		{"lúc 9h sáng", taskparse.Clock{Hour: 9}, true},
		{"lúc 12h sáng", taskparse.Clock{Hour: 0}, true},
		{"lúc 12h chiều", taskparse.Clock{Hour: 12}, true},
		{"lúc 14h chiều", taskparse.Clock{Hour: 14}, true},
		{"lúc 7h45", taskparse.Clock{Hour: 7, Minute: 45}, true},
		{"Lúc 3H CHIỀU", taskparse.Clock{Hour: 15}, true},
		{"vào 9h", taskparse.Clock{Hour: 9}, true},
		{"at 5pm", taskparse.Clock{Hour: 17}, true},
		{"at 12pm", taskparse.Clock{Hour: 12}, true},
		{"at 12am", taskparse.Clock{Hour: 0}, true},
		{"at 10:30am", taskparse.Clock{Hour: 10, Minute: 30}, true},
		{"at 9:05 PM", taskparse.Clock{Hour: 21, Minute: 5}, true},
		{"at 18", taskparse.Clock{Hour: 18}, true},
		{"lúc 25h", taskparse.Clock{}, false},
		{"at 13pm", taskparse.Clock{}, false},
		{"at 10:75", taskparse.Clock{}, false},
		{"sometime", taskparse.Clock{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.snippet, func(t *testing.T) {
			got, ok := taskparse.ParseTime(tt.snippet)
			if ok != tt.wantOK {
				t.Fatalf("ParseTime(%q) ok = %v, want %v", tt.snippet, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.snippet, got, tt.want)
			}
		})
	}
}
