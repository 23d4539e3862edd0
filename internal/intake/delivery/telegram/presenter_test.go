package telegram

import (
	"testing"

	"task-intake/internal/intake"
	"task-intake/pkg/taskparse"
)

func TestBuildSummary(t *testing.T) {
	tests := []struct {
		name string
		out  intake.ParseOutput
		want string
	}{
		{
			name: "title only",
			out: intake.ParseOutput{
				Task: taskparse.ParseResult{Title: "Mua sữa", Priority: taskparse.PriorityMedium},
			},
			want: "✅ Đã ghi nhận công việc\n📝 Mua sữa\n⚡ Ưu tiên: Trung bình",
		},
		{
			name: "all fields",
			out: intake.ParseOutput{
				Task: taskparse.ParseResult{
					Title:    "Họp nhóm",
					Priority: taskparse.PriorityHigh,
					Tags:     []string{"work", "team"},
				},
				Display: intake.Display{DueDate: "Ngày mai", DueTime: "3 PM", EstimatedTime: "1h 30p"},
			},
			want: "✅ Đã ghi nhận công việc\n📝 Họp nhóm\n⚡ Ưu tiên: Cao\n📅 Ngày mai 3 PM\n⏱ 1h 30p\n🏷 #work #team",
		},
		{
			name: "time without date",
			out: intake.ParseOutput{
				Task:    taskparse.ParseResult{Title: "Gọi điện", Priority: taskparse.PriorityLow},
				Display: intake.Display{DueTime: "9:30 AM"},
			},
			want: "✅ Đã ghi nhận công việc\n📝 Gọi điện\n⚡ Ưu tiên: Thấp\n📅 9:30 AM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildSummary(tt.out); got != tt.want {
				t.Errorf("buildSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
