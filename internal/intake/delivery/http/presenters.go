package http

import (
	"time"

	"task-intake/internal/intake"
	"task-intake/pkg/taskparse"
)

// --- Request DTOs ---

type parseReq struct {
	Text          string     `json:"text"           binding:"required"`
	ReferenceTime *time.Time `json:"reference_time"`
}

func (r parseReq) toInput() intake.ParseInput {
	in := intake.ParseInput{Text: r.Text}
	if r.ReferenceTime != nil {
		in.ReferenceTime = *r.ReferenceTime
	}
	return in
}

// ---

type formatReq struct {
	DueDate          string     `json:"due_date"`
	DueTime          string     `json:"due_time"`
	EstimatedMinutes *int       `json:"estimated_minutes"`
	ReferenceTime    *time.Time `json:"reference_time"`
}

func (r formatReq) toInput() intake.FormatInput {
	in := intake.FormatInput{
		DueDate:          r.DueDate,
		DueTime:          r.DueTime,
		EstimatedMinutes: r.EstimatedMinutes,
	}
	if r.ReferenceTime != nil {
		in.ReferenceTime = *r.ReferenceTime
	}
	return in
}

// --- Response DTOs ---

type displayResp struct {
	DueDate       string `json:"due_date"`
	DueTime       string `json:"due_time"`
	EstimatedTime string `json:"estimated_time"`
}

func newDisplayResp(d intake.Display) displayResp {
	return displayResp{
		DueDate:       d.DueDate,
		DueTime:       d.DueTime,
		EstimatedTime: d.EstimatedTime,
	}
}

type parseResp struct {
	Task    taskparse.ParseResult `json:"task"`
	Display displayResp           `json:"display"`
}

func (h *handler) newParseResp(out intake.ParseOutput) parseResp {
	return parseResp{
		Task:    out.Task,
		Display: newDisplayResp(out.Display),
	}
}

func (h *handler) newFormatResp(out intake.FormatOutput) displayResp {
	return newDisplayResp(out.Display)
}
