package http

import (
	"time"

	"taskboard/internal/extraction"
	"taskboard/pkg/response"
)

// --- Request DTOs ---

type extractReq struct {
	Text          string `json:"text"`
	ReferenceDate string `json:"referenceDate,omitempty" example:"2024-01-10"`
}

func (r extractReq) toInput() (extraction.ExtractInput, error) {
	in := extraction.ExtractInput{Text: r.Text}
	if r.ReferenceDate == "" {
		return in, nil
	}
	ref, err := time.Parse(response.DateFormat, r.ReferenceDate)
	if err != nil {
		return in, err
	}
	in.ReferenceDate = ref
	return in, nil
}

// --- Response DTOs ---

type extractResp struct {
	Tasks        []extraction.ExtractedTask `json:"tasks"`
	DroppedCount int                        `json:"droppedCount"`
}

func (h *handler) newExtractResp(out extraction.ExtractOutput) extractResp {
	tasks := out.Tasks
	if tasks == nil {
		tasks = []extraction.ExtractedTask{}
	}
	return extractResp{Tasks: tasks, DroppedCount: out.DroppedCount}
}
