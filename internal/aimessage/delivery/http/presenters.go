package http

import (
	"taskboard/internal/aimessage"
	"taskboard/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Role    string `json:"role"    binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (r createReq) validate() error {
	if !aimessage.Role(r.Role).Valid() {
		return aimessage.ErrInvalidRole
	}
	return nil
}

func (r createReq) toInput() aimessage.CreateInput {
	return aimessage.CreateInput{
		Role:    aimessage.Role(r.Role),
		Content: r.Content,
	}
}

type listReq struct {
	Limit int `form:"limit" binding:"min=0"`
}

func (r listReq) toInput() aimessage.ListInput {
	return aimessage.ListInput{Limit: r.Limit}
}

// --- Response DTOs ---

type messageResp struct {
	ID        int64             `json:"id"`
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Timestamp response.DateTime `json:"timestamp" swaggertype:"string"`
}

func newMessageResp(m aimessage.Message) messageResp {
	return messageResp{
		ID:        m.ID,
		Role:      string(m.Role),
		Content:   m.Content,
		Timestamp: response.DateTime(m.Timestamp),
	}
}

func (h *handler) newListResp(messages []aimessage.Message) []messageResp {
	out := make([]messageResp, len(messages))
	for i, m := range messages {
		out[i] = newMessageResp(m)
	}
	return out
}
