package http

import (
	"hospitality-concierge/internal/session"
)

// --- Request DTOs ---

type chatReq struct {
	UserID  string `json:"user_id" binding:"required,min=1,max=128"`
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

func (r chatReq) toInput() session.ChatInput {
	return session.ChatInput{
		Message: r.Message,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Reply    string `json:"reply"`
	Language string `json:"language"`
	Category string `json:"category,omitempty"`
}

func (h *handler) newChatResp(out session.ChatOutput) chatResp {
	return chatResp{
		Reply:    out.Reply,
		Language: out.Language,
		Category: string(out.Category),
	}
}
