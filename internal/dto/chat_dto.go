package dto

import "time"

type UploadResponse struct {
	SessionId string `json:"session_id"`
	DocName   string `json:"doc_name"`
	Message   string `json:"message"`
}

type SendChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type SendChatResponse struct {
	SessionId string `json:"session_id"`
	Response  string `json:"response"`
}

type ChatTurnResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type GetHistoryResponse struct {
	SessionId string             `json:"session_id"`
	DocName   string             `json:"doc_name,omitempty"`
	Ready     bool               `json:"ready"`
	CreatedAt time.Time          `json:"created_at"`
	Messages  []ChatTurnResponse `json:"messages"`
}
