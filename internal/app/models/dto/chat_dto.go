package dto

import (
	"time"

	"github.com/classforum/classforum/internal/app/models"
)

// SendChatMessageRequest represents the body of send_chat
type SendChatMessageRequest struct {
	Content string `json:"content"`
}

// ChatMessageResponse represents one entry of the group chat timeline
type ChatMessageResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ToChatMessageResponse maps a chat message model to its response shape
func ToChatMessageResponse(m *models.ChatMessage) ChatMessageResponse {
	resp := ChatMessageResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.User != nil {
		resp.UserName = m.User.FullName()
	}
	return resp
}

// ToChatMessageResponses maps a slice of chat message models
func ToChatMessageResponses(messages []*models.ChatMessage) []ChatMessageResponse {
	out := make([]ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToChatMessageResponse(m))
	}
	return out
}

// ChatHistoryResponse holds the full chat timeline
type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

// ChatPollResponse holds the incremental poll result.
// NewMessages never contains the caller's own messages; the client
// renders its own sends optimistically.
type ChatPollResponse struct {
	NewMessages []ChatMessageResponse `json:"new_messages"`
}
