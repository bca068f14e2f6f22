package dto

import (
	"time"

	"github.com/classforum/classforum/internal/app/models"
)

// SendMessageRequest represents the body of send_message
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id"`
	Content    string `json:"content"`
}

// MessageResponse represents one direct message as seen by the
// requesting user. IsMine tags messages the requester sent, for
// client-side conversation rendering.
type MessageResponse struct {
	ID        int64     `json:"id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	IsMine    bool      `json:"is_mine"`
	CreatedAt time.Time `json:"created_at"`
}

// ToMessageResponse maps a direct message for the given viewer
func ToMessageResponse(m *models.Message, viewerID int64) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		IsRead:    m.IsRead,
		IsMine:    m.SenderID == viewerID,
		CreatedAt: m.CreatedAt,
	}
}

// ToMessageResponses maps a conversation for the given viewer
func ToMessageResponses(messages []*models.Message, viewerID int64) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToMessageResponse(m, viewerID))
	}
	return out
}

// PeerListResponse holds the users available for direct messaging
type PeerListResponse struct {
	Users []PeerResponse `json:"users"`
}
