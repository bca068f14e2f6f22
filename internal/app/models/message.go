package models

import "time"

// Message defines a direct message between two users based on the
// 'messages' table. A conversation is identified by the unordered
// {sender, receiver} pair. IsRead flips to true when the receiver
// fetches the conversation.
type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	ReceiverID int64     `json:"receiverId" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	IsRead     bool      `json:"isRead" db:"is_read"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
