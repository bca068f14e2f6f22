package models

import "time"

// ChatMessage defines a group chat entry based on the 'chat_messages'
// table. The global chat timeline is ordered by created_at with id as
// the tiebreak.
type ChatMessage struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	User      *User     `json:"user,omitempty"` // Relation, no db tag
}
