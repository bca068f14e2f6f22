package models

import "time"

// Homework defines an admin-authored homework posting based on the
// 'homeworks' table. Entries are immutable once created; there is no
// edit or delete path. DueDate is a free-form string, stored as given.
type Homework struct {
	ID        int64     `json:"id" db:"id"`
	Subject   string    `json:"subject" db:"subject"`
	Content   string    `json:"content" db:"content"`
	DueDate   string    `json:"dueDate" db:"due_date"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Author    *User     `json:"author,omitempty"` // Relation, no db tag
}
