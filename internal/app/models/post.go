package models

import "time"

// Post defines a news or info item based on the 'posts' table.
// Admin-authored posts are created published; user suggestions are created
// suggested (info type only) and become published through an admin publish.
type Post struct {
	ID        int64      `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	AuthorID  int64      `json:"authorId" db:"author_id"`
	PostType  PostType   `json:"postType" db:"post_type"`
	Status    PostStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	Author    *User      `json:"author,omitempty"` // Relation, no db tag
}
