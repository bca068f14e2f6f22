package dto

import (
	"time"

	"github.com/classforum/classforum/internal/app/models"
)

// CreatePostRequest represents the body of add_news, add_info and
// suggest_news
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostResponse represents a post in a feed or the moderation queue
type PostResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName,omitempty"`
	PostType   string    `json:"postType"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToPostResponse maps a post model to its response shape
func ToPostResponse(p *models.Post) PostResponse {
	resp := PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		PostType:  string(p.PostType),
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
	if p.Author != nil {
		resp.AuthorName = p.Author.FullName()
	}
	return resp
}

// ToPostResponses maps a slice of post models
func ToPostResponses(posts []*models.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, ToPostResponse(p))
	}
	return out
}

// PostFeedResponse holds a rendered feed of published posts
type PostFeedResponse struct {
	Posts []PostResponse `json:"posts"`
}
