package dto

import (
	"time"

	"github.com/classforum/classforum/internal/app/models"
)

// CreateHomeworkRequest represents the body of add_homework.
// All fields are stored as given; due_date stays a free-form string.
type CreateHomeworkRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
	DueDate string `json:"due_date"`
}

// HomeworkResponse represents a homework posting
type HomeworkResponse struct {
	ID         int64     `json:"id"`
	Subject    string    `json:"subject"`
	Content    string    `json:"content"`
	DueDate    string    `json:"dueDate"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToHomeworkResponse maps a homework model to its response shape
func ToHomeworkResponse(h *models.Homework) HomeworkResponse {
	resp := HomeworkResponse{
		ID:        h.ID,
		Subject:   h.Subject,
		Content:   h.Content,
		DueDate:   h.DueDate,
		AuthorID:  h.AuthorID,
		CreatedAt: h.CreatedAt,
	}
	if h.Author != nil {
		resp.AuthorName = h.Author.FullName()
	}
	return resp
}

// ToHomeworkResponses maps a slice of homework models
func ToHomeworkResponses(homeworks []*models.Homework) []HomeworkResponse {
	responses := make([]HomeworkResponse, 0, len(homeworks))
	for _, h := range homeworks {
		responses = append(responses, ToHomeworkResponse(h))
	}
	return responses
}

// HomeworkListResponse holds the homework board contents
type HomeworkListResponse struct {
	Homeworks []HomeworkResponse `json:"homeworks"`
}
