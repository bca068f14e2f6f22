package dto

import (
	"time"

	"github.com/classforum/classforum/internal/app/models"
)

// UserResponse represents basic user information
type UserResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	Theme     string    `json:"theme"`
	IsBanned  bool      `json:"isBanned"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse maps a user model to its response shape
func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		Theme:     u.Theme,
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt,
	}
}

// PeerResponse represents a user selectable as a direct-message recipient
type PeerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ToPeerResponse maps a user model to its peer-list shape
func ToPeerResponse(u *models.User) PeerResponse {
	return PeerResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// UpdateThemeRequest represents a theme change
type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// AdminDashboardResponse holds the admin page data: all users plus the
// moderation queue of suggested posts
type AdminDashboardResponse struct {
	Users          []UserResponse `json:"users"`
	SuggestedPosts []PostResponse `json:"suggestedPosts"`
}
