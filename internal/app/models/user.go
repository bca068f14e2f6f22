package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// The (FirstName, LastName) pair is the natural identity and is unique,
// compared case-sensitively as stored.
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	FirstName    string    `json:"firstName" db:"first_name" example:"John"`                 // User's first name
	LastName     string    `json:"lastName" db:"last_name" example:"Doe"`                    // User's last name
	PasswordHash string    `json:"-" db:"password_hash"`                                     // User's password digest (excluded from JSON)
	Role         Role      `json:"role" db:"role" example:"user"`                            // User's role (user or admin)
	Theme        string    `json:"theme" db:"theme" example:"light"`                         // UI theme preference, free-form string
	IsBanned     bool      `json:"isBanned" db:"is_banned" example:"false"`                  // Whether the account is banned
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}

// FullName returns the display name for the user
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
