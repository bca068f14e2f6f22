package models

// Role defines the user role type
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// PostType partitions posts into the two feeds
type PostType string

const (
	PostTypeNews PostType = "news"
	PostTypeInfo PostType = "info"
)

// PostStatus is the post lifecycle state.
// suggested -> published via an explicit admin publish; never back.
type PostStatus string

const (
	StatusPublished PostStatus = "published"
	StatusSuggested PostStatus = "suggested"
)

// DefaultTheme is assigned at registration
const DefaultTheme = "light"
