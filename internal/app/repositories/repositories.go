// Package repositories contains the data access layer. Each repository
// owns the SQL for one entity and maps database errors to apperrors
// sentinels.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories combines all entity repositories
type Repositories struct {
	UserRepository     *UserRepository
	PostRepository     *PostRepository
	HomeworkRepository *HomeworkRepository
	MessageRepository  *MessageRepository
	ChatRepository     *ChatRepository
	SessionRepository  *SessionRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		PostRepository:     NewPostRepository(db),
		HomeworkRepository: NewHomeworkRepository(db),
		MessageRepository:  NewMessageRepository(db),
		ChatRepository:     NewChatRepository(db),
		SessionRepository:  NewSessionRepository(db),
	}
}
