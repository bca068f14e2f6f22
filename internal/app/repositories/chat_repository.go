package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classforum/classforum/internal/app/models"
)

// IChatRepository defines the interface for group chat database operations
type IChatRepository interface {
	Create(ctx context.Context, message *models.ChatMessage) error
	ListAll(ctx context.Context) ([]*models.ChatMessage, error)
	ListSince(ctx context.Context, sinceID, excludeUserID int64) ([]*models.ChatMessage, error)
}

// ChatRepository handles database operations for group chat messages
type ChatRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new chat message
func (r *ChatRepository) Create(ctx context.Context, message *models.ChatMessage) error {
	sql, args, err := r.sb.Insert("chat_messages").
		Columns("user_id", "content").
		Values(message.UserID, message.Content).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create chat message query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&message.ID, &message.CreatedAt); err != nil {
		return fmt.Errorf("error creating chat message: %w", err)
	}

	return nil
}

// ListAll retrieves the full chat timeline in append order
func (r *ChatRepository) ListAll(ctx context.Context) ([]*models.ChatMessage, error) {
	return r.list(ctx, r.baseSelect())
}

// ListSince retrieves messages with id greater than sinceID that were not
// authored by excludeUserID, in append order. The exclusion is the polling
// contract: a sender never receives its own messages through a poll and is
// expected to render them client-side at send time. Do not remove it.
func (r *ChatRepository) ListSince(ctx context.Context, sinceID, excludeUserID int64) ([]*models.ChatMessage, error) {
	query := r.baseSelect().
		Where(squirrel.Gt{"cm.id": sinceID}).
		Where(squirrel.NotEq{"cm.user_id": excludeUserID})
	return r.list(ctx, query)
}

func (r *ChatRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"cm.id", "cm.user_id", "cm.content", "cm.created_at",
		"u.id", "u.first_name", "u.last_name",
	).
		From("chat_messages cm").
		Join("users u ON cm.user_id = u.id").
		OrderBy("cm.created_at ASC", "cm.id ASC")
}

func (r *ChatRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]*models.ChatMessage, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build chat message query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying chat messages: %w", err)
	}
	defer rows.Close()

	return collectChatMessages(rows)
}

func collectChatMessages(rows pgx.Rows) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage
	for rows.Next() {
		message := &models.ChatMessage{}
		user := &models.User{}
		err := rows.Scan(
			&message.ID, &message.UserID, &message.Content, &message.CreatedAt,
			&user.ID, &user.FirstName, &user.LastName)
		if err != nil {
			return nil, fmt.Errorf("error scanning chat message row: %w", err)
		}
		message.User = user
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat message rows: %w", err)
	}
	return messages, nil
}
