package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/db"
)

// IMessageRepository defines the interface for direct message database operations
type IMessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetConversation(ctx context.Context, readerID, otherID int64) ([]*models.Message, error)
}

// MessageRepository handles database operations for direct messages
type MessageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new direct message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	sql, args, err := r.sb.Insert("messages").
		Columns("sender_id", "receiver_id", "content", "is_read").
		Values(message.SenderID, message.ReceiverID, message.Content, message.IsRead).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create message query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&message.ID, &message.CreatedAt); err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}

	return nil
}

// GetConversation retrieves all messages between the two users, oldest
// first, and marks the ones addressed to readerID as read. Both steps run
// in one transaction so a poll never observes a half-applied read state.
// The pair filter is unordered: GetConversation(a, b) and
// GetConversation(b, a) return the same message set.
func (r *MessageRepository) GetConversation(ctx context.Context, readerID, otherID int64) ([]*models.Message, error) {
	var messages []*models.Message

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Select("id", "sender_id", "receiver_id", "content", "is_read", "created_at").
			From("messages").
			Where(squirrel.Or{
				squirrel.And{squirrel.Eq{"sender_id": readerID}, squirrel.Eq{"receiver_id": otherID}},
				squirrel.And{squirrel.Eq{"sender_id": otherID}, squirrel.Eq{"receiver_id": readerID}},
			}).
			OrderBy("created_at ASC", "id ASC").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build conversation query: %w", err)
		}

		rows, err := tx.Query(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error querying conversation: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			message := &models.Message{}
			err := rows.Scan(
				&message.ID, &message.SenderID, &message.ReceiverID,
				&message.Content, &message.IsRead, &message.CreatedAt)
			if err != nil {
				return fmt.Errorf("error scanning message row: %w", err)
			}
			messages = append(messages, message)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating message rows: %w", err)
		}

		updateSQL, updateArgs, err := r.sb.Update("messages").
			Set("is_read", true).
			Where(squirrel.Eq{"sender_id": otherID, "receiver_id": readerID, "is_read": false}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build mark-read query: %w", err)
		}

		if _, err := tx.Exec(ctx, updateSQL, updateArgs...); err != nil {
			return fmt.Errorf("error marking conversation read: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}
