package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/app/repositories"
	"github.com/classforum/classforum/internal/pkg/apperrors"
)

// ChatService defines the interface for the shared group chat
type ChatService interface {
	Send(ctx context.Context, actor *models.User, content string) (*models.ChatMessage, error)
	History(ctx context.Context) ([]*models.ChatMessage, error)
	PollNew(ctx context.Context, actor *models.User, lastID int64) ([]*models.ChatMessage, error)
}

type chatServiceImpl struct {
	chatRepo repositories.IChatRepository
	logger   zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(chatRepo repositories.IChatRepository, logger zerolog.Logger) ChatService {
	return &chatServiceImpl{
		chatRepo: chatRepo,
		logger:   logger,
	}
}

// Send posts a message to the group chat
func (s *chatServiceImpl) Send(ctx context.Context, actor *models.User, content string) (*models.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("message content is required")
	}

	message := &models.ChatMessage{
		UserID:  actor.ID,
		Content: content,
	}

	if err := s.chatRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int64("messageID", message.ID).
		Int64("userID", actor.ID).
		Msg("Chat message sent")

	return message, nil
}

// History returns the full chat transcript in chronological order
func (s *chatServiceImpl) History(ctx context.Context) ([]*models.ChatMessage, error) {
	return s.chatRepo.ListAll(ctx)
}

// PollNew returns messages with an id greater than lastID, skipping the
// caller's own messages: the client already rendered those locally when
// it sent them.
func (s *chatServiceImpl) PollNew(ctx context.Context, actor *models.User, lastID int64) ([]*models.ChatMessage, error) {
	if lastID < 0 {
		lastID = 0
	}
	return s.chatRepo.ListSince(ctx, lastID, actor.ID)
}
