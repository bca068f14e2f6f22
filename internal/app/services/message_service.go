package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/app/models/dto"
	"github.com/classforum/classforum/internal/app/repositories"
	"github.com/classforum/classforum/internal/pkg/apperrors"
)

// MessageService defines the interface for direct messaging between users
type MessageService interface {
	Send(ctx context.Context, actor *models.User, req *dto.SendMessageRequest) (*models.Message, error)
	GetConversation(ctx context.Context, actor *models.User, otherUserID int64) ([]*models.Message, error)
	ListPeers(ctx context.Context, actor *models.User) ([]*models.User, error)
}

type messageServiceImpl struct {
	messageRepo repositories.IMessageRepository
	userRepo    repositories.IUserRepository
	logger      zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageRepo repositories.IMessageRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Send delivers a direct message. The receiver must exist; sending to
// yourself is allowed and shows up in your own conversation.
func (s *messageServiceImpl) Send(ctx context.Context, actor *models.User, req *dto.SendMessageRequest) (*models.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("message content is required")
	}
	if req.ReceiverID <= 0 {
		return nil, apperrors.NewValidationError("receiver_id is required")
	}

	exists, err := s.userRepo.Exists(ctx, req.ReceiverID)
	if err != nil {
		return nil, fmt.Errorf("error checking receiver: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	message := &models.Message{
		SenderID:   actor.ID,
		ReceiverID: req.ReceiverID,
		Content:    content,
		IsRead:     false,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int64("messageID", message.ID).
		Int64("senderID", actor.ID).
		Int64("receiverID", req.ReceiverID).
		Msg("Direct message sent")

	return message, nil
}

// GetConversation returns the two-way message history between the actor
// and another user, oldest first. Opening a conversation marks the
// actor's unread incoming messages as read.
func (s *messageServiceImpl) GetConversation(ctx context.Context, actor *models.User, otherUserID int64) ([]*models.Message, error) {
	if otherUserID != actor.ID {
		exists, err := s.userRepo.Exists(ctx, otherUserID)
		if err != nil {
			return nil, fmt.Errorf("error checking user: %w", err)
		}
		if !exists {
			return nil, apperrors.ErrUserNotFound
		}
	}
	return s.messageRepo.GetConversation(ctx, actor.ID, otherUserID)
}

// ListPeers returns the users the actor can message: everyone except the
// actor and banned accounts.
func (s *messageServiceImpl) ListPeers(ctx context.Context, actor *models.User) ([]*models.User, error) {
	return s.userRepo.ListPeers(ctx, actor.ID)
}
