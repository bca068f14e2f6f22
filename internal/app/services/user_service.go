package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/app/repositories"
	"github.com/classforum/classforum/internal/pkg/apperrors"
)

// UserService defines the interface for user preference and moderation operations
type UserService interface {
	UpdateTheme(ctx context.Context, actor *models.User, theme string) error
	BanUser(ctx context.Context, actor *models.User, targetUserID int64) error
	UnbanUser(ctx context.Context, actor *models.User, targetUserID int64) error
	ListAll(ctx context.Context, actor *models.User) ([]*models.User, error)
}

type userServiceImpl struct {
	userRepo    repositories.IUserRepository
	sessionRepo repositories.ISessionRepository
	logger      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.IUserRepository,
	sessionRepo repositories.ISessionRepository,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// UpdateTheme stores the actor's interface theme preference. Any
// non-blank value is accepted so the frontend can ship new themes
// without a backend release.
func (s *userServiceImpl) UpdateTheme(ctx context.Context, actor *models.User, theme string) error {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return apperrors.NewValidationError("theme is required")
	}
	return s.userRepo.UpdateTheme(ctx, actor.ID, theme)
}

// BanUser marks a user as banned and revokes every live session they
// hold, so the lockout takes effect on their next request. Admin only.
// An admin banning themselves is allowed; their next request trips the
// ban gate like anyone else's.
func (s *userServiceImpl) BanUser(ctx context.Context, actor *models.User, targetUserID int64) error {
	if !actor.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	if err := s.userRepo.SetBanned(ctx, targetUserID, true); err != nil {
		return err
	}
	if err := s.sessionRepo.RevokeAllForUser(ctx, targetUserID); err != nil {
		return fmt.Errorf("failed to revoke sessions for banned user: %w", err)
	}

	s.logger.Info().
		Int64("userID", targetUserID).
		Int64("adminID", actor.ID).
		Msg("User banned")
	return nil
}

// UnbanUser lifts a ban. Admin only. The user must log in again to get
// a fresh session.
func (s *userServiceImpl) UnbanUser(ctx context.Context, actor *models.User, targetUserID int64) error {
	if !actor.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	if err := s.userRepo.SetBanned(ctx, targetUserID, false); err != nil {
		return err
	}

	s.logger.Info().
		Int64("userID", targetUserID).
		Int64("adminID", actor.ID).
		Msg("User unbanned")
	return nil
}

// ListAll returns every registered user, banned included. Admin only.
func (s *userServiceImpl) ListAll(ctx context.Context, actor *models.User) ([]*models.User, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.userRepo.ListAll(ctx)
}
