package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classforum/classforum/internal/pkg/apperrors"
	"github.com/classforum/classforum/internal/pkg/dberrors"
	"github.com/classforum/classforum/internal/pkg/logger"
)

// ISessionRepository defines the interface for session token database operations
type ISessionRepository interface {
	Create(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetByToken(ctx context.Context, token string) (int64, time.Time, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}

// SessionRepository handles refresh session database operations
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create stores a new refresh session token
func (r *SessionRepository) Create(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	sql, args, err := r.sb.Insert("sessions").
		Columns("token", "user_id", "expiry_date", "is_revoked", "created_at").
		Values(token, userID, expiryDate, false, time.Now()).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create session SQL")
		return fmt.Errorf("failed to build create session query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "sessions_pkey") {
			logger.Warn().Msg("Attempted to create duplicate session token")
			return apperrors.ErrTokenInvalid
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing create session query")
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// GetByToken retrieves the owning user of a live session token. Revoked
// and expired tokens fail with the matching sentinel.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (int64, time.Time, error) {
	var userID int64
	var expiryDate time.Time
	var isRevoked bool

	sql, args, err := r.sb.Select("user_id", "expiry_date", "is_revoked").
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get session SQL")
		return 0, time.Time{}, fmt.Errorf("failed to build get session query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&userID, &expiryDate, &isRevoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, time.Time{}, apperrors.ErrTokenNotFound
		}
		logger.Error().Err(err).Msg("Error scanning session row")
		return 0, time.Time{}, fmt.Errorf("error retrieving session: %w", err)
	}

	if isRevoked {
		return 0, time.Time{}, apperrors.ErrTokenRevoked
	}

	if expiryDate.Before(time.Now()) {
		return 0, time.Time{}, apperrors.ErrTokenExpired
	}

	return userID, expiryDate, nil
}

// Revoke invalidates a single session token
func (r *SessionRepository) Revoke(ctx context.Context, token string) error {
	sql, args, err := r.sb.Update("sessions").
		Set("is_revoked", true).
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building revoke session SQL")
		return fmt.Errorf("failed to build revoke session query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing revoke session query")
		return fmt.Errorf("error revoking session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}

	return nil
}

// RevokeAllForUser invalidates every session of one user. Called when a
// user is banned so a held refresh token cannot resurrect the session.
func (r *SessionRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	sql, args, err := r.sb.Update("sessions").
		Set("is_revoked", true).
		Where(squirrel.Eq{"user_id": userID, "is_revoked": false}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building revoke user sessions SQL")
		return fmt.Errorf("failed to build revoke user sessions query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error revoking user sessions")
		return fmt.Errorf("error revoking user sessions: %w", err)
	}

	return nil
}
