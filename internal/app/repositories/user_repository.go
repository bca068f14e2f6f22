package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/pkg/apperrors"
	"github.com/classforum/classforum/internal/pkg/dberrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByName(ctx context.Context, firstName, lastName string) (*models.User, error)
	IdentityExists(ctx context.Context, firstName, lastName string) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	UpdateTheme(ctx context.Context, userID int64, theme string) error
	SetBanned(ctx context.Context, userID int64, banned bool) error
	ListAll(ctx context.Context) ([]*models.User, error)
	ListPeers(ctx context.Context, excludeUserID int64) ([]*models.User, error)
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, first_name, last_name, password_hash, role, theme, is_banned, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.PasswordHash,
		&user.Role, &user.Theme, &user.IsBanned, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user row: %w", err)
	}
	return user, nil
}

// Create inserts a new user. The unique index on (first_name, last_name)
// backstops the duplicate-identity check against concurrent registrations.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, password_hash, role, theme, is_banned)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		user.FirstName, user.LastName, user.PasswordHash, user.Role, user.Theme, user.IsBanned,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_first_name_last_name_key") {
			return apperrors.ErrDuplicateIdentity
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByName retrieves a user by the exact (first_name, last_name) pair,
// compared case-sensitively as stored
func (r *UserRepository) GetByName(ctx context.Context, firstName, lastName string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE first_name = $1 AND last_name = $2`,
		firstName, lastName)
	return scanUser(row)
}

// IdentityExists checks whether the exact name pair is already registered
func (r *UserRepository) IdentityExists(ctx context.Context, firstName, lastName string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE first_name = $1 AND last_name = $2)`,
		firstName, lastName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking identity: %w", err)
	}
	return exists, nil
}

// Exists checks whether a user with the given id exists
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking user existence: %w", err)
	}
	return exists, nil
}

// UpdateTheme overwrites the user's theme preference
func (r *UserRepository) UpdateTheme(ctx context.Context, userID int64, theme string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET theme = $1 WHERE id = $2`, theme, userID)
	if err != nil {
		return fmt.Errorf("error updating theme: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetBanned flips the ban flag for a user
func (r *UserRepository) SetBanned(ctx context.Context, userID int64, banned bool) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET is_banned = $1 WHERE id = $2`, banned, userID)
	if err != nil {
		return fmt.Errorf("error updating ban flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// ListAll retrieves every user, oldest first
func (r *UserRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// ListPeers retrieves all non-banned users except the given one, in
// stable id order
func (r *UserRepository) ListPeers(ctx context.Context, excludeUserID int64) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE id <> $1 AND is_banned = FALSE
		ORDER BY id`,
		excludeUserID)
	if err != nil {
		return nil, fmt.Errorf("error listing peers: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]*models.User, error) {
	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ID, &user.FirstName, &user.LastName, &user.PasswordHash,
			&user.Role, &user.Theme, &user.IsBanned, &user.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
