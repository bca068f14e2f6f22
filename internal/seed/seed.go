package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/classforum/classforum/internal/app/models"
	appRepos "github.com/classforum/classforum/internal/app/repositories"
	"github.com/classforum/classforum/internal/config"
	"github.com/classforum/classforum/internal/pkg/apperrors"
	"github.com/classforum/classforum/internal/pkg/auth"
)

// CreateDefaultData seeds the bootstrap admin account when one is
// configured. Without it a fresh database has no admin until someone on
// the allow-list registers.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	bootstrap := cfg.Admin.Bootstrap
	if bootstrap.FirstName == "" || bootstrap.LastName == "" {
		lgr.Debug().Msg("No bootstrap admin configured, skipping seed")
		return nil
	}
	if bootstrap.Password == "" {
		return errors.New("bootstrap admin configured without a password")
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.IdentityExists(ctx, bootstrap.FirstName, bootstrap.LastName)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if bootstrap admin exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Bootstrap admin already exists, skipping creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(bootstrap.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing bootstrap admin password")
		return err
	}

	admin := &appModels.User{
		FirstName:    bootstrap.FirstName,
		LastName:     bootstrap.LastName,
		PasswordHash: passwordHash,
		Role:         appModels.RoleAdmin,
		Theme:        appModels.DefaultTheme,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// A concurrent start may have created it first
		if apperrors.Is(err, apperrors.ErrDuplicateIdentity) {
			lgr.Info().Msg("Bootstrap admin created by another instance")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating bootstrap admin")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Bootstrap admin created")
	return nil
}
