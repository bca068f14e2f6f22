package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/app/models/dto"
	"github.com/classforum/classforum/internal/app/repositories"
	"github.com/classforum/classforum/internal/config"
	"github.com/classforum/classforum/internal/pkg/apperrors"
	"github.com/classforum/classforum/internal/pkg/auth"
)

// AuthService defines the interface for registration and session operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo    repositories.IUserRepository
	sessionRepo repositories.ISessionRepository
	jwtService  *auth.JWTService
	cfg         *config.Config
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	sessionRepo repositories.ISessionRepository,
	jwtService *auth.JWTService,
	cfg *config.Config,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		cfg:         cfg,
		logger:      logger,
	}
}

// Register creates a new user account. The (first_name, last_name) pair
// must be unique, compared case-sensitively as stored. A pair on the
// configured admin allow-list is created with the admin role; everyone
// else starts as a regular user.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	if firstName == "" || lastName == "" {
		return nil, apperrors.NewValidationError("first name and last name are required")
	}
	if req.Password == "" {
		return nil, apperrors.NewValidationError("password is required")
	}

	exists, err := s.userRepo.IdentityExists(ctx, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("error checking identity: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateIdentity
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	role := models.RoleUser
	if s.cfg.IsAdminIdentity(firstName, lastName) {
		role = models.RoleAdmin
	}

	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		Role:         role,
		Theme:        models.DefaultTheme,
		IsBanned:     false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userID", user.ID).
		Str("role", string(user.Role)).
		Msg("User registered")

	return user, nil
}

// Login authenticates a user by name pair and password. A banned account
// never receives a session, even with correct credentials.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	user, err := s.userRepo.GetByName(ctx, firstName, lastName)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.IsBanned {
		return nil, apperrors.ErrAccountBanned
	}

	token, err := s.generateTokenResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")

	return &dto.AuthResponse{
		Token: *token,
		User:  dto.ToUserResponse(user),
	}, nil
}

// RefreshToken rotates a refresh session into a fresh token pair. The old
// session is revoked to prevent reuse. A banned or vanished user cannot
// refresh.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, _, err := s.sessionRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}
	if user.IsBanned {
		return nil, apperrors.ErrAccountBanned
	}

	if err := s.sessionRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old session: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes the refresh session
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return nil
	}
	err := s.sessionRepo.Revoke(ctx, refreshToken)
	if err != nil && !apperrors.Is(err, apperrors.ErrTokenNotFound) {
		return err
	}
	return nil
}

func (s *authServiceImpl) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	if err := s.sessionRepo.Create(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}
