package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/app/models/dto"
	"github.com/classforum/classforum/internal/app/repositories"
	"github.com/classforum/classforum/internal/pkg/apperrors"
	"github.com/classforum/classforum/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "userID"
)

// AuthMiddleware handles authentication and the ban gate
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.IUserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.IUserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// JWTAuth validates the bearer token, then re-loads the user from the
// database before every request. A token held by a banned or deleted
// account is rejected here, regardless of when it was issued, so a ban
// takes effect on the user's very next request.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required", "Authorization header missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required", "Invalid token format")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorCode = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}
			abortUnauthorized(c, errorCode, "Authentication failed", details)
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Authentication failed", "Account no longer exists")
			return
		}

		if user.IsBanned {
			abortUnauthorized(c, dto.ErrorCodeAccountBanned, "Account is banned", nil)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)

		c.Next()
	}
}

// AdminRequired rejects non-admin users. Must run after JWTAuth.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required", "User information not found")
			return
		}

		if !user.IsAdmin() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			errorDetail = errorDetail.WithDetails("This operation requires the admin role")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user placed in the context by JWTAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string, details interface{}) {
	errorDetail := dto.NewErrorDetail(code, message)
	if details != nil {
		errorDetail = errorDetail.WithDetails(details)
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
