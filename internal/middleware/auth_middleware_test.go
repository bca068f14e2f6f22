package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/pkg/apperrors"
	"github.com/classforum/classforum/internal/pkg/auth"
)

type stubUserRepo struct {
	users map[int64]*models.User
}

func (r *stubUserRepo) Create(context.Context, *models.User) error { return nil }

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByName(context.Context, string, string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (r *stubUserRepo) IdentityExists(context.Context, string, string) (bool, error) {
	return false, nil
}

func (r *stubUserRepo) Exists(context.Context, int64) (bool, error)       { return false, nil }
func (r *stubUserRepo) UpdateTheme(context.Context, int64, string) error  { return nil }
func (r *stubUserRepo) SetBanned(context.Context, int64, bool) error      { return nil }
func (r *stubUserRepo) ListAll(context.Context) ([]*models.User, error)   { return nil, nil }
func (r *stubUserRepo) ListPeers(context.Context, int64) ([]*models.User, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, repo *stubUserRepo) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "test",
	})

	m := NewAuthMiddleware(jwtService, repo)

	router := gin.New()
	protected := router.Group("", m.JWTAuth())
	protected.GET("/protected", func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	protected.GET("/admin-only", m.AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, user *models.User) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)
	return accessToken
}

func doRequest(router *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth(t *testing.T) {
	user := &models.User{ID: 1, FirstName: "A", LastName: "A", Role: models.RoleUser}
	repo := &stubUserRepo{users: map[int64]*models.User{user.ID: user}}
	router, jwtService := newTestRouter(t, repo)

	t.Run("valid token passes", func(t *testing.T) {
		rec := doRequest(router, "/protected", tokenFor(t, jwtService, user))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := doRequest(router, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		rec := doRequest(router, "/protected", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token of a deleted account rejected", func(t *testing.T) {
		ghost := &models.User{ID: 99, Role: models.RoleUser}
		rec := doRequest(router, "/protected", tokenFor(t, jwtService, ghost))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBanGate(t *testing.T) {
	user := &models.User{ID: 1, FirstName: "A", LastName: "A", Role: models.RoleUser}
	repo := &stubUserRepo{users: map[int64]*models.User{user.ID: user}}
	router, jwtService := newTestRouter(t, repo)

	token := tokenFor(t, jwtService, user)

	rec := doRequest(router, "/protected", token)
	require.Equal(t, http.StatusOK, rec.Code)

	// The same still-valid token stops working the moment the ban lands
	user.IsBanned = true
	rec = doRequest(router, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_002")

	user.IsBanned = false
	rec = doRequest(router, "/protected", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRequired(t *testing.T) {
	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	user := &models.User{ID: 2, Role: models.RoleUser}
	repo := &stubUserRepo{users: map[int64]*models.User{admin.ID: admin, user.ID: user}}
	router, jwtService := newTestRouter(t, repo)

	rec := doRequest(router, "/admin-only", tokenFor(t, jwtService, admin))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, "/admin-only", tokenFor(t, jwtService, user))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "PERM_001")
}
