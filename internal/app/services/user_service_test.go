package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/pkg/apperrors"
)

func newUserServiceForTest() (UserService, *fakeUserRepo, *fakeSessionRepo) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	return NewUserService(userRepo, sessionRepo, zerolog.Nop()), userRepo, sessionRepo
}

func TestUpdateTheme(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _ := newUserServiceForTest()
	user := userRepo.addUser(&models.User{FirstName: "A", LastName: "A", Theme: models.DefaultTheme})

	require.NoError(t, svc.UpdateTheme(ctx, user, "dark"))
	assert.Equal(t, "dark", userRepo.users[user.ID].Theme)

	assert.ErrorIs(t, svc.UpdateTheme(ctx, user, "  "), apperrors.ErrValidationFailed)
}

func TestBanUser(t *testing.T) {
	ctx := context.Background()

	t.Run("ban flips the flag and revokes sessions", func(t *testing.T) {
		svc, userRepo, sessionRepo := newUserServiceForTest()
		admin := userRepo.addUser(&models.User{FirstName: "Ad", LastName: "Min", Role: models.RoleAdmin})
		target := userRepo.addUser(&models.User{FirstName: "T", LastName: "T"})
		require.NoError(t, sessionRepo.Create(ctx, "tok-1", target.ID, time.Now().Add(time.Hour)))
		require.NoError(t, sessionRepo.Create(ctx, "tok-2", target.ID, time.Now().Add(time.Hour)))

		require.NoError(t, svc.BanUser(ctx, admin, target.ID))
		assert.True(t, userRepo.users[target.ID].IsBanned)
		assert.Equal(t, 0, sessionRepo.liveCount(target.ID))
	})

	t.Run("unban lifts the flag", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceForTest()
		admin := userRepo.addUser(&models.User{FirstName: "Ad", LastName: "Min", Role: models.RoleAdmin})
		target := userRepo.addUser(&models.User{FirstName: "T", LastName: "T", IsBanned: true})

		require.NoError(t, svc.UnbanUser(ctx, admin, target.ID))
		assert.False(t, userRepo.users[target.ID].IsBanned)
	})

	t.Run("admin can ban themselves and loses their sessions", func(t *testing.T) {
		svc, userRepo, sessionRepo := newUserServiceForTest()
		admin := userRepo.addUser(&models.User{FirstName: "Ad", LastName: "Min", Role: models.RoleAdmin})
		require.NoError(t, sessionRepo.Create(ctx, "tok-self", admin.ID, time.Now().Add(time.Hour)))

		require.NoError(t, svc.BanUser(ctx, admin, admin.ID))
		assert.True(t, userRepo.users[admin.ID].IsBanned)
		assert.Equal(t, 0, sessionRepo.liveCount(admin.ID))
	})

	t.Run("non-admin cannot ban or unban", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceForTest()
		user := userRepo.addUser(&models.User{FirstName: "U", LastName: "U"})
		target := userRepo.addUser(&models.User{FirstName: "T", LastName: "T"})

		assert.ErrorIs(t, svc.BanUser(ctx, user, target.ID), apperrors.ErrPermissionDenied)
		assert.ErrorIs(t, svc.UnbanUser(ctx, user, target.ID), apperrors.ErrPermissionDenied)
	})

	t.Run("unknown target fails with not found", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceForTest()
		admin := userRepo.addUser(&models.User{FirstName: "Ad", LastName: "Min", Role: models.RoleAdmin})

		assert.ErrorIs(t, svc.BanUser(ctx, admin, 999), apperrors.ErrUserNotFound)
	})
}

func TestListAllUsers(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _ := newUserServiceForTest()
	admin := userRepo.addUser(&models.User{FirstName: "Ad", LastName: "Min", Role: models.RoleAdmin})
	userRepo.addUser(&models.User{FirstName: "U", LastName: "U"})
	userRepo.addUser(&models.User{FirstName: "B", LastName: "B", IsBanned: true})

	t.Run("admin sees everyone, banned included", func(t *testing.T) {
		users, err := svc.ListAll(ctx, admin)
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		_, err := svc.ListAll(ctx, regularUser)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}
