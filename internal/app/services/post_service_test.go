package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/app/models/dto"
	"github.com/classforum/classforum/internal/pkg/apperrors"
)

var (
	adminUser   = &models.User{ID: 1, FirstName: "Ad", LastName: "Min", Role: models.RoleAdmin}
	regularUser = &models.User{ID: 2, FirstName: "Re", LastName: "Gular", Role: models.RoleUser}
)

func newPostServiceForTest() (PostService, *fakePostRepo) {
	repo := newFakePostRepo()
	return NewPostService(repo, zerolog.Nop()), repo
}

func TestCreatePosts(t *testing.T) {
	ctx := context.Background()
	req := &dto.CreatePostRequest{Title: "Title", Content: "Content"}

	t.Run("admin publishes news immediately", func(t *testing.T) {
		svc, _ := newPostServiceForTest()

		post, err := svc.CreateNews(ctx, adminUser, req)
		require.NoError(t, err)
		assert.Equal(t, models.PostTypeNews, post.PostType)
		assert.Equal(t, models.StatusPublished, post.Status)
		assert.Equal(t, adminUser.ID, post.AuthorID)
	})

	t.Run("admin publishes info immediately", func(t *testing.T) {
		svc, _ := newPostServiceForTest()

		post, err := svc.CreateInfo(ctx, adminUser, req)
		require.NoError(t, err)
		assert.Equal(t, models.PostTypeInfo, post.PostType)
		assert.Equal(t, models.StatusPublished, post.Status)
	})

	t.Run("non-admin cannot publish directly", func(t *testing.T) {
		svc, _ := newPostServiceForTest()

		_, err := svc.CreateNews(ctx, regularUser, req)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

		_, err = svc.CreateInfo(ctx, regularUser, req)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("any user can suggest, post lands in moderation queue", func(t *testing.T) {
		svc, _ := newPostServiceForTest()

		post, err := svc.SuggestInfo(ctx, regularUser, req)
		require.NoError(t, err)
		assert.Equal(t, models.PostTypeInfo, post.PostType)
		assert.Equal(t, models.StatusSuggested, post.Status)

		// Suggested posts are invisible on the public boards
		published, err := svc.ListInfo(ctx)
		require.NoError(t, err)
		assert.Empty(t, published)

		queue, err := svc.ListSuggested(ctx, adminUser)
		require.NoError(t, err)
		assert.Len(t, queue, 1)
	})

	t.Run("rejects whitespace-only title or content", func(t *testing.T) {
		svc, _ := newPostServiceForTest()

		_, err := svc.SuggestInfo(ctx, regularUser, &dto.CreatePostRequest{Title: "  ", Content: "x"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		_, err = svc.CreateNews(ctx, adminUser, &dto.CreatePostRequest{Title: "x", Content: "\t\n"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestModeratePosts(t *testing.T) {
	ctx := context.Background()

	t.Run("publish promotes a suggested post", func(t *testing.T) {
		svc, repo := newPostServiceForTest()
		post, err := svc.SuggestInfo(ctx, regularUser, &dto.CreatePostRequest{Title: "t", Content: "c"})
		require.NoError(t, err)

		require.NoError(t, svc.Publish(ctx, adminUser, post.ID))

		stored, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPublished, stored.Status)

		// Publishing an already-published post stays a no-op
		assert.NoError(t, svc.Publish(ctx, adminUser, post.ID))
	})

	t.Run("delete removes posts in any state", func(t *testing.T) {
		svc, repo := newPostServiceForTest()
		post, err := svc.CreateNews(ctx, adminUser, &dto.CreatePostRequest{Title: "t", Content: "c"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, adminUser, post.ID))

		_, err = repo.GetByID(ctx, post.ID)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})

	t.Run("unknown post id fails with not found", func(t *testing.T) {
		svc, _ := newPostServiceForTest()

		assert.ErrorIs(t, svc.Publish(ctx, adminUser, 404), apperrors.ErrPostNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, adminUser, 404), apperrors.ErrPostNotFound)
	})

	t.Run("moderation is admin only", func(t *testing.T) {
		svc, _ := newPostServiceForTest()

		assert.ErrorIs(t, svc.Publish(ctx, regularUser, 1), apperrors.ErrPermissionDenied)
		assert.ErrorIs(t, svc.Delete(ctx, regularUser, 1), apperrors.ErrPermissionDenied)
		_, err := svc.ListSuggested(ctx, regularUser)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}
