package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/app/models/dto"
	"github.com/classforum/classforum/internal/app/repositories"
	"github.com/classforum/classforum/internal/pkg/apperrors"
)

// PostService defines the interface for news and info post operations
type PostService interface {
	CreateNews(ctx context.Context, actor *models.User, req *dto.CreatePostRequest) (*models.Post, error)
	CreateInfo(ctx context.Context, actor *models.User, req *dto.CreatePostRequest) (*models.Post, error)
	SuggestInfo(ctx context.Context, actor *models.User, req *dto.CreatePostRequest) (*models.Post, error)
	ListNews(ctx context.Context) ([]*models.Post, error)
	ListInfo(ctx context.Context) ([]*models.Post, error)
	ListSuggested(ctx context.Context, actor *models.User) ([]*models.Post, error)
	Publish(ctx context.Context, actor *models.User, postID int64) error
	Delete(ctx context.Context, actor *models.User, postID int64) error
}

type postServiceImpl struct {
	postRepo repositories.IPostRepository
	logger   zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.IPostRepository, logger zerolog.Logger) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		logger:   logger,
	}
}

// CreateNews publishes a news post immediately. Admin only.
func (s *postServiceImpl) CreateNews(ctx context.Context, actor *models.User, req *dto.CreatePostRequest) (*models.Post, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.create(ctx, actor, req, models.PostTypeNews, models.StatusPublished)
}

// CreateInfo publishes an info post immediately. Admin only.
func (s *postServiceImpl) CreateInfo(ctx context.Context, actor *models.User, req *dto.CreatePostRequest) (*models.Post, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.create(ctx, actor, req, models.PostTypeInfo, models.StatusPublished)
}

// SuggestInfo creates an info post in the suggested state, awaiting
// moderation. Any authenticated user may suggest.
func (s *postServiceImpl) SuggestInfo(ctx context.Context, actor *models.User, req *dto.CreatePostRequest) (*models.Post, error) {
	return s.create(ctx, actor, req, models.PostTypeInfo, models.StatusSuggested)
}

func (s *postServiceImpl) create(ctx context.Context, actor *models.User, req *dto.CreatePostRequest, postType models.PostType, status models.PostStatus) (*models.Post, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, apperrors.NewValidationError("title and content are required")
	}

	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: actor.ID,
		PostType: postType,
		Status:   status,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("postID", post.ID).
		Int64("authorID", actor.ID).
		Str("type", string(postType)).
		Str("status", string(status)).
		Msg("Post created")

	return post, nil
}

// ListNews returns published news posts, newest first
func (s *postServiceImpl) ListNews(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.ListPublishedByType(ctx, models.PostTypeNews)
}

// ListInfo returns published info posts, newest first
func (s *postServiceImpl) ListInfo(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.ListPublishedByType(ctx, models.PostTypeInfo)
}

// ListSuggested returns posts awaiting moderation. Admin only.
func (s *postServiceImpl) ListSuggested(ctx context.Context, actor *models.User) ([]*models.Post, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.postRepo.ListSuggested(ctx)
}

// Publish promotes a suggested post to the published state. Admin only.
// Publishing an already-published post is a no-op rather than an error.
func (s *postServiceImpl) Publish(ctx context.Context, actor *models.User, postID int64) error {
	if !actor.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}
	if err := s.postRepo.Publish(ctx, postID); err != nil {
		return err
	}
	s.logger.Info().Int64("postID", postID).Int64("adminID", actor.ID).Msg("Post published")
	return nil
}

// Delete removes a post regardless of its state. Admin only.
func (s *postServiceImpl) Delete(ctx context.Context, actor *models.User, postID int64) error {
	if !actor.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	s.logger.Info().Int64("postID", postID).Int64("adminID", actor.ID).Msg("Post deleted")
	return nil
}
