package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/app/models/dto"
	"github.com/classforum/classforum/internal/app/repositories"
	"github.com/classforum/classforum/internal/pkg/apperrors"
)

// HomeworkService defines the interface for homework board operations
type HomeworkService interface {
	Add(ctx context.Context, actor *models.User, req *dto.CreateHomeworkRequest) (*models.Homework, error)
	List(ctx context.Context) ([]*models.Homework, error)
}

type homeworkServiceImpl struct {
	homeworkRepo repositories.IHomeworkRepository
	logger       zerolog.Logger
}

// NewHomeworkService creates a new HomeworkService
func NewHomeworkService(homeworkRepo repositories.IHomeworkRepository, logger zerolog.Logger) HomeworkService {
	return &homeworkServiceImpl{
		homeworkRepo: homeworkRepo,
		logger:       logger,
	}
}

// Add creates a homework entry. Admin only. Every field is stored as
// submitted, empty included, so the board can carry free-form deadlines
// like "before the holidays" and placeholder entries filled in later.
func (s *homeworkServiceImpl) Add(ctx context.Context, actor *models.User, req *dto.CreateHomeworkRequest) (*models.Homework, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	homework := &models.Homework{
		Subject:  req.Subject,
		Content:  req.Content,
		DueDate:  req.DueDate,
		AuthorID: actor.ID,
	}

	if err := s.homeworkRepo.Create(ctx, homework); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("homeworkID", homework.ID).
		Str("subject", homework.Subject).
		Msg("Homework added")

	return homework, nil
}

// List returns all homework entries, newest first
func (s *homeworkServiceImpl) List(ctx context.Context) ([]*models.Homework, error) {
	return s.homeworkRepo.ListAll(ctx)
}
