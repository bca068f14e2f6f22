package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classforum/classforum/internal/app/models"
)

// IHomeworkRepository defines the interface for homework database operations
type IHomeworkRepository interface {
	Create(ctx context.Context, homework *models.Homework) error
	ListAll(ctx context.Context) ([]*models.Homework, error)
}

// HomeworkRepository handles database operations for homework postings
type HomeworkRepository struct {
	db *pgxpool.Pool
}

// NewHomeworkRepository creates a new HomeworkRepository
func NewHomeworkRepository(db *pgxpool.Pool) *HomeworkRepository {
	return &HomeworkRepository{db: db}
}

// Create inserts a new homework posting
func (r *HomeworkRepository) Create(ctx context.Context, homework *models.Homework) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO homeworks (subject, content, due_date, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		homework.Subject, homework.Content, homework.DueDate, homework.AuthorID,
	).Scan(&homework.ID, &homework.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating homework: %w", err)
	}

	return nil
}

// ListAll retrieves every homework posting, most recent first
func (r *HomeworkRepository) ListAll(ctx context.Context) ([]*models.Homework, error) {
	rows, err := r.db.Query(ctx, `
		SELECT h.id, h.subject, h.content, h.due_date, h.author_id, h.created_at,
			u.id, u.first_name, u.last_name
		FROM homeworks h
		JOIN users u ON h.author_id = u.id
		ORDER BY h.created_at DESC, h.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing homeworks: %w", err)
	}
	defer rows.Close()

	var homeworks []*models.Homework
	for rows.Next() {
		homework := &models.Homework{}
		author := &models.User{}
		err := rows.Scan(
			&homework.ID, &homework.Subject, &homework.Content, &homework.DueDate,
			&homework.AuthorID, &homework.CreatedAt,
			&author.ID, &author.FirstName, &author.LastName)
		if err != nil {
			return nil, fmt.Errorf("error scanning homework row: %w", err)
		}
		homework.Author = author
		homeworks = append(homeworks, homework)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating homework rows: %w", err)
	}

	return homeworks, nil
}
