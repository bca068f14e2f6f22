package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/pkg/apperrors"
)

// IPostRepository defines the interface for post-related database operations
type IPostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	ListPublishedByType(ctx context.Context, postType models.PostType) ([]*models.Post, error)
	ListSuggested(ctx context.Context) ([]*models.Post, error)
	Publish(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// PostRepository handles database operations for posts
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO posts (title, content, author_id, post_type, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		post.Title, post.Content, post.AuthorID, post.PostType, post.Status,
	).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by its ID
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	post := &models.Post{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, content, author_id, post_type, status, created_at
		FROM posts
		WHERE id = $1`,
		id).Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorID,
		&post.PostType, &post.Status, &post.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error retrieving post: %w", err)
	}

	return post, nil
}

// ListPublishedByType retrieves published posts of one type, most recent
// first. Suggested posts never appear here.
func (r *PostRepository) ListPublishedByType(ctx context.Context, postType models.PostType) ([]*models.Post, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.title, p.content, p.author_id, p.post_type, p.status, p.created_at,
			u.id, u.first_name, u.last_name
		FROM posts p
		JOIN users u ON p.author_id = u.id
		WHERE p.post_type = $1 AND p.status = $2
		ORDER BY p.created_at DESC, p.id DESC`,
		postType, models.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// ListSuggested retrieves the moderation queue, most recent first
func (r *PostRepository) ListSuggested(ctx context.Context) ([]*models.Post, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.title, p.content, p.author_id, p.post_type, p.status, p.created_at,
			u.id, u.first_name, u.last_name
		FROM posts p
		JOIN users u ON p.author_id = u.id
		WHERE p.status = $1
		ORDER BY p.created_at DESC, p.id DESC`,
		models.StatusSuggested)
	if err != nil {
		return nil, fmt.Errorf("error listing suggested posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// Publish sets a post's status to published. Publishing an already
// published post is a no-op success.
func (r *PostRepository) Publish(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE posts SET status = $1 WHERE id = $2`,
		models.StatusPublished, id)
	if err != nil {
		return fmt.Errorf("error publishing post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// Delete removes a post in any status
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

func collectPosts(rows pgx.Rows) ([]*models.Post, error) {
	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		author := &models.User{}
		err := rows.Scan(
			&post.ID, &post.Title, &post.Content, &post.AuthorID,
			&post.PostType, &post.Status, &post.CreatedAt,
			&author.ID, &author.FirstName, &author.LastName)
		if err != nil {
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		post.Author = author
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}
	return posts, nil
}
