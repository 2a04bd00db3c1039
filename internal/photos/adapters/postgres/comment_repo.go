package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/repositories"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const commentColumns = `id, image_id, user_id, text, created_at, updated_at`

// CommentRepository implements repositories.CommentRepository on PostgreSQL.
type CommentRepository struct {
	pool PgxPoolInterface
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(pool PgxPoolInterface) repositories.CommentRepository {
	return &CommentRepository{pool: pool}
}

func scanComment(row pgx.Row) (*entities.Comment, error) {
	var comment entities.Comment
	err := row.Scan(
		&comment.ID,
		&comment.ImageID,
		&comment.UserID,
		&comment.Text,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create inserts a new comment.
func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) (*entities.Comment, error) {
	log := logger.Log(ctx).With(zap.String("repository", "comment"), zap.String("method", "Create"))

	query := `
        INSERT INTO comments (image_id, user_id, text)
        VALUES ($1, $2, $3)
        RETURNING ` + commentColumns

	created, err := scanComment(r.pool.QueryRow(ctx, query, comment.ImageID, comment.UserID, comment.Text))
	if err != nil {
		log.Error(ctx, "error creating comment", zap.Error(err))
		return nil, fmt.Errorf("error creating comment: %w", err)
	}

	return created, nil
}

// FindByID finds a comment by primary key.
func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*entities.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	comment, err := scanComment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error querying comment: %w", err)
	}

	return comment, nil
}

// ListByImage lists an image's comments, oldest first.
func (r *CommentRepository) ListByImage(ctx context.Context, imageID int64) ([]*entities.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE image_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, imageID)
	if err != nil {
		return nil, fmt.Errorf("error querying comments: %w", err)
	}
	defer rows.Close()

	var comments []*entities.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

// UpdateText replaces the comment text.
func (r *CommentRepository) UpdateText(ctx context.Context, id int64, text string) error {
	log := logger.Log(ctx).With(zap.String("repository", "comment"), zap.String("method", "UpdateText"))

	query := `
        UPDATE comments
        SET text = $2, updated_at = now()
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id, text)
	if err != nil {
		log.Error(ctx, "error updating comment", zap.Error(err))
		return fmt.Errorf("error updating comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "comment"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting comment", zap.Error(err))
		return fmt.Errorf("error deleting comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrCommentNotFound
	}

	return nil
}
