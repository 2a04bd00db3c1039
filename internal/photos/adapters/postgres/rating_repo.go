package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/repositories"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

// RatingRepository implements repositories.RatingRepository on PostgreSQL.
// The (image_id, user_id) unique index enforces one rating per user per
// image.
type RatingRepository struct {
	pool PgxPoolInterface
}

// NewRatingRepository creates a new rating repository.
func NewRatingRepository(pool PgxPoolInterface) repositories.RatingRepository {
	return &RatingRepository{pool: pool}
}

// Create stores a rating, mapping unique violations to ErrDuplicateRating.
func (r *RatingRepository) Create(ctx context.Context, rating *entities.Rating) (*entities.Rating, error) {
	log := logger.Log(ctx).With(zap.String("repository", "rating"), zap.String("method", "Create"))

	query := `
        INSERT INTO ratings (image_id, user_id, value)
        VALUES ($1, $2, $3)
        RETURNING id, image_id, user_id, value, created_at
    `

	var created entities.Rating
	err := r.pool.QueryRow(ctx, query, rating.ImageID, rating.UserID, rating.Value).Scan(
		&created.ID,
		&created.ImageID,
		&created.UserID,
		&created.Value,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Debug(ctx, "duplicate rating", zap.Int64("imageID", rating.ImageID), zap.Int64("userID", rating.UserID))
			return nil, entities.ErrDuplicateRating
		}
		log.Error(ctx, "error creating rating", zap.Error(err))
		return nil, fmt.Errorf("error creating rating: %w", err)
	}

	return &created, nil
}

// Average returns the mean score of an image, zero when unrated.
func (r *RatingRepository) Average(ctx context.Context, imageID int64) (float64, error) {
	query := `SELECT COALESCE(AVG(value), 0) FROM ratings WHERE image_id = $1`

	var avg float64
	if err := r.pool.QueryRow(ctx, query, imageID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("error querying average rating: %w", err)
	}

	return avg, nil
}

// ListByImage lists all ratings of an image.
func (r *RatingRepository) ListByImage(ctx context.Context, imageID int64) ([]*entities.Rating, error) {
	query := `
        SELECT id, image_id, user_id, value, created_at
        FROM ratings
        WHERE image_id = $1
        ORDER BY created_at
    `

	rows, err := r.pool.Query(ctx, query, imageID)
	if err != nil {
		return nil, fmt.Errorf("error querying ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*entities.Rating
	for rows.Next() {
		var rating entities.Rating
		if err := rows.Scan(&rating.ID, &rating.ImageID, &rating.UserID, &rating.Value, &rating.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rating rows: %w", err)
	}

	return ratings, nil
}

// Delete removes a rating.
func (r *RatingRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "rating"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting rating", zap.Error(err))
		return fmt.Errorf("error deleting rating: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrRatingNotFound
	}

	return nil
}
