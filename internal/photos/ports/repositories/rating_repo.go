package repositories

import (
	"context"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
)

// RatingRepository defines persistence operations over ratings.
type RatingRepository interface {
	// Create stores a rating. A second rating by the same user for the
	// same image fails with entities.ErrDuplicateRating.
	Create(ctx context.Context, rating *entities.Rating) (*entities.Rating, error)

	// Average returns the mean score of an image, zero when unrated.
	Average(ctx context.Context, imageID int64) (float64, error)

	ListByImage(ctx context.Context, imageID int64) ([]*entities.Rating, error)

	Delete(ctx context.Context, id int64) error
}
