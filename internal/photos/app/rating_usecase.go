package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	authentities "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/api"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/repositories"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	methodRate = "Rate"

	msgImageRated = "image rated"

	errCtxValidatingRating = "validating rating"
	errCtxCreatingRating   = "creating rating"
	errCtxLoadingRating    = "loading ratings"
)

// RatingUseCaseImpl implements api.RatingUseCase.
type RatingUseCaseImpl struct {
	ratings repositories.RatingRepository
	images  repositories.ImageRepository
}

// NewRatingUseCase creates the rating use case.
func NewRatingUseCase(
	ratings repositories.RatingRepository,
	images repositories.ImageRepository,
) api.RatingUseCase {
	return &RatingUseCaseImpl{ratings: ratings, images: images}
}

// Rate scores an image 1-5. The owner cannot rate their own image and a
// user can rate each image once.
func (u *RatingUseCaseImpl) Rate(ctx context.Context, actor *authentities.User, imageID int64, value int) (*entities.Rating, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRate), zap.Int64("imageID", imageID), zap.Int64("userID", actor.ID))

	if !entities.ValidRating(value) {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingRating, entities.ErrInvalidRating)
	}

	image, err := u.images.FindByID(ctx, imageID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingImage, err)
	}
	if image.OwnerID == actor.ID {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingRating, entities.ErrOwnImageRating)
	}

	rating, err := u.ratings.Create(ctx, &entities.Rating{
		ImageID: imageID,
		UserID:  actor.ID,
		Value:   value,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingRating, err)
	}

	log.Info(ctx, msgImageRated, zap.Int("value", value))
	return rating, nil
}

// Average returns the mean score of an image, zero when unrated.
func (u *RatingUseCaseImpl) Average(ctx context.Context, imageID int64) (float64, error) {
	if _, err := u.images.FindByID(ctx, imageID); err != nil {
		return 0, fmt.Errorf("%s: %w", errCtxLoadingImage, err)
	}

	avg, err := u.ratings.Average(ctx, imageID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", errCtxLoadingRating, err)
	}

	return avg, nil
}
