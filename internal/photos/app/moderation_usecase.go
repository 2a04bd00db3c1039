package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/api"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/repositories"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	methodModDeleteImage   = "DeleteImage"
	methodModDeleteComment = "DeleteComment"
	methodModDeleteRating  = "DeleteRating"

	msgModImageDeleted   = "image deleted by moderation"
	msgModCommentDeleted = "comment deleted by moderation"
	msgModRatingDeleted  = "rating deleted by moderation"
)

// ModerationUseCaseImpl implements api.ModerationUseCase. Role checks
// happen in routing middleware; this layer assumes an authorized actor.
type ModerationUseCaseImpl struct {
	images   repositories.ImageRepository
	comments repositories.CommentRepository
	ratings  repositories.RatingRepository
}

// NewModerationUseCase creates the content moderation use case.
func NewModerationUseCase(
	images repositories.ImageRepository,
	comments repositories.CommentRepository,
	ratings repositories.RatingRepository,
) api.ModerationUseCase {
	return &ModerationUseCaseImpl{images: images, comments: comments, ratings: ratings}
}

// ListUserImages lists all images of the given owner.
func (u *ModerationUseCaseImpl) ListUserImages(ctx context.Context, ownerID int64) ([]*entities.Image, error) {
	images, err := u.images.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingImage, err)
	}
	return images, nil
}

// DeleteImage removes any user's image.
func (u *ModerationUseCaseImpl) DeleteImage(ctx context.Context, imageID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodModDeleteImage), zap.Int64("imageID", imageID))

	if err := u.images.Delete(ctx, imageID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingImage, err)
	}

	log.Info(ctx, msgModImageDeleted)
	return nil
}

// DeleteComment removes any user's comment.
func (u *ModerationUseCaseImpl) DeleteComment(ctx context.Context, commentID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodModDeleteComment), zap.Int64("commentID", commentID))

	if err := u.comments.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("%s: %w", errCtxUpdatingComment, err)
	}

	log.Info(ctx, msgModCommentDeleted)
	return nil
}

// ListImageRatings lists the individual ratings of an image.
func (u *ModerationUseCaseImpl) ListImageRatings(ctx context.Context, imageID int64) ([]*entities.Rating, error) {
	ratings, err := u.ratings.ListByImage(ctx, imageID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingRating, err)
	}
	return ratings, nil
}

// DeleteRating removes a single rating.
func (u *ModerationUseCaseImpl) DeleteRating(ctx context.Context, ratingID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodModDeleteRating), zap.Int64("ratingID", ratingID))

	if err := u.ratings.Delete(ctx, ratingID); err != nil {
		return fmt.Errorf("%s: %w", errCtxLoadingRating, err)
	}

	log.Info(ctx, msgModRatingDeleted)
	return nil
}
