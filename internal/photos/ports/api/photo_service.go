// Package api defines the application-facing interfaces of the photo subsystem.
package api

import (
	"context"

	authentities "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/repositories"
)

// ImageUseCase drives the image lifecycle. Mutating operations take the
// acting user for ownership checks; moderators and admins bypass them only
// through the admin use case.
type ImageUseCase interface {
	Upload(ctx context.Context, actor *authentities.User, data []byte, contentType, description string, tags []string) (*entities.Image, error)

	Get(ctx context.Context, id int64) (*entities.Image, error)

	UpdateDescription(ctx context.Context, actor *authentities.User, id int64, description string) (*entities.Image, error)

	Delete(ctx context.Context, actor *authentities.User, id int64) error

	Search(ctx context.Context, filter repositories.SearchFilter) ([]*entities.Image, error)

	// Crop records a crop rendition link for the image.
	Crop(ctx context.Context, actor *authentities.User, id int64, mode entities.CropMode, width, height int) (*entities.TransformedImage, error)

	// ApplyEffect records an effect rendition link for the image.
	ApplyEffect(ctx context.Context, actor *authentities.User, id int64, effect entities.Effect) (*entities.TransformedImage, error)

	// QRCode renders a PNG QR code pointing at a recorded rendition link.
	QRCode(ctx context.Context, transformedID int64) ([]byte, error)
}

// CommentUseCase drives comment creation and self-service editing.
type CommentUseCase interface {
	Create(ctx context.Context, actor *authentities.User, imageID int64, text string) (*entities.Comment, error)

	ListByImage(ctx context.Context, imageID int64) ([]*entities.Comment, error)

	UpdateOwn(ctx context.Context, actor *authentities.User, commentID int64, text string) (*entities.Comment, error)
}

// RatingUseCase drives image rating.
type RatingUseCase interface {
	// Rate scores an image 1-5. Out-of-range values, the owner's own
	// images and repeat ratings are rejected.
	Rate(ctx context.Context, actor *authentities.User, imageID int64, value int) (*entities.Rating, error)

	Average(ctx context.Context, imageID int64) (float64, error)
}

// ModerationUseCase covers the moderator/admin operations over content.
type ModerationUseCase interface {
	ListUserImages(ctx context.Context, ownerID int64) ([]*entities.Image, error)

	DeleteImage(ctx context.Context, imageID int64) error

	DeleteComment(ctx context.Context, commentID int64) error

	ListImageRatings(ctx context.Context, imageID int64) ([]*entities.Rating, error)

	DeleteRating(ctx context.Context, ratingID int64) error
}
