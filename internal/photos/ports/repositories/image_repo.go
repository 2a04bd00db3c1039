// Package repositories defines persistence interfaces of the photo subsystem.
package repositories

import (
	"context"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
)

// SearchFilter narrows and orders an image search.
type SearchFilter struct {
	// Query matches against descriptions, case-insensitively.
	Query string
	// Tag restricts results to images carrying the named tag.
	Tag string
	// OrderBy is date or rating; date when empty.
	OrderBy entities.SortOrder
}

// ImageRepository defines persistence operations over images.
// Implementations return entities.ErrImageNotFound when no row matches.
type ImageRepository interface {
	Create(ctx context.Context, image *entities.Image) (*entities.Image, error)

	FindByID(ctx context.Context, id int64) (*entities.Image, error)

	FindByOwner(ctx context.Context, ownerID int64) ([]*entities.Image, error)

	UpdateDescription(ctx context.Context, id int64, description string) error

	Delete(ctx context.Context, id int64) error

	Search(ctx context.Context, filter SearchFilter) ([]*entities.Image, error)

	// SaveTransformed records a rendition link for an image.
	SaveTransformed(ctx context.Context, t *entities.TransformedImage) (*entities.TransformedImage, error)

	FindTransformed(ctx context.Context, id int64) (*entities.TransformedImage, error)

	ListTransformed(ctx context.Context, imageID int64) ([]*entities.TransformedImage, error)
}
