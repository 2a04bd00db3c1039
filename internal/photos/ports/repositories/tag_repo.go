package repositories

import (
	"context"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
)

// TagRepository defines persistence operations over tags.
type TagRepository interface {
	// GetOrCreate resolves tag names to tags, creating missing ones.
	GetOrCreate(ctx context.Context, names []string) ([]entities.Tag, error)

	// Attach links the tags to an image, replacing the previous set.
	Attach(ctx context.Context, imageID int64, tagIDs []int64) error

	ListByImage(ctx context.Context, imageID int64) ([]entities.Tag, error)
}
