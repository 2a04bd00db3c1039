package repositories

import (
	"context"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
)

// CommentRepository defines persistence operations over comments.
// Implementations return entities.ErrCommentNotFound when no row matches.
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) (*entities.Comment, error)

	FindByID(ctx context.Context, id int64) (*entities.Comment, error)

	ListByImage(ctx context.Context, imageID int64) ([]*entities.Comment, error)

	UpdateText(ctx context.Context, id int64, text string) error

	Delete(ctx context.Context, id int64) error
}
