package postgres

import (
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/repositories"
)

// RepositoryFactory builds the photo repositories over a shared pool.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory creates a new repository factory.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// ImageRepository returns the image repository.
func (f *RepositoryFactory) ImageRepository() repositories.ImageRepository {
	return NewImageRepository(f.pool)
}

// CommentRepository returns the comment repository.
func (f *RepositoryFactory) CommentRepository() repositories.CommentRepository {
	return NewCommentRepository(f.pool)
}

// RatingRepository returns the rating repository.
func (f *RepositoryFactory) RatingRepository() repositories.RatingRepository {
	return NewRatingRepository(f.pool)
}

// TagRepository returns the tag repository.
func (f *RepositoryFactory) TagRepository() repositories.TagRepository {
	return NewTagRepository(f.pool)
}
