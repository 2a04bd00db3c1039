package postgres

import (
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/repositories"
)

// RepositoryFactory builds the auth repositories over a shared pool.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory creates a new repository factory.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// UserRepository returns the user repository.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.pool)
}
