package api

import (
	"context"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
)

// UserUseCase covers self-service profile operations.
type UserUseCase interface {
	GetProfile(ctx context.Context, email string) (*entities.User, error)

	UpdateAvatar(ctx context.Context, user *entities.User, data []byte, contentType string) (*entities.User, error)

	UpdateName(ctx context.Context, user *entities.User, name string) (*entities.User, error)
}

// AdminUseCase covers moderator/admin account management. Identity-mutating
// operations evict the subject's session cache entry so privilege changes
// are not masked for the cache TTL.
type AdminUseCase interface {
	ChangeUserRole(ctx context.Context, email string, role entities.Role) error

	BanUser(ctx context.Context, email string) error

	UnbanUser(ctx context.Context, email string) error

	GetUserByID(ctx context.Context, id int64) (*entities.User, error)

	SearchUsers(ctx context.Context, query string) ([]*entities.User, error)

	DeleteUser(ctx context.Context, id int64) error
}
