// Package repositories defines persistence interfaces of the auth subsystem.
package repositories

import (
	"context"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
)

// UserRepository defines persistence operations over user accounts.
// Implementations return entities.ErrUserNotFound when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// UpdateRefreshToken overwrites the single on-file refresh token.
	// An empty token clears the slot, forcing re-login.
	UpdateRefreshToken(ctx context.Context, email, token string) error

	// UpdateResetToken overwrites the stored password-reset token,
	// superseding any previously issued one.
	UpdateResetToken(ctx context.Context, email, token string) error

	UpdatePassword(ctx context.Context, email, passwordHash string) error

	ConfirmEmail(ctx context.Context, email string) error

	UpdateRole(ctx context.Context, email string, role entities.Role) error

	SetBanned(ctx context.Context, email string, banned bool) error

	UpdateAvatar(ctx context.Context, email, avatarURL string) error

	UpdateUsername(ctx context.Context, email, username string) error

	Search(ctx context.Context, query string) ([]*entities.User, error)

	Delete(ctx context.Context, id int64) error
}
