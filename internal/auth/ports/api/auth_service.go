// Package api defines the application-facing interfaces of the auth subsystem.
package api

import (
	"context"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/services"
)

// AuthUseCase drives registration, login and the token lifecycle.
type AuthUseCase interface {
	Signup(ctx context.Context, username, email, password string) (*entities.User, error)

	Login(ctx context.Context, email, password string) (*services.TokenPair, error)

	RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error)

	// Logout records the presented access token in the revocation ledger
	// for its remaining natural lifetime.
	Logout(ctx context.Context, accessToken string) error

	ConfirmEmail(ctx context.Context, token string) (alreadyConfirmed bool, err error)

	RequestEmailConfirmation(ctx context.Context, email string) (alreadyConfirmed bool, err error)

	ForgotPassword(ctx context.Context, email string) error

	ResetPassword(ctx context.Context, token, newPassword string) error
}

// Authenticator resolves a bearer token into an authenticated identity.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*entities.User, error)
}
