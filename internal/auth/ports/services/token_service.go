package services

import (
	"context"
	"time"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/services"
)

// TokenService defines the signed-token codec. Decode verifies signature,
// expiry and scope; a token presented to an operation with a different
// expected scope is rejected with services.ErrTokenScopeMismatch.
type TokenService interface {
	Issue(ctx context.Context, subject string, scope services.TokenScope) (string, time.Time, error)

	Decode(ctx context.Context, token string, expected services.TokenScope) (*services.TokenClaims, error)
}
