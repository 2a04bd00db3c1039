package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/services"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/api"
	cacheports "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/cache"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/repositories"
	svc "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/services"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	methodAuthenticate = "Authenticate"

	msgAuthenticating       = "authenticating request"
	msgRevokedTokenUse      = "attempt to use revoked access token"
	msgSessionCacheHit      = "identity resolved from session cache"
	msgSessionCacheMiss     = "session cache miss, resolving from repository"
	msgBannedIdentity       = "authenticated identity is banned"
	msgIdentityResolved     = "identity resolved"
	msgErrCheckingLedger    = "failed to consult revocation ledger"
	msgErrSessionCacheRead  = "failed to read session cache"
	msgErrSessionCacheWrite = "failed to populate session cache"

	errCtxCheckingRevocation = "checking token revocation"
	errCtxDecodingToken      = "decoding access token"
	errCtxResolvingIdentity  = "resolving identity"
)

// Authenticator validates a bearer token and resolves the authenticated
// identity. Validation steps run in a fixed order: revocation first, so a
// revoked token can never authenticate regardless of its signature state,
// then decode with the access scope, then identity resolution through the
// session cache with the user repository as fallback.
type Authenticator struct {
	userRepo repositories.UserRepository
	tokenSvc svc.TokenService
	ledger   cacheports.RevocationLedger
	sessions cacheports.SessionCache
	cacheTTL time.Duration
}

// NewAuthenticator creates an authenticator with explicitly injected
// collaborators.
func NewAuthenticator(
	userRepo repositories.UserRepository,
	tokenSvc svc.TokenService,
	ledger cacheports.RevocationLedger,
	sessions cacheports.SessionCache,
	cacheTTL time.Duration,
) api.Authenticator {
	if cacheTTL <= 0 {
		cacheTTL = 300 * time.Second
	}
	return &Authenticator{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		ledger:   ledger,
		sessions: sessions,
		cacheTTL: cacheTTL,
	}
}

// Authenticate resolves the presented access token into a user, or fails
// with an error wrapping ErrCouldNotValidateCredentials. A failure at any
// step discards all intermediate state.
func (a *Authenticator) Authenticate(ctx context.Context, accessToken string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))
	log.Debug(ctx, msgAuthenticating)

	if accessToken == "" {
		return nil, fmt.Errorf("%s: %w", errCtxDecodingToken, services.ErrCouldNotValidateCredentials)
	}

	revoked, err := a.ledger.IsRevoked(ctx, accessToken)
	if err != nil {
		log.Error(ctx, msgErrCheckingLedger, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingRevocation, err)
	}
	if revoked {
		log.Debug(ctx, msgRevokedTokenUse)
		return nil, fmt.Errorf("%s: %w", errCtxCheckingRevocation, services.ErrCouldNotValidateCredentials)
	}

	claims, err := a.tokenSvc.Decode(ctx, accessToken, services.ScopeAccess)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxDecodingToken, services.ErrCouldNotValidateCredentials)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%s: %w", errCtxDecodingToken, services.ErrCouldNotValidateCredentials)
	}

	user, err := a.resolveIdentity(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	if user.Banned {
		log.Debug(ctx, msgBannedIdentity, zap.String("subject", claims.Subject))
		return nil, fmt.Errorf("%s: %w", errCtxResolvingIdentity, entities.ErrUserBanned)
	}

	log.Debug(ctx, msgIdentityResolved, zap.String("subject", claims.Subject))
	return user, nil
}

// resolveIdentity looks the subject up in the session cache, falling back
// to the user repository and populating the cache on a miss. Cache errors
// are logged and treated as misses: the cache is an optimization, never a
// correctness dependency.
func (a *Authenticator) resolveIdentity(ctx context.Context, subject string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("subject", subject))

	cached, err := a.sessions.Get(ctx, subject)
	if err != nil {
		log.Warn(ctx, msgErrSessionCacheRead, zap.Error(err))
	}
	if cached != nil {
		log.Debug(ctx, msgSessionCacheHit)
		return cached, nil
	}

	log.Debug(ctx, msgSessionCacheMiss)

	user, err := a.userRepo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", errCtxResolvingIdentity, services.ErrCouldNotValidateCredentials)
		}
		return nil, fmt.Errorf("%s: %w", errCtxResolvingIdentity, err)
	}

	if err := a.sessions.Put(ctx, subject, user, a.cacheTTL); err != nil {
		log.Warn(ctx, msgErrSessionCacheWrite, zap.Error(err))
	}

	return user, nil
}
