package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	cacheports "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/cache"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

// Log and error messages for the revocation ledger.
const (
	logMethodRevoke    = "Revoke"
	logMethodIsRevoked = "IsRevoked"

	msgTokenRevoked = "token recorded in revocation ledger"

	errFailedToRevoke     = "failed to record revoked token"
	errFailedToCheckToken = "failed to check token revocation"
)

const revokedKeyPrefix = "blacklist:"

// minRevocationTTL keeps an entry around briefly even for tokens already at
// the edge of their lifetime, so in-flight requests still see the revocation.
const minRevocationTTL = time.Minute

// RevocationLedger implements ports/cache.RevocationLedger on Redis. Every
// entry carries the token's remaining lifetime as TTL, so the ledger prunes
// itself once the token would have expired anyway.
type RevocationLedger struct {
	client *redis.Client
}

// NewRevocationLedger creates a Redis-backed revocation ledger.
func NewRevocationLedger(client *redis.Client) cacheports.RevocationLedger {
	return &RevocationLedger{client: client}
}

// Revoke idempotently records the token as invalid for the given TTL. The
// write must succeed: logout is not allowed to silently appear successful.
func (l *RevocationLedger) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	log := logger.Log(ctx).With(zap.String("method", logMethodRevoke))

	if ttl < minRevocationTTL {
		ttl = minRevocationTTL
	}

	if err := l.client.Set(ctx, revokedKeyPrefix+token, "1", ttl).Err(); err != nil {
		log.Error(ctx, errFailedToRevoke, zap.Error(err))
		return fmt.Errorf("%s: %w", errFailedToRevoke, err)
	}

	log.Debug(ctx, msgTokenRevoked, zap.Duration("ttl", ttl))
	return nil
}

// IsRevoked reports whether the token was previously revoked.
func (l *RevocationLedger) IsRevoked(ctx context.Context, token string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", logMethodIsRevoked))

	count, err := l.client.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		log.Error(ctx, errFailedToCheckToken, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errFailedToCheckToken, err)
	}

	return count > 0, nil
}
