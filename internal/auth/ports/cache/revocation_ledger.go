package cache

import (
	"context"
	"time"
)

// RevocationLedger is the durable record of tokens invalidated before their
// natural expiry. A revocation must be visible to every subsequent
// IsRevoked call from any instance bound to the same backing store.
type RevocationLedger interface {
	// Revoke idempotently records the token as invalid. The TTL is the
	// token's remaining lifetime so the store self-prunes once the
	// token would have expired anyway.
	Revoke(ctx context.Context, token string, ttl time.Duration) error

	IsRevoked(ctx context.Context, token string) (bool, error)
}
