// Package cache defines the caching interfaces of the auth subsystem.
package cache

import (
	"context"
	"time"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
)

// SessionCache maps an authenticated subject to its resolved user snapshot
// with a bounded TTL. It is a pure optimization over the user repository:
// Get returns (nil, nil) on a miss and a no-op implementation must keep
// authorization outcomes correct.
type SessionCache interface {
	Get(ctx context.Context, subject string) (*entities.User, error)

	Put(ctx context.Context, subject string, user *entities.User, ttl time.Duration) error

	Invalidate(ctx context.Context, subject string) error
}
