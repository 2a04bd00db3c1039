// Package redis implements the session cache and revocation ledger on Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	cacheports "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/cache"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

// Log and error messages for the session cache.
const (
	logMethodGet        = "Get"
	logMethodPut        = "Put"
	logMethodInvalidate = "Invalidate"

	errFailedToGetSession   = "failed to get session from redis"
	errFailedToPutSession   = "failed to store session in redis"
	errFailedToDropSession  = "failed to invalidate session in redis"
	errFailedToMarshalUser  = "failed to marshal user snapshot"
	errFailedToDecodeCached = "failed to decode cached user snapshot"
)

// DefaultSessionTTL bounds the staleness window of cached identities.
const DefaultSessionTTL = 300 * time.Second

const sessionKeyPrefix = "session:"

// SessionCache implements ports/cache.SessionCache on Redis, storing user
// snapshots as JSON keyed by subject.
type SessionCache struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewSessionCache creates a Redis-backed session cache.
func NewSessionCache(client *redis.Client, defaultTTL time.Duration) cacheports.SessionCache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultSessionTTL
	}
	return &SessionCache{client: client, defaultTTL: defaultTTL}
}

// Get returns the cached snapshot for the subject, or (nil, nil) when the
// entry is absent or past its TTL.
func (c *SessionCache) Get(ctx context.Context, subject string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", logMethodGet), zap.String("subject", subject))

	payload, err := c.client.Get(ctx, sessionKeyPrefix+subject).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		log.Error(ctx, errFailedToGetSession, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedToGetSession, err)
	}

	var user entities.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		log.Error(ctx, errFailedToDecodeCached, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedToDecodeCached, err)
	}

	return &user, nil
}

// Put stores or overwrites the snapshot for the subject with the TTL.
func (c *SessionCache) Put(ctx context.Context, subject string, user *entities.User, ttl time.Duration) error {
	log := logger.Log(ctx).With(zap.String("method", logMethodPut), zap.String("subject", subject))

	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	payload, err := json.Marshal(user)
	if err != nil {
		log.Error(ctx, errFailedToMarshalUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errFailedToMarshalUser, err)
	}

	if err := c.client.Set(ctx, sessionKeyPrefix+subject, payload, ttl).Err(); err != nil {
		log.Error(ctx, errFailedToPutSession, zap.Error(err))
		return fmt.Errorf("%s: %w", errFailedToPutSession, err)
	}

	return nil
}

// Invalidate removes the subject's snapshot, if present.
func (c *SessionCache) Invalidate(ctx context.Context, subject string) error {
	log := logger.Log(ctx).With(zap.String("method", logMethodInvalidate), zap.String("subject", subject))

	if err := c.client.Del(ctx, sessionKeyPrefix+subject).Err(); err != nil {
		log.Error(ctx, errFailedToDropSession, zap.Error(err))
		return fmt.Errorf("%s: %w", errFailedToDropSession, err)
	}

	return nil
}
