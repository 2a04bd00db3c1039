package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
)

func testUser() *entities.User {
	return &entities.User{
		ID:        1,
		Username:  "alice",
		Email:     "alice@example.com",
		Role:      entities.RoleUser,
		Confirmed: true,
	}
}

func TestSessionCachePutAndGet(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	cache := NewSessionCache(client, DefaultSessionTTL)

	cached, err := cache.Get(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Nil(t, cached)

	require.NoError(t, cache.Put(ctx, "alice@example.com", testUser(), 0))

	cached, err = cache.Get(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, int64(1), cached.ID)
	assert.Equal(t, "alice", cached.Username)
	assert.Equal(t, entities.RoleUser, cached.Role)
	assert.True(t, cached.Confirmed)
}

// Secrets never enter the snapshot: the JSON tags exclude the password
// hash and token slots, so a cache hit cannot resurrect them.
func TestSessionCacheSnapshotExcludesSecrets(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	cache := NewSessionCache(client, DefaultSessionTTL)

	user := testUser()
	user.PasswordHash = "bcrypt-hash"
	user.RefreshToken = "refresh-token"
	user.ResetToken = "reset-token"

	require.NoError(t, cache.Put(ctx, user.Email, user, 0))

	cached, err := cache.Get(ctx, user.Email)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Empty(t, cached.PasswordHash)
	assert.Empty(t, cached.RefreshToken)
	assert.Empty(t, cached.ResetToken)
}

func TestSessionCacheEntryExpires(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedis(t)
	cache := NewSessionCache(client, DefaultSessionTTL)

	require.NoError(t, cache.Put(ctx, "alice@example.com", testUser(), 300*time.Second))

	server.FastForward(299 * time.Second)
	cached, err := cache.Get(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotNil(t, cached)

	server.FastForward(2 * time.Second)
	cached, err = cache.Get(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestSessionCachePutOverwrites(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	cache := NewSessionCache(client, DefaultSessionTTL)

	user := testUser()
	require.NoError(t, cache.Put(ctx, user.Email, user, 0))

	user.Role = entities.RoleModerator
	require.NoError(t, cache.Put(ctx, user.Email, user, 0))

	cached, err := cache.Get(ctx, user.Email)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, entities.RoleModerator, cached.Role)
}

func TestSessionCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	cache := NewSessionCache(client, DefaultSessionTTL)

	require.NoError(t, cache.Put(ctx, "alice@example.com", testUser(), 0))
	require.NoError(t, cache.Invalidate(ctx, "alice@example.com"))

	cached, err := cache.Get(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Nil(t, cached)

	// Invalidating an absent entry is not an error.
	require.NoError(t, cache.Invalidate(ctx, "nobody@example.com"))
}
