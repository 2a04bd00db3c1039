package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return server, client
}

func TestRevocationLedgerRevokeAndCheck(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	ledger := NewRevocationLedger(client)

	revoked, err := ledger.IsRevoked(ctx, "some-token")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, ledger.Revoke(ctx, "some-token", time.Hour))

	revoked, err = ledger.IsRevoked(ctx, "some-token")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = ledger.IsRevoked(ctx, "another-token")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationLedgerRevokeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	ledger := NewRevocationLedger(client)

	require.NoError(t, ledger.Revoke(ctx, "some-token", time.Hour))
	require.NoError(t, ledger.Revoke(ctx, "some-token", time.Hour))

	revoked, err := ledger.IsRevoked(ctx, "some-token")
	require.NoError(t, err)
	assert.True(t, revoked)
}

// A second ledger over the same store sees revocations immediately; the
// ledger is shared state, not process-local.
func TestRevocationLedgerVisibleAcrossInstances(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedis(t)

	first := NewRevocationLedger(client)
	require.NoError(t, first.Revoke(ctx, "some-token", time.Hour))

	otherClient := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = otherClient.Close()
	})

	second := NewRevocationLedger(otherClient)
	revoked, err := second.IsRevoked(ctx, "some-token")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevocationLedgerEntriesExpire(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedis(t)
	ledger := NewRevocationLedger(client)

	require.NoError(t, ledger.Revoke(ctx, "some-token", 2*time.Minute))

	server.FastForward(time.Minute)
	revoked, err := ledger.IsRevoked(ctx, "some-token")
	require.NoError(t, err)
	assert.True(t, revoked)

	server.FastForward(2 * time.Minute)
	revoked, err = ledger.IsRevoked(ctx, "some-token")
	require.NoError(t, err)
	assert.False(t, revoked)
}

// TTLs below the floor are raised to it so a revocation of a nearly
// expired token still covers in-flight requests.
func TestRevocationLedgerMinimumTTL(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedis(t)
	ledger := NewRevocationLedger(client)

	require.NoError(t, ledger.Revoke(ctx, "some-token", time.Second))

	server.FastForward(30 * time.Second)
	revoked, err := ledger.IsRevoked(ctx, "some-token")
	require.NoError(t, err)
	assert.True(t, revoked)
}
