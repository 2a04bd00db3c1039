package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/services"
)

const testAccessToken = "header.payload.signature"

func accessClaims(subject string) *services.TokenClaims {
	now := time.Now()
	return &services.TokenClaims{
		Subject:   subject,
		Scope:     services.ScopeAccess,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func activeUser() *entities.User {
	return &entities.User{
		ID:        1,
		Username:  "alice",
		Email:     "alice@example.com",
		Role:      entities.RoleUser,
		Confirmed: true,
	}
}

func TestAuthenticateEmptyToken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	ledger := new(MockRevocationLedger)
	sessions := new(MockSessionCache)

	auth := NewAuthenticator(repo, tokens, ledger, sessions, 0)

	user, err := auth.Authenticate(ctx, "")
	require.ErrorIs(t, err, services.ErrCouldNotValidateCredentials)
	assert.Nil(t, user)

	ledger.AssertNotCalled(t, "IsRevoked", mock.Anything, mock.Anything)
	tokens.AssertNotCalled(t, "Decode", mock.Anything, mock.Anything, mock.Anything)
}

// A revoked token is rejected before decoding: the ledger answers first,
// so even a perfectly valid signature never reaches the codec.
func TestAuthenticateRevokedTokenCheckedFirst(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	ledger := new(MockRevocationLedger)
	sessions := new(MockSessionCache)

	ledger.On("IsRevoked", mock.Anything, testAccessToken).Return(true, nil)

	auth := NewAuthenticator(repo, tokens, ledger, sessions, 0)

	user, err := auth.Authenticate(ctx, testAccessToken)
	require.ErrorIs(t, err, services.ErrCouldNotValidateCredentials)
	assert.Nil(t, user)

	tokens.AssertNotCalled(t, "Decode", mock.Anything, mock.Anything, mock.Anything)
	sessions.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	ledger.AssertExpectations(t)
}

func TestAuthenticateLedgerErrorPropagates(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	ledger := new(MockRevocationLedger)
	sessions := new(MockSessionCache)

	ledgerErr := errors.New("redis: connection refused")
	ledger.On("IsRevoked", mock.Anything, testAccessToken).Return(false, ledgerErr)

	auth := NewAuthenticator(repo, tokens, ledger, sessions, 0)

	_, err := auth.Authenticate(ctx, testAccessToken)
	require.ErrorIs(t, err, ledgerErr)
	assert.NotErrorIs(t, err, services.ErrCouldNotValidateCredentials)
}

func TestAuthenticateDecodeFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	ledger := new(MockRevocationLedger)
	sessions := new(MockSessionCache)

	ledger.On("IsRevoked", mock.Anything, testAccessToken).Return(false, nil)
	tokens.On("Decode", mock.Anything, testAccessToken, services.ScopeAccess).
		Return(nil, services.ErrInvalidJWTToken)

	auth := NewAuthenticator(repo, tokens, ledger, sessions, 0)

	_, err := auth.Authenticate(ctx, testAccessToken)
	require.ErrorIs(t, err, services.ErrCouldNotValidateCredentials)

	sessions.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAuthenticateSessionCacheHitSkipsRepository(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	ledger := new(MockRevocationLedger)
	sessions := new(MockSessionCache)

	cached := activeUser()
	ledger.On("IsRevoked", mock.Anything, testAccessToken).Return(false, nil)
	tokens.On("Decode", mock.Anything, testAccessToken, services.ScopeAccess).
		Return(accessClaims(cached.Email), nil)
	sessions.On("Get", mock.Anything, cached.Email).Return(cached, nil)

	auth := NewAuthenticator(repo, tokens, ledger, sessions, 0)

	user, err := auth.Authenticate(ctx, testAccessToken)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, cached.Email, user.Email)

	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	sessions.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticateSessionCacheMissFallsBackAndPopulates(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	ledger := new(MockRevocationLedger)
	sessions := new(MockSessionCache)

	stored := activeUser()
	ledger.On("IsRevoked", mock.Anything, testAccessToken).Return(false, nil)
	tokens.On("Decode", mock.Anything, testAccessToken, services.ScopeAccess).
		Return(accessClaims(stored.Email), nil)
	sessions.On("Get", mock.Anything, stored.Email).Return(nil, nil)
	repo.On("FindByEmail", mock.Anything, stored.Email).Return(stored, nil)
	sessions.On("Put", mock.Anything, stored.Email, stored, 300*time.Second).Return(nil)

	auth := NewAuthenticator(repo, tokens, ledger, sessions, 0)

	user, err := auth.Authenticate(ctx, testAccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)

	sessions.AssertExpectations(t)
	repo.AssertExpectations(t)
}

// Cache failures on read or write degrade to repository lookups, so a
// broken cache behaves like an absent one.
func TestAuthenticateCacheErrorsTreatedAsMiss(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	ledger := new(MockRevocationLedger)
	sessions := new(MockSessionCache)

	stored := activeUser()
	cacheErr := errors.New("redis: connection refused")
	ledger.On("IsRevoked", mock.Anything, testAccessToken).Return(false, nil)
	tokens.On("Decode", mock.Anything, testAccessToken, services.ScopeAccess).
		Return(accessClaims(stored.Email), nil)
	sessions.On("Get", mock.Anything, stored.Email).Return(nil, cacheErr)
	repo.On("FindByEmail", mock.Anything, stored.Email).Return(stored, nil)
	sessions.On("Put", mock.Anything, stored.Email, stored, mock.Anything).Return(cacheErr)

	auth := NewAuthenticator(repo, tokens, ledger, sessions, 0)

	user, err := auth.Authenticate(ctx, testAccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.Email, user.Email)
}

func TestAuthenticateUnknownSubject(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	ledger := new(MockRevocationLedger)
	sessions := new(MockSessionCache)

	ledger.On("IsRevoked", mock.Anything, testAccessToken).Return(false, nil)
	tokens.On("Decode", mock.Anything, testAccessToken, services.ScopeAccess).
		Return(accessClaims("ghost@example.com"), nil)
	sessions.On("Get", mock.Anything, "ghost@example.com").Return(nil, nil)
	repo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, entities.ErrUserNotFound)

	auth := NewAuthenticator(repo, tokens, ledger, sessions, 0)

	_, err := auth.Authenticate(ctx, testAccessToken)
	require.ErrorIs(t, err, services.ErrCouldNotValidateCredentials)
}

func TestAuthenticateRepositoryErrorPropagates(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	ledger := new(MockRevocationLedger)
	sessions := new(MockSessionCache)

	repoErr := errors.New("pgx: connection closed")
	ledger.On("IsRevoked", mock.Anything, testAccessToken).Return(false, nil)
	tokens.On("Decode", mock.Anything, testAccessToken, services.ScopeAccess).
		Return(accessClaims("alice@example.com"), nil)
	sessions.On("Get", mock.Anything, "alice@example.com").Return(nil, nil)
	repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, repoErr)

	auth := NewAuthenticator(repo, tokens, ledger, sessions, 0)

	_, err := auth.Authenticate(ctx, testAccessToken)
	require.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, services.ErrCouldNotValidateCredentials)
}

func TestAuthenticateBannedUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	ledger := new(MockRevocationLedger)
	sessions := new(MockSessionCache)

	banned := activeUser()
	banned.Banned = true

	ledger.On("IsRevoked", mock.Anything, testAccessToken).Return(false, nil)
	tokens.On("Decode", mock.Anything, testAccessToken, services.ScopeAccess).
		Return(accessClaims(banned.Email), nil)
	sessions.On("Get", mock.Anything, banned.Email).Return(banned, nil)

	auth := NewAuthenticator(repo, tokens, ledger, sessions, 0)

	user, err := auth.Authenticate(ctx, testAccessToken)
	require.ErrorIs(t, err, entities.ErrUserBanned)
	assert.Nil(t, user)
}

func TestAuthenticateEmptySubjectClaims(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	ledger := new(MockRevocationLedger)
	sessions := new(MockSessionCache)

	ledger.On("IsRevoked", mock.Anything, testAccessToken).Return(false, nil)
	tokens.On("Decode", mock.Anything, testAccessToken, services.ScopeAccess).
		Return(accessClaims(""), nil)

	auth := NewAuthenticator(repo, tokens, ledger, sessions, 0)

	_, err := auth.Authenticate(ctx, testAccessToken)
	require.ErrorIs(t, err, services.ErrCouldNotValidateCredentials)
	sessions.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
