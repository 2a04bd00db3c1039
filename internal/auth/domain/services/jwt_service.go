package services

import (
	"errors"
	"time"
)

// JWT token errors. They stay distinguishable for logging and tests while
// the HTTP layer collapses all of them into the generic credentials error.
var (
	ErrInvalidJWTToken    = errors.New("invalid JWT token")
	ErrExpiredJWTToken    = errors.New("JWT token has expired")
	ErrTokenScopeMismatch = errors.New("invalid scope for token")
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// TokenScope declares the purpose a token was issued for. A token is only
// accepted by the operation whose scope matches.
type TokenScope string

// Supported token scopes.
const (
	ScopeAccess  TokenScope = "access_token"
	ScopeRefresh TokenScope = "refresh_token"
	ScopeEmail   TokenScope = "email_token"
)

// Default token lifetimes.
const (
	AccessTokenTTL  = 60 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
	EmailTokenTTL   = 24 * time.Hour
)

// JWTConfig holds the signing settings of the token codec. Algorithm must
// be one of HS256 or HS512; anything else is rejected at startup.
type JWTConfig struct {
	SecretKey       []byte
	Algorithm       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	EmailTokenTTL   time.Duration
}

// TokenClaims is the domain view of a decoded token.
type TokenClaims struct {
	Subject   string
	Scope     TokenScope
	IssuedAt  time.Time
	ExpiresAt time.Time
}
