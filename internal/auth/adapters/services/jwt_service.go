package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/services"
	svc "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/services"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

// Log and error messages for the JWT codec.
const (
	methodIssue  = "Issue"
	methodDecode = "Decode"

	msgIssuingToken   = "issuing token"
	msgTokenIssued    = "token issued successfully"
	msgDecodingToken  = "decoding token"
	msgTokenDecoded   = "token decoded successfully"
	msgTokenExpired   = "token has expired"
	msgInvalidToken   = "invalid token"
	msgScopeMismatch  = "token scope mismatch"
	msgEmptySubject   = "subject claim is empty"
	errCtxSigning     = "signing token"
	errCtxParsing     = "parsing token"
	errCtxVerifyScope = "verifying token scope"
)

// Allowed signing algorithms. Configuration supplying anything else fails
// at construction, not on a request path.
const (
	AlgorithmHS256 = "HS256"
	AlgorithmHS512 = "HS512"
)

// ErrUnsupportedAlgorithm is returned for algorithms outside the allow-list.
var ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

// Claims adapts the domain token claims to the JWT library format.
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// ServiceJWT implements the TokenService interface.
type ServiceJWT struct {
	config services.JWTConfig
	method jwt.SigningMethod
	now    func() time.Time
}

// NewJWT creates a new JWT codec. The algorithm must be HS256 or HS512.
func NewJWT(cfg services.JWTConfig) (svc.TokenService, error) {
	return newJWT(cfg, time.Now)
}

// NewJWTWithClock creates a JWT codec with an injectable clock, used by
// tests to pin the clock at expiry boundaries.
func NewJWTWithClock(cfg services.JWTConfig, now func() time.Time) (svc.TokenService, error) {
	return newJWT(cfg, now)
}

func newJWT(cfg services.JWTConfig, now func() time.Time) (*ServiceJWT, error) {
	var method jwt.SigningMethod
	switch cfg.Algorithm {
	case AlgorithmHS256:
		method = jwt.SigningMethodHS256
	case AlgorithmHS512:
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.Algorithm)
	}

	if len(cfg.SecretKey) == 0 {
		return nil, fmt.Errorf("%w: empty secret key", services.ErrGeneratingJWTToken)
	}

	if cfg.AccessTokenTTL == 0 {
		cfg.AccessTokenTTL = services.AccessTokenTTL
	}
	if cfg.RefreshTokenTTL == 0 {
		cfg.RefreshTokenTTL = services.RefreshTokenTTL
	}
	if cfg.EmailTokenTTL == 0 {
		cfg.EmailTokenTTL = services.EmailTokenTTL
	}

	return &ServiceJWT{config: cfg, method: method, now: now}, nil
}

func (s *ServiceJWT) ttlFor(scope services.TokenScope) time.Duration {
	switch scope {
	case services.ScopeRefresh:
		return s.config.RefreshTokenTTL
	case services.ScopeEmail:
		return s.config.EmailTokenTTL
	default:
		return s.config.AccessTokenTTL
	}
}

// Issue signs a token for the subject with the scope's configured lifetime.
func (s *ServiceJWT) Issue(ctx context.Context, subject string, scope services.TokenScope) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssue),
		zap.String("scope", string(scope)),
	)
	log.Debug(ctx, msgIssuingToken)

	now := s.now()
	expiresAt := now.Add(s.ttlFor(scope))

	claims := Claims{
		Scope: string(scope),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errCtxSigning, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxSigning, services.ErrGeneratingJWTToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// Decode verifies signature, expiry and scope, returning the domain claims.
// A token is rejected exactly at its expiry instant.
func (s *ServiceJWT) Decode(ctx context.Context, tokenString string, expected services.TokenScope) (*services.TokenClaims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodDecode))
	log.Debug(ctx, msgDecodingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxParsing, services.ErrExpiredJWTToken)
		}
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxParsing, services.ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return nil, fmt.Errorf("%s: %w", errCtxParsing, services.ErrInvalidJWTToken)
	}

	// The library treats exp as valid until strictly after expiry; the
	// boundary instant itself must already be rejected.
	if claims.ExpiresAt != nil && !s.now().Before(claims.ExpiresAt.Time) {
		log.Debug(ctx, msgTokenExpired)
		return nil, fmt.Errorf("%s: %w", errCtxParsing, services.ErrExpiredJWTToken)
	}

	if claims.Scope != string(expected) {
		log.Debug(ctx, msgScopeMismatch,
			zap.String("expected", string(expected)),
			zap.String("actual", claims.Scope))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyScope, services.ErrTokenScopeMismatch)
	}

	if claims.Subject == "" {
		log.Debug(ctx, msgEmptySubject)
		return nil, fmt.Errorf("%s: %w: empty subject", errCtxParsing, services.ErrInvalidJWTToken)
	}

	decoded := &services.TokenClaims{
		Subject: claims.Subject,
		Scope:   services.TokenScope(claims.Scope),
	}
	if claims.IssuedAt != nil {
		decoded.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		decoded.ExpiresAt = claims.ExpiresAt.Time
	}

	log.Debug(ctx, msgTokenDecoded, zap.String("subject", decoded.Subject))
	return decoded, nil
}
