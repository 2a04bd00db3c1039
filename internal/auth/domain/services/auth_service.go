package services

import (
	"errors"
	"time"
)

// Authentication domain errors. Everything that must surface as a generic
// 401 wraps ErrCouldNotValidateCredentials so handlers never leak which
// check failed.
var (
	ErrCouldNotValidateCredentials = errors.New("could not validate credentials")
	ErrInvalidCredentials          = errors.New("invalid email or password")
	ErrEmailNotConfirmed           = errors.New("email not confirmed")
	ErrInvalidRefreshToken         = errors.New("invalid refresh token")
	ErrInvalidResetToken           = errors.New("invalid or expired reset token")
	ErrTokenGenerationFailed       = errors.New("failed to generate authentication tokens")
)

// TokenPair is the access/refresh token pair returned on login, signup and
// refresh. ExpiresAt refers to the access token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresAt    time.Time
}
