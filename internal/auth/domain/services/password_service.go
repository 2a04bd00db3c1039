package services

import (
	"errors"
)

// Password errors.
var (
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrInvalidPassword = errors.New("invalid password")
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 6
