package entities

import (
	"errors"
	"time"
)

// User domain errors.
var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrPasswordTooShort = errors.New("password must contain at least 6 characters")
	ErrUserNotFound     = errors.New("user not found")
	ErrAccountExists    = errors.New("account already exists")
	ErrUserBanned       = errors.New("account is banned")
	ErrUnknownRole      = errors.New("unknown role")
)

// Role is the flat access level of a user. There is no hierarchy between
// roles: every operation declares its own allowed set.
type Role string

// Supported roles.
const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User is the main user domain entity. Email doubles as the token subject.
// RefreshToken is the single on-file refresh token: issuing a new one
// supersedes the previous one by overwrite. ResetToken holds the latest
// password-reset token for the stored-token equality check.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	Role         Role      `json:"role"`
	Confirmed    bool      `json:"confirmed"`
	Banned       bool      `json:"banned"`
	RefreshToken string    `json:"-"`
	ResetToken   string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
