// Package dto contains the HTTP request and response shapes.
package dto

import "time"

// SignupRequest is the registration payload.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPairResponse carries a freshly issued token pair.
type TokenPairResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// EmailRequest carries a bare email address.
type EmailRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the password reset payload.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// MessageResponse is a generic informational response.
type MessageResponse struct {
	Message string `json:"message"`
}
