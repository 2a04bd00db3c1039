package services

import (
	"context"

	"go.uber.org/zap"

	svc "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/services"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

// Log messages for outbound email.
const (
	msgSendingConfirmation  = "sending confirmation email"
	msgSendingPasswordReset = "sending password reset email"
)

// LogEmailService is a stand-in EmailService that records deliveries in the
// log. Real delivery belongs to an external mail provider.
type LogEmailService struct{}

// NewLogEmailService creates a logging email service.
func NewLogEmailService() svc.EmailService {
	return &LogEmailService{}
}

// SendConfirmation logs the confirmation token for the address.
func (s *LogEmailService) SendConfirmation(ctx context.Context, email, username, token string) error {
	logger.Log(ctx).Info(ctx, msgSendingConfirmation,
		zap.String("email", email),
		zap.String("username", username),
		zap.Int("token_length", len(token)))
	return nil
}

// SendPasswordReset logs the reset token for the address.
func (s *LogEmailService) SendPasswordReset(ctx context.Context, email, username, token string) error {
	logger.Log(ctx).Info(ctx, msgSendingPasswordReset,
		zap.String("email", email),
		zap.String("username", username),
		zap.Int("token_length", len(token)))
	return nil
}
