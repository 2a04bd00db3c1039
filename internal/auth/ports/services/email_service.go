package services

import "context"

// EmailService delivers account emails. Outbound mail is an external
// collaborator; the service only receives the already-issued tokens.
type EmailService interface {
	SendConfirmation(ctx context.Context, email, username, token string) error

	SendPasswordReset(ctx context.Context, email, username, token string) error
}
