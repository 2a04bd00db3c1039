// Package services provides the concrete password, token and email services
// of the auth subsystem.
package services

import (
	"fmt"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/services"
	svc "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/services"
)

// ServiceFactory builds all services required for authentication.
type ServiceFactory struct {
	passwordService svc.PasswordService
	tokenService    svc.TokenService
	emailService    svc.EmailService
}

// NewServiceFactory creates the service factory. It fails fast when the
// JWT configuration carries an unsupported algorithm.
func NewServiceFactory(jwtCfg services.JWTConfig, bcryptCost int) (*ServiceFactory, error) {
	tokenService, err := NewJWT(jwtCfg)
	if err != nil {
		return nil, fmt.Errorf("creating token service: %w", err)
	}

	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    tokenService,
		emailService:    NewLogEmailService(),
	}, nil
}

// PasswordService returns the password service.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return f.passwordService
}

// TokenService returns the token service.
func (f *ServiceFactory) TokenService() svc.TokenService {
	return f.tokenService
}

// EmailService returns the email service.
func (f *ServiceFactory) EmailService() svc.EmailService {
	return f.emailService
}
