// Package app contains the auth subsystem use cases.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/services"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/api"
	cacheports "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/cache"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/repositories"
	svc "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/services"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	methodSignup        = "Signup"
	methodLogin         = "Login"
	methodRefreshTokens = "RefreshTokens"
	methodLogout        = "Logout"
	methodConfirmEmail  = "ConfirmEmail"
	methodRequestEmail  = "RequestEmailConfirmation"
	methodForgot        = "ForgotPassword"
	methodReset         = "ResetPassword"

	msgStartSignup          = "starting user registration"
	msgEmailExists          = "account with this email already exists"
	msgUserRegistered       = "user registered successfully"
	msgLoginAttempt         = "login attempt"
	msgLoginNonExistent     = "login attempt with non-existent email"
	msgLoginUnconfirmed     = "login attempt with unconfirmed email"
	msgLoginBanned          = "login attempt on banned account"
	msgInvalidPasswordAuth  = "invalid password provided"
	msgUserLoggedIn         = "user logged in successfully"
	msgRefreshingTokens     = "refreshing tokens"
	msgSupersededToken      = "presented refresh token does not match the on-file token"
	msgTokensRefreshed      = "tokens refreshed successfully"
	msgProcessingLogout     = "processing logout request"
	msgUserLoggedOut        = "user logged out successfully"
	msgEmailConfirmed       = "email confirmed"
	msgEmailAlreadyDone     = "email is already confirmed"
	msgResetRequested       = "password reset requested"
	msgStaleResetToken      = "presented reset token does not match the stored token"
	msgPasswordReset        = "password reset successfully"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrVerifyingPassword = "error verifying password"
	msgErrSendingEmail      = "failed to send email"

	errCtxValidatingEmail     = "validating email"
	errCtxValidatingUsername  = "validating username"
	errCtxValidatingPassword  = "validating password"
	errCtxHashingPassword     = "hashing password"
	errCtxCreatingUser        = "creating user"
	errCtxInvalidCredentials  = "invalid credentials"
	errCtxFindingUser         = "finding user"
	errCtxVerifyingPassword   = "verifying password"
	errCtxGeneratingTokens    = "generating tokens"
	errCtxDecodingRefresh     = "decoding refresh token"
	errCtxSupersededToken     = "refresh token superseded"
	errCtxClearingToken       = "clearing refresh token"
	errCtxRevokingAccessToken = "revoking access token"
	errCtxDecodingEmailToken  = "decoding email token"
	errCtxConfirmingEmail     = "confirming email"
	errCtxStoringResetToken   = "storing reset token"
	errCtxVerifyingResetToken = "verifying reset token"
	errCtxUpdatingPassword    = "updating password"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthUseCaseImpl implements api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	ledger      cacheports.RevocationLedger
	sessions    cacheports.SessionCache
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	emailSvc    svc.EmailService
}

// NewAuthUseCase creates the authentication use case.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	ledger cacheports.RevocationLedger,
	sessions cacheports.SessionCache,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	emailSvc svc.EmailService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		ledger:      ledger,
		sessions:    sessions,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		emailSvc:    emailSvc,
	}
}

// Signup registers a new account and sends a confirmation email. The
// account stays unconfirmed until the emailed token is presented.
func (a *AuthUseCaseImpl) Signup(ctx context.Context, username, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignup), zap.String("email", email))
	log.Debug(ctx, msgStartSignup)

	if err := validateEmail(email); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	if username == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUsername, entities.ErrEmptyUsername)
	}
	if len(password) < services.MinPasswordLength {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrPasswordTooShort)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entities.RoleUser,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, entities.ErrAccountExists) {
			log.Debug(ctx, msgEmailExists)
			return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, entities.ErrAccountExists)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("userID", createdUser.ID))

	token, _, err := a.tokenSvc.Issue(ctx, createdUser.Email, services.ScopeEmail)
	if err != nil {
		log.Error(ctx, msgErrSendingEmail, zap.Error(err))
		return createdUser, nil
	}
	if err := a.emailSvc.SendConfirmation(ctx, createdUser.Email, createdUser.Username, token); err != nil {
		log.Error(ctx, msgErrSendingEmail, zap.Error(err))
	}

	return createdUser, nil
}

// Login authenticates by email and password, rejecting unconfirmed and
// banned accounts, and issues a fresh token pair.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if !user.Confirmed {
		log.Debug(ctx, msgLoginUnconfirmed)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrEmailNotConfirmed)
	}
	if user.Banned {
		log.Debug(ctx, msgLoginBanned)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrUserBanned)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	tokenPair, err := a.generateTokenPair(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("userID", user.ID))
	return tokenPair, nil
}

// RefreshTokens exchanges a refresh token for a new pair. The presented
// token must equal the user's single on-file refresh token; on mismatch
// the slot is cleared, forcing a fresh login, since a mismatch means the
// token was superseded or stolen.
func (a *AuthUseCaseImpl) RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRefreshTokens))
	log.Debug(ctx, msgRefreshingTokens)

	claims, err := a.tokenSvc.Decode(ctx, refreshToken, services.ScopeRefresh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxDecodingRefresh, services.ErrCouldNotValidateCredentials)
	}

	user, err := a.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", errCtxFindingUser, services.ErrCouldNotValidateCredentials)
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if user.RefreshToken != refreshToken {
		log.Debug(ctx, msgSupersededToken, zap.Int64("userID", user.ID))
		if err := a.userRepo.UpdateRefreshToken(ctx, user.Email, ""); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxClearingToken, err)
		}
		return nil, fmt.Errorf("%s: %w", errCtxSupersededToken, services.ErrInvalidRefreshToken)
	}

	tokenPair, err := a.generateTokenPair(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	log.Info(ctx, msgTokensRefreshed, zap.Int64("userID", user.ID))
	return tokenPair, nil
}

// Logout records the presented access token in the revocation ledger for
// its remaining natural lifetime. The refresh token stays on file; it is
// superseded on the next login.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, accessToken string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))
	log.Debug(ctx, msgProcessingLogout)

	claims, err := a.tokenSvc.Decode(ctx, accessToken, services.ScopeAccess)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxRevokingAccessToken, services.ErrCouldNotValidateCredentials)
	}

	if err := a.ledger.Revoke(ctx, accessToken, time.Until(claims.ExpiresAt)); err != nil {
		return fmt.Errorf("%s: %w", errCtxRevokingAccessToken, err)
	}

	log.Info(ctx, msgUserLoggedOut, zap.String("subject", claims.Subject))
	return nil
}

// ConfirmEmail marks the token's subject as confirmed. Reports whether the
// account was already confirmed.
func (a *AuthUseCaseImpl) ConfirmEmail(ctx context.Context, token string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", methodConfirmEmail))

	revoked, err := a.ledger.IsRevoked(ctx, token)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtxDecodingEmailToken, err)
	}
	if revoked {
		return false, fmt.Errorf("%s: %w", errCtxDecodingEmailToken, services.ErrCouldNotValidateCredentials)
	}

	claims, err := a.tokenSvc.Decode(ctx, token, services.ScopeEmail)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtxDecodingEmailToken, services.ErrCouldNotValidateCredentials)
	}

	user, err := a.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	if user.Confirmed {
		log.Debug(ctx, msgEmailAlreadyDone)
		return true, nil
	}

	if err := a.userRepo.ConfirmEmail(ctx, claims.Subject); err != nil {
		return false, fmt.Errorf("%s: %w", errCtxConfirmingEmail, err)
	}

	if err := a.sessions.Invalidate(ctx, claims.Subject); err != nil {
		log.Warn(ctx, msgErrSessionCacheWrite, zap.Error(err))
	}

	log.Info(ctx, msgEmailConfirmed, zap.String("subject", claims.Subject))
	return false, nil
}

// RequestEmailConfirmation re-sends the confirmation email for an
// unconfirmed account. Reports whether the account was already confirmed.
func (a *AuthUseCaseImpl) RequestEmailConfirmation(ctx context.Context, email string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRequestEmail), zap.String("email", email))

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	if user.Confirmed {
		return true, nil
	}

	token, _, err := a.tokenSvc.Issue(ctx, user.Email, services.ScopeEmail)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}
	if err := a.emailSvc.SendConfirmation(ctx, user.Email, user.Username, token); err != nil {
		log.Error(ctx, msgErrSendingEmail, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	return false, nil
}

// ForgotPassword issues an email-scope reset token, stores it on the user
// record and mails it. Issuing a new token supersedes any previous one.
func (a *AuthUseCaseImpl) ForgotPassword(ctx context.Context, email string) error {
	log := logger.Log(ctx).With(zap.String("method", methodForgot), zap.String("email", email))

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	token, _, err := a.tokenSvc.Issue(ctx, user.Email, services.ScopeEmail)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	if err := a.userRepo.UpdateResetToken(ctx, user.Email, token); err != nil {
		return fmt.Errorf("%s: %w", errCtxStoringResetToken, err)
	}

	if err := a.emailSvc.SendPasswordReset(ctx, user.Email, user.Username, token); err != nil {
		log.Error(ctx, msgErrSendingEmail, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxStoringResetToken, err)
	}

	log.Info(ctx, msgResetRequested)
	return nil
}

// ResetPassword verifies the reset token twice: signature and expiry via
// the codec, then equality against the token stored on the user record.
// The second factor rejects still-valid tokens that were superseded by a
// newer reset request.
func (a *AuthUseCaseImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := logger.Log(ctx).With(zap.String("method", methodReset))

	claims, err := a.tokenSvc.Decode(ctx, token, services.ScopeEmail)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxDecodingEmailToken, services.ErrCouldNotValidateCredentials)
	}

	user, err := a.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if user.ResetToken == "" || user.ResetToken != token {
		log.Debug(ctx, msgStaleResetToken, zap.Int64("userID", user.ID))
		return fmt.Errorf("%s: %w", errCtxVerifyingResetToken, services.ErrInvalidResetToken)
	}

	if len(newPassword) < services.MinPasswordLength {
		return fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrPasswordTooShort)
	}

	hashed, err := a.passwordSvc.Hash(ctx, newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	if err := a.userRepo.UpdatePassword(ctx, user.Email, hashed); err != nil {
		return fmt.Errorf("%s: %w", errCtxUpdatingPassword, err)
	}

	if err := a.userRepo.UpdateResetToken(ctx, user.Email, ""); err != nil {
		return fmt.Errorf("%s: %w", errCtxStoringResetToken, err)
	}

	if err := a.sessions.Invalidate(ctx, user.Email); err != nil {
		log.Warn(ctx, msgErrSessionCacheWrite, zap.Error(err))
	}

	log.Info(ctx, msgPasswordReset, zap.Int64("userID", user.ID))
	return nil
}

// generateTokenPair issues a fresh access and refresh token and persists
// the refresh token as the user's sole on-file token. Two concurrent calls
// for the same user race benignly: the second write wins and the first
// pair's refresh token fails the equality check on use.
func (a *AuthUseCaseImpl) generateTokenPair(ctx context.Context, email string) (*services.TokenPair, error) {
	accessToken, accessExpires, err := a.tokenSvc.Issue(ctx, email, services.ScopeAccess)
	if err != nil {
		return nil, fmt.Errorf("issuing access token: %w", services.ErrTokenGenerationFailed)
	}

	refreshToken, _, err := a.tokenSvc.Issue(ctx, email, services.ScopeRefresh)
	if err != nil {
		return nil, fmt.Errorf("issuing refresh token: %w", services.ErrTokenGenerationFailed)
	}

	if err := a.userRepo.UpdateRefreshToken(ctx, email, refreshToken); err != nil {
		return nil, fmt.Errorf("storing refresh token: %w", err)
	}

	return &services.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresAt:    accessExpires,
	}, nil
}

func validateEmail(email string) error {
	if email == "" || !emailRegex.MatchString(email) {
		return entities.ErrInvalidEmail
	}
	return nil
}
