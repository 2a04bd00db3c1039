package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/api"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi/dto"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi/middleware"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	logHandlerSignup       = "auth handler: signup"
	logHandlerLogin        = "auth handler: login"
	logHandlerRefresh      = "auth handler: refresh tokens" // #nosec G101 - not a credential
	logHandlerLogout       = "auth handler: logout"
	logHandlerConfirmEmail = "auth handler: confirm email"
	logHandlerRequestEmail = "auth handler: request email confirmation"
	logHandlerForgot       = "auth handler: forgot password"
	logHandlerReset        = "auth handler: reset password"

	errInvalidRequest = "invalid request"
)

// AuthHandler serves the registration, login and token lifecycle routes.
type AuthHandler struct {
	authUseCase api.AuthUseCase
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(authUseCase api.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerSignup)

	var req dto.SignupRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, errInvalidRequest, zap.Error(err))
		return badRequest(ctx, errInvalidRequest)
	}

	if req.Email == "" || req.Username == "" || req.Password == "" {
		return badRequest(ctx, "email, username and password are required")
	}

	user, err := h.authUseCase.Signup(requestCtx, req.Username, req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.NewUserResponse(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, errInvalidRequest, zap.Error(err))
		return badRequest(ctx, errInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return badRequest(ctx, "email and password are required")
	}

	pair, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresAt:    pair.ExpiresAt,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// RefreshTokens handles GET /auth/refresh_token. The refresh token is
// presented as the bearer credential.
func (h *AuthHandler) RefreshTokens(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerRefresh)

	token := bearerToken(ctx)
	if token == "" {
		return badRequest(ctx, "refresh token is required")
	}

	pair, err := h.authUseCase.RefreshTokens(requestCtx, token)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresAt:    pair.ExpiresAt,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Logout handles POST /auth/logout. Runs behind the auth middleware, so
// the access token in Locals has already been validated.
func (h *AuthHandler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerLogout)

	token, ok := middleware.TokenFromCtx(ctx)
	if !ok {
		return unauthorizedResponse(ctx)
	}

	if err := h.authUseCase.Logout(requestCtx, token); err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: "logged out successfully"}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ConfirmEmail handles GET /auth/confirmed_email/:token.
func (h *AuthHandler) ConfirmEmail(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerConfirmEmail)

	token := ctx.Params("token")
	if token == "" {
		return badRequest(ctx, "confirmation token is required")
	}

	alreadyConfirmed, err := h.authUseCase.ConfirmEmail(requestCtx, token)
	if err != nil {
		return writeError(ctx, err)
	}

	message := "email confirmed"
	if alreadyConfirmed {
		message = "your email is already confirmed"
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: message}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// RequestEmailConfirmation handles POST /auth/request_email.
func (h *AuthHandler) RequestEmailConfirmation(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerRequestEmail)

	var req dto.EmailRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ctx, errInvalidRequest)
	}
	if req.Email == "" {
		return badRequest(ctx, "email is required")
	}

	alreadyConfirmed, err := h.authUseCase.RequestEmailConfirmation(requestCtx, req.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	message := "check your email for confirmation"
	if alreadyConfirmed {
		message = "your email is already confirmed"
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: message}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ForgotPassword handles POST /auth/forgot_password.
func (h *AuthHandler) ForgotPassword(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerForgot)

	var req dto.EmailRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ctx, errInvalidRequest)
	}
	if req.Email == "" {
		return badRequest(ctx, "email is required")
	}

	if err := h.authUseCase.ForgotPassword(requestCtx, req.Email); err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: "check your email for the reset link"}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ResetPassword handles POST /auth/reset_password/:token.
func (h *AuthHandler) ResetPassword(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerReset)

	token := ctx.Params("token")
	if token == "" {
		return badRequest(ctx, "reset token is required")
	}

	var req dto.ResetPasswordRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ctx, errInvalidRequest)
	}
	if req.Password == "" {
		return badRequest(ctx, "password is required")
	}

	if err := h.authUseCase.ResetPassword(requestCtx, token, req.Password); err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: "password has been reset"}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
