package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/api"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

// Locals keys set by the auth middleware.
const (
	UserKey  = "authUser"
	TokenKey = "accessToken"
)

const (
	logAuthMiddleware = "auth middleware"

	errNoAuthHeader       = "no authorization header provided"
	errInvalidTokenFormat = "invalid token format"

	credentialsErrorMessage = "could not validate credentials"
)

// NewAuthMiddleware authenticates the bearer token and stores the resolved
// user and the bare token in Locals. Every failure responds with the same
// generic 401 body, except a banned account which is a 403.
func NewAuthMiddleware(authenticator api.Authenticator) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, logAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, errNoAuthHeader)
			return unauthorized(ctx)
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, errInvalidTokenFormat)
			return unauthorized(ctx)
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := authenticator.Authenticate(requestCtx, token)
		if err != nil {
			if errors.Is(err, entities.ErrUserBanned) {
				return forbidden(ctx, entities.ErrUserBanned.Error())
			}
			log.Debug(requestCtx, "authentication failed", zap.Error(err))
			return unauthorized(ctx)
		}

		ctx.Locals(UserKey, user)
		ctx.Locals(TokenKey, token)

		return ctx.Next()
	}
}

// UserFromCtx returns the authenticated user stored by the auth middleware.
func UserFromCtx(ctx fiber.Ctx) (*entities.User, bool) {
	user, ok := ctx.Locals(UserKey).(*entities.User)
	return user, ok
}

// TokenFromCtx returns the bare access token stored by the auth middleware.
func TokenFromCtx(ctx fiber.Ctx) (string, bool) {
	token, ok := ctx.Locals(TokenKey).(string)
	return token, ok
}

// unauthorized writes the uniform 401 body and ends the request. Returning
// nil keeps fiber's error handler from replacing the response; the reason
// a check failed stays in the logs only, never in the body.
func unauthorized(ctx fiber.Ctx) error {
	if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": credentialsErrorMessage,
	}); err != nil {
		return fmt.Errorf("sending unauthorized response: %w", err)
	}
	return nil
}

func forbidden(ctx fiber.Ctx, message string) error {
	if err := ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("sending forbidden response: %w", err)
	}
	return nil
}
