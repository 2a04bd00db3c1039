package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/services"
)

// RequireRoles gates a route behind an explicit set of allowed roles.
// There is no role hierarchy: an admin is rejected from a moderator-only
// route unless the admin role is listed too. Must run after the auth
// middleware.
func RequireRoles(roles ...entities.Role) fiber.Handler {
	access := services.NewRoleAccess(roles...)

	return func(ctx fiber.Ctx) error {
		user, ok := UserFromCtx(ctx)
		if !ok {
			return unauthorized(ctx)
		}

		if err := access.Authorize(user); err != nil {
			return forbidden(ctx, services.ErrAccessForbidden.Error())
		}

		return ctx.Next()
	}
}
