// Package httpapi wires the fiber application: middleware, handlers and
// per-route role gates.
package httpapi

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	authapi "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/api"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi/handlers"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi/middleware"
	photoapi "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/api"
)

// Services bundles everything the router needs.
type Services struct {
	Authenticator authapi.Authenticator
	Auth          authapi.AuthUseCase
	Users         authapi.UserUseCase
	Admin         authapi.AdminUseCase
	Images        photoapi.ImageUseCase
	Comments      photoapi.CommentUseCase
	Ratings       photoapi.RatingUseCase
	Moderation    photoapi.ModerationUseCase
	DB            handlers.Pinger
}

// SetupRouter registers all routes under /api. Admin routes carry explicit
// allowed-role sets; there is no hierarchy between roles.
func SetupRouter(app *fiber.App, svc Services) {
	authHandler := handlers.NewAuthHandler(svc.Auth)
	userHandler := handlers.NewUserHandler(svc.Users)
	adminHandler := handlers.NewAdminHandler(svc.Admin, svc.Moderation)
	imageHandler := handlers.NewImageHandler(svc.Images)
	commentHandler := handlers.NewCommentHandler(svc.Comments)
	ratingHandler := handlers.NewRatingHandler(svc.Ratings)
	healthHandler := handlers.NewHealthHandler(svc.DB)

	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	requireAuth := middleware.NewAuthMiddleware(svc.Authenticator)

	api := app.Group("/api")

	api.Get("/healthchecker", healthHandler.Check)

	// Public auth routes.
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Get("/refresh_token", authHandler.RefreshTokens)
	auth.Post("/logout", authHandler.Logout, requireAuth)
	auth.Get("/confirmed_email/:token", authHandler.ConfirmEmail)
	auth.Post("/request_email", authHandler.RequestEmailConfirmation)
	auth.Post("/forgot_password", authHandler.ForgotPassword)
	auth.Post("/reset_password/:token", authHandler.ResetPassword)

	// Self-service profile routes.
	users := api.Group("/users", requireAuth)
	users.Get("/me", userHandler.GetMe)
	users.Patch("/avatar", userHandler.UpdateAvatar)
	users.Patch("/me/name", userHandler.UpdateName)

	// Image routes.
	images := api.Group("/images", requireAuth)
	images.Post("/", imageHandler.Upload)
	images.Get("/search", imageHandler.Search)
	images.Get("/:id", imageHandler.Get)
	images.Put("/:id", imageHandler.UpdateDescription)
	images.Delete("/:id", imageHandler.Delete)
	images.Post("/:id/crop", imageHandler.Crop)
	images.Post("/:id/effect", imageHandler.ApplyEffect)
	images.Get("/:id/qrcode", imageHandler.QRCode)

	// Comment routes.
	comments := api.Group("/comments", requireAuth)
	comments.Post("/", commentHandler.Create)
	comments.Get("/image/:id", commentHandler.ListByImage)
	comments.Put("/:id", commentHandler.Update)

	// Rating routes.
	ratings := api.Group("/ratings", requireAuth)
	ratings.Post("/", ratingHandler.Rate)
	ratings.Get("/image/:id/average", ratingHandler.Average)

	// Admin routes with per-operation allowed-role sets.
	admin := api.Group("/admin", requireAuth)

	adminOnly := middleware.RequireRoles(entities.RoleAdmin)
	adminOrModerator := middleware.RequireRoles(entities.RoleAdmin, entities.RoleModerator)

	admin.Patch("/users/role", adminHandler.ChangeUserRole, adminOnly)
	admin.Get("/users", adminHandler.SearchUsers, adminOnly)
	admin.Get("/users/:id", adminHandler.GetUserByID, adminOnly)
	admin.Delete("/users/:id", adminHandler.DeleteUser, adminOnly)
	admin.Patch("/users/:email/ban", adminHandler.BanUser, adminOrModerator)
	admin.Patch("/users/:email/unban", adminHandler.UnbanUser, adminOrModerator)
	admin.Get("/users/:id/images", adminHandler.ListUserImages, adminOrModerator)
	admin.Delete("/images/:id", adminHandler.DeleteImage, adminOnly)
	admin.Delete("/comments/:id", adminHandler.DeleteComment, adminOrModerator)
	admin.Get("/images/:id/ratings", adminHandler.ListImageRatings, adminOrModerator)
	admin.Delete("/ratings/:id", adminHandler.DeleteRating, adminOrModerator)

	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
