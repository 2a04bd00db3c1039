package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	authapi "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/api"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi/dto"
	photoapi "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/api"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	logHandlerChangeRole  = "admin handler: change user role"
	logHandlerBanUser     = "admin handler: ban user"
	logHandlerUnbanUser   = "admin handler: unban user"
	logHandlerGetUser     = "admin handler: get user by id"
	logHandlerSearchUsers = "admin handler: search users"
	logHandlerDeleteUser  = "admin handler: delete user"
	logHandlerUserImages  = "admin handler: list user images"
	logHandlerModDelete   = "admin handler: moderation delete"
	logHandlerListRatings = "admin handler: list image ratings"
)

// AdminHandler serves the role-gated account and moderation routes.
type AdminHandler struct {
	adminUseCase      authapi.AdminUseCase
	moderationUseCase photoapi.ModerationUseCase
}

// NewAdminHandler creates the admin handler.
func NewAdminHandler(adminUseCase authapi.AdminUseCase, moderationUseCase photoapi.ModerationUseCase) *AdminHandler {
	return &AdminHandler{adminUseCase: adminUseCase, moderationUseCase: moderationUseCase}
}

// ChangeUserRole handles PATCH /admin/users/role.
func (h *AdminHandler) ChangeUserRole(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerChangeRole)

	var req dto.ChangeRoleRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ctx, errInvalidRequest)
	}
	if req.Email == "" || req.Role == "" {
		return badRequest(ctx, "email and role are required")
	}

	if err := h.adminUseCase.ChangeUserRole(requestCtx, req.Email, entities.Role(req.Role)); err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: "role updated"}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// BanUser handles PATCH /admin/users/:email/ban.
func (h *AdminHandler) BanUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerBanUser)

	email := ctx.Params("email")
	if email == "" {
		return badRequest(ctx, "email is required")
	}

	if err := h.adminUseCase.BanUser(requestCtx, email); err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: "user banned"}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UnbanUser handles PATCH /admin/users/:email/unban.
func (h *AdminHandler) UnbanUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerUnbanUser)

	email := ctx.Params("email")
	if email == "" {
		return badRequest(ctx, "email is required")
	}

	if err := h.adminUseCase.UnbanUser(requestCtx, email); err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: "user unbanned"}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetUserByID handles GET /admin/users/:id.
func (h *AdminHandler) GetUserByID(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerGetUser)

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	user, err := h.adminUseCase.GetUserByID(requestCtx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserResponse(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// SearchUsers handles GET /admin/users?q=.
func (h *AdminHandler) SearchUsers(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerSearchUsers)

	users, err := h.adminUseCase.SearchUsers(requestCtx, ctx.Query("q"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserResponses(users)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerDeleteUser)

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := h.adminUseCase.DeleteUser(requestCtx, id); err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: "user deleted"}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListUserImages handles GET /admin/users/:id/images.
func (h *AdminHandler) ListUserImages(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerUserImages)

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	images, err := h.moderationUseCase.ListUserImages(requestCtx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(images); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteImage handles DELETE /admin/images/:id.
func (h *AdminHandler) DeleteImage(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerModDelete)

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := h.moderationUseCase.DeleteImage(requestCtx, id); err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: "image deleted"}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteComment handles DELETE /admin/comments/:id.
func (h *AdminHandler) DeleteComment(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerModDelete)

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := h.moderationUseCase.DeleteComment(requestCtx, id); err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: "comment deleted"}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListImageRatings handles GET /admin/images/:id/ratings.
func (h *AdminHandler) ListImageRatings(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerListRatings)

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	ratings, err := h.moderationUseCase.ListImageRatings(requestCtx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(ratings); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteRating handles DELETE /admin/ratings/:id.
func (h *AdminHandler) DeleteRating(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerModDelete)

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := h.moderationUseCase.DeleteRating(requestCtx, id); err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: "rating deleted"}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
