package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/api"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi/dto"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi/middleware"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	logHandlerGetMe        = "user handler: get profile"
	logHandlerUpdateAvatar = "user handler: update avatar"
	logHandlerUpdateName   = "user handler: update name"
)

// UserHandler serves the self-service profile routes.
type UserHandler struct {
	userUseCase api.UserUseCase
}

// NewUserHandler creates the user handler.
func NewUserHandler(userUseCase api.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// GetMe handles GET /users/me.
func (h *UserHandler) GetMe(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerGetMe)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorizedResponse(ctx)
	}

	profile, err := h.userUseCase.GetProfile(requestCtx, user.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserResponse(profile)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateAvatar handles PATCH /users/avatar with a multipart file field.
func (h *UserHandler) UpdateAvatar(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerUpdateAvatar)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorizedResponse(ctx)
	}

	data, contentType, err := readUpload(ctx, "file")
	if err != nil {
		return badRequest(ctx, "avatar file is required")
	}

	updated, err := h.userUseCase.UpdateAvatar(requestCtx, user, data, contentType)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserResponse(updated)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateName handles PATCH /users/me/name.
func (h *UserHandler) UpdateName(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerUpdateName)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorizedResponse(ctx)
	}

	var req dto.UpdateNameRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ctx, errInvalidRequest)
	}
	if req.Username == "" {
		return badRequest(ctx, "username is required")
	}

	updated, err := h.userUseCase.UpdateName(requestCtx, user, req.Username)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserResponse(updated)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
