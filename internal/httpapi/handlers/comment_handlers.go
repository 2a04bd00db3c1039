package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi/dto"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi/middleware"
	photoapi "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/api"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	logHandlerCreateComment = "comment handler: create"
	logHandlerListComments  = "comment handler: list by image"
	logHandlerUpdateComment = "comment handler: update"
)

// CommentHandler serves the comment routes.
type CommentHandler struct {
	commentUseCase photoapi.CommentUseCase
}

// NewCommentHandler creates the comment handler.
func NewCommentHandler(commentUseCase photoapi.CommentUseCase) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase}
}

// Create handles POST /comments.
func (h *CommentHandler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerCreateComment)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorizedResponse(ctx)
	}

	var req dto.CreateCommentRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ctx, errInvalidRequest)
	}
	if req.ImageID <= 0 {
		return badRequest(ctx, "image_id is required")
	}

	comment, err := h.commentUseCase.Create(requestCtx, user, req.ImageID, req.Text)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(comment); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListByImage handles GET /comments/image/:id.
func (h *CommentHandler) ListByImage(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerListComments)

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	comments, err := h.commentUseCase.ListByImage(requestCtx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(comments); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update handles PUT /comments/:id.
func (h *CommentHandler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerUpdateComment)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorizedResponse(ctx)
	}

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req dto.UpdateCommentRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ctx, errInvalidRequest)
	}

	comment, err := h.commentUseCase.UpdateOwn(requestCtx, user, id, req.Text)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(comment); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
