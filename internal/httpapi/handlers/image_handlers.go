package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi/dto"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi/middleware"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	photoapi "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/api"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/repositories"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	logHandlerUploadImage = "image handler: upload"
	logHandlerGetImage    = "image handler: get"
	logHandlerUpdateImage = "image handler: update description"
	logHandlerDeleteImage = "image handler: delete"
	logHandlerCropImage   = "image handler: crop"
	logHandlerEffectImage = "image handler: effect"
	logHandlerSearchImage = "image handler: search"
	logHandlerImageQRCode = "image handler: qrcode"
)

// ImageHandler serves the image lifecycle routes.
type ImageHandler struct {
	imageUseCase photoapi.ImageUseCase
}

// NewImageHandler creates the image handler.
func NewImageHandler(imageUseCase photoapi.ImageUseCase) *ImageHandler {
	return &ImageHandler{imageUseCase: imageUseCase}
}

// Upload handles POST /images with multipart fields file, description and
// tags (comma-separated).
func (h *ImageHandler) Upload(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerUploadImage)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorizedResponse(ctx)
	}

	data, contentType, err := readUpload(ctx, "file")
	if err != nil {
		return badRequest(ctx, "image file is required")
	}

	description := ctx.FormValue("description")
	var tags []string
	if raw := ctx.FormValue("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				tags = append(tags, trimmed)
			}
		}
	}

	image, err := h.imageUseCase.Upload(requestCtx, user, data, contentType, description, tags)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(image); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Get handles GET /images/:id.
func (h *ImageHandler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerGetImage)

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	image, err := h.imageUseCase.Get(requestCtx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(image); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateDescription handles PUT /images/:id.
func (h *ImageHandler) UpdateDescription(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerUpdateImage)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorizedResponse(ctx)
	}

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req dto.UpdateDescriptionRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ctx, errInvalidRequest)
	}

	image, err := h.imageUseCase.UpdateDescription(requestCtx, user, id, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(image); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete handles DELETE /images/:id.
func (h *ImageHandler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerDeleteImage)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorizedResponse(ctx)
	}

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := h.imageUseCase.Delete(requestCtx, user, id); err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: "image deleted"}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Crop handles POST /images/:id/crop.
func (h *ImageHandler) Crop(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerCropImage)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorizedResponse(ctx)
	}

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req dto.CropRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ctx, errInvalidRequest)
	}
	if req.Width <= 0 || req.Height <= 0 {
		return badRequest(ctx, "width and height must be positive")
	}

	rendition, err := h.imageUseCase.Crop(requestCtx, user, id, entities.CropMode(req.Mode), req.Width, req.Height)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(rendition); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ApplyEffect handles POST /images/:id/effect.
func (h *ImageHandler) ApplyEffect(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerEffectImage)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorizedResponse(ctx)
	}

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req dto.EffectRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ctx, errInvalidRequest)
	}

	rendition, err := h.imageUseCase.ApplyEffect(requestCtx, user, id, entities.Effect(req.Effect))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(rendition); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// QRCode handles GET /images/:id/qrcode, where :id names a recorded
// rendition. Responds with a PNG body rather than JSON.
func (h *ImageHandler) QRCode(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerImageQRCode)

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	png, err := h.imageUseCase.QRCode(requestCtx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, "image/png")
	if err := ctx.Status(http.StatusOK).Send(png); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Search handles GET /images/search?q=&tag=&order_by=.
func (h *ImageHandler) Search(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerSearchImage)

	filter := repositories.SearchFilter{
		Query:   ctx.Query("q"),
		Tag:     ctx.Query("tag"),
		OrderBy: entities.SortOrder(ctx.Query("order_by")),
	}
	if filter.OrderBy != "" && filter.OrderBy != entities.SortByDate && filter.OrderBy != entities.SortByRating {
		return badRequest(ctx, "order_by must be date or rating")
	}

	images, err := h.imageUseCase.Search(requestCtx, filter)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(images); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
