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
	logHandlerRateImage     = "rating handler: rate"
	logHandlerAverageRating = "rating handler: average"
)

// RatingHandler serves the rating routes.
type RatingHandler struct {
	ratingUseCase photoapi.RatingUseCase
}

// NewRatingHandler creates the rating handler.
func NewRatingHandler(ratingUseCase photoapi.RatingUseCase) *RatingHandler {
	return &RatingHandler{ratingUseCase: ratingUseCase}
}

// Rate handles POST /ratings.
func (h *RatingHandler) Rate(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerRateImage)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorizedResponse(ctx)
	}

	var req dto.RateRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ctx, errInvalidRequest)
	}
	if req.ImageID <= 0 {
		return badRequest(ctx, "image_id is required")
	}

	rating, err := h.ratingUseCase.Rate(requestCtx, user, req.ImageID, req.Value)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(rating); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Average handles GET /ratings/image/:id/average.
func (h *RatingHandler) Average(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerAverageRating)

	id, err := paramID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	avg, err := h.ratingUseCase.Average(requestCtx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.AverageRatingResponse{ImageID: id, Average: avg}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
