package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi/dto"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the health check route.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /healthchecker.
func (h *HealthHandler) Check(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	if err := h.db.Ping(requestCtx); err != nil {
		log.Error(requestCtx, "health check failed", zap.Error(err))
		if jsonErr := ctx.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "database unreachable",
		}); jsonErr != nil {
			return fmt.Errorf("sending error response: %w", jsonErr)
		}
		return nil
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.MessageResponse{Message: "ok"}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
