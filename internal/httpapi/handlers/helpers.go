package handlers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

func badRequest(ctx fiber.Ctx, message string) error {
	if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message}); err != nil {
		return fmt.Errorf("sending error response: %w", err)
	}
	return nil
}

func unauthorizedResponse(ctx fiber.Ctx) error {
	if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": CredentialsErrorMessage}); err != nil {
		return fmt.Errorf("sending error response: %w", err)
	}
	return nil
}

func bearerToken(ctx fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func paramID(ctx fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func readUpload(ctx fiber.Ctx, field string) ([]byte, string, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return nil, "", fmt.Errorf("reading form file: %w", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("opening form file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("reading form file body: %w", err)
	}

	return data, fileHeader.Header.Get("Content-Type"), nil
}
