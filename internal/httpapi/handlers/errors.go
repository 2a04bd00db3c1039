// Package handlers contains the HTTP handlers of the service.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	authentities "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/services"
	photoentities "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
)

// CredentialsErrorMessage is the single message every authentication
// failure collapses to, so responses never reveal which check failed.
const CredentialsErrorMessage = "could not validate credentials"

const internalErrorMessage = "internal server error"

// writeError maps a use case error to its HTTP status. Unrecognized
// errors are infrastructure failures and come back as 500 with a generic
// body.
func writeError(ctx fiber.Ctx, err error) error {
	status, message := statusFor(err)
	if jsonErr := ctx.Status(status).JSON(fiber.Map{"error": message}); jsonErr != nil {
		return fmt.Errorf("sending error response: %w", jsonErr)
	}
	return nil
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrCouldNotValidateCredentials),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidRefreshToken),
		errors.Is(err, services.ErrInvalidResetToken):
		return http.StatusUnauthorized, CredentialsErrorMessage

	case errors.Is(err, services.ErrEmailNotConfirmed):
		return http.StatusUnauthorized, services.ErrEmailNotConfirmed.Error()

	case errors.Is(err, authentities.ErrUserBanned):
		return http.StatusForbidden, authentities.ErrUserBanned.Error()

	case errors.Is(err, services.ErrAccessForbidden),
		errors.Is(err, photoentities.ErrNotImageOwner),
		errors.Is(err, photoentities.ErrNotCommentOwner),
		errors.Is(err, photoentities.ErrOwnImageRating):
		return http.StatusForbidden, unwrapMessage(err)

	case errors.Is(err, authentities.ErrAccountExists),
		errors.Is(err, photoentities.ErrDuplicateRating):
		return http.StatusConflict, unwrapMessage(err)

	case errors.Is(err, authentities.ErrUserNotFound),
		errors.Is(err, photoentities.ErrImageNotFound),
		errors.Is(err, photoentities.ErrCommentNotFound),
		errors.Is(err, photoentities.ErrRatingNotFound):
		return http.StatusNotFound, unwrapMessage(err)

	case errors.Is(err, authentities.ErrInvalidEmail),
		errors.Is(err, authentities.ErrEmptyUsername),
		errors.Is(err, authentities.ErrPasswordTooShort),
		errors.Is(err, authentities.ErrUnknownRole),
		errors.Is(err, photoentities.ErrImageTooLarge),
		errors.Is(err, photoentities.ErrEmptyDescription),
		errors.Is(err, photoentities.ErrTooManyTags),
		errors.Is(err, photoentities.ErrEmptyTag),
		errors.Is(err, photoentities.ErrEmptyComment),
		errors.Is(err, photoentities.ErrInvalidRating),
		errors.Is(err, photoentities.ErrUnknownCrop),
		errors.Is(err, photoentities.ErrUnknownEffect),
		errors.Is(err, photoentities.ErrUnsupportedContent):
		return http.StatusBadRequest, unwrapMessage(err)
	}

	return http.StatusInternalServerError, internalErrorMessage
}

// unwrapMessage digs out the innermost sentinel so the response carries
// the domain message without the wrapping context chain.
func unwrapMessage(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}
