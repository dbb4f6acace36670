package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"tech-share/domain"
	apperrors "tech-share/utils/errors"
	"tech-share/utils/validator"
)

// ErrorResponse is the generic error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ValidationErrorResponse carries field-keyed validation messages
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// SuccessResponse is the generic success payload
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondError maps domain errors onto HTTP responses. Validation failures
// come back as a 422 with a field-keyed errors map; everything unrecognized
// collapses into a 500 so internals never leak.
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	var domainValidation *domain.ValidationError
	if errors.As(err, &domainValidation) {
		return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Message: "validation failed",
			Errors:  map[string]string{domainValidation.Field: domainValidation.Message},
		})
	}

	var requestValidation *validator.ValidationError
	if errors.As(err, &requestValidation) {
		return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Message: "validation failed",
			Errors:  requestValidation.Errors,
		})
	}

	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "article not found"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSessionExpired):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	// Infrastructure layers annotate failures with typed application errors;
	// those carry their own status mapping. Server-side codes stay generic so
	// internals never leak.
	if appErr, ok := apperrors.AsAppError(err); ok {
		status := apperrors.GetHTTPStatusCode(appErr)
		if status < http.StatusInternalServerError {
			return c.JSON(status, ErrorResponse{Error: appErr.Message})
		}
		logger.Error("request failed", "error", err, "code", appErr.Code)
		return c.JSON(status, ErrorResponse{Error: "internal server error"})
	}

	logger.Error("request failed", "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
