package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dayplan-app/planner-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Message is
// part of the frontend contract; ErrorCode lets clients branch without string
// matching (expired token → re-login prompt, invalid token → hard reject).
type errorResponse struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
}

// missingAuthMessage is the exact string the frontend matches on.
const missingAuthMessage = "Falta header Authorization Bearer"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": ..., "error_code": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorResponse{Message: err.Error(), ErrorCode: "validation"}
	case errors.Is(err, domain.ErrMissingAuth):
		return http.StatusUnauthorized, errorResponse{Message: missingAuthMessage, ErrorCode: "missing_auth"}
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, errorResponse{Message: "token expired", ErrorCode: "token_expired"}
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, errorResponse{Message: "invalid token", ErrorCode: "token_invalid"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Message: "invalid credentials", ErrorCode: "invalid_credentials"}
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		// Not-owned and nonexistent resources share this path on purpose.
		return http.StatusNotFound, errorResponse{Message: "not found", ErrorCode: "not_found"}
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, errorResponse{Message: "email already registered", ErrorCode: "email_taken"}
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, errorResponse{Message: "too many login attempts, try again later", ErrorCode: "too_many_attempts"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Message: "internal server error", ErrorCode: "internal"}
}
