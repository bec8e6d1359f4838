package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dayplan-app/planner-api/internal/api/metrics"
	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/token"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

// Auth extracts and verifies the bearer token and injects the claims-derived
// identity into the echo context. It reads only the Authorization header and
// touches no store. Handlers must take the acting user exclusively from these
// context keys — never from ids in the path or body.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokensRejectedTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingAuth
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				// A malformed header is the same failure as a missing one.
				metrics.TokensRejectedTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingAuth
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokensRejectedTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokensRejectedTotal.WithLabelValues("invalid").Inc()
				}
				return err
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)

			return next(c)
		}
	}
}
