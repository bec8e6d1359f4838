package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dayplan-app/planner-api/internal/api/middleware"
	"github.com/dayplan-app/planner-api/internal/core/domain"
)

// paramID parses a numeric path parameter. A non-numeric id can never match
// a resource, so it surfaces as the same not-found the lookup would produce.
func paramID(c echo.Context, name string) (int64, error) {
	return parseID(c.Param(name))
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

// ctxUserID extracts the identity injected by the Auth middleware and
// fast-fails before any service call. A zero user id means the middleware did
// not run (misregistered route) or the token carried no identity; either way
// the request is unauthenticated.
func ctxUserID(c echo.Context) (int64, error) {
	id, _ := c.Get(middleware.CtxUserID).(int64)
	if id == 0 {
		return 0, domain.ErrMissingAuth
	}
	return id, nil
}
