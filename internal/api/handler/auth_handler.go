package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dayplan-app/planner-api/internal/api/metrics"
	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/ports"
)

// ActivityQueue is the interface the handler uses to hand session activity to
// the dispatcher without blocking the response.
type ActivityQueue interface {
	Enqueue(in ports.ActivityInput)
}

type AuthHandler struct {
	authService ports.AuthService
	activity    ActivityQueue
}

func NewAuthHandler(authService ports.AuthService, activity ActivityQueue) *AuthHandler {
	return &AuthHandler{authService: authService, activity: activity}
}

// Signup creates a new account and issues a session token.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, tok, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	h.activity.Enqueue(ports.ActivityInput{
		UserID:    user.ID,
		Kind:      domain.ActivitySignup,
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusCreated, authResponse{User: user, Token: tok})
}

// Login verifies credentials and issues a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tok, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRateLimited):
			metrics.LoginsTotal.WithLabelValues("rate_limited").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.activity.Enqueue(ports.ActivityInput{
		UserID:    user.ID,
		Kind:      domain.ActivityLogin,
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, authResponse{User: user, Token: tok})
}

// Profile returns the account behind the presented token.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authResponse
// @Failure      401  {object}  errorResponse
// @Router       /profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{User: user})
}

// GetConfig returns the settings-form view of the account.
//
// @Summary      Get account configuration
// @Tags         config
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  configView
// @Failure      401  {object}  errorResponse
// @Router       /config [get]
func (h *AuthHandler) GetConfig(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toConfigView(user))
}

// UpdateConfig applies profile changes and/or a password change.
//
// @Summary      Update account configuration
// @Tags         config
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateConfigRequest  true  "Changes"
// @Success      200   {object}  updateConfigResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /config [put]
func (h *AuthHandler) UpdateConfig(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.UpdateConfig(c.Request().Context(), userID, ports.ConfigUpdateInput{
		DisplayName:     req.DisplayName,
		Name:            req.Name,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateConfigResponse{
		Message: "configuration updated",
		User:    toConfigView(user),
	})
}
