package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dayplan-app/planner-api/internal/core/ports"
)

type createCalendarRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type updateCalendarRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// CalendarHandler handles HTTP requests for calendars.
type CalendarHandler struct {
	service ports.CalendarService
}

func NewCalendarHandler(service ports.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// List returns all calendars of the user.
//
// @Summary      List calendars
// @Tags         calendars
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Calendar
// @Failure      401  {object}  errorResponse
// @Router       /calendars [get]
func (h *CalendarHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	cals, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cals)
}

// Create adds a calendar for the user.
//
// @Summary      Create a calendar
// @Tags         calendars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCalendarRequest  true  "Calendar details"
// @Success      201   {object}  domain.Calendar
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /calendars [post]
func (h *CalendarHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createCalendarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cal, err := h.service.Create(c.Request().Context(), userID, ports.CreateCalendarInput{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cal)
}

// Get returns a single calendar.
//
// @Summary      Get a calendar
// @Tags         calendars
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Calendar id"
// @Success      200  {object}  domain.Calendar
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /calendars/{id} [get]
func (h *CalendarHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	cal, err := h.service.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cal)
}

// Update applies partial changes to a calendar.
//
// @Summary      Update a calendar
// @Tags         calendars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Calendar id"
// @Param        body  body      updateCalendarRequest  true  "Changes"
// @Success      200   {object}  domain.Calendar
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /calendars/{id} [put]
func (h *CalendarHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req updateCalendarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	cal, err := h.service.Update(c.Request().Context(), userID, id, ports.UpdateCalendarInput{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cal)
}

// Delete removes a calendar and all events inside it.
//
// @Summary      Delete a calendar
// @Tags         calendars
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Calendar id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /calendars/{id} [delete]
func (h *CalendarHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "calendar deleted"})
}
