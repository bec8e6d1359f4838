package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dayplan-app/planner-api/internal/core/ports"
)

// EventHandler handles HTTP requests for agenda events.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List returns the user's events, optionally narrowed to a range.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        start  query     string  false  "Range start (ISO 8601)"
// @Param        end    query     string  false  "Range end (ISO 8601)"
// @Success      200    {array}   domain.Event
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Router       /events [get]
func (h *EventHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var from, to time.Time
	if s := c.QueryParam("start"); s != "" {
		if from, err = parseDatetime(s); err != nil {
			return err
		}
	}
	if s := c.QueryParam("end"); s != "" {
		if to, err = parseDatetime(s); err != nil {
			return err
		}
	}

	events, err := h.service.List(c.Request().Context(), userID, from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Create adds an event to one of the user's calendars.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	start, err := parseDatetime(req.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDatetime(req.EndDate)
	if err != nil {
		return err
	}

	ev, err := h.service.Create(c.Request().Context(), userID, ports.CreateEventInput{
		Title:       req.Title,
		CalendarID:  req.CalendarID,
		Start:       start,
		End:         end,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ev)
}

// Get returns a single event.
//
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  domain.Event
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	ev, err := h.service.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ev)
}

// Update applies partial changes to an event.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Event id"
// @Param        body  body      updateEventRequest  true  "Changes"
// @Success      200   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	in := ports.UpdateEventInput{
		Title:       req.Title,
		CalendarID:  req.CalendarID,
		Description: req.Description,
		Color:       req.Color,
	}
	if req.StartDate != nil {
		start, err := parseDatetime(*req.StartDate)
		if err != nil {
			return err
		}
		in.Start = &start
	}
	if req.EndDate != nil {
		end, err := parseDatetime(*req.EndDate)
		if err != nil {
			return err
		}
		in.End = &end
	}

	ev, err := h.service.Update(c.Request().Context(), userID, id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ev)
}

// Delete removes an event.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
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
	return c.JSON(http.StatusOK, messageResponse{Message: "event deleted"})
}
