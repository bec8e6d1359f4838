package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dayplan-app/planner-api/internal/core/ports"
)

type createTaskRequest struct {
	Title      string `json:"title" validate:"required"`
	GroupID    int64  `json:"group_id"`
	Date       string `json:"date"`
	Recurrence int    `json:"recurrence"`
	Color      string `json:"color"`
}

type updateTaskRequest struct {
	Title      *string `json:"title"`
	GroupID    *int64  `json:"group_id"`
	Done       *bool   `json:"done"`
	Date       *string `json:"date"`
	Recurrence *int    `json:"recurrence"`
	Color      *string `json:"color"`
}

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List returns the user's tasks, optionally narrowed to one group.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        group_id  query     int  false  "Only tasks of this group"
// @Success      200       {array}   domain.Task
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var groupID int64
	if s := c.QueryParam("group_id"); s != "" {
		if groupID, err = parseID(s); err != nil {
			return err
		}
	}

	tasks, err := h.service.List(c.Request().Context(), userID, groupID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create adds a task for the user.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var date *time.Time
	if req.Date != "" {
		d, err := parseDatetime(req.Date)
		if err != nil {
			return err
		}
		date = &d
	}

	task, err := h.service.Create(c.Request().Context(), userID, ports.CreateTaskInput{
		Title:      req.Title,
		GroupID:    req.GroupID,
		Date:       date,
		Recurrence: req.Recurrence,
		Color:      req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// Update applies partial changes to a task.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Changes"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	in := ports.UpdateTaskInput{
		Title:      req.Title,
		GroupID:    req.GroupID,
		Done:       req.Done,
		Recurrence: req.Recurrence,
		Color:      req.Color,
	}
	if req.Date != nil {
		d, err := parseDatetime(*req.Date)
		if err != nil {
			return err
		}
		in.Date = &d
	}

	task, err := h.service.Update(c.Request().Context(), userID, id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete removes a task.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
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
	return c.JSON(http.StatusOK, messageResponse{Message: "task deleted"})
}
