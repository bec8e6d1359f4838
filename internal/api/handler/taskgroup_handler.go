package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dayplan-app/planner-api/internal/core/ports"
)

type createTaskGroupRequest struct {
	Title string `json:"title" validate:"required"`
	Color string `json:"color"`
}

type updateTaskGroupRequest struct {
	Title *string `json:"title"`
	Color *string `json:"color"`
}

// TaskGroupHandler handles HTTP requests for task groups.
type TaskGroupHandler struct {
	service ports.TaskGroupService
}

func NewTaskGroupHandler(service ports.TaskGroupService) *TaskGroupHandler {
	return &TaskGroupHandler{service: service}
}

// List returns the user's groups with their tasks embedded.
//
// @Summary      List task groups
// @Tags         task-groups
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.TaskGroupWithTasks
// @Failure      401  {object}  errorResponse
// @Router       /task-groups [get]
func (h *TaskGroupHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	groups, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, groups)
}

// Create adds a task group for the user.
//
// @Summary      Create a task group
// @Tags         task-groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskGroupRequest  true  "Group details"
// @Success      201   {object}  domain.TaskGroup
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /task-groups [post]
func (h *TaskGroupHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTaskGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	group, err := h.service.Create(c.Request().Context(), userID, ports.CreateTaskGroupInput{
		Title: req.Title,
		Color: req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, group)
}

// Update applies partial changes to a task group.
//
// @Summary      Update a task group
// @Tags         task-groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Group id"
// @Param        body  body      updateTaskGroupRequest  true  "Changes"
// @Success      200   {object}  domain.TaskGroup
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /task-groups/{id} [put]
func (h *TaskGroupHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req updateTaskGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	group, err := h.service.Update(c.Request().Context(), userID, id, ports.UpdateTaskGroupInput{
		Title: req.Title,
		Color: req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, group)
}

// Delete removes a task group and all tasks inside it.
//
// @Summary      Delete a task group
// @Tags         task-groups
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Group id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /task-groups/{id} [delete]
func (h *TaskGroupHandler) Delete(c echo.Context) error {
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
	return c.JSON(http.StatusOK, messageResponse{Message: "task group deleted"})
}
