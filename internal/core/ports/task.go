package ports

import (
	"context"
	"time"

	"github.com/dayplan-app/planner-api/internal/core/domain"
)

// TaskRepository defines persistence for tasks. groupID 0 in ListByUser means
// "all groups".
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id, userID int64) (*domain.Task, error)
	ListByUser(ctx context.Context, userID, groupID int64) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id, userID int64) error
	// DeleteByGroup removes all tasks of a group (cascade on group delete).
	DeleteByGroup(ctx context.Context, groupID, userID int64) error
}

// TaskGroupRepository defines persistence for task groups.
type TaskGroupRepository interface {
	Create(ctx context.Context, g *domain.TaskGroup) (*domain.TaskGroup, error)
	FindByID(ctx context.Context, id, userID int64) (*domain.TaskGroup, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.TaskGroup, error)
	Update(ctx context.Context, g *domain.TaskGroup) (*domain.TaskGroup, error)
	Delete(ctx context.Context, id, userID int64) error
}

// CreateTaskInput carries the fields for a new task. GroupID 0 = ungrouped;
// non-zero GroupID is validated against the acting user.
type CreateTaskInput struct {
	Title      string
	GroupID    int64
	Date       *time.Time
	Recurrence int
	Color      string
}

// UpdateTaskInput carries partial task changes. Nil = untouched. A GroupID
// pointing at 0 detaches the task from its group.
type UpdateTaskInput struct {
	Title      *string
	GroupID    *int64
	Done       *bool
	Date       *time.Time
	Recurrence *int
	Color      *string
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	Create(ctx context.Context, userID int64, in CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, userID, groupID int64) ([]*domain.Task, error)
	Update(ctx context.Context, userID, id int64, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, userID, id int64) error
}

// TaskGroupWithTasks is the sidebar view: a group plus its tasks.
type TaskGroupWithTasks struct {
	domain.TaskGroup
	Tasks []*domain.Task `json:"tasks"`
}

// CreateTaskGroupInput carries the fields for a new task group.
type CreateTaskGroupInput struct {
	Title string
	Color string
}

// UpdateTaskGroupInput carries partial group changes. Nil = untouched.
type UpdateTaskGroupInput struct {
	Title *string
	Color *string
}

// TaskGroupService defines use-case operations for task groups. Delete
// cascades to the group's tasks.
type TaskGroupService interface {
	Create(ctx context.Context, userID int64, in CreateTaskGroupInput) (*domain.TaskGroup, error)
	List(ctx context.Context, userID int64) ([]TaskGroupWithTasks, error)
	Update(ctx context.Context, userID, id int64, in UpdateTaskGroupInput) (*domain.TaskGroup, error)
	Delete(ctx context.Context, userID, id int64) error
}
