package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/ports"
)

// TaskService implements task CRUD with group-chain ownership checks.
type TaskService struct {
	tasks  ports.TaskRepository
	groups ports.TaskGroupRepository
	log    zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, groups ports.TaskGroupRepository, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, groups: groups, log: log}
}

func (s *TaskService) Create(ctx context.Context, userID int64, in ports.CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalidf("title is required")
	}
	if in.GroupID != 0 {
		if _, err := requireOwned(ctx, s.groups, in.GroupID, userID); err != nil {
			return nil, err
		}
	}
	return s.tasks.Create(ctx, &domain.Task{
		UserID:     userID,
		GroupID:    in.GroupID,
		Title:      title,
		Date:       in.Date,
		Recurrence: in.Recurrence,
		Color:      strings.TrimSpace(in.Color),
	})
}

func (s *TaskService) List(ctx context.Context, userID, groupID int64) ([]*domain.Task, error) {
	if groupID != 0 {
		if _, err := requireOwned(ctx, s.groups, groupID, userID); err != nil {
			return nil, err
		}
	}
	return s.tasks.ListByUser(ctx, userID, groupID)
}

func (s *TaskService) Update(ctx context.Context, userID, id int64, in ports.UpdateTaskInput) (*domain.Task, error) {
	t, err := s.tasks.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, invalidf("title cannot be empty")
		}
		t.Title = title
	}
	if in.GroupID != nil {
		if *in.GroupID != 0 {
			if _, err := requireOwned(ctx, s.groups, *in.GroupID, userID); err != nil {
				return nil, err
			}
		}
		t.GroupID = *in.GroupID
	}
	if in.Done != nil {
		t.Done = *in.Done
	}
	if in.Date != nil {
		t.Date = in.Date
	}
	if in.Recurrence != nil {
		t.Recurrence = *in.Recurrence
	}
	if in.Color != nil {
		t.Color = strings.TrimSpace(*in.Color)
	}
	return s.tasks.Update(ctx, t)
}

func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	return s.tasks.Delete(ctx, id, userID)
}
