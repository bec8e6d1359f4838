package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/ports"
)

// TaskGroupService implements task-group CRUD and the sidebar listing with
// embedded tasks.
type TaskGroupService struct {
	groups ports.TaskGroupRepository
	tasks  ports.TaskRepository
	log    zerolog.Logger
}

func NewTaskGroupService(groups ports.TaskGroupRepository, tasks ports.TaskRepository, log zerolog.Logger) *TaskGroupService {
	return &TaskGroupService{groups: groups, tasks: tasks, log: log}
}

func (s *TaskGroupService) Create(ctx context.Context, userID int64, in ports.CreateTaskGroupInput) (*domain.TaskGroup, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalidf("title is required")
	}
	return s.groups.Create(ctx, &domain.TaskGroup{
		UserID: userID,
		Title:  title,
		Color:  strings.TrimSpace(in.Color),
	})
}

// List returns the user's groups with their tasks embedded. Ungrouped tasks
// are not part of this view; they are reachable through the task listing.
func (s *TaskGroupService) List(ctx context.Context, userID int64) ([]ports.TaskGroupWithTasks, error) {
	groups, err := s.groups.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[int64][]*domain.Task, len(groups))
	for _, t := range tasks {
		if t.GroupID != 0 {
			byGroup[t.GroupID] = append(byGroup[t.GroupID], t)
		}
	}

	out := make([]ports.TaskGroupWithTasks, 0, len(groups))
	for _, g := range groups {
		items := byGroup[g.ID]
		if items == nil {
			items = []*domain.Task{}
		}
		out = append(out, ports.TaskGroupWithTasks{TaskGroup: *g, Tasks: items})
	}
	return out, nil
}

func (s *TaskGroupService) Update(ctx context.Context, userID, id int64, in ports.UpdateTaskGroupInput) (*domain.TaskGroup, error) {
	g, err := s.groups.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, invalidf("title cannot be empty")
		}
		g.Title = title
	}
	if in.Color != nil {
		g.Color = strings.TrimSpace(*in.Color)
	}
	return s.groups.Update(ctx, g)
}

func (s *TaskGroupService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.groups.Delete(ctx, id, userID); err != nil {
		return err
	}
	if err := s.tasks.DeleteByGroup(ctx, id, userID); err != nil {
		s.log.Error().Err(err).Int64("group_id", id).Msg("failed to cascade task delete")
		return err
	}
	return nil
}
