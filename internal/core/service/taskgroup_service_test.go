package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/ports"
)

func TestTaskGroupService_List_EmbedsTasks(t *testing.T) {
	groups := newStubTaskGroupRepo()
	tasks := newStubTaskRepo()
	svc := NewTaskGroupService(groups, tasks, zerolog.Nop())

	g1, _ := svc.Create(context.Background(), 1, ports.CreateTaskGroupInput{Title: "chores"})
	g2, _ := svc.Create(context.Background(), 1, ports.CreateTaskGroupInput{Title: "empty"})

	_, _ = tasks.Create(context.Background(), &domain.Task{UserID: 1, GroupID: g1.ID, Title: "laundry"})
	_, _ = tasks.Create(context.Background(), &domain.Task{UserID: 1, GroupID: g1.ID, Title: "dishes"})
	_, _ = tasks.Create(context.Background(), &domain.Task{UserID: 1, Title: "loose"})

	out, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(out))
	}
	for _, g := range out {
		switch g.ID {
		case g1.ID:
			if len(g.Tasks) != 2 {
				t.Fatalf("expected 2 tasks in %q, got %d", g.Title, len(g.Tasks))
			}
		case g2.ID:
			// Empty groups still serialize an array, never null.
			if g.Tasks == nil || len(g.Tasks) != 0 {
				t.Fatalf("expected empty task slice, got %+v", g.Tasks)
			}
		default:
			t.Fatalf("unexpected group %d", g.ID)
		}
	}
}

func TestTaskGroupService_Update_Foreign(t *testing.T) {
	groups := newStubTaskGroupRepo()
	svc := NewTaskGroupService(groups, newStubTaskRepo(), zerolog.Nop())

	g, _ := svc.Create(context.Background(), 1, ports.CreateTaskGroupInput{Title: "mine"})

	title := "hijack"
	if _, err := svc.Update(context.Background(), 2, g.ID, ports.UpdateTaskGroupInput{Title: &title}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskGroupService_Delete_CascadesTasks(t *testing.T) {
	groups := newStubTaskGroupRepo()
	tasks := newStubTaskRepo()
	svc := NewTaskGroupService(groups, tasks, zerolog.Nop())

	g, _ := svc.Create(context.Background(), 1, ports.CreateTaskGroupInput{Title: "doomed"})
	_, _ = tasks.Create(context.Background(), &domain.Task{UserID: 1, GroupID: g.ID, Title: "dies too"})
	kept, _ := tasks.Create(context.Background(), &domain.Task{UserID: 1, Title: "survives"})

	if err := svc.Delete(context.Background(), 1, g.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	remaining, err := tasks.ListByUser(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != kept.ID {
		t.Fatalf("cascade must only remove the group's tasks, got %+v", remaining)
	}
}
