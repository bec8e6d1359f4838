package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/ports"
)

func TestCalendarService_CreateAndList(t *testing.T) {
	calendars := newStubCalendarRepo()
	svc := NewCalendarService(calendars, newStubEventRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), 1, ports.CreateCalendarInput{Title: "  "}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank title, got %v", err)
	}

	cal, err := svc.Create(context.Background(), 1, ports.CreateCalendarInput{Title: " work ", Color: "#ff0000"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if cal.Title != "work" {
		t.Fatalf("expected trimmed title, got %q", cal.Title)
	}

	_, _ = svc.Create(context.Background(), 2, ports.CreateCalendarInput{Title: "other user"})

	out, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("listing must only show the owner's calendars, got %d", len(out))
	}
}

func TestCalendarService_Update_Foreign(t *testing.T) {
	calendars := newStubCalendarRepo()
	svc := NewCalendarService(calendars, newStubEventRepo(), zerolog.Nop())

	cal, _ := svc.Create(context.Background(), 1, ports.CreateCalendarInput{Title: "mine"})

	title := "hijack"
	if _, err := svc.Update(context.Background(), 2, cal.ID, ports.UpdateCalendarInput{Title: &title}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCalendarService_Delete_CascadesEvents(t *testing.T) {
	calendars := newStubCalendarRepo()
	events := newStubEventRepo()
	svc := NewCalendarService(calendars, events, zerolog.Nop())

	cal, _ := svc.Create(context.Background(), 1, ports.CreateCalendarInput{Title: "doomed"})
	keep, _ := svc.Create(context.Background(), 1, ports.CreateCalendarInput{Title: "kept"})

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	_, _ = events.Create(context.Background(), &domain.Event{UserID: 1, CalendarID: cal.ID, Title: "a", StartDate: start, EndDate: start.Add(time.Hour)})
	_, _ = events.Create(context.Background(), &domain.Event{UserID: 1, CalendarID: keep.ID, Title: "b", StartDate: start, EndDate: start.Add(time.Hour)})

	if err := svc.Delete(context.Background(), 1, cal.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	remaining, err := events.List(context.Background(), ports.EventRangeFilter{UserID: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(remaining) != 1 || remaining[0].CalendarID != keep.ID {
		t.Fatalf("cascade must only remove the deleted calendar's events, got %d", len(remaining))
	}
}
