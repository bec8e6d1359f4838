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

func eventFixture(t *testing.T) (*EventService, *stubEventRepo, *stubCalendarRepo, *domain.Calendar) {
	t.Helper()
	events := newStubEventRepo()
	calendars := newStubCalendarRepo()
	svc := NewEventService(events, calendars, zerolog.Nop())

	cal, err := calendars.Create(context.Background(), &domain.Calendar{UserID: 1, Title: "work"})
	if err != nil {
		t.Fatalf("calendar fixture: %v", err)
	}
	return svc, events, calendars, cal
}

func TestEventService_Create(t *testing.T) {
	svc, _, _, cal := eventFixture(t)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ev, err := svc.Create(context.Background(), 1, ports.CreateEventInput{
		Title:      "standup",
		CalendarID: cal.ID,
		Start:      start,
		End:        start.Add(30 * time.Minute),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ev.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if ev.UserID != 1 {
		t.Fatalf("expected owner 1, got %d", ev.UserID)
	}
	if ev.Status != domain.EventStatusConfirmed {
		t.Fatalf("unexpected status: %s", ev.Status)
	}
}

func TestEventService_Create_InvalidRange(t *testing.T) {
	svc, _, _, cal := eventFixture(t)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	// end == start is rejected, not just end < start.
	_, err := svc.Create(context.Background(), 1, ports.CreateEventInput{
		Title:      "zero-length",
		CalendarID: cal.ID,
		Start:      start,
		End:        start,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestEventService_Create_ForeignCalendar(t *testing.T) {
	svc, _, calendars, _ := eventFixture(t)

	foreign, _ := calendars.Create(context.Background(), &domain.Calendar{UserID: 2, Title: "theirs"})

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), 1, ports.CreateEventInput{
		Title:      "intrusion",
		CalendarID: foreign.ID,
		Start:      start,
		End:        start.Add(time.Hour),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign calendar must read as not found, got %v", err)
	}
}

func TestEventService_Get_OwnershipCollapse(t *testing.T) {
	svc, _, _, cal := eventFixture(t)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ev, err := svc.Create(context.Background(), 1, ports.CreateEventInput{
		Title: "mine", CalendarID: cal.ID, Start: start, End: start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Another user fetching an existing event and anyone fetching a missing
	// event must be the same error.
	_, errForeign := svc.Get(context.Background(), 2, ev.ID)
	_, errMissing := svc.Get(context.Background(), 1, 9999)
	if !errors.Is(errForeign, domain.ErrNotFound) || !errors.Is(errMissing, domain.ErrNotFound) {
		t.Fatalf("expected identical ErrNotFound, got %v and %v", errForeign, errMissing)
	}
}

func TestEventService_List_Range(t *testing.T) {
	svc, _, _, cal := eventFixture(t)

	mk := func(day int) {
		start := time.Date(2026, 3, day, 9, 0, 0, 0, time.UTC)
		if _, err := svc.Create(context.Background(), 1, ports.CreateEventInput{
			Title: "e", CalendarID: cal.ID, Start: start, End: start.Add(time.Hour),
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	mk(1)
	mk(10)
	mk(20)

	out, err := svc.List(context.Background(), 1,
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 event in window, got %d", len(out))
	}
}

func TestEventService_Update(t *testing.T) {
	svc, _, calendars, cal := eventFixture(t)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ev, _ := svc.Create(context.Background(), 1, ports.CreateEventInput{
		Title: "old", CalendarID: cal.ID, Start: start, End: start.Add(time.Hour),
	})

	title := "new"
	updated, err := svc.Update(context.Background(), 1, ev.ID, ports.UpdateEventInput{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "new" {
		t.Fatalf("title not updated: %q", updated.Title)
	}

	// Half a range is ambiguous.
	later := start.Add(2 * time.Hour)
	if _, err := svc.Update(context.Background(), 1, ev.ID, ports.UpdateEventInput{Start: &later}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for lone start, got %v", err)
	}

	// Moving the event onto a foreign calendar is a not-found, even on update.
	foreign, _ := calendars.Create(context.Background(), &domain.Calendar{UserID: 2, Title: "theirs"})
	if _, err := svc.Update(context.Background(), 1, ev.ID, ports.UpdateEventInput{CalendarID: &foreign.ID}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Foreign update attempt.
	if _, err := svc.Update(context.Background(), 2, ev.ID, ports.UpdateEventInput{Title: &title}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign update, got %v", err)
	}
}

func TestEventService_Delete(t *testing.T) {
	svc, _, _, cal := eventFixture(t)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ev, _ := svc.Create(context.Background(), 1, ports.CreateEventInput{
		Title: "gone", CalendarID: cal.ID, Start: start, End: start.Add(time.Hour),
	})

	if err := svc.Delete(context.Background(), 2, ev.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign delete must be not found, got %v", err)
	}
	if err := svc.Delete(context.Background(), 1, ev.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), 1, ev.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
