package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/ports"
)

// EventService implements event CRUD with calendar-chain ownership checks.
type EventService struct {
	events    ports.EventRepository
	calendars ports.CalendarRepository
	log       zerolog.Logger
}

func NewEventService(events ports.EventRepository, calendars ports.CalendarRepository, log zerolog.Logger) *EventService {
	return &EventService{events: events, calendars: calendars, log: log}
}

func (s *EventService) Create(ctx context.Context, userID int64, in ports.CreateEventInput) (*domain.Event, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalidf("title is required")
	}
	if !in.End.After(in.Start) {
		return nil, invalidf("end_date must be after start_date")
	}
	if in.CalendarID == 0 {
		return nil, invalidf("calendar_id is required")
	}
	if _, err := requireOwned(ctx, s.calendars, in.CalendarID, userID); err != nil {
		return nil, err
	}

	ev := &domain.Event{
		UserID:      userID,
		CalendarID:  in.CalendarID,
		Title:       title,
		StartDate:   in.Start,
		EndDate:     in.End,
		Description: strings.TrimSpace(in.Description),
		Color:       strings.TrimSpace(in.Color),
		Status:      domain.EventStatusConfirmed,
	}

	created, err := s.events.Create(ctx, ev)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("failed to create event")
		return nil, err
	}
	return created, nil
}

func (s *EventService) Get(ctx context.Context, userID, id int64) (*domain.Event, error) {
	return s.events.FindByID(ctx, id, userID)
}

func (s *EventService) List(ctx context.Context, userID int64, from, to time.Time) ([]*domain.Event, error) {
	return s.events.List(ctx, ports.EventRangeFilter{UserID: userID, From: from, To: to})
}

func (s *EventService) Update(ctx context.Context, userID, id int64, in ports.UpdateEventInput) (*domain.Event, error) {
	ev, err := s.events.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, invalidf("title cannot be empty")
		}
		ev.Title = title
	}

	// Date range changes come as a pair: moving one end alone is ambiguous.
	switch {
	case in.Start != nil && in.End != nil:
		ev.StartDate = *in.Start
		ev.EndDate = *in.End
	case in.Start != nil || in.End != nil:
		return nil, invalidf("send both start_date and end_date to change the range")
	}
	if !ev.EndDate.After(ev.StartDate) {
		return nil, invalidf("end_date must be after start_date")
	}

	if in.Description != nil {
		ev.Description = strings.TrimSpace(*in.Description)
	}
	if in.Color != nil {
		ev.Color = strings.TrimSpace(*in.Color)
	}
	if in.CalendarID != nil {
		// Re-validate the foreign key even on update: the client could point
		// the event at someone else's calendar.
		if _, err := requireOwned(ctx, s.calendars, *in.CalendarID, userID); err != nil {
			return nil, err
		}
		ev.CalendarID = *in.CalendarID
	}

	return s.events.Update(ctx, ev)
}

func (s *EventService) Delete(ctx context.Context, userID, id int64) error {
	return s.events.Delete(ctx, id, userID)
}
