package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/ports"
)

// CalendarService implements calendar CRUD. Deleting a calendar also removes
// its events, mirroring the cascade the original data model declared.
type CalendarService struct {
	calendars ports.CalendarRepository
	events    ports.EventRepository
	log       zerolog.Logger
}

func NewCalendarService(calendars ports.CalendarRepository, events ports.EventRepository, log zerolog.Logger) *CalendarService {
	return &CalendarService{calendars: calendars, events: events, log: log}
}

func (s *CalendarService) Create(ctx context.Context, userID int64, in ports.CreateCalendarInput) (*domain.Calendar, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalidf("title is required")
	}
	return s.calendars.Create(ctx, &domain.Calendar{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Color:       strings.TrimSpace(in.Color),
	})
}

func (s *CalendarService) Get(ctx context.Context, userID, id int64) (*domain.Calendar, error) {
	return s.calendars.FindByID(ctx, id, userID)
}

func (s *CalendarService) List(ctx context.Context, userID int64) ([]*domain.Calendar, error) {
	return s.calendars.ListByUser(ctx, userID)
}

func (s *CalendarService) Update(ctx context.Context, userID, id int64, in ports.UpdateCalendarInput) (*domain.Calendar, error) {
	cal, err := s.calendars.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, invalidf("title cannot be empty")
		}
		cal.Title = title
	}
	if in.Description != nil {
		cal.Description = strings.TrimSpace(*in.Description)
	}
	if in.Color != nil {
		cal.Color = strings.TrimSpace(*in.Color)
	}
	return s.calendars.Update(ctx, cal)
}

func (s *CalendarService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.calendars.Delete(ctx, id, userID); err != nil {
		return err
	}
	// Cascade. The calendar is already gone, so a failure here leaves
	// orphaned events rather than a half-deleted calendar; log and surface.
	if err := s.events.DeleteByCalendar(ctx, id, userID); err != nil {
		s.log.Error().Err(err).Int64("calendar_id", id).Msg("failed to cascade event delete")
		return err
	}
	return nil
}
