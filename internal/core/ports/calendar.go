package ports

import (
	"context"

	"github.com/dayplan-app/planner-api/internal/core/domain"
)

// CalendarRepository defines persistence for calendars. Single-calendar
// operations combine id and owner id in one predicate (see EventRepository).
type CalendarRepository interface {
	Create(ctx context.Context, cal *domain.Calendar) (*domain.Calendar, error)
	FindByID(ctx context.Context, id, userID int64) (*domain.Calendar, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Calendar, error)
	Update(ctx context.Context, cal *domain.Calendar) (*domain.Calendar, error)
	Delete(ctx context.Context, id, userID int64) error
}

// CreateCalendarInput carries the fields for a new calendar.
type CreateCalendarInput struct {
	Title       string
	Description string
	Color       string
}

// UpdateCalendarInput carries partial calendar changes. Nil = untouched.
type UpdateCalendarInput struct {
	Title       *string
	Description *string
	Color       *string
}

// CalendarService defines use-case operations for calendars. Delete cascades
// to the calendar's events.
type CalendarService interface {
	Create(ctx context.Context, userID int64, in CreateCalendarInput) (*domain.Calendar, error)
	Get(ctx context.Context, userID, id int64) (*domain.Calendar, error)
	List(ctx context.Context, userID int64) ([]*domain.Calendar, error)
	Update(ctx context.Context, userID, id int64, in UpdateCalendarInput) (*domain.Calendar, error)
	Delete(ctx context.Context, userID, id int64) error
}
