package ports

import (
	"context"
	"time"

	"github.com/dayplan-app/planner-api/internal/core/domain"
)

// CreateEventInput carries all data for a new event. CalendarID is validated
// against the acting user before the insert.
type CreateEventInput struct {
	Title       string
	CalendarID  int64
	Start       time.Time
	End         time.Time
	Description string
	Color       string
}

// UpdateEventInput carries partial changes. Nil = untouched. Start and End
// must be supplied together; the updated range must stay strictly ordered.
type UpdateEventInput struct {
	Title       *string
	CalendarID  *int64
	Start       *time.Time
	End         *time.Time
	Description *string
	Color       *string
}

// EventService defines use-case operations for events. The user id always
// comes from verified token claims, never from the request payload.
type EventService interface {
	Create(ctx context.Context, userID int64, in CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, userID, id int64) (*domain.Event, error)
	List(ctx context.Context, userID int64, from, to time.Time) ([]*domain.Event, error)
	Update(ctx context.Context, userID, id int64, in UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, userID, id int64) error
}
