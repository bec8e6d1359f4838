package ports

import (
	"context"
	"time"

	"github.com/dayplan-app/planner-api/internal/core/domain"
)

// EventRangeFilter narrows a listing to events overlapping a window.
// Zero times mean unbounded on that side. UserID is always set by the service.
type EventRangeFilter struct {
	UserID int64
	From   time.Time // start_date >= From
	To     time.Time // end_date <= To
}

// EventRepository defines persistence for calendar events. Every lookup and
// mutation of a single event combines the event id and the owner id in one
// query predicate — a foreign event is indistinguishable from a missing one
// (both domain.ErrNotFound), and updates/deletes cannot race the ownership
// check because the owner filter rides inside the write.
type EventRepository interface {
	Create(ctx context.Context, ev *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id, userID int64) (*domain.Event, error)
	List(ctx context.Context, filter EventRangeFilter) ([]*domain.Event, error)
	Update(ctx context.Context, ev *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id, userID int64) error
	// DeleteByCalendar removes all events of a calendar (cascade on calendar
	// delete).
	DeleteByCalendar(ctx context.Context, calendarID, userID int64) error
}
