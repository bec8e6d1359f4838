package domain

import "time"

// EventStatusConfirmed is the default status for a newly created event.
const EventStatusConfirmed = "confirmed"

// Event is a scheduled entry in one of the user's calendars.
// Invariant: EndDate is strictly after StartDate.
type Event struct {
	ID          int64     `json:"id" bson:"_id,omitempty"`
	UserID      int64     `json:"user_id" bson:"user_id"`
	CalendarID  int64     `json:"calendar_id" bson:"calendar_id"`
	Title       string    `json:"title" bson:"title"`
	StartDate   time.Time `json:"start_date" bson:"start_date"`
	EndDate     time.Time `json:"end_date" bson:"end_date"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Color       string    `json:"color,omitempty" bson:"color,omitempty"`
	Status      string    `json:"status" bson:"status"`
}

// OwnerID implements Owned.
func (e *Event) OwnerID() int64 { return e.UserID }
