package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dayplan-app/planner-api/internal/core/domain"
	"github.com/dayplan-app/planner-api/internal/core/ports"
)

const eventsCollection = "events"

type EventRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewEventRepository(db *mongo.Database, counters *Counters) *EventRepository {
	return &EventRepository{col: db.Collection(eventsCollection), counters: counters}
}

// ownedFilter is the predicate used for every single-event operation: id and
// owner in the same query, so a foreign event behaves exactly like a missing
// one and mutations cannot race the ownership check.
func ownedFilter(id, userID int64) bson.M {
	return bson.M{"_id": id, "user_id": userID}
}

func (r *EventRepository) Create(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, eventsCollection)
	if err != nil {
		return nil, err
	}
	ev.ID = id

	if _, err := r.col.InsertOne(ctx, ev); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return ev, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id, userID int64) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ev domain.Event
	if err := r.col.FindOne(ctx, ownedFilter(id, userID)).Decode(&ev); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &ev, nil
}

func (r *EventRepository) List(ctx context.Context, filter ports.EventRangeFilter) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := bson.M{"user_id": filter.UserID}
	if !filter.From.IsZero() {
		q["start_date"] = bson.M{"$gte": filter.From}
	}
	if !filter.To.IsZero() {
		q["end_date"] = bson.M{"$lte": filter.To}
	}

	cur, err := r.col.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	events := []*domain.Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.col.FindOneAndUpdate(ctx,
		ownedFilter(ev.ID, ev.UserID),
		bson.M{"$set": bson.M{
			"calendar_id": ev.CalendarID,
			"title":       ev.Title,
			"start_date":  ev.StartDate,
			"end_date":    ev.EndDate,
			"description": ev.Description,
			"color":       ev.Color,
			"status":      ev.Status,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated domain.Event
	if err := res.Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return &updated, nil
}

func (r *EventRepository) Delete(ctx context.Context, id, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, ownedFilter(id, userID))
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EventRepository) DeleteByCalendar(ctx context.Context, calendarID, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"calendar_id": calendarID, "user_id": userID}); err != nil {
		return fmt.Errorf("delete events of calendar: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes backing the scoped listing queries.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "start_date", Value: 1}}},
		{Keys: bson.D{{Key: "calendar_id", Value: 1}, {Key: "user_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
