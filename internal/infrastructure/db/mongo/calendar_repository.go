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
)

const calendarsCollection = "calendars"

type CalendarRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewCalendarRepository(db *mongo.Database, counters *Counters) *CalendarRepository {
	return &CalendarRepository{col: db.Collection(calendarsCollection), counters: counters}
}

func (r *CalendarRepository) Create(ctx context.Context, cal *domain.Calendar) (*domain.Calendar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, calendarsCollection)
	if err != nil {
		return nil, err
	}
	cal.ID = id

	if _, err := r.col.InsertOne(ctx, cal); err != nil {
		return nil, fmt.Errorf("insert calendar: %w", err)
	}
	return cal, nil
}

func (r *CalendarRepository) FindByID(ctx context.Context, id, userID int64) (*domain.Calendar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cal domain.Calendar
	if err := r.col.FindOne(ctx, ownedFilter(id, userID)).Decode(&cal); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find calendar: %w", err)
	}
	return &cal, nil
}

func (r *CalendarRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Calendar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list calendars: %w", err)
	}
	defer cur.Close(ctx)

	calendars := []*domain.Calendar{}
	if err := cur.All(ctx, &calendars); err != nil {
		return nil, fmt.Errorf("decode calendars: %w", err)
	}
	return calendars, nil
}

func (r *CalendarRepository) Update(ctx context.Context, cal *domain.Calendar) (*domain.Calendar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.col.FindOneAndUpdate(ctx,
		ownedFilter(cal.ID, cal.UserID),
		bson.M{"$set": bson.M{
			"title":       cal.Title,
			"description": cal.Description,
			"color":       cal.Color,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated domain.Calendar
	if err := res.Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update calendar: %w", err)
	}
	return &updated, nil
}

func (r *CalendarRepository) Delete(ctx context.Context, id, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, ownedFilter(id, userID))
	if err != nil {
		return fmt.Errorf("delete calendar: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CalendarRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
