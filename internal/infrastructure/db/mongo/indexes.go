package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes of every collection. Called once at
// startup, before the server accepts traffic; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	counters := NewCounters(db)
	repos := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		NewUserRepository(db, counters),
		NewCalendarRepository(db, counters),
		NewEventRepository(db, counters),
		NewTaskRepository(db, counters),
		NewTaskGroupRepository(db, counters),
		NewActivityRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
