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

const (
	tasksCollection      = "tasks"
	taskGroupsCollection = "task_groups"
)

type TaskRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewTaskRepository(db *mongo.Database, counters *Counters) *TaskRepository {
	return &TaskRepository{col: db.Collection(tasksCollection), counters: counters}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, tasksCollection)
	if err != nil {
		return nil, err
	}
	t.ID = id

	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id, userID int64) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Task
	if err := r.col.FindOne(ctx, ownedFilter(id, userID)).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID, groupID int64) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := bson.M{"user_id": userID}
	if groupID != 0 {
		q["group_id"] = groupID
	}

	cur, err := r.col.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cur.Close(ctx)

	tasks := []*domain.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.col.FindOneAndUpdate(ctx,
		ownedFilter(t.ID, t.UserID),
		bson.M{"$set": bson.M{
			"group_id":   t.GroupID,
			"title":      t.Title,
			"done":       t.Done,
			"date":       t.Date,
			"recurrence": t.Recurrence,
			"color":      t.Color,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated domain.Task
	if err := res.Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, ownedFilter(id, userID))
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteByGroup(ctx context.Context, groupID, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"group_id": groupID, "user_id": userID}); err != nil {
		return fmt.Errorf("delete tasks of group: %w", err)
	}
	return nil
}

func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "group_id", Value: 1}, {Key: "user_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// TaskGroupRepository persists task groups.
type TaskGroupRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewTaskGroupRepository(db *mongo.Database, counters *Counters) *TaskGroupRepository {
	return &TaskGroupRepository{col: db.Collection(taskGroupsCollection), counters: counters}
}

func (r *TaskGroupRepository) Create(ctx context.Context, g *domain.TaskGroup) (*domain.TaskGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, taskGroupsCollection)
	if err != nil {
		return nil, err
	}
	g.ID = id

	if _, err := r.col.InsertOne(ctx, g); err != nil {
		return nil, fmt.Errorf("insert task group: %w", err)
	}
	return g, nil
}

func (r *TaskGroupRepository) FindByID(ctx context.Context, id, userID int64) (*domain.TaskGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var g domain.TaskGroup
	if err := r.col.FindOne(ctx, ownedFilter(id, userID)).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find task group: %w", err)
	}
	return &g, nil
}

func (r *TaskGroupRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.TaskGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list task groups: %w", err)
	}
	defer cur.Close(ctx)

	groups := []*domain.TaskGroup{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("decode task groups: %w", err)
	}
	return groups, nil
}

func (r *TaskGroupRepository) Update(ctx context.Context, g *domain.TaskGroup) (*domain.TaskGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.col.FindOneAndUpdate(ctx,
		ownedFilter(g.ID, g.UserID),
		bson.M{"$set": bson.M{
			"title": g.Title,
			"color": g.Color,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated domain.TaskGroup
	if err := res.Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update task group: %w", err)
	}
	return &updated, nil
}

func (r *TaskGroupRepository) Delete(ctx context.Context, id, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, ownedFilter(id, userID))
	if err != nil {
		return fmt.Errorf("delete task group: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskGroupRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
