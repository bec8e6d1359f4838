package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// Counters hands out sequential int64 ids per collection, backed by an atomic
// findOneAndUpdate on a counters document. Mongo has no auto-increment; the
// API contract uses small integer ids.
type Counters struct {
	coll *mongo.Collection
}

func NewCounters(db *mongo.Database) *Counters {
	return &Counters{coll: db.Collection(countersCollection)}
}

// Next returns the next id for the named sequence, creating the sequence on
// first use.
func (c *Counters) Next(ctx context.Context, sequence string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := c.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": sequence},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next id for %q: %w", sequence, err)
	}
	return doc.Seq, nil
}
