package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// CounterRepository implements sequence.Allocator on top of a MongoDB
// collection. Each named sequence is a single document; allocation is one
// atomic findOneAndUpdate, so concurrent imports never hand out the same
// value twice.
type CounterRepository struct {
	collection *mongo.Collection
}

// NewCounterRepository creates a new CounterRepository
func NewCounterRepository(database *mongo.Database) *CounterRepository {
	return &CounterRepository{collection: database.Collection(countersCollection)}
}

type counterDoc struct {
	Name string `bson:"_id"`
	Base int64  `bson:"base"`
	Seq  int64  `bson:"seq"`
}

// Next increments the named sequence and returns its new value. The base is
// written only on first creation via $setOnInsert, so an existing sequence
// keeps counting from where it left off even across year boundaries.
func (r *CounterRepository) Next(ctx context.Context, name string, base int64) (int64, error) {
	update := bson.M{
		"$inc":         bson.M{"seq": 1},
		"$setOnInsert": bson.M{"base": base},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": name}, update, opts).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to advance counter %q: %w", name, err)
	}
	return doc.Base + doc.Seq, nil
}

// Current reads the present value of a sequence without advancing it.
// A sequence that was never allocated reports zero.
func (r *CounterRepository) Current(ctx context.Context, name string) (int64, error) {
	var doc counterDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter %q: %w", name, err)
	}
	return doc.Base + doc.Seq, nil
}
