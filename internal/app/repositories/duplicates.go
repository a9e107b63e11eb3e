package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// uniqueField pairs a stored field key with the label reported back to the
// caller when a clash is found.
type uniqueField struct {
	key   string
	label string
	value string
}

// findDuplicateFields probes a collection for documents that collide with the
// candidate on any unique field. It returns the labels of the clashing fields
// in the order given, so skip reasons read the same across imports. Empty
// candidate values are not probed.
func findDuplicateFields(ctx context.Context, collection *mongo.Collection, fields []uniqueField) ([]string, error) {
	var or []bson.M
	for _, f := range fields {
		if f.value != "" {
			or = append(or, bson.M{f.key: f.value})
		}
	}
	if len(or) == 0 {
		return nil, nil
	}

	cursor, err := collection.Find(ctx, bson.M{"$or": or})
	if err != nil {
		return nil, fmt.Errorf("error probing for duplicates: %w", err)
	}
	defer cursor.Close(ctx)

	matched := make(map[string]bool)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding duplicate probe result: %w", err)
		}
		for _, f := range fields {
			if f.value == "" {
				continue
			}
			if stored, ok := doc[f.key].(string); ok && stored == f.value {
				matched[f.label] = true
			}
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error probing for duplicates: %w", err)
	}

	var labels []string
	for _, f := range fields {
		if matched[f.label] {
			matched[f.label] = false
			labels = append(labels, f.label)
		}
	}
	return labels, nil
}
