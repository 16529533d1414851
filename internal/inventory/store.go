package inventory

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Store encapsulates operations on the inventoryevent collection.
type Store struct {
	coll    *mongo.Collection
	nowFunc func() time.Time
}

// NewStore returns a Store backed by the "inventoryevent" collection.
func NewStore(db *mongo.Database) *Store {
	return &Store{
		coll:    db.Collection("inventoryevent"),
		nowFunc: time.Now,
	}
}

// Append records a stock movement event.
func (s *Store) Append(ctx context.Context, ev Event) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = s.nowFunc()
	}
	if ev.Reason == "" {
		ev.Reason = ReasonOrder
	}
	if _, err := s.coll.InsertOne(ctx, ev); err != nil {
		return fmt.Errorf("insert inventory event: %w", err)
	}
	return nil
}
