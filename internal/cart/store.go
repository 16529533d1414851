package cart

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store encapsulates operations on the cartitem collection.
type Store struct {
	coll *mongo.Collection
}

// NewStore returns a cart Store backed by the "cartitem" collection.
func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection("cartitem")}
}

// Add appends a new cart row. No merge with existing rows for the same
// product.
func (s *Store) Add(ctx context.Context, item Item) error {
	if item.SelectedFeatures == nil {
		item.SelectedFeatures = []string{}
	}
	if _, err := s.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// ListByUser returns every cart row for the user.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]Item, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find cart items: %w", err)
	}
	items := []Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return items, nil
}

// ClearUser deletes every cart row for the user.
func (s *Store) ClearUser(ctx context.Context, userID string) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
