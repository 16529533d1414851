package orders

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store encapsulates operations on the order collection.
type Store struct {
	coll *mongo.Collection
}

// NewStore returns an orders Store backed by the "order" collection.
func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection("order")}
}

// Create persists a new order and returns its generated hex id.
func (s *Store) Create(ctx context.Context, o Order) (string, error) {
	if o.Status == "" {
		o.Status = StatusPending
	}
	res, err := s.coll.InsertOne(ctx, o)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
