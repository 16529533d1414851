package subscriptions

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store encapsulates operations on the subscription collection.
type Store struct {
	coll *mongo.Collection
}

// NewStore returns a Store backed by the "subscription" collection.
func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection("subscription")}
}

// Create inserts a new subscription and returns its generated hex id.
func (s *Store) Create(ctx context.Context, sub Subscription) (string, error) {
	if sub.Plan == "" {
		sub.Plan = PlanMonthly
	}
	if sub.Status == "" {
		sub.Status = StatusActive
	}
	res, err := s.coll.InsertOne(ctx, sub)
	if err != nil {
		return "", fmt.Errorf("insert subscription: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
