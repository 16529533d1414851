package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSlugExists indicates a create attempt with an already-used slug.
var ErrSlugExists = errors.New("slug already exists")

// ErrNotFound indicates no product matched the given slug or id.
var ErrNotFound = errors.New("product not found")

// StoredProduct is a Product together with its document id. The id is
// needed internally for cart and inventory references but is never part
// of the product JSON shape.
type StoredProduct struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Product `bson:",inline"`
}

// Store encapsulates operations on the product collection.
type Store struct {
	coll *mongo.Collection
}

// NewStore returns a catalog Store backed by the "product" collection.
func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection("product")}
}

// List returns up to limit products in natural collection order.
func (s *Store) List(ctx context.Context, limit int64) ([]Product, error) {
	opts := options.Find().SetLimit(limit)
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	products := []Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// Create inserts a new product. Returns ErrSlugExists when a product with
// the same slug is already present; the existing product is untouched.
func (s *Store) Create(ctx context.Context, p Product) error {
	err := s.coll.FindOne(ctx, bson.M{"slug": p.Slug}).Err()
	if err == nil {
		return ErrSlugExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check slug: %w", err)
	}

	p.ApplyDefaults()
	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetBySlug fetches a product by slug. Returns ErrNotFound when absent.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*StoredProduct, error) {
	var p StoredProduct
	err := s.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product by slug: %w", err)
	}
	return &p, nil
}

// GetByID fetches a product by its hex document id.
func (s *Store) GetByID(ctx context.Context, id string) (*StoredProduct, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var p StoredProduct
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return &p, nil
}

// Inventory returns the stock view for a slug. Read-only, no locking.
func (s *Store) Inventory(ctx context.Context, slug string) (*InventoryStatus, error) {
	p, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &InventoryStatus{Inventory: p.Inventory, InStock: p.InStock}, nil
}

// DecrementInventory applies an atomic $inc of -qty to the product's
// inventory count. Returns ErrNotFound when the id is malformed or no
// product matched.
func (s *Store) DecrementInventory(ctx context.Context, productID string, qty int) error {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"inventory": -qty}},
	)
	if err != nil {
		return fmt.Errorf("decrement inventory: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
