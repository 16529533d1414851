package cart

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/neopencil/neopencil-backend/internal/catalog"
)

// Item is a row in the "cartitem" collection. unit_price is a snapshot of
// the product's base_price at add time; a later catalog price change does
// not affect rows already in the cart. Repeated adds of the same product
// create separate rows.
type Item struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID           string             `bson:"user_id" json:"user_id"`
	ProductID        string             `bson:"product_id" json:"product_id"`
	Quantity         int                `bson:"quantity" json:"quantity"`
	Color            string             `bson:"color,omitempty" json:"color,omitempty"`
	Texture          string             `bson:"texture,omitempty" json:"texture,omitempty"`
	SelectedFeatures []string           `bson:"selected_features" json:"selected_features"`
	UnitPrice        float64            `bson:"unit_price" json:"unit_price"`
}

// EnrichedItem is an Item joined at read time with the current state of
// its product. Product display fields are live; unit_price is not.
// Product is nil when the referenced product no longer exists.
type EnrichedItem struct {
	Item
	Product *catalog.Product `json:"product,omitempty"`
}
