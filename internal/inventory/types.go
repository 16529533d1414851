package inventory

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event reasons.
const (
	ReasonOrder   = "order"
	ReasonRestock = "restock"
	ReasonAdjust  = "adjust"
)

// Event is a signed stock movement recorded in the "inventoryevent"
// collection. Events are an audit trail for reconciliation; no endpoint
// reads them.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductID string             `bson:"product_id" json:"product_id"`
	Delta     int                `bson:"delta" json:"delta"`
	Reason    string             `bson:"reason" json:"reason"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
