package orders

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/neopencil/neopencil-backend/internal/cart"
)

// Order statuses. Set at creation only; no endpoint transitions them.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Order is a document in the "order" collection. Items is a point-in-time
// snapshot of the cart rows at checkout, decoupled from live cart items.
type Order struct {
	ID              primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          string                 `bson:"user_id" json:"user_id"`
	Items           []cart.Item            `bson:"items" json:"items"`
	TotalAmount     float64                `bson:"total_amount" json:"total_amount"`
	Status          string                 `bson:"status" json:"status"`
	SubscriptionID  string                 `bson:"subscription_id,omitempty" json:"subscription_id,omitempty"`
	ShippingAddress map[string]interface{} `bson:"shipping_address,omitempty" json:"shipping_address,omitempty"`
	PaymentRef      string                 `bson:"payment_ref,omitempty" json:"payment_ref,omitempty"`
}
