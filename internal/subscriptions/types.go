package subscriptions

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subscription plans.
const (
	PlanMonthly   = "monthly"
	PlanQuarterly = "quarterly"
	PlanYearly    = "yearly"
)

// Subscription statuses. Set at creation only.
const (
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCancelled = "cancelled"
)

// Subscription is a recurring-refill record in the "subscription"
// collection. A user may hold any number of active subscriptions to the
// same product.
type Subscription struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         string             `bson:"user_id" json:"user_id"`
	ProductID      string             `bson:"product_id" json:"product_id"`
	Plan           string             `bson:"plan" json:"plan"`
	Status         string             `bson:"status" json:"status"`
	RefillQuantity int                `bson:"refill_quantity" json:"refill_quantity"`
}
