package validation

// CreateProductRequest is the payload for POST /api/products. List fields
// left nil get the catalog defaults; InStock defaults to true and
// Inventory to 100 when omitted.
type CreateProductRequest struct {
	Slug        string   `json:"slug" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	BasePrice   *float64 `json:"base_price" validate:"required,gte=0"`
	Colors      []string `json:"colors,omitempty"`
	Textures    []string `json:"textures,omitempty"`
	Features    []string `json:"features,omitempty"`
	Images      []string `json:"images,omitempty"`
	InStock     *bool    `json:"in_stock,omitempty"`
	Inventory   *int     `json:"inventory,omitempty" validate:"omitempty,gte=0"`
}

// AddToCartRequest is the payload for POST /api/cart/add. Quantity
// defaults to 1 when omitted.
type AddToCartRequest struct {
	UserID           string   `json:"user_id" validate:"required"`
	ProductSlug      string   `json:"product_slug" validate:"required"`
	Quantity         int      `json:"quantity" validate:"omitempty,min=1"`
	Color            string   `json:"color,omitempty"`
	Texture          string   `json:"texture,omitempty"`
	SelectedFeatures []string `json:"selected_features,omitempty"`
}

// CheckoutRequest is the payload for POST /api/checkout.
type CheckoutRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// SubscriptionRequest is the payload for POST /api/subscriptions. Plan
// defaults to "monthly" and RefillQuantity to 2 when omitted.
type SubscriptionRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	ProductSlug    string `json:"product_slug" validate:"required"`
	Plan           string `json:"plan,omitempty" validate:"omitempty,oneof=monthly quarterly yearly"`
	RefillQuantity *int   `json:"refill_quantity,omitempty" validate:"omitempty,min=1"`
}
