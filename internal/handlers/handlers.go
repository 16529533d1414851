package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/neopencil/neopencil-backend/internal/cart"
	"github.com/neopencil/neopencil-backend/internal/catalog"
	"github.com/neopencil/neopencil-backend/internal/checkout"
	"github.com/neopencil/neopencil-backend/internal/store"
	"github.com/neopencil/neopencil-backend/internal/subscriptions"
	"github.com/neopencil/neopencil-backend/internal/validation"
)

// CatalogStore is the catalog access the handlers need.
type CatalogStore interface {
	List(ctx context.Context, limit int64) ([]catalog.Product, error)
	Create(ctx context.Context, p catalog.Product) error
	GetBySlug(ctx context.Context, slug string) (*catalog.StoredProduct, error)
	GetByID(ctx context.Context, id string) (*catalog.StoredProduct, error)
	Inventory(ctx context.Context, slug string) (*catalog.InventoryStatus, error)
}

// CartStore is the cart access the handlers need.
type CartStore interface {
	Add(ctx context.Context, item cart.Item) error
	ListByUser(ctx context.Context, userID string) ([]cart.Item, error)
}

// SubscriptionStore persists new subscriptions.
type SubscriptionStore interface {
	Create(ctx context.Context, sub subscriptions.Subscription) (string, error)
}

// CheckoutService runs the checkout workflow.
type CheckoutService interface {
	Checkout(ctx context.Context, userID string) (string, error)
}

// StatusReporter provides the /test diagnostics.
type StatusReporter interface {
	Status(ctx context.Context) store.Status
}

// HandlerConfig groups dependencies for the API handlers.
type HandlerConfig struct {
	Catalog       CatalogStore
	Cart          CartStore
	Subscriptions SubscriptionStore
	Checkout      CheckoutService
	Diagnostics   StatusReporter
	Logger        *zap.Logger
}

// Product listing cap; there is no pagination cursor.
const productListLimit = 50

type api struct {
	cfg HandlerConfig
	v   *validatorv10.Validate
}

// RegisterRoutes registers all API routes on the engine.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	a := &api{cfg: cfg, v: validation.New()}

	r.GET("/", a.root)
	r.GET("/api/products", a.listProducts)
	r.POST("/api/products", a.createProduct)
	r.POST("/api/cart/add", a.addToCart)
	r.GET("/api/cart/:user_id", a.getCart)
	r.POST("/api/checkout", a.checkout)
	r.POST("/api/subscriptions", a.createSubscription)
	r.GET("/api/inventory/:slug", a.getInventory)
	r.GET("/test", a.diagnostics)
}

func (a *api) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "NeoPencil backend running"})
}

func (a *api) listProducts(c *gin.Context) {
	products, err := a.cfg.Catalog.List(c.Request.Context(), productListLimit)
	if err != nil {
		a.serverError(c, "list products failed", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (a *api) createProduct(c *gin.Context) {
	var req validation.CreateProductRequest
	if err := validation.BindAndValidate(c, &req, a.v); err != nil {
		return
	}

	p := catalog.Product{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		BasePrice:   *req.BasePrice,
		Colors:      req.Colors,
		Textures:    req.Textures,
		Features:    req.Features,
		Images:      req.Images,
		InStock:     true,
		Inventory:   catalog.DefaultInventory,
	}
	if req.InStock != nil {
		p.InStock = *req.InStock
	}
	if req.Inventory != nil {
		p.Inventory = *req.Inventory
	}

	if err := a.cfg.Catalog.Create(c.Request.Context(), p); err != nil {
		if errors.Is(err, catalog.ErrSlugExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already exists"})
			return
		}
		a.serverError(c, "create product failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (a *api) addToCart(c *gin.Context) {
	var req validation.AddToCartRequest
	if err := validation.BindAndValidate(c, &req, a.v); err != nil {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx := c.Request.Context()
	prod, err := a.cfg.Catalog.GetBySlug(ctx, req.ProductSlug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		a.serverError(c, "product lookup failed", err)
		return
	}

	// unit_price is captured here; checkout never re-reads the catalog price.
	item := cart.Item{
		UserID:           req.UserID,
		ProductID:        prod.ID.Hex(),
		Quantity:         req.Quantity,
		Color:            req.Color,
		Texture:          req.Texture,
		SelectedFeatures: req.SelectedFeatures,
		UnitPrice:        prod.BasePrice,
	}
	if err := a.cfg.Cart.Add(ctx, item); err != nil {
		a.serverError(c, "add to cart failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (a *api) getCart(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("user_id")

	items, err := a.cfg.Cart.ListByUser(ctx, userID)
	if err != nil {
		a.serverError(c, "list cart failed", err)
		return
	}

	// Join each row with the current product state. Rows whose product has
	// vanished are returned without the nested product.
	result := make([]cart.EnrichedItem, 0, len(items))
	for _, it := range items {
		enriched := cart.EnrichedItem{Item: it}
		if prod, err := a.cfg.Catalog.GetByID(ctx, it.ProductID); err == nil {
			enriched.Product = &prod.Product
		}
		result = append(result, enriched)
	}
	c.JSON(http.StatusOK, result)
}

func (a *api) checkout(c *gin.Context) {
	var req validation.CheckoutRequest
	if err := validation.BindAndValidate(c, &req, a.v); err != nil {
		return
	}

	orderID, err := a.cfg.Checkout.Checkout(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		a.serverError(c, "checkout failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "order_id": orderID})
}

func (a *api) createSubscription(c *gin.Context) {
	var req validation.SubscriptionRequest
	if err := validation.BindAndValidate(c, &req, a.v); err != nil {
		return
	}
	if req.Plan == "" {
		req.Plan = subscriptions.PlanMonthly
	}
	refill := 2
	if req.RefillQuantity != nil {
		refill = *req.RefillQuantity
	}

	ctx := c.Request.Context()
	prod, err := a.cfg.Catalog.GetBySlug(ctx, req.ProductSlug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		a.serverError(c, "product lookup failed", err)
		return
	}

	sub := subscriptions.Subscription{
		UserID:         req.UserID,
		ProductID:      prod.ID.Hex(),
		Plan:           req.Plan,
		Status:         subscriptions.StatusActive,
		RefillQuantity: refill,
	}
	subID, err := a.cfg.Subscriptions.Create(ctx, sub)
	if err != nil {
		a.serverError(c, "create subscription failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "subscription_id": subID})
}

func (a *api) getInventory(c *gin.Context) {
	status, err := a.cfg.Catalog.Inventory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		a.serverError(c, "inventory lookup failed", err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (a *api) diagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, a.cfg.Diagnostics.Status(c.Request.Context()))
}

// serverError logs the detail and returns a generic 500; internals never
// reach the wire.
func (a *api) serverError(c *gin.Context, msg string, err error) {
	a.cfg.Logger.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
