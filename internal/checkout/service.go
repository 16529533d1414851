package checkout

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/neopencil/neopencil-backend/internal/cart"
	"github.com/neopencil/neopencil-backend/internal/inventory"
	"github.com/neopencil/neopencil-backend/internal/orders"
)

// ErrEmptyCart indicates a checkout attempt with no cart rows for the user.
var ErrEmptyCart = errors.New("cart is empty")

// CartStore is the cart access the workflow needs.
type CartStore interface {
	ListByUser(ctx context.Context, userID string) ([]cart.Item, error)
	ClearUser(ctx context.Context, userID string) error
}

// OrderStore persists new orders.
type OrderStore interface {
	Create(ctx context.Context, o orders.Order) (string, error)
}

// InventoryAdjuster applies stock decrements on the catalog.
type InventoryAdjuster interface {
	DecrementInventory(ctx context.Context, productID string, qty int) error
}

// EventStore appends stock movement audit events.
type EventStore interface {
	Append(ctx context.Context, ev inventory.Event) error
}

// Service runs the checkout workflow: load cart, compute total, snapshot
// an order, decrement inventory per item, clear the cart. The sequence is
// non-transactional; only order creation failure aborts it.
type Service struct {
	carts  CartStore
	orders OrderStore
	stock  InventoryAdjuster
	events EventStore
	logger *zap.Logger
}

// NewService wires a checkout Service with its stores injected.
func NewService(carts CartStore, orderStore OrderStore, stock InventoryAdjuster, events EventStore, logger *zap.Logger) *Service {
	return &Service{
		carts:  carts,
		orders: orderStore,
		stock:  stock,
		events: events,
		logger: logger,
	}
}

// Checkout executes the workflow for a user and returns the new order id.
//
// Steps after order creation are best-effort: a failed inventory decrement
// is logged and recorded as a compensating event but never surfaced to the
// caller, and the cart is cleared unconditionally. No idempotency key is
// involved; two calls with a refilled cart produce two orders.
func (s *Service) Checkout(ctx context.Context, userID string) (string, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	var total float64
	snapshot := make([]cart.Item, 0, len(items))
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
		it.ID = primitive.NilObjectID // snapshot rows carry no live cart item id
		snapshot = append(snapshot, it)
	}

	orderID, err := s.orders.Create(ctx, orders.Order{
		UserID:      userID,
		Items:       snapshot,
		TotalAmount: total,
		Status:      orders.StatusPending,
	})
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	for _, it := range items {
		if err := s.stock.DecrementInventory(ctx, it.ProductID, it.Quantity); err != nil {
			// The order stands; record the unapplied delta for reconciliation.
			s.logger.Warn("inventory decrement failed",
				zap.String("order_id", orderID),
				zap.String("product_id", it.ProductID),
				zap.Int("quantity", it.Quantity),
				zap.Error(err),
			)
			s.appendEvent(ctx, it.ProductID, it.Quantity, inventory.ReasonAdjust)
			continue
		}
		s.appendEvent(ctx, it.ProductID, -it.Quantity, inventory.ReasonOrder)
	}

	if err := s.carts.ClearUser(ctx, userID); err != nil {
		return "", fmt.Errorf("clear cart: %w", err)
	}

	s.logger.Info("checkout completed",
		zap.String("order_id", orderID),
		zap.String("user_id", userID),
		zap.Float64("total", total),
		zap.Int("items", len(items)),
	)
	return orderID, nil
}

// appendEvent is best-effort; the audit trail never fails a checkout.
func (s *Service) appendEvent(ctx context.Context, productID string, delta int, reason string) {
	ev := inventory.Event{ProductID: productID, Delta: delta, Reason: reason}
	if err := s.events.Append(ctx, ev); err != nil {
		s.logger.Warn("inventory event append failed",
			zap.String("product_id", productID),
			zap.Int("delta", delta),
			zap.Error(err),
		)
	}
}
