package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/neopencil/neopencil-backend/internal/cart"
	"github.com/neopencil/neopencil-backend/internal/catalog"
	"github.com/neopencil/neopencil-backend/internal/checkout"
	"github.com/neopencil/neopencil-backend/internal/config"
	"github.com/neopencil/neopencil-backend/internal/handlers"
	"github.com/neopencil/neopencil-backend/internal/inventory"
	"github.com/neopencil/neopencil-backend/internal/orders"
	"github.com/neopencil/neopencil-backend/internal/store"
	"github.com/neopencil/neopencil-backend/internal/subscriptions"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestID())
	r.Use(handlers.RequestLogger(cfg.Logger))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	handlers.RegisterRoutes(r, cfg)

	return r
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	ctx := context.Background()
	client, err := store.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect document store", zap.Error(err))
	}
	defer client.Close(ctx)

	db := client.Database()
	catalogStore := catalog.NewStore(db)
	cartStore := cart.NewStore(db)
	orderStore := orders.NewStore(db)
	subscriptionStore := subscriptions.NewStore(db)
	eventStore := inventory.NewStore(db)

	checkoutService := checkout.NewService(cartStore, orderStore, catalogStore, eventStore, logger)

	r := setupRouter(handlers.HandlerConfig{
		Catalog:       catalogStore,
		Cart:          cartStore,
		Subscriptions: subscriptionStore,
		Checkout:      checkoutService,
		Diagnostics:   client,
		Logger:        logger,
	})

	addr := ":" + cfg.Port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
