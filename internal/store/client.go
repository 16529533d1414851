package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/neopencil/neopencil-backend/internal/config"
)

// Client wraps the mongo connection and the application database handle.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	cfg    config.Config
	logger *zap.Logger
}

// Connect dials the document store, verifies the connection with a ping and
// returns a ready Client. Callers own the lifecycle and must Close it.
func Connect(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Client, error) {
	opts := options.Client().ApplyURI(cfg.DatabaseURL)
	mc, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mc.Ping(pingCtx, nil); err != nil {
		_ = mc.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Info("document store connected", zap.String("database", cfg.DatabaseName))

	return &Client{
		client: mc,
		db:     mc.Database(cfg.DatabaseName),
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Database returns the application database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Collection returns a named collection in the application database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Close disconnects from the store.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	return nil
}

// Status describes store reachability and configuration presence for the
// /test probe. It never contains secrets, only set/not-set flags.
type Status struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Status probes the live connection and reports diagnostics.
func (c *Client) Status(ctx context.Context) Status {
	st := Status{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		DatabaseName:     "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if c.cfg.DatabaseURLSet {
		st.DatabaseURL = "set"
	}
	if c.cfg.DatabaseNameSet {
		st.DatabaseName = "set"
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.client.Ping(pingCtx, nil); err != nil {
		st.Database = fmt.Sprintf("error: %s", truncate(err.Error(), 50))
		return st
	}
	st.ConnectionStatus = "connected"
	st.Database = "available"

	names, err := c.db.ListCollectionNames(pingCtx, bson.M{})
	if err != nil {
		st.Database = fmt.Sprintf("connected but error: %s", truncate(err.Error(), 50))
		return st
	}
	if len(names) > 10 {
		names = names[:10]
	}
	st.Collections = names
	st.Database = "connected and working"
	return st
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
