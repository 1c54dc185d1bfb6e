package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/TdivyanshC/Swadeshi-Hind-Party/internal/platform/config"
)

// Client wraps the mongo driver client with the database handle and health
// checking. It is constructed once in main and injected into stores and the
// health probe; nothing else reaches the driver directly.
type Client struct {
	*mongo.Client
	Database *mongo.Database
}

// New connects to the deployment named by cfg and verifies it answers a ping
// before returning. Pooling is handled by the driver.
func New(ctx context.Context, cfg config.Config) (*Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return &Client{
		Client:   client,
		Database: client.Database(cfg.DBName),
	}, nil
}

// Health checks if the deployment is reachable. Used by the health endpoint;
// it deliberately touches no collection.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx, readpref.Primary())
}

// Close tears down the connection pool.
func (c *Client) Close(ctx context.Context) error {
	return c.Disconnect(ctx)
}
