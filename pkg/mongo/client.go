package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ClientConfig holds document-store connection settings.
type ClientConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// ClientOption configures Client.
type ClientOption func(*ClientConfig)

// Client manages the MongoDB connection.
type Client struct {
	client   *mongo.Client
	database string
}

// NewClient connects to MongoDB and verifies the connection with a ping.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &ClientConfig{
		ConnectTimeout: 10 * time.Second,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.URI == "" {
		return nil, fmt.Errorf("uri is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx) // best-effort close
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Client{client: client, database: cfg.Database}, nil
}

// Database returns the configured database handle.
func (c *Client) Database() *mongo.Database {
	return c.client.Database(c.database)
}

// Collection returns a collection handle in the configured database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.Database().Collection(name)
}

// Health performs a health check.
func (c *Client) Health(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (c *Client) Close(ctx context.Context) error {
	if c.client != nil {
		return c.client.Disconnect(ctx)
	}
	return nil
}

// WithURI sets the connection string.
func WithURI(uri string) ClientOption {
	return func(c *ClientConfig) {
		c.URI = uri
	}
}

// WithDatabase sets the database name.
func WithDatabase(name string) ClientOption {
	return func(c *ClientConfig) {
		c.Database = name
	}
}

// WithConnectTimeout sets the connect/ping timeout.
func WithConnectTimeout(d time.Duration) ClientOption {
	return func(c *ClientConfig) {
		c.ConnectTimeout = d
	}
}
