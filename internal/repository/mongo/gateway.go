package mongo

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Gateway holds the process-wide document store connection. The first
// caller establishes it; concurrent callers share the same attempt and
// its outcome, success or failure, is cached for the process lifetime.
type Gateway struct {
	uri    string
	dbName string

	once   sync.Once
	client *mongo.Client
	err    error
}

// NewGateway creates a Gateway for the given connection string and
// database name. No connection is made until first use.
func NewGateway(uri, dbName string) *Gateway {
	return &Gateway{uri: uri, dbName: dbName}
}

func (g *Gateway) connect(ctx context.Context) (*mongo.Client, error) {
	g.once.Do(func() {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(g.uri))
		if err != nil {
			g.err = fmt.Errorf("failed to connect to mongodb: %w", err)
			return
		}
		g.client = client
	})

	return g.client, g.err
}

// Database returns the configured database handle, connecting lazily.
func (g *Gateway) Database(ctx context.Context) (*mongo.Database, error) {
	client, err := g.connect(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(g.dbName), nil
}

// Collection returns a handle to the named collection, connecting lazily.
func (g *Gateway) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := g.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Ping verifies the server is reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	client, err := g.connect(ctx)
	if err != nil {
		return err
	}
	return client.Ping(ctx, readpref.Primary())
}

// Close disconnects the shared client. The connection is never closed
// in normal operation; this hook exists for shutdown and clean test runs.
func (g *Gateway) Close(ctx context.Context) error {
	if g.client == nil {
		return nil
	}
	if err := g.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	return nil
}
