package app

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/guttosm/tradeseed/config"
	"github.com/guttosm/tradeseed/internal/storage"
)

// mongoConnect is an indirection for unit testing; defaults to mongo.Connect
var mongoConnect = mongo.Connect

// InitMongo connects to MongoDB using the provided configuration and returns
// a handle to the configured database.
//
// Behavior:
//   - Applies cfg.Mongo.URI and bounds server selection by cfg.Mongo.Timeout.
//   - Pings the primary to validate connectivity; the client is disconnected
//     again if the ping fails.
//
// Example usage:
//
//	db, err := app.InitMongo(ctx, config.AppConfig)
//	if err != nil {
//	    log.Fatalf("failed to connect: %v", err)
//	}
//	defer db.Client().Disconnect(ctx)
func InitMongo(ctx context.Context, cfg config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetServerSelectionTimeout(cfg.Mongo.Timeout).
		SetAppName("tradeseed")

	client, err := mongoConnect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client.Database(cfg.Mongo.Database), nil
}

// disconnect releases the client behind db; overridden in tests where the
// client is owned by the test harness.
var disconnect = func(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}

// newRepository builds the repository used by the API and the seeder.
func newRepository(db *mongo.Database) storage.DocumentRepository {
	return storage.NewDocumentRepository(db, storage.WithClose(func(ctx context.Context) error {
		return disconnect(ctx, db)
	}))
}

// mongoOpener is an indirection used by InitializeApp and the seed connector;
// overridden in tests to avoid real connections.
var mongoOpener = InitMongo
