package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blogger/config"
	"blogger/logger"
)

const (
	CollectionBlogs = "blogs"
	CollectionUsers = "users"
)

var (
	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	return Connect(ctx, config.GetConfig().Mongo)
}

// Connect dials cfg, pings the primary and ensures indexes. A failed attempt
// leaves no client behind, so Connect can be called again.
func Connect(ctx context.Context, cfg config.MongoConfig) error {
	mu.Lock()
	defer mu.Unlock()
	if client != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		disconnect(cl)
		return fmt.Errorf("ping mongo: %w", err)
	}
	d := cl.Database(cfg.Database)
	if err := ensureIndexes(ctx, d); err != nil {
		disconnect(cl)
		return fmt.Errorf("ensure indexes: %w", err)
	}

	client, db = cl, d
	logger.Log.Infof("MongoDB connected (database=%s) and indexes ensured", cfg.Database)
	return nil
}

func disconnect(cl *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cl.Disconnect(ctx); err != nil {
		logger.Log.Warnf("failed to disconnect mongo client: %v", err)
	}
}

func Client() *mongo.Client {
	mu.Lock()
	defer mu.Unlock()
	return client
}

func Database() *mongo.Database {
	mu.Lock()
	defer mu.Unlock()
	return db
}

// Ping checks the primary is reachable; used by the health route.
func Ping(ctx context.Context) error {
	d := Database()
	if d == nil {
		return mongo.ErrClientDisconnected
	}
	return d.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Disconnect closes the global client if Init succeeded.
func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()
	if client == nil {
		return nil
	}
	err := client.Disconnect(ctx)
	client, db = nil, nil
	return err
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// blogs: listing order, per-author listing, and the title/description
	// lookups behind the duplicate check. None of them are unique: the
	// duplicate rule spans two fields with OR and is enforced by the service.
	blogs := d.Collection(CollectionBlogs)
	if _, err := blogs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("idx_created_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "createdBy", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_created_by_created_at"),
		},
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("idx_title"),
		},
		{
			Keys:    bson.D{{Key: "description", Value: 1}},
			Options: options.Index().SetName("idx_description"),
		},
	}); err != nil {
		return err
	}

	users := d.Collection(CollectionUsers)
	if _, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("uniq_username").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
	}); err != nil {
		return err
	}
	return nil
}
