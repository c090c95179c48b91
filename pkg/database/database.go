package database

import (
	"context"
	"time"

	"github.com/atomo10/atomo/pkg/config"
	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInstance struct {
	Client   *mongo.Client
	Database *mongo.Database
}

type Health struct {
	Connected   bool     `json:"connected"`
	Database    string   `json:"database"`
	Collections []string `json:"collections"`
	Error       string   `json:"error,omitempty"`
}

const maxHealthCollections = 10

// Connect opens the MongoDB connection described by cfg, retrying with exponential backoff
func Connect(ctx context.Context, cfg *config.Config) (*MongoInstance, error) {
	var instance *MongoInstance

	attempt := 0
	connect := func() error {
		attempt++

		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoConnection))
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("Failed to connect to MongoDB")
			return err
		}

		if err := client.Ping(connectCtx, nil); err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("Failed to ping MongoDB")
			_ = client.Disconnect(context.Background())
			return err
		}

		instance = &MongoInstance{
			Client:   client,
			Database: client.Database(cfg.MongoDatabase),
		}

		return nil
	}

	retry := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), cfg.MongoConnectAttempts-1), ctx)
	if err := backoff.Retry(connect, retry); err != nil {
		return nil, err
	}

	log.Info().Str("database", cfg.MongoDatabase).Msg("Connected to MongoDB")

	instance.createIndexes(ctx)

	return instance, nil
}

func (m *MongoInstance) GetCollection(collectionName string) *mongo.Collection {
	return m.Database.Collection(collectionName)
}

func (m *MongoInstance) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

func (m *MongoInstance) Health(ctx context.Context) *Health {
	health := &Health{
		Database:    m.Database.Name(),
		Collections: []string{},
	}

	if err := m.Client.Ping(ctx, nil); err != nil {
		health.Error = err.Error()
		return health
	}
	health.Connected = true

	collections, err := m.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		health.Error = err.Error()
		return health
	}
	if len(collections) > maxHealthCollections {
		collections = collections[:maxHealthCollections]
	}
	health.Collections = collections

	return health
}
