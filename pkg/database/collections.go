package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const LinesCollection = "lines"

func (m *MongoInstance) createIndexes(ctx context.Context) {
	createLinesIndexes(ctx, m.GetCollection(LinesCollection))
}

func createLinesIndexes(ctx context.Context, linesCollection *mongo.Collection) {
	_, err := linesCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "stops.id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "modificationdatetime", Value: -1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
