package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomo10/atomo/pkg/ctdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// lineDocument keeps the ObjectID inside the database package, callers only ever see its hex string
type lineDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	ctdf.Line `bson:",inline"`
}

func (d *lineDocument) toLine() *ctdf.Line {
	line := d.Line
	line.PrimaryIdentifier = d.ID.Hex()
	line.ApplyDefaults()

	return &line
}

// LineStore persists lines as single documents in MongoDB
type LineStore struct {
	collection *mongo.Collection
}

func NewLineStore(instance *MongoInstance) *LineStore {
	return &LineStore{
		collection: instance.GetCollection(LinesCollection),
	}
}

func (s *LineStore) InsertLine(ctx context.Context, line *ctdf.Line) (string, error) {
	document := lineDocument{
		ID:   primitive.NewObjectID(),
		Line: *line,
	}

	if _, err := s.collection.InsertOne(ctx, document); err != nil {
		return "", err
	}

	return document.ID.Hex(), nil
}

func (s *LineStore) FindLine(ctx context.Context, identifier string) (*ctdf.Line, error) {
	query, err := (&ctdf.QueryLine{PrimaryIdentifier: identifier}).ToBson()
	if err != nil {
		return nil, err
	}

	var document lineDocument
	err = s.collection.FindOne(ctx, query).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", ctdf.ErrNotFound, identifier)
	} else if err != nil {
		return nil, err
	}

	return document.toLine(), nil
}

func (s *LineStore) FindLines(ctx context.Context) ([]*ctdf.Line, error) {
	cursor, err := s.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	lines := []*ctdf.Line{}
	for cursor.Next(ctx) {
		var document lineDocument
		if err := cursor.Decode(&document); err != nil {
			return nil, err
		}

		lines = append(lines, document.toLine())
	}

	return lines, cursor.Err()
}

// UpdateLine applies update and reports whether a document matched.
// With an ExpectedVersion set a version mismatch is reported as no match.
func (s *LineStore) UpdateLine(ctx context.Context, identifier string, update *ctdf.LineUpdate) (bool, error) {
	query, err := (&ctdf.QueryLine{PrimaryIdentifier: identifier, Version: update.ExpectedVersion}).ToBson()
	if err != nil {
		return false, err
	}

	set := bson.M{"modificationdatetime": update.ModificationDateTime}
	if update.Stops != nil {
		set["stops"] = *update.Stops
	}
	if update.Schedules != nil {
		set["schedules"] = *update.Schedules
	}

	operations := bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}
	if update.PushStop != nil {
		operations["$push"] = bson.M{"stops": update.PushStop}
	}

	result, err := s.collection.UpdateOne(ctx, query, operations)
	if err != nil {
		return false, err
	}

	return result.MatchedCount > 0, nil
}
