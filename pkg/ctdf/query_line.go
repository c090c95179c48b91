package ctdf

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QueryLine struct {
	PrimaryIdentifier string
	Version           *int64
}

func (l *QueryLine) ToBson() (bson.M, error) {
	objectID, err := primitive.ObjectIDFromHex(l.PrimaryIdentifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedIdentifier, l.PrimaryIdentifier)
	}

	query := bson.M{"_id": objectID}
	if l.Version != nil {
		query["version"] = *l.Version
	}

	return query, nil
}
