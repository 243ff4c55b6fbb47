package dataset

import (
	"context"
	"fmt"

	"github.com/travigo/punctuality/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadMongo reads the observations and stops collections in insertion order.
// database.Connect must have been called first.
func LoadMongo(ctx context.Context) (*Dataset, error) {
	if database.MongoGlobalInstance == nil {
		if err := database.Connect(); err != nil {
			return nil, err
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	observations := []Observation{}
	cursor, err := database.GetCollection("observations").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	if err := cursor.All(ctx, &observations); err != nil {
		return nil, fmt.Errorf("failed to decode observations: %w", err)
	}

	stops := []StopRecord{}
	cursor, err = database.GetCollection("stops").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to query stops: %w", err)
	}
	if err := cursor.All(ctx, &stops); err != nil {
		return nil, fmt.Errorf("failed to decode stops: %w", err)
	}

	return New(observations, stops), nil
}
