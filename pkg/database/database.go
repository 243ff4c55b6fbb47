package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/travigo/punctuality/pkg/util"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInstance struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var MongoGlobalInstance *MongoInstance

const defaultMongoConnectionString = "mongodb://localhost:27017/"
const defaultMongoDatabase = "punctuality"

const maxConnectRetries = 5

func Connect() error {
	connectionString := defaultMongoConnectionString
	dbName := defaultMongoDatabase

	env := util.GetEnvironmentVariables()

	if env["MONGODB_CONNECTION"] != "" {
		connectionString = env["MONGODB_CONNECTION"]
	}

	if env["MONGODB_DATABASE"] != "" {
		dbName = env["MONGODB_DATABASE"]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return err
	}

	ping := func() error {
		err := client.Ping(ctx, nil)
		if err != nil {
			log.Warn().Err(err).Msg("MongoDB ping failed, retrying")
		}
		return err
	}
	retryPolicy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxConnectRetries), ctx)
	if err := backoff.Retry(ping, retryPolicy); err != nil {
		return err
	}

	MongoGlobalInstance = &MongoInstance{
		Client:   client,
		Database: client.Database(dbName),
	}

	log.Info().Str("database", dbName).Msg("Connected to MongoDB")

	return nil
}

func GetCollection(collectionName string) *mongo.Collection {
	return MongoGlobalInstance.Database.Collection(collectionName)
}

func Disconnect() error {
	if MongoGlobalInstance == nil {
		return nil
	}

	err := MongoGlobalInstance.Client.Disconnect(context.Background())
	MongoGlobalInstance = nil

	return err
}
