package database

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const databaseName = "spotify"

var Client *mongo.Client

var logger = zap.NewNop()

// InitializeLogger sets the logger for the database package.
func InitializeLogger(l *zap.Logger) {
	logger = l
}

// InitDB connects to MongoDB using MONGODB_URL and pings the server.
func InitDB() {
	mongoURI := os.Getenv("MONGODB_URL")
	if mongoURI == "" {
		logger.Fatal("MONGODB_URL not found in environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(mongoURI).
		SetServerSelectionTimeout(30 * time.Second).
		SetConnectTimeout(30 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatal("error connecting to MongoDB", zap.Error(err))
	}

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("MongoDB ping failed", zap.Error(err))
	}

	logger.Info("connected to MongoDB")
	Client = client
}

// OpenCollection returns a collection from the application database.
func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	if client == nil {
		logger.Fatal("MongoDB client is not initialized, call InitDB() first",
			zap.String("collection", collectionName))
	}
	return client.Database(databaseName).Collection(collectionName)
}
