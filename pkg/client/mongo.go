package client

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stayhub/pkg/logger"
)

type MongoClient struct {
	Client *mongo.Client
	log    *logger.Logger
}

func NewMongoClient(log *logger.Logger, mongoURI string, mongoConnTimeout time.Duration) *MongoClient {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB", "error", err)
	}

	log.Info("Successfully connected to MongoDB")
	return &MongoClient{Client: client, log: log}
}

func (c *MongoClient) Disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.Client.Disconnect(ctx); err != nil {
		c.log.Error("Failed to disconnect from MongoDB", "error", err)
		return
	}
	c.log.Info("Disconnected from MongoDB")
}
