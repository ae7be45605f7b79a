package client

import (
	"time"

	"stayhub/pkg/logger"
)

// Client holds the process-wide connections to external systems. It is
// constructed once at startup and injected through the config; request
// handlers share it read-only.
type Client struct {
	Mongo *MongoClient
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) SetMongo(log *logger.Logger, mongoURI string, mongoConnTimeout time.Duration) {
	c.Mongo = NewMongoClient(log, mongoURI, mongoConnTimeout)
}

func (c *Client) GracefulShutdown() {
	if c.Mongo != nil {
		c.Mongo.Disconnect()
	}
}
