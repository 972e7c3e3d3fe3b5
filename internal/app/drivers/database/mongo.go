package database

import (
	"context"
	"fmt"
	"log"
	"telemed-service/internal/app/config"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoConnectTimeout = 10 * time.Second

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	dbOptions := options.Client().
		ApplyURI(MongoConnectionString(driverConfig)).
		SetServerSelectionTimeout(mongoConnectTimeout)
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}

	// The server keeps running without a reachable database so storage
	// failures surface per request as 503.
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Printf("Failed to ping or test the connection to mongo database: %s", err.Error())
	} else {
		log.Println("Successfully connected to mongo database")
	}
	return client.Database(driverConfig.MongoDB.DbName)
}

func MongoConnectionString(driverConfig *config.DriverConfig) string {
	if driverConfig.MongoDB.URI != "" {
		return driverConfig.MongoDB.URI
	}
	if driverConfig.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", driverConfig.MongoDB.Host, driverConfig.MongoDB.Port)
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
}
