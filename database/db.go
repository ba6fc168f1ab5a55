package database

import (
	"context"
	"fmt"
	"time"

	"khadamat/config"
	"khadamat/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection.
func InitDB() {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	MongoClient = client
	logger.Info("Connected to MongoDB successfully!")
}

// MongoDatabase returns the application database on the global client.
func MongoDatabase() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}

// Pinger reports whether the configured backend answers.
func Pinger() func(ctx context.Context) error {
	switch config.AppConfig.DatabaseDriver {
	case DriverPostgres:
		return func(ctx context.Context) error {
			if PostgresDB == nil {
				return fmt.Errorf("postgres not initialized")
			}
			sqlDB, err := PostgresDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	default:
		return func(ctx context.Context) error {
			if MongoClient == nil {
				return fmt.Errorf("mongo not initialized")
			}
			return MongoClient.Ping(ctx, nil)
		}
	}
}
