// main.go
package main

import (
	"log"

	"airline-ticketing/cmd"
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/internal/kafka"
	"airline-ticketing/internal/wire"
	"airline-ticketing/pkg/cache"
	"airline-ticketing/pkg/database"
	"airline-ticketing/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Connect to redis (purchase drafts)
	rdb, err := cache.InitRedis(config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	logger.Info("Redis connected successfully")

	// Kafka producer (purchase events)
	producer := kafka.NewProducer(config.Kafka.Brokers, logger)
	defer producer.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, rdb, config, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, producer, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
