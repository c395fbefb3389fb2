package main

import (
	"log"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/broker"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"

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

	// Booking events are optional
	var publisher broker.Publisher = broker.NopPublisher{}
	if config.Broker.URL != "" {
		rabbit, err := broker.NewRabbitPublisher(config.Broker.URL, config.Broker.Exchange, logger)
		if err != nil {
			logger.Fatal("Failed to connect to broker", zap.Error(err))
		}
		publisher = rabbit
		logger.Info("Broker connected", zap.String("exchange", config.Broker.Exchange))
	}
	defer publisher.Close()

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, publisher, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
