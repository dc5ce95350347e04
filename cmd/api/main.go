package main

import (
	"log"

	"wooflow/internal/api"
	"wooflow/internal/config"
	"wooflow/internal/database"
	"wooflow/internal/events"
	"wooflow/internal/logger"
	"wooflow/internal/woo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	if !cfg.StoreConfigured() {
		logger.Warn("Store credentials are not fully configured, store calls will fail")
	}

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize store client
	client := woo.NewClient(woo.Config{
		StoreURL:       cfg.StoreURL,
		ConsumerKey:    cfg.ConsumerKey,
		ConsumerSecret: cfg.ConsumerSecret,
		WPUsername:     cfg.WPUsername,
		WPPassword:     cfg.WPPassword,
		VerifySSL:      cfg.VerifySSL,
	}, logger)

	// Initialize event publisher
	publisher := events.NewPublisher(cfg.KafkaBrokers, logger)
	defer publisher.Close()

	// Initialize API server
	server := api.New(cfg, logger, db, client, publisher)

	// Start server
	logger.Info("Starting API server on port " + cfg.APIPort)
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
