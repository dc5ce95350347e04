package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// WooCommerce REST API
	StoreURL       string
	ConsumerKey    string
	ConsumerSecret string
	VerifySSL      bool

	// WordPress REST API (media uploads)
	WPUsername string
	WPPassword string

	// Database
	DatabaseURL string

	// Kafka
	KafkaBrokers string

	// API Configuration
	APIPort string
	APIHost string

	// Optional API key required in the X-API-Key header. Empty disables auth.
	APIKey string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		StoreURL:       getEnv("WC_URL", ""),
		ConsumerKey:    getEnv("WC_KEY", ""),
		ConsumerSecret: getEnv("WC_SECRET", ""),
		VerifySSL:      getEnvAsBool("VERIFY_SSL", true),
		WPUsername:     getEnv("WP_USERNAME", ""),
		WPPassword:     getEnv("WP_SECRET", ""),
		DatabaseURL:    getEnv("DATABASE_URL", "sqlite://wooflow.db"),
		KafkaBrokers:   getEnv("KAFKA_BROKERS", "localhost:9092"),
		APIPort:        getEnv("API_PORT", "8080"),
		APIHost:        getEnv("API_HOST", "0.0.0.0"),
		APIKey:         getEnv("API_KEY", ""),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}, nil
}

// StoreConfigured reports whether the WooCommerce credentials are all present.
func (c *Config) StoreConfigured() bool {
	return c.StoreURL != "" && c.ConsumerKey != "" && c.ConsumerSecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
