package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Results  ResultsConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration, used when the results
// storage backend is "mongodb"
type MongoDBConfig struct {
	URI      string
	Database string
}

// ResultsConfig holds draw-results source configuration
type ResultsConfig struct {
	// FeedURL is the public results feed queried at warm-up and refresh
	FeedURL  string
	MockFeed bool
	// Storage selects the DrawResultRepository backend: "memory" or "mongodb"
	Storage string
	// RefreshSchedule is a cron expression for periodic re-fetch of the feed
	RefreshSchedule string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "powerball")
	viper.SetDefault("Results.FeedURL", "https://data.ny.gov/resource/d6yy-54nr.json?$limit=50000")
	viper.SetDefault("Results.MockFeed", true)
	viper.SetDefault("Results.Storage", "memory")
	viper.SetDefault("Results.RefreshSchedule", "0 6 * * *")
	viper.SetDefault("LogLevel", "info")
}
