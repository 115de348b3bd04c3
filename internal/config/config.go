package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Draw     DrawConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// DrawConfig holds draw-specific configuration
type DrawConfig struct {
	// MaxAttempts bounds the shuffle retries per draw
	MaxAttempts int
	// ParticipantLimit bounds how many participants one draw or listing covers
	ParticipantLimit int64
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	// A missing config file is fine, environment variables cover it
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "8000")
	viper.SetDefault("Server.AllowedOrigins", []string{"*"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "giftflow")
	viper.SetDefault("Draw.MaxAttempts", 100)
	viper.SetDefault("Draw.ParticipantLimit", 500)
	viper.SetDefault("LogLevel", "info")
}
