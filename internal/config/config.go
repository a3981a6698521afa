package config

import (
	"os"
	"strconv"

	"blendviz/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Filter FilterConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds the input spreadsheet paths. RecipeFile is required;
// the sensory and group files are optional and may be empty.
type DataConfig struct {
	RecipeFile  string
	SensoryFile string
	GroupsFile  string
}

// FilterConfig holds the significance filter thresholds
type FilterConfig struct {
	MinUsage  int
	MinWeight float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Data: DataConfig{
			RecipeFile:  os.Getenv("RECIPE_FILE"),
			SensoryFile: getEnvOrDefault("SENSORY_FILE", ""),
			GroupsFile:  getEnvOrDefault("GROUPS_FILE", ""),
		},
		Filter: FilterConfig{
			MinUsage:  getEnvIntOrDefault("MIN_USAGE", 1),
			MinWeight: getEnvFloatOrDefault("MIN_WEIGHT", 0.03),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.RecipeFile == "" {
		return errors.ConfigInvalid("RECIPE_FILE is required")
	}
	if config.Filter.MinUsage < 0 {
		return errors.ConfigInvalid("MIN_USAGE must not be negative")
	}
	if config.Filter.MinWeight < 0 {
		return errors.ConfigInvalid("MIN_WEIGHT must not be negative")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
