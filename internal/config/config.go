package config

import (
	"os"
	"strconv"

	"splicegen/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Output OutputConfig
	Ops    OpsConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port        string
	GinMode     string
	MaxUploadMB int64
}

// OutputConfig holds generated-file settings
type OutputConfig struct {
	Dir            string
	MaxStoredFiles int
}

// OpsConfig holds the internal ops listener settings (health + pprof)
type OpsConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8080"),
			GinMode:     getEnvOrDefault("GIN_MODE", "debug"),
			MaxUploadMB: int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 50)),
		},
		Output: OutputConfig{
			Dir:            getEnvOrDefault("OUTPUT_DIR", "./generated"),
			MaxStoredFiles: getEnvIntOrDefault("MAX_STORED_FILES", 32),
		},
		Ops: OpsConfig{
			Port:    getEnvOrDefault("OPS_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("OPS_ENABLED", true),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Output.Dir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if config.Server.MaxUploadMB <= 0 {
		return errors.ConfigInvalid("upload size limit must be positive")
	}
	if config.Output.MaxStoredFiles <= 0 {
		return errors.ConfigInvalid("stored file limit must be positive")
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
