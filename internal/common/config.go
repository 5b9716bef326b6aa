package common

import (
	"os"
	"strconv"
)

// Config holds all engine configuration.
type Config struct {
	Engine EngineConfig
	Log    LogConfig
}

// EngineConfig holds the extraction core's tunables.
type EngineConfig struct {
	TaxRate           float64
	RowThreshold      float64
	DefaultConfidence float64
	BatchWorkers      int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			TaxRate:           getEnvAsFloat("ENGINE_TAX_RATE", 0.16),
			RowThreshold:      getEnvAsFloat("ENGINE_ROW_THRESHOLD", 15.0),
			DefaultConfidence: getEnvAsFloat("ENGINE_DEFAULT_CONFIDENCE", 0.70),
			BatchWorkers:      getEnvAsInt("ENGINE_BATCH_WORKERS", 4),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Engine.TaxRate <= 0 || c.Engine.TaxRate >= 1 {
		return NewAppError("CONFIG_ERROR", "ENGINE_TAX_RATE must be in (0, 1)", ErrInvalidInput)
	}
	if c.Engine.DefaultConfidence <= 0 || c.Engine.DefaultConfidence > 1 {
		return NewAppError("CONFIG_ERROR", "ENGINE_DEFAULT_CONFIDENCE must be in (0, 1]", ErrInvalidInput)
	}
	if c.Engine.BatchWorkers < 1 {
		return NewAppError("CONFIG_ERROR", "ENGINE_BATCH_WORKERS must be >= 1", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
