package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	Port                   string
	APIKey                 string
	Environment            string
	AdminUsername          string
	AdminPassword          string
	DefaultExchangeRateCLP float64
	PolicyFile             string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		APIKey:                 getEnv("API_KEY", "default_secret_key"),
		Environment:            getEnv("ENVIRONMENT", "development"),
		AdminUsername:          getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:          getEnv("ADMIN_PASSWORD", "admin"),
		DefaultExchangeRateCLP: getEnvFloat("UF_EXCHANGE_RATE_CLP", 37800),
		PolicyFile:             getEnv("COMMERCIAL_POLICY_FILE", ""),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat gets a numeric environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultValue
}
