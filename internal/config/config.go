package config

import (
	"os"
	"strconv"
)

// AppConfig is the centralized configuration struct for a demo service.
// It is populated from environment variables.
type AppConfig struct {
	ServiceName        string
	AppHost            string
	Port               string
	LogLevel           string
	Timezone           string
	MetricsEnabled     bool
	SwaggerEnabled     bool
	ShutdownTimeoutSec int
}

// Load reads configuration from environment variables.
// serviceName is used when SERVICE_NAME is not set, so each binary keeps its own identity.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load(serviceName string) *AppConfig {
	return &AppConfig{
		ServiceName:        getEnv("SERVICE_NAME", serviceName),
		AppHost:            getEnv("APP_HOST", "localhost:8080"),
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Timezone:           getEnv("TIMEZONE", "UTC"),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		SwaggerEnabled:     getEnvBool("SWAGGER_ENABLED", true),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 30),
	}
}

// Addr returns the listen address for the HTTP server.
func (c *AppConfig) Addr() string {
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
