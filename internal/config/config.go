// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Environment string
	SeedOnStart bool
	Server      ServerConfig
	Database    DatabaseConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	URL              string
	Name             string
	ConnectTimeout   int // in seconds
	OperationTimeout int // in seconds
	MaxPoolSize      int
	LogLevel         string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		SeedOnStart: getEnvAsBool("SEED_ON_STARTUP", false),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8000"),
			Host:         getEnv("SERVER_HOST", ""),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			URL:              getEnv("DATABASE_URL", ""),
			Name:             getEnv("DATABASE_NAME", ""),
			ConnectTimeout:   getEnvAsInt("DB_CONNECT_TIMEOUT", 5),
			OperationTimeout: getEnvAsInt("DB_OPERATION_TIMEOUT", 5),
			MaxPoolSize:      getEnvAsInt("DB_MAX_POOL_SIZE", 25),
			LogLevel:         getEnv("DB_LOG_LEVEL", "silent"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 10),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Server.Port)
	}

	if c.Database.ConnectTimeout <= 0 || c.Database.OperationTimeout <= 0 {
		return fmt.Errorf("database timeouts must be positive")
	}

	if c.Database.MaxPoolSize < 0 {
		return fmt.Errorf("invalid database pool size %d", c.Database.MaxPoolSize)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func (d DatabaseConfig) ConnectTimeoutDuration() time.Duration {
	return time.Duration(d.ConnectTimeout) * time.Second
}

func (d DatabaseConfig) OperationTimeoutDuration() time.Duration {
	return time.Duration(d.OperationTimeout) * time.Second
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
