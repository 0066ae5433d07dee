package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	StrategyWalk    = "walk"
	StrategyClosure = "closure"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Aggregation AggregationConfig
	Security    SecurityConfig
	Logging     LoggingConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AggregationConfig tunes the subtree sum engine
type AggregationConfig struct {
	Strategy       string
	MaxFanOut      int
	Timeout        time.Duration
	IncludeDeleted bool
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() *Config {
	// A missing .env file is not an error; the process environment still applies.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "transactions_user"),
			Password:        getEnv("DB_PASSWORD", "transactions_password"),
			Name:            getEnv("DB_NAME", "transactions_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "transactions.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Aggregation: AggregationConfig{
			Strategy:       strings.ToLower(getEnv("AGGREGATION_STRATEGY", StrategyWalk)),
			MaxFanOut:      getIntEnv("AGGREGATION_MAX_FAN_OUT", 8),
			Timeout:        getDurationEnv("AGGREGATION_TIMEOUT", 10*time.Second),
			IncludeDeleted: getBoolEnv("AGGREGATION_INCLUDE_DELETED", true),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 50),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 100),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}

	if err := config.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	return config
}

// Validate rejects settings the service cannot run with
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Aggregation.Strategy {
	case StrategyWalk, StrategyClosure:
	default:
		return fmt.Errorf("unsupported AGGREGATION_STRATEGY %q", c.Aggregation.Strategy)
	}

	if c.Aggregation.MaxFanOut < 1 {
		return fmt.Errorf("AGGREGATION_MAX_FAN_OUT must be at least 1, got %d", c.Aggregation.MaxFanOut)
	}

	if c.Aggregation.Timeout < 0 {
		return fmt.Errorf("AGGREGATION_TIMEOUT must not be negative")
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the postgres connection URL used by the migration tooling
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
