package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	// Store: memory | sqlite | postgres
	Store      string
	DSN        string
	SQLitePath string
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

// Load lee .env (si existe) y luego variables de entorno.
// Devuelve además las advertencias de parseo para que main las loguee.
func Load() (*Config, []string, error) {
	var warnings []string

	// .env es opcional; en producción normalmente no existe.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		warnings = append(warnings, fmt.Sprintf("could not read .env: %v", err))
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", 5*time.Second, &warnings),
			WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", 10*time.Second, &warnings),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second, &warnings),
		},
		Database: DatabaseConfig{
			Store:      strings.ToLower(getEnv("STORE", StoreMemory)),
			DSN:        getEnv("DB_DSN", ""),
			SQLitePath: getEnv("SQLITE_PATH", "people-pets.db"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			App:    getEnv("APP_NAME", "people-pets-api"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, warnings, err
	}
	return cfg, warnings, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Server.Port)
	}

	switch c.Database.Store {
	case StoreMemory:
	case StoreSQLite:
		if strings.TrimSpace(c.Database.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORE=sqlite")
		}
	case StorePostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("DB_DSN is required when STORE=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE %q (memory|sqlite|postgres)", c.Database.Store)
	}

	return nil
}

// Addr es la dirección de escucha para http.Server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration, warnings *[]string) time.Duration {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil || value <= 0 {
		*warnings = append(*warnings, fmt.Sprintf("invalid duration for %s (%q), using default %s", key, valueStr, defaultValue))
		return defaultValue
	}
	return value
}
