package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
	"github.com/joho/godotenv"
)

// * DataSourcePostgres selects the Postgres mirror instead of a catalog document
const DataSourcePostgres = "postgres"

type Config struct {
	DataSource     string
	ServerPort     string
	AllowedOrigins []string
	DBURL          string
	RabbitMQURL    string
	ImportInterval time.Duration
	GitHubToken    string
	MigrationsURL  string
	Debug          bool
}

// * LoadConfiguration reads the configuration from the .env file and the
// * environment and returns a pointer to a Config
func LoadConfiguration() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		DataSource:     getEnv("DATA_SOURCE", "data/repositories.json"),
		ServerPort:     getEnv("SERVER_PORT", ":8000"),
		AllowedOrigins: ParseOrigins(getEnv("CORS_ORIGINS", "*")),
		DBURL:          os.Getenv("DB_URL"),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		GitHubToken:    os.Getenv("GITHUB_TOKEN"),
		MigrationsURL:  getEnv("MIGRATIONS_URL", "file://migrations"),
		Debug:          os.Getenv("DEBUG") == "true",
	}

	if !strings.Contains(cfg.ServerPort, ":") {
		cfg.ServerPort = ":" + cfg.ServerPort
	}

	interval, err := time.ParseDuration(getEnv("IMPORT_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMPORT_INTERVAL: %w", err)
	}
	cfg.ImportInterval = interval

	if cfg.DataSource == DataSourcePostgres && cfg.DBURL == "" {
		return nil, errors.New("DB_URL is required when DATA_SOURCE is postgres")
	}

	logger.Info("✅ env content loaded successfully 🎉")
	return cfg, nil
}

// * RequireDB is used by commands that cannot run without Postgres
func (c *Config) RequireDB() error {
	if c.DBURL == "" {
		return errors.New("DB_URL is required")
	}
	return nil
}

func (c *Config) RequireRabbitMQ() error {
	if c.RabbitMQURL == "" {
		return errors.New("RABBITMQ_URL is required")
	}
	return nil
}

// * ParseOrigins splits a comma separated CORS_ORIGINS value, dropping blanks
func ParseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
