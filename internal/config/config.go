package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env           string         `yaml:"env"`            // Env is the current environment: local, development, production.
	Postgres      PostgresConfig `yaml:"postgres"`       // Postgres holds the database configuration
	HTTP          HTTPConfig     `yaml:"http"`           // HTTP holds the API and monitoring listeners configuration
	Timezone      string         `yaml:"timezone"`       // Timezone decides which calendar date is "today".
	MigrationsDir string         `yaml:"migrations_dir"` // MigrationsDir is the goose migrations directory.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Dbname   string `yaml:"db_name"`  // Dbname is the name of the database.
}

// HTTPConfig struct holds the listeners of the application.
type HTTPConfig struct {
	Port            int           `yaml:"port"`             // Port of the JSON API.
	MetricsPort     int           `yaml:"metrics_port"`     // MetricsPort serves /metrics and /healthz.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // ShutdownTimeout bounds graceful shutdown.
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load reads configuration from an optional .env file, an optional YAML file pointed to by
// CONFIG_PATH, and the environment. Environment variables take precedence over the file.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	vpr := viper.New()

	defaults := map[string]any{
		"env":                   "local",
		"postgres.port":         "5432",
		"http.port":             8000, //nolint:mnd // default API port
		"http.metrics_port":     8080, //nolint:mnd // default monitoring port
		"http.shutdown_timeout": "10s",
		"timezone":              "Local",
		"migrations_dir":        "migrations",
	}
	for key, value := range defaults {
		vpr.SetDefault(key, value)
	}

	envBindings := map[string]string{
		"env":                   "HORAE_ENV",
		"postgres.host":         "DB_HOST",
		"postgres.port":         "DB_PORT",
		"postgres.user":         "DB_USERNAME",
		"postgres.password":     "DB_PASSWORD",
		"postgres.db_name":      "DB_NAME",
		"http.port":             "HORAE_HTTP_PORT",
		"http.metrics_port":     "HORAE_METRICS_PORT",
		"http.shutdown_timeout": "HORAE_SHUTDOWN_TIMEOUT",
		"timezone":              "HORAE_TIMEZONE",
		"migrations_dir":        "HORAE_MIGRATIONS_DIR",
	}
	for key, env := range envBindings {
		if err := vpr.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}
		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	shutdownTimeout, err := time.ParseDuration(vpr.GetString("http.shutdown_timeout"))
	if err != nil {
		return nil, errors.New("failed to parse shutdown timeout from configuration")
	}

	cfg := &Config{
		Env: vpr.GetString("env"),
		Postgres: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
		HTTP: HTTPConfig{
			Port:            vpr.GetInt("http.port"),
			MetricsPort:     vpr.GetInt("http.metrics_port"),
			ShutdownTimeout: shutdownTimeout,
		},
		Timezone:      vpr.GetString("timezone"),
		MigrationsDir: vpr.GetString("migrations_dir"),
	}

	if _, err = cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad loads the configuration and panics if it cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err.Error())
	}
	return cfg
}
