package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/horae/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
env: development
postgres:
  host: fileHost
  port: "6543"
  user: fileUser
  password: filePass
  db_name: fileDB
http:
  port: 9000
  metrics_port: 9100
  shutdown_timeout: 3s
timezone: UTC
`

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("HORAE_ENV", "local")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")
	t.Setenv("HORAE_HTTP_PORT", "8001")
	t.Setenv("HORAE_TIMEZONE", "UTC")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Postgres.Host)
	assert.Equal(t, "12345", cfg.Postgres.Port)
	assert.Equal(t, "admin", cfg.Postgres.User)
	assert.Equal(t, "adminpass", cfg.Postgres.Password)
	assert.Equal(t, "testName", cfg.Postgres.Dbname)
	assert.Equal(t, 8001, cfg.HTTP.Port)
	assert.Equal(t, 8080, cfg.HTTP.MetricsPort)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "migrations", cfg.MigrationsDir)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func Test_LoadFromFile(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "config.yaml")
	filet.File(t, path, yamlConfig)

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DB_PASSWORD", "envPass")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "fileHost", cfg.Postgres.Host)
	assert.Equal(t, "6543", cfg.Postgres.Port)
	assert.Equal(t, "envPass", cfg.Postgres.Password, "environment overrides the file")
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, 9100, cfg.HTTP.MetricsPort)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/definitely/not/here.yaml")

	_, err := config.Load()

	require.EqualError(t, err, "config file does not exist: /definitely/not/here.yaml")
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("HORAE_TIMEZONE", "Mars/Olympus_Mons")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load timezone")
}

func TestMustLoad_ShutdownTimeoutError(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("HORAE_SHUTDOWN_TIMEOUT", "error_value")

	assert.PanicsWithValue(t, "failed to parse shutdown timeout from configuration", func() {
		config.MustLoad()
	})
}
