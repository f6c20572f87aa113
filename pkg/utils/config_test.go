package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "UTC", config.App.TimeZone)
	assert.Equal(t, 10*time.Second, config.App.ShutdownTimeout)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.Equal(t, "disable", config.Database.SSLMode)
	assert.Equal(t, "UTC", config.Database.TimeZone)
	assert.Equal(t, 24, config.Session.ExpiryHours)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nTIME_ZONE=Asia/Jakarta\nDB_NAME=cinema\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DB_NAME", "cinema_test")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "cinema_test", config.Database.Name)
	assert.Equal(t, "Asia/Jakarta", config.App.Location().String())
	assert.Equal(t, "Asia/Jakarta", config.Database.TimeZone)
}

func TestLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, AppConfig{TimeZone: "Mars/Olympus"}.Location())
}

func TestLoadConfigRejectsUnknownTimeZone(t *testing.T) {
	t.Setenv("TIME_ZONE", "Mars/Olympus")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mars/Olympus")
}
