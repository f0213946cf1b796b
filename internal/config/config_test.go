package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{BasePath: t.TempDir()},
		Server: ServerConfig{Name: "Test", Port: "8080"},
		Auth:   AuthConfig{AccessTokenDuration: 168 * time.Hour},
	}
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, validConfig(t).Validate())
}

func TestValidate_Environment(t *testing.T) {
	cfg := validConfig(t)
	cfg.App.Environment = "testing"
	assert.ErrorContains(t, cfg.Validate(), "invalid environment")

	cfg.App.Environment = ""
	assert.ErrorContains(t, cfg.Validate(), "ENV is required")
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := validConfig(t)
	cfg.Logger.Level = "verbose"
	assert.ErrorContains(t, cfg.Validate(), "invalid log level")
}

func TestValidate_TokenDuration(t *testing.T) {
	cfg := validConfig(t)
	cfg.Auth.AccessTokenDuration = 0
	assert.ErrorContains(t, cfg.Validate(), "token duration")
}

func TestExpandPath(t *testing.T) {
	t.Run("empty uses default", func(t *testing.T) {
		got, err := expandPath("", "/srv/brain")
		require.NoError(t, err)
		assert.Equal(t, "/srv/brain", got)
	})

	t.Run("relative becomes absolute", func(t *testing.T) {
		got, err := expandPath("data", "")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("cleans path", func(t *testing.T) {
		got, err := expandPath("/srv//brain/./data", "")
		require.NoError(t, err)
		assert.Equal(t, "/srv/brain/data", got)
	})
}

func TestGetConfigValue(t *testing.T) {
	t.Setenv("BRAIN_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "BRAIN_TEST_KEY", "fallback"))
	assert.Equal(t, "from-env", getConfigValue("", "BRAIN_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getConfigValue("", "BRAIN_TEST_UNSET", "fallback"))
}
