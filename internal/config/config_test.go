package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute/internal/config"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		cfg := config.DefaultConfig()

		assert.Equal(t, ":8080", cfg.Server.Address)
		assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout.Duration)
		assert.Equal(t, 5*time.Second, cfg.Server.HandlerTimeout.Duration)
		assert.Equal(t, int64(1048576), cfg.Server.MaxBodyBytes)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 100.0, cfg.Limits.RequestsPerSecond)
		assert.Equal(t, 200, cfg.Limits.Burst)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, "rroute", cfg.Metrics.Namespace)
		assert.Equal(t, "rroute", cfg.Tracing.TracerName)
		assert.Equal(t, "/_routes", cfg.Routes.PagePath)
		assert.Equal(t, "", cfg.Demo.Database)
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		assert.Nil(t, config.CreateConfigFile(configPath))

		_, err := os.Stat(configPath)
		assert.Nil(t, err)

		cfg, err := config.LoadConfig(configPath)
		assert.Nil(t, err)
		assert.Equal(t, config.DefaultConfig().Server.Address, cfg.Server.Address)

		err = config.CreateConfigFile(configPath)
		assert.True(t, err != nil)
	})

	t.Run("LoadConfig", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		testConfig := `[server]
address = "127.0.0.1:9090"
handler_timeout = "250ms"

[log]
level = "debug"

[limits]
requests_per_second = 0.0

[demo]
database = "/tmp/users.db"
`
		assert.Nil(t, os.WriteFile(configPath, []byte(testConfig), 0644))

		cfg, err := config.LoadConfig(configPath)
		assert.Nil(t, err)

		assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address)
		assert.Equal(t, 250*time.Millisecond, cfg.Server.HandlerTimeout.Duration)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 0.0, cfg.Limits.RequestsPerSecond)
		assert.Equal(t, "/tmp/users.db", cfg.Demo.Database)

		// untouched keys keep their defaults
		assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout.Duration)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
	})

	t.Run("InvalidDuration", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		assert.Nil(t, os.WriteFile(configPath, []byte("[server]\nread_timeout = \"soon\"\n"), 0644))

		_, err := config.LoadConfig(configPath)
		assert.True(t, err != nil)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		assert.True(t, err != nil)
	})
}
