package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	t.Run("built-in defaults", func(t *testing.T) {
		t.Setenv("DATABASE_FILEPATH", "")
		t.Setenv("LISTEN_ADDRESS", "")
		t.Setenv("LOG_LEVEL", "")

		config := DefaultConfig()

		assert.Equal(t, "", config.DatabasePath)
		assert.Equal(t, DefaultListenAddress, config.ListenAddress)
		assert.Equal(t, DefaultRows, config.Rows)
		assert.Equal(t, DefaultCols, config.Cols)
		assert.Equal(t, 0, config.HistoryLimit)
		assert.Equal(t, "info", config.LogLevel)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DATABASE_FILEPATH", "/tmp/grid.db")
		t.Setenv("LISTEN_ADDRESS", ":9090")
		t.Setenv("LOG_LEVEL", "debug")

		config := DefaultConfig()

		assert.Equal(t, "/tmp/grid.db", config.DatabasePath)
		assert.Equal(t, ":9090", config.ListenAddress)
		assert.Equal(t, "debug", config.LogLevel)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{DatabasePath: "grid.db", Rows: 20, Cols: 10, LogLevel: "info"}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())

		widest := valid
		widest.Cols = MaxCols
		assert.NoError(t, widest.Validate())
	})

	invalid := map[string]func(c *Config){
		"empty db path":    func(c *Config) { c.DatabasePath = "" },
		"zero rows":        func(c *Config) { c.Rows = 0 },
		"too many rows":    func(c *Config) { c.Rows = MaxRows + 1 },
		"negative rows":    func(c *Config) { c.Rows = -3 },
		"zero cols":        func(c *Config) { c.Cols = 0 },
		"too many cols":    func(c *Config) { c.Cols = MaxCols + 1 },
		"negative history": func(c *Config) { c.HistoryLimit = -1 },
		"unknown level":    func(c *Config) { c.LogLevel = "loud" },
	}

	for name, modify := range invalid {
		t.Run(name, func(t *testing.T) {
			config := valid
			modify(&config)

			assert.ErrorIs(t, config.Validate(), InvalidConfigError)
		})
	}
}
