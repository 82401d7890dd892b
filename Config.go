package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const DefaultListenAddress = ":8080"

var InvalidConfigError = errors.New("invalid config")

type Config struct {
	DatabasePath  string
	ListenAddress string
	Rows          int
	Cols          int
	// 0 keeps the whole history
	HistoryLimit int
	LogLevel     string
}

// DefaultConfig built-in defaults, overridden by environment variables
func DefaultConfig() Config {
	return Config{
		DatabasePath:  os.Getenv("DATABASE_FILEPATH"),
		ListenAddress: envOrDefault("LISTEN_ADDRESS", DefaultListenAddress),
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		HistoryLimit:  0,
		LogLevel:      envOrDefault("LOG_LEVEL", logrus.InfoLevel.String()),
	}
}

func (c Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: database path is empty, set --db or DATABASE_FILEPATH", InvalidConfigError)
	}
	if c.Rows <= 0 || c.Rows > MaxRows {
		return fmt.Errorf("%w: rows should be between 1 and %d, got %d", InvalidConfigError, MaxRows, c.Rows)
	}
	if c.Cols <= 0 || c.Cols > MaxCols {
		return fmt.Errorf("%w: cols should be between 1 and %d, got %d", InvalidConfigError, MaxCols, c.Cols)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history limit should not be negative, got %d", InvalidConfigError, c.HistoryLimit)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", InvalidConfigError, err)
	}
	return nil
}

func envOrDefault(name string, defaultValue string) string {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}
	return defaultValue
}
