package main

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCommand(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		var actual Config
		cmd := NewRootCommand(func(config Config) error {
			actual = config
			return nil
		})
		cmd.SetArgs([]string{
			"--db", "/tmp/grid.db",
			"-l", "127.0.0.1:9000",
			"--rows", "5",
			"--cols", "26",
			"--history-limit", "50",
			"--log-level", "warn",
		})

		assert.NoError(t, cmd.Execute())

		assert.Equal(t, Config{
			DatabasePath:  "/tmp/grid.db",
			ListenAddress: "127.0.0.1:9000",
			Rows:          5,
			Cols:          26,
			HistoryLimit:  50,
			LogLevel:      "warn",
		}, actual)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_FILEPATH", "/var/lib/grid.db")

		var actual Config
		cmd := NewRootCommand(func(config Config) error {
			actual = config
			return nil
		})
		cmd.SetArgs([]string{})

		assert.NoError(t, cmd.Execute())
		assert.Equal(t, "/var/lib/grid.db", actual.DatabasePath)
		assert.Equal(t, DefaultRows, actual.Rows)
		assert.Equal(t, DefaultCols, actual.Cols)
	})

	t.Run("run error", func(t *testing.T) {
		expectedError := errors.New("listen failed")
		cmd := NewRootCommand(func(config Config) error {
			return expectedError
		})
		cmd.SetArgs([]string{})

		assert.ErrorIs(t, cmd.Execute(), expectedError)
	})

	t.Run("positional args rejected", func(t *testing.T) {
		called := false
		cmd := NewRootCommand(func(config Config) error {
			called = true
			return nil
		})
		cmd.SetArgs([]string{"extra"})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)

		assert.Error(t, cmd.Execute())
		assert.False(t, called)
	})
}
