package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(HandleExitError(os.Stderr, NewRootCommand(RunApp).Execute()))
}

func NewRootCommand(run func(config Config) error) *cobra.Command {
	config := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "grid-editor",
		Short: "Grid editor with range formulas, undo/redo and saved snapshots",
		Long: `grid-editor serves an editable grid of cells over HTTP. Cells hold text or
=SUM / =AVERAGE range formulas; the grid can be saved and loaded under one key.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(config)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&config.DatabasePath, "db", config.DatabasePath, "bbolt database file (env DATABASE_FILEPATH)")
	flags.StringVarP(&config.ListenAddress, "listen", "l", config.ListenAddress, "HTTP listen address (env LISTEN_ADDRESS)")
	flags.IntVar(&config.Rows, "rows", config.Rows, "grid rows")
	flags.IntVar(&config.Cols, "cols", config.Cols, "grid columns, at most 26")
	flags.IntVar(&config.HistoryLimit, "history-limit", config.HistoryLimit, "undo depth, 0 for unlimited")
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level (env LOG_LEVEL)")

	return rootCmd
}
