package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "findpeaks",
		Short: "Find significant local maxima in sampled data",
		Long: `findpeaks locates local maxima in a 1D series and keeps those that pass
height, threshold, plateau size, distance and prominence bounds.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var level slog.Level
			switch logLevel {
			case "debug":
				level = slog.LevelDebug
			case "info":
				level = slog.LevelInfo
			case "warn":
				level = slog.LevelWarn
			case "error":
				level = slog.LevelError
			default:
				level = slog.LevelInfo
			}

			opts := &slog.HandlerOptions{Level: level}
			handler := slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
			slog.SetDefault(slog.New(handler))
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.AddCommand(newDetectCmd(), newDemoCmd(), newVersionCmd())
	return root
}
