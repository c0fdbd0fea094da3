package main

import (
	"log/slog"

	"github.com/cwbudde/algo-peaks/internal/seriesio"
	"github.com/spf13/cobra"
)

func newDetectCmd() *cobra.Command {
	var (
		input string
		xy    bool
		out   outputFlags
	)

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Find peaks in a series file",
		Long: `Reads whitespace-separated numbers from a file (or two columns, x then y,
with --xy) and prints the peaks that pass the configured bounds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := out.bounds(cmd)
			if err != nil {
				return err
			}

			s, err := seriesio.ReadFile(input, xy)
			if err != nil {
				return err
			}

			sum := seriesio.Summarize(s.Y)
			slog.Info("Loaded series", "path", input, "samples", sum.Length,
				"min", sum.Min, "max", sum.Max, "mean", sum.Mean, "stddev", sum.StdDev)

			return out.report(cmd, s, b, input)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Series file (required)")
	cmd.Flags().BoolVar(&xy, "xy", false, "Input has two columns: x and y")
	out.register(cmd)
	cmd.MarkFlagRequired("input")
	return cmd
}
