package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-peaks/dsp/peaks"
	"github.com/cwbudde/algo-peaks/internal/config"
	"github.com/cwbudde/algo-peaks/internal/peakplot"
	"github.com/cwbudde/algo-peaks/internal/seriesio"
	"github.com/spf13/cobra"
)

// outputFlags are shared by every command that reports peaks.
type outputFlags struct {
	configPath string
	saveConfig string
	format     string
	plotPath   string

	minHeight, maxHeight         float64
	minThreshold, maxThreshold   float64
	minProminence, maxProminence float64
	minDistance, maxDistance     float64
	minPlateau, maxPlateau       int
}

func (o *outputFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&o.configPath, "config", "", "YAML file with filter bounds; flags override it")
	fs.StringVar(&o.saveConfig, "save-config", "", "Write the effective bounds as YAML to this file")
	fs.StringVar(&o.format, "format", string(seriesio.FormatText), "Output format: text, csv, json")
	fs.StringVar(&o.plotPath, "plot", "", "Render the series and peaks to this image file (png, svg, pdf)")

	fs.Float64Var(&o.minHeight, "min-height", 0, "Minimum peak height")
	fs.Float64Var(&o.maxHeight, "max-height", 0, "Maximum peak height")
	fs.Float64Var(&o.minThreshold, "min-threshold", 0, "Minimum drop to each immediate neighbour")
	fs.Float64Var(&o.maxThreshold, "max-threshold", 0, "Maximum drop to each immediate neighbour")
	fs.Float64Var(&o.minProminence, "min-prominence", 0, "Minimum prominence")
	fs.Float64Var(&o.maxProminence, "max-prominence", 0, "Maximum prominence")
	fs.Float64Var(&o.minDistance, "min-distance", 0, "Minimum distance between peaks (x units)")
	fs.Float64Var(&o.maxDistance, "max-distance", 0, "Drop peaks whose nearest neighbour is farther (x units)")
	fs.IntVar(&o.minPlateau, "min-plateau-size", 0, "Minimum plateau size in samples")
	fs.IntVar(&o.maxPlateau, "max-plateau-size", 0, "Maximum plateau size in samples")
}

// bounds merges the config file with the flags the user set explicitly.
func (o *outputFlags) bounds(cmd *cobra.Command) (config.Bounds, error) {
	var file config.Bounds
	if o.configPath != "" {
		var err error
		if file, err = config.Load(o.configPath); err != nil {
			return config.Bounds{}, err
		}
	}

	fs := cmd.Flags()
	set := func(name string, dst **float64, v *float64) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	var flags config.Bounds
	set("min-height", &flags.Height.Min, &o.minHeight)
	set("max-height", &flags.Height.Max, &o.maxHeight)
	set("min-threshold", &flags.Threshold.Min, &o.minThreshold)
	set("max-threshold", &flags.Threshold.Max, &o.maxThreshold)
	set("min-prominence", &flags.Prominence.Min, &o.minProminence)
	set("max-prominence", &flags.Prominence.Max, &o.maxProminence)
	set("min-distance", &flags.Distance.Min, &o.minDistance)
	set("max-distance", &flags.Distance.Max, &o.maxDistance)
	if fs.Changed("min-plateau-size") {
		flags.PlateauSize.Min = &o.minPlateau
	}
	if fs.Changed("max-plateau-size") {
		flags.PlateauSize.Max = &o.maxPlateau
	}

	b := file.Merge(flags)
	if err := b.Validate(); err != nil {
		return config.Bounds{}, err
	}
	return b, nil
}

// report runs the finder over s with b and writes the peak table and the
// optional plot.
func (o *outputFlags) report(cmd *cobra.Command, s seriesio.Series, b config.Bounds, title string) error {
	format := seriesio.Format(o.format)
	switch format {
	case seriesio.FormatText, seriesio.FormatCSV, seriesio.FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q", o.format)
	}

	if o.saveConfig != "" {
		data, err := b.Marshal()
		if err != nil {
			return fmt.Errorf("encode bounds: %w", err)
		}
		if err := os.WriteFile(o.saveConfig, data, 0o644); err != nil {
			return fmt.Errorf("save bounds: %w", err)
		}
		slog.Info("Bounds written", "path", o.saveConfig)
	}

	x := s.Coordinates()
	f, err := peaks.NewWithX(s.Y, x)
	if err != nil {
		return err
	}
	b.Apply(f)
	found := f.Request(peaks.PropertyAll).FindPeaks()

	slog.Info("Peaks found", "samples", len(s.Y), "peaks", len(found))

	if err := seriesio.Write(cmd.OutOrStdout(), seriesio.Rows(found, x), format); err != nil {
		return fmt.Errorf("write peaks: %w", err)
	}

	if o.plotPath != "" {
		marks := make([]int, len(found))
		for i, p := range found {
			marks[i] = p.MiddlePosition()
		}
		opts := peakplot.DefaultOptions()
		opts.Title = title
		if s.X != nil {
			opts.XLabel = "x"
		}
		if err := peakplot.Save(o.plotPath, x, s.Y, marks, opts); err != nil {
			return err
		}
		slog.Info("Plot written", "path", o.plotPath)
	}
	return nil
}
