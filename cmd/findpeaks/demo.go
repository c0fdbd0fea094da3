package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-peaks/dsp/core"
	"github.com/cwbudde/algo-peaks/dsp/signal"
	"github.com/cwbudde/algo-peaks/dsp/spectrum"
	"github.com/cwbudde/algo-peaks/dsp/window"
	"github.com/cwbudde/algo-peaks/internal/config"
	"github.com/cwbudde/algo-peaks/internal/seriesio"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

type demoFlags struct {
	samples    int
	sampleRate float64
	bpm        float64
	noise      float64
	seed       int64
	spectrum   bool
	tones      []float64
	window     string
	pulses     bool
	period     float64
	width      float64
}

func newDemoCmd() *cobra.Command {
	var (
		d   demoFlags
		out outputFlags
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Find peaks in a synthetic signal",
		Long: `Generates a synthetic ECG-like trace and runs peak detection on it. With
--pulses the trace is a train of unit Gaussian pulses instead, and with
--spectrum it is the magnitude spectrum of a multi-tone signal.

Without any bound the demo keeps peaks with a prominence of at least 0.5,
or a tenth of the strongest spectral line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if d.spectrum && d.pulses {
				return errors.New("--spectrum and --pulses are mutually exclusive")
			}

			b, err := out.bounds(cmd)
			if err != nil {
				return err
			}

			s, title, err := d.generate()
			if err != nil {
				return err
			}

			if b == (config.Bounds{}) {
				minProm := 0.5
				if d.spectrum {
					minProm = 0.1 * floats.Max(s.Y)
				}
				b.Prominence.Min = &minProm
				slog.Info("No bounds given, using default", "min_prominence", minProm)
			}

			return out.report(cmd, s, b, title)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&d.samples, "samples", 3600, "Number of samples to generate")
	fs.Float64Var(&d.sampleRate, "sample-rate", 360, "Sample rate in Hz")
	fs.Float64Var(&d.bpm, "bpm", 72, "Heart rate of the synthetic ECG")
	fs.Float64Var(&d.noise, "noise", 0.05, "White noise amplitude")
	fs.Int64Var(&d.seed, "seed", 1, "Noise seed")
	fs.BoolVar(&d.spectrum, "spectrum", false, "Analyse the magnitude spectrum of a multi-tone signal instead")
	fs.Float64SliceVar(&d.tones, "tones", []float64{50, 120}, "Tone frequencies in Hz for --spectrum (amplitude halves per tone)")
	fs.StringVar(&d.window, "window", window.TypeHann.String(), "Analysis window for --spectrum (rectangular, hann, hamming, blackman, blackman-harris, flattop)")
	fs.BoolVar(&d.pulses, "pulses", false, "Use a Gaussian pulse train instead of the ECG")
	fs.Float64Var(&d.period, "period", 0.5, "Pulse period in seconds for --pulses")
	fs.Float64Var(&d.width, "width", 0.02, "Pulse width (standard deviation) in seconds for --pulses")
	out.register(cmd)
	return cmd
}

func (d demoFlags) generate() (seriesio.Series, string, error) {
	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(d.sampleRate)},
		signal.WithSeed(d.seed),
	)
	cfg := g.Config()

	var noise []float64
	if d.noise > 0 {
		var err error
		if noise, err = g.WhiteNoise(d.noise, d.samples); err != nil {
			return seriesio.Series{}, "", err
		}
	}

	switch {
	case d.spectrum:
		win, err := window.ParseType(d.window)
		if err != nil {
			return seriesio.Series{}, "", err
		}
		parts := [][]float64{noise}
		amp := 1.0
		for _, f := range d.tones {
			tone, err := g.Sine(f, amp, d.samples)
			if err != nil {
				return seriesio.Series{}, "", err
			}
			parts = append(parts, tone)
			amp /= 2
		}
		mag, freqs, err := spectrum.MagnitudeSpectrum(signal.Sum(parts...), cfg.SampleRate, spectrum.WithWindow(win))
		if err != nil {
			return seriesio.Series{}, "", err
		}
		slog.Info("Generated spectrum", "samples", d.samples, "bins", len(mag), "tones", d.tones, "window", win.String())
		return seriesio.Series{X: freqs, Y: mag}, "Magnitude spectrum", nil

	case d.pulses:
		pulses, err := g.PulseTrain(d.period, d.width, 1, d.samples)
		if err != nil {
			return seriesio.Series{}, "", err
		}
		s := seriesio.Series{X: cfg.TimeAxis(d.samples), Y: signal.Sum(pulses, noise)}
		slog.Info("Generated pulse train", "samples", d.samples, "sample_rate", cfg.SampleRate, "period", d.period)
		return s, fmt.Sprintf("Pulse train, %.3g s period", d.period), nil

	default:
		ecg, err := g.Electrocardiogram(d.bpm, d.samples)
		if err != nil {
			return seriesio.Series{}, "", err
		}
		s := seriesio.Series{X: cfg.TimeAxis(d.samples), Y: signal.Sum(ecg, noise)}
		slog.Info("Generated ECG", "samples", d.samples, "sample_rate", cfg.SampleRate, "bpm", d.bpm)
		return s, fmt.Sprintf("Synthetic ECG, %.0f bpm", d.bpm), nil
	}
}
