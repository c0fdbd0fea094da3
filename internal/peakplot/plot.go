// Package peakplot renders a series with its detected peaks to an image file.
package peakplot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("plot: no data")

// Options controls the rendered figure.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns a 14x6 inch figure.
func DefaultOptions() Options {
	return Options{
		XLabel: "Sample",
		YLabel: "Value",
		Width:  14 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

// New builds a plot of y against x with a marker on every position in marks.
func New(x, y []float64, marks []int, opts Options) (*plot.Plot, error) {
	if len(y) == 0 {
		return nil, ErrNoData
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("plot: %d x values for %d samples", len(x), len(y))
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	pts := make(plotter.XYs, len(y))
	for i := range y {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("plot: series: %w", err)
	}
	line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("signal", line)

	if len(marks) > 0 {
		peakPts := make(plotter.XYs, 0, len(marks))
		for _, m := range marks {
			if m < 0 || m >= len(y) {
				return nil, fmt.Errorf("plot: peak position %d out of range", m)
			}
			peakPts = append(peakPts, plotter.XY{X: x[m], Y: y[m]})
		}
		sc, err := plotter.NewScatter(peakPts)
		if err != nil {
			return nil, fmt.Errorf("plot: peaks: %w", err)
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Color = color.RGBA{R: 255, G: 127, B: 14, A: 255}
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add("peaks", sc)
	}

	// Leave headroom above the tallest sample so markers are not clipped.
	lo, hi := floats.Min(y), floats.Max(y)
	pad := 0.05 * (hi - lo)
	if pad == 0 {
		pad = 1
	}
	p.Y.Min, p.Y.Max = lo-pad, hi+pad

	return p, nil
}

// Save renders the plot to path; the format follows the file extension
// (png, svg, pdf, ...).
func Save(path string, x, y []float64, marks []int, opts Options) error {
	p, err := New(x, y, marks, opts)
	if err != nil {
		return err
	}
	if opts.Width == 0 || opts.Height == 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("plot: save %s: %w", path, err)
	}
	return nil
}
