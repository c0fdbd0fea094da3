package seriesio

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the value range of a series.
type Summary struct {
	Length int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes a Summary of y. An empty series yields a zero Summary.
func Summarize(y []float64) Summary {
	if len(y) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(y, nil)
	return Summary{
		Length: len(y),
		Min:    floats.Min(y),
		Max:    floats.Max(y),
		Mean:   mean,
		StdDev: std,
	}
}
