// Package seriesio reads numeric series files and writes peak tables.
package seriesio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrEmptySeries is returned when an input holds no samples.
var ErrEmptySeries = errors.New("seriesio: no samples")

// ErrNonFiniteX is returned by ReadXY for a NaN or infinite x.
var ErrNonFiniteX = errors.New("seriesio: x must be finite")

// Series is a sampled sequence. X is nil for single-column inputs.
type Series struct {
	X []float64
	Y []float64
}

// Read parses every whitespace-separated number in r as one sample. Text
// after '#' on a line is ignored.
func Read(r io.Reader) (Series, error) {
	var s Series
	err := scanLines(r, func(lineNo int, fields []string) error {
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			s.Y = append(s.Y, v)
		}
		return nil
	})
	if err != nil {
		return Series{}, err
	}
	if len(s.Y) == 0 {
		return Series{}, ErrEmptySeries
	}
	return s, nil
}

// ReadXY parses two columns per non-empty line: x followed by y.
func ReadXY(r io.Reader) (Series, error) {
	var s Series
	err := scanLines(r, func(lineNo int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("line %d: want 2 columns, got %d", lineNo, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return fmt.Errorf("line %d: x: %w", lineNo, err)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("line %d: %w: x = %v", lineNo, ErrNonFiniteX, x)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("line %d: y: %w", lineNo, err)
		}
		if n := len(s.X); n > 0 && x < s.X[n-1] {
			return fmt.Errorf("line %d: x must be non-decreasing (%v after %v)", lineNo, x, s.X[n-1])
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
		return nil
	})
	if err != nil {
		return Series{}, err
	}
	if len(s.Y) == 0 {
		return Series{}, ErrEmptySeries
	}
	return s, nil
}

// ReadFile opens path and parses it with ReadXY when xy is set, Read otherwise.
func ReadFile(path string, xy bool) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, fmt.Errorf("open series: %w", err)
	}
	defer f.Close()

	var s Series
	if xy {
		s, err = ReadXY(f)
	} else {
		s, err = Read(f)
	}
	if err != nil {
		return Series{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Coordinates returns X, or sample positions when the series has none.
func (s Series) Coordinates() []float64 {
	if s.X != nil {
		return s.X
	}
	x := make([]float64, len(s.Y))
	for i := range x {
		x[i] = float64(i)
	}
	return x
}

func scanLines(r io.Reader, fn func(lineNo int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := fn(lineNo, fields); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read series: %w", err)
	}
	return nil
}
