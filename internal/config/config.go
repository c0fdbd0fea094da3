// Package config loads peak filter bounds from YAML.
//
// A file looks like:
//
//	height:
//	  min: 0
//	prominence:
//	  min: 200
//	distance:
//	  min: 18
//	plateau_size:
//	  max: 4
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-peaks/dsp/peaks"
	"gopkg.in/yaml.v3"
)

// ErrInvalidBound is returned for bounds that can never be meaningful, such
// as a negative prominence.
var ErrInvalidBound = errors.New("config: invalid bound")

// Range is an optional inclusive [min, max] pair.
type Range struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

// SizeRange is an optional inclusive [min, max] pair of sample counts.
type SizeRange struct {
	Min *int `yaml:"min,omitempty"`
	Max *int `yaml:"max,omitempty"`
}

// Bounds holds every filter criterion. Absent entries leave the criterion
// unconstrained.
type Bounds struct {
	Height      Range     `yaml:"height,omitempty"`
	Threshold   Range     `yaml:"threshold,omitempty"`
	Prominence  Range     `yaml:"prominence,omitempty"`
	PlateauSize SizeRange `yaml:"plateau_size,omitempty"`
	Distance    Range     `yaml:"distance,omitempty"`
}

// Parse decodes YAML bounds. Unknown keys are rejected.
func Parse(data []byte) (Bounds, error) {
	var b Bounds
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return Bounds{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// Load reads and parses a YAML bounds file.
func Load(path string) (Bounds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bounds{}, fmt.Errorf("config: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return Bounds{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Validate rejects negative thresholds, prominences, distances and plateau
// sizes. A min above its max is allowed and selects nothing.
func (b Bounds) Validate() error {
	for name, r := range map[string]Range{
		"threshold":  b.Threshold,
		"prominence": b.Prominence,
		"distance":   b.Distance,
	} {
		if r.Min != nil && *r.Min < 0 {
			return fmt.Errorf("%w: %s.min %v < 0", ErrInvalidBound, name, *r.Min)
		}
		if r.Max != nil && *r.Max < 0 {
			return fmt.Errorf("%w: %s.max %v < 0", ErrInvalidBound, name, *r.Max)
		}
	}
	if p := b.PlateauSize.Min; p != nil && *p < 1 {
		return fmt.Errorf("%w: plateau_size.min %d < 1", ErrInvalidBound, *p)
	}
	if p := b.PlateauSize.Max; p != nil && *p < 1 {
		return fmt.Errorf("%w: plateau_size.max %d < 1", ErrInvalidBound, *p)
	}
	return nil
}

// Merge returns b with every bound set in o taking precedence.
func (b Bounds) Merge(o Bounds) Bounds {
	b.Height = b.Height.merge(o.Height)
	b.Threshold = b.Threshold.merge(o.Threshold)
	b.Prominence = b.Prominence.merge(o.Prominence)
	b.Distance = b.Distance.merge(o.Distance)
	if o.PlateauSize.Min != nil {
		b.PlateauSize.Min = o.PlateauSize.Min
	}
	if o.PlateauSize.Max != nil {
		b.PlateauSize.Max = o.PlateauSize.Max
	}
	return b
}

func (r Range) merge(o Range) Range {
	if o.Min != nil {
		r.Min = o.Min
	}
	if o.Max != nil {
		r.Max = o.Max
	}
	return r
}

// Apply configures f with every set bound.
func (b Bounds) Apply(f *peaks.Finder[float64, float64]) {
	if b.Height.Min != nil {
		f.SetMinHeight(*b.Height.Min)
	}
	if b.Height.Max != nil {
		f.SetMaxHeight(*b.Height.Max)
	}
	if b.Threshold.Min != nil {
		f.SetMinThreshold(*b.Threshold.Min)
	}
	if b.Threshold.Max != nil {
		f.SetMaxThreshold(*b.Threshold.Max)
	}
	if b.Prominence.Min != nil {
		f.SetMinProminence(*b.Prominence.Min)
	}
	if b.Prominence.Max != nil {
		f.SetMaxProminence(*b.Prominence.Max)
	}
	if b.PlateauSize.Min != nil {
		f.SetMinPlateauSize(*b.PlateauSize.Min)
	}
	if b.PlateauSize.Max != nil {
		f.SetMaxPlateauSize(*b.PlateauSize.Max)
	}
	if b.Distance.Min != nil {
		f.SetMinDistance(*b.Distance.Min)
	}
	if b.Distance.Max != nil {
		f.SetMaxDistance(*b.Distance.Max)
	}
}

// Marshal encodes b as YAML.
func (b Bounds) Marshal() ([]byte, error) {
	return yaml.Marshal(b)
}
