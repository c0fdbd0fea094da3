package peaks

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned by NewWithX when x and y differ in length.
var ErrLengthMismatch = errors.New("peaks: x and y length mismatch")

// ErrInvalidCoordinates is returned by NewWithX for coordinates that are not
// finite or decrease.
var ErrInvalidCoordinates = errors.New("peaks: invalid coordinates")

// Finder detects and filters peaks in a borrowed sample sequence.
//
// T is the sample type. S is the coordinate type used for distance bounds:
// sample positions for New, caller-supplied coordinates for NewWithX.
//
// Bounds are changed through the chainable Set* methods between calls to
// FindPeaks. A Finder is not safe for concurrent mutation, but concurrent
// FindPeaks calls on an unchanged Finder are fine.
type Finder[T, S Sample] struct {
	y []T
	x []S

	height      Bounds[T]
	threshold   Bounds[T]
	prominence  Bounds[T]
	plateauSize Bounds[int]
	distance    Bounds[S]

	request Property
}

// New returns a Finder over y that measures distance in sample positions.
func New[T Sample](y []T) *Finder[T, int] {
	return &Finder[T, int]{y: y}
}

// NewWithX returns a Finder over y whose distance bounds are expressed in the
// coordinates x, evaluated at each peak's middle position. x must be
// non-decreasing and finite; otherwise NewWithX returns ErrInvalidCoordinates.
func NewWithX[T, S Sample](y []T, x []S) (*Finder[T, S], error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d samples, %d coordinates", ErrLengthMismatch, len(y), len(x))
	}
	for i, v := range x {
		if !finite(v) {
			return nil, fmt.Errorf("%w: x[%d] = %v is not finite", ErrInvalidCoordinates, i, v)
		}
		if i > 0 && v < x[i-1] {
			return nil, fmt.Errorf("%w: x[%d] = %v after %v", ErrInvalidCoordinates, i, v, x[i-1])
		}
	}
	return &Finder[T, S]{y: y, x: x}, nil
}

// SetMinHeight sets the lower height bound.
func (f *Finder[T, S]) SetMinHeight(h T) *Finder[T, S] {
	f.height.SetMin(h)
	return f
}

// SetMaxHeight sets the upper height bound.
func (f *Finder[T, S]) SetMaxHeight(h T) *Finder[T, S] {
	f.height.SetMax(h)
	return f
}

// SetMinThreshold sets the lower bound both neighbour drops must satisfy.
func (f *Finder[T, S]) SetMinThreshold(t T) *Finder[T, S] {
	f.threshold.SetMin(t)
	return f
}

// SetMaxThreshold sets the upper bound both neighbour drops must satisfy.
func (f *Finder[T, S]) SetMaxThreshold(t T) *Finder[T, S] {
	f.threshold.SetMax(t)
	return f
}

// SetMinPlateauSize sets the minimum number of samples in a peak plateau.
func (f *Finder[T, S]) SetMinPlateauSize(n int) *Finder[T, S] {
	f.plateauSize.SetMin(n)
	return f
}

// SetMaxPlateauSize sets the maximum number of samples in a peak plateau.
func (f *Finder[T, S]) SetMaxPlateauSize(n int) *Finder[T, S] {
	f.plateauSize.SetMax(n)
	return f
}

// SetMinDistance sets the minimum separation between surviving peaks.
// Peaks closer than d conflict and the taller one wins.
func (f *Finder[T, S]) SetMinDistance(d S) *Finder[T, S] {
	f.distance.SetMin(d)
	return f
}

// SetMaxDistance drops peaks whose nearest surviving neighbour is farther
// away than d.
func (f *Finder[T, S]) SetMaxDistance(d S) *Finder[T, S] {
	f.distance.SetMax(d)
	return f
}

// SetMinProminence sets the lower prominence bound.
func (f *Finder[T, S]) SetMinProminence(p T) *Finder[T, S] {
	f.prominence.SetMin(p)
	return f
}

// SetMaxProminence sets the upper prominence bound.
func (f *Finder[T, S]) SetMaxProminence(p T) *Finder[T, S] {
	f.prominence.SetMax(p)
	return f
}

// Request asks FindPeaks to populate the given property classes on every
// returned peak, whether or not a filter needed them. It replaces any
// previous request.
func (f *Finder[T, S]) Request(props Property) *Finder[T, S] {
	f.request = props
	return f
}

// Height returns the configured height bounds.
func (f *Finder[T, S]) Height() Bounds[T] { return f.height }

// Threshold returns the configured threshold bounds.
func (f *Finder[T, S]) Threshold() Bounds[T] { return f.threshold }

// Prominence returns the configured prominence bounds.
func (f *Finder[T, S]) Prominence() Bounds[T] { return f.prominence }

// PlateauSize returns the configured plateau size bounds.
func (f *Finder[T, S]) PlateauSize() Bounds[int] { return f.plateauSize }

// Distance returns the configured distance bounds.
func (f *Finder[T, S]) Distance() Bounds[S] { return f.distance }

// Populate fills in the requested property classes of p, computing only those
// not already present. p must have been returned by FindPeaks on this Finder.
func (f *Finder[T, S]) Populate(p *Peak[T], props Property) {
	if props&PropertyHeight != 0 {
		heightOf(f.y, p)
	}
	if props&PropertyThreshold != 0 {
		thresholdsOf(f.y, p)
	}
	if props&PropertyPlateauSize != 0 {
		plateauSizeOf(p)
	}
	if props&PropertyProminence != 0 {
		prominenceOf(f.y, p)
	}
}

// FindPeaks returns the peaks that pass every configured bound, ordered by
// ascending middle position. The result is nil when nothing qualifies.
//
// Stages run cheapest first: plateau size, height, threshold, distance and
// prominence. Unconfigured stages are skipped.
func (f *Finder[T, S]) FindPeaks() []Peak[T] {
	peaks := localMaxima(f.y)
	if len(peaks) == 0 {
		return nil
	}

	if f.plateauSize.IsSet() {
		peaks = filterPlateauSize(peaks, f.plateauSize)
	}
	if f.height.IsSet() {
		peaks = filterHeight(f.y, peaks, f.height)
	}
	if f.threshold.IsSet() {
		peaks = filterThreshold(f.y, peaks, f.threshold)
	}
	if f.distance.IsSet() {
		for i := range peaks {
			heightOf(f.y, &peaks[i])
		}
		peaks = selectByDistance(peaks, f.xAt, f.distance)
	}
	if f.prominence.IsSet() {
		peaks = filterProminence(f.y, peaks, f.prominence)
	}

	if len(peaks) == 0 {
		return nil
	}
	if f.request != 0 {
		for i := range peaks {
			f.Populate(&peaks[i], f.request)
		}
	}
	return peaks
}

func (f *Finder[T, S]) xAt(i int) S {
	if f.x == nil {
		return S(i)
	}
	return f.x[i]
}
