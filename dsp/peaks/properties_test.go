package peaks

import (
	"math"
	"testing"
)

func TestThresholds(t *testing.T) {
	data := []float64{1, 2, 3, 0, 5, 0}
	p := Peak[float64]{LeftPosition: 2, RightPosition: 2}

	l, r := thresholdsOf(data, &p)
	if l != 1 || r != 3 {
		t.Fatalf("thresholds = %v, %v, want 1, 3", l, r)
	}
	if p.Height == nil || *p.Height != 3 {
		t.Fatalf("height not cached: %v", p.Height)
	}
}

func TestThresholdsUnsigned(t *testing.T) {
	data := []uint8{1, 4, 4, 2}
	p := Peak[uint8]{LeftPosition: 1, RightPosition: 2}

	l, r := thresholdsOf(data, &p)
	if l != 3 || r != 2 {
		t.Fatalf("thresholds = %v, %v, want 3, 2", l, r)
	}
}

func TestPropertiesCached(t *testing.T) {
	data := []float64{0, 4, 0}
	p := Peak[float64]{LeftPosition: 1, RightPosition: 1}

	heightOf(data, &p)
	first := p.Height
	data[1] = 9
	if h := heightOf(data, &p); h != 4 || p.Height != first {
		t.Fatalf("height recomputed: got %v", h)
	}
}

func TestPlateauSize(t *testing.T) {
	p := Peak[int]{LeftPosition: 2, RightPosition: 4}
	if got := plateauSizeOf(&p); got != 3 {
		t.Fatalf("plateauSizeOf() = %d, want 3", got)
	}
}

func TestFilterThresholdBothSides(t *testing.T) {
	data := []float64{1, 2, 3, 0, 5, 0}
	peaks := localMaxima(data)

	var b Bounds[float64]
	b.SetMin(2)
	got := filterThreshold(data, peaks, b)
	if len(got) != 1 || got[0].LeftPosition != 4 {
		t.Fatalf("filterThreshold() = %v, want only the peak at 4", spans(got))
	}
}

func TestFilterPlateauSize(t *testing.T) {
	data := []float64{1, 2, 3, 3, 3, 0, 5, 5, 0}

	var b Bounds[int]
	b.SetMin(3)
	got := filterPlateauSize(localMaxima(data), b)
	if len(got) != 1 || got[0].LeftPosition != 2 || *got[0].PlateauSize != 3 {
		t.Fatalf("filterPlateauSize() = %v", spans(got))
	}
}

func TestSignedDifferencesSaturate(t *testing.T) {
	tests := []struct {
		name              string
		data              []int8
		left, right, prom int8
	}{
		{name: "fits", data: []int8{-10, 20, -10}, left: 30, right: 30, prom: 30},
		{name: "wraps both sides", data: []int8{-100, 100, -100}, left: 127, right: 127, prom: 127},
		{name: "extremes", data: []int8{-128, 127, -128}, left: 127, right: 127, prom: 127},
		{name: "wraps one side", data: []int8{0, 100, -100}, left: 100, right: 127, prom: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.data).Request(PropertyAll).FindPeaks()
			if len(got) != 1 {
				t.Fatalf("FindPeaks() = %v, want one peak", spans(got))
			}
			p := got[0]
			if *p.LeftThreshold != tt.left || *p.RightThreshold != tt.right {
				t.Fatalf("thresholds = %d, %d, want %d, %d", *p.LeftThreshold, *p.RightThreshold, tt.left, tt.right)
			}
			if *p.Prominence != tt.prom {
				t.Fatalf("prominence = %d, want %d", *p.Prominence, tt.prom)
			}

			if n := len(New(tt.data).SetMinThreshold(1).FindPeaks()); n != 1 {
				t.Fatalf("min threshold 1 kept %d peaks, want 1", n)
			}
			if n := len(New(tt.data).SetMinProminence(0).FindPeaks()); n != 1 {
				t.Fatalf("min prominence 0 kept %d peaks, want 1", n)
			}
		})
	}
}

func TestMaxValue(t *testing.T) {
	if got := maxValue[int8](); got != math.MaxInt8 {
		t.Errorf("maxValue[int8]() = %d", got)
	}
	if got := maxValue[int16](); got != math.MaxInt16 {
		t.Errorf("maxValue[int16]() = %d", got)
	}
	if got := maxValue[int64](); got != math.MaxInt64 {
		t.Errorf("maxValue[int64]() = %d", got)
	}
}
