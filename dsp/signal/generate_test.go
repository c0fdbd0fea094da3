package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-peaks/dsp/core"
	"github.com/cwbudde/algo-peaks/dsp/peaks"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}
}

func TestGeneratorErrors(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(1, 1, 0); err == nil {
		t.Fatal("Sine() with zero samples: expected error")
	}
	if _, err := g.WhiteNoise(-1, 8); err == nil {
		t.Fatal("WhiteNoise() with negative amplitude: expected error")
	}
	if _, err := g.PulseTrain(0, 0.1, 1, 8); err == nil {
		t.Fatal("PulseTrain() with zero period: expected error")
	}
	if _, err := g.Electrocardiogram(0, 8); err == nil {
		t.Fatal("Electrocardiogram() with zero rate: expected error")
	}
}

func TestPulseTrainPeaks(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(100))
	x, err := g.PulseTrain(0.5, 0.02, 2, 300)
	if err != nil {
		t.Fatalf("PulseTrain() error = %v", err)
	}

	ps := peaks.New(x).SetMinProminence(1).FindPeaks()
	if len(ps) != 6 {
		t.Fatalf("got %d pulses, want 6", len(ps))
	}
	for k, p := range ps {
		want := 25 + 50*k
		if p.MiddlePosition() != want {
			t.Fatalf("pulse %d at %d, want %d", k, p.MiddlePosition(), want)
		}
		if math.Abs(x[want]-2) > 1e-12 {
			t.Fatalf("pulse %d amplitude %v, want 2", k, x[want])
		}
	}
}

func TestElectrocardiogramRWaves(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(360))
	x, err := g.Electrocardiogram(60, 360*10)
	if err != nil {
		t.Fatalf("Electrocardiogram() error = %v", err)
	}

	ps := peaks.New(x).SetMinProminence(0.5).SetMinDistance(100).FindPeaks()
	if len(ps) != 10 {
		t.Fatalf("got %d R waves, want 10", len(ps))
	}
	for k, p := range ps {
		want := 180 + 360*k
		if p.MiddlePosition() != want {
			t.Fatalf("R wave %d at %d, want %d", k, p.MiddlePosition(), want)
		}
	}
}

func TestSum(t *testing.T) {
	got := Sum([]float64{1, 2, 3}, []float64{10}, nil)
	want := []float64{11, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sum()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	x, err := Normalize([]float64{-2, 1, 0.5}, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if x[0] != -1 || x[1] != 0.5 {
		t.Fatalf("Normalize() = %v", x)
	}
	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("Normalize(nil): expected error")
	}
}
