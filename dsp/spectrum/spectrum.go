package spectrum

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-peaks/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptySignal is returned when a spectrum is requested for no samples.
var ErrEmptySignal = errors.New("spectrum: empty signal")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Option configures MagnitudeSpectrum.
type Option func(*config)

type config struct {
	window window.Type
}

// WithWindow selects the analysis window. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// MagnitudeSpectrum applies a periodic analysis window to signal, zero-pads
// it to the next power of two, transforms it and returns the magnitudes of
// bins 0..N/2 together with their center frequencies in Hz.
//
// With the default Hann window a bin-centered sine of amplitude A yields a
// magnitude of A*len(signal)/4.
func MagnitudeSpectrum(signal []float64, sampleRate float64, opts ...Option) (mag, freqs []float64, err error) {
	if len(signal) == 0 {
		return nil, nil, ErrEmptySignal
	}
	if sampleRate <= 0 {
		return nil, nil, fmt.Errorf("spectrum: sample rate must be > 0: %f", sampleRate)
	}

	cfg := config{window: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fftSize := nextPowerOf2(len(signal))
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	windowed := append([]float64(nil), signal...)
	window.Apply(cfg.window, windowed, window.WithPeriodic())

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	mag = Magnitude(out[:bins])
	freqs = make([]float64, bins)
	for k := range freqs {
		freqs[k] = float64(k) * sampleRate / float64(fftSize)
	}
	return mag, freqs, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
