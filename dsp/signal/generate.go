package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-peaks/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// PulseTrain generates Gaussian pulses of the given width (standard
// deviation, seconds) repeating every period seconds. The first pulse is
// centered at period/2.
func (g *Generator) PulseTrain(period, width, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("pulse train samples must be > 0: %d", samples)
	}
	if period <= 0 || width <= 0 {
		return nil, fmt.Errorf("pulse train period and width must be > 0: %f, %f", period, width)
	}
	out := make([]float64, samples)
	duration := float64(samples) / g.cfg.SampleRate
	for c := period / 2; c < duration; c += period {
		g.addGaussian(out, c, width, amplitude)
	}
	return out, nil
}

// ecgWave is one component of a synthetic heartbeat, relative to the R wave.
type ecgWave struct {
	offset, width, amplitude float64
}

var heartbeat = []ecgWave{
	{offset: -0.20, width: 0.025, amplitude: 0.15},  // P
	{offset: -0.03, width: 0.010, amplitude: -0.10}, // Q
	{offset: 0, width: 0.012, amplitude: 1.00},      // R
	{offset: 0.03, width: 0.010, amplitude: -0.20},  // S
	{offset: 0.25, width: 0.040, amplitude: 0.30},   // T
}

// Electrocardiogram generates a synthetic ECG-like trace at bpm beats per
// minute with unit R-wave amplitude. The first R wave sits half a beat in.
func (g *Generator) Electrocardiogram(bpm float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ecg samples must be > 0: %d", samples)
	}
	if bpm <= 0 {
		return nil, fmt.Errorf("ecg rate must be > 0: %f", bpm)
	}
	out := make([]float64, samples)
	period := 60 / bpm
	duration := float64(samples) / g.cfg.SampleRate
	for r := period / 2; r < duration; r += period {
		for _, w := range heartbeat {
			g.addGaussian(out, r+w.offset, w.width, w.amplitude)
		}
	}
	return out, nil
}

// addGaussian adds a Gaussian bump centered at center seconds, truncated at
// five standard deviations.
func (g *Generator) addGaussian(dst []float64, center, width, amplitude float64) {
	fs := g.cfg.SampleRate
	lo := int(math.Floor((center - 5*width) * fs))
	hi := int(math.Ceil((center + 5*width) * fs))
	lo = int(core.Clamp(float64(lo), 0, float64(len(dst)-1)))
	hi = int(core.Clamp(float64(hi), 0, float64(len(dst)-1)))
	for i := lo; i <= hi; i++ {
		z := (float64(i)/fs - center) / width
		dst[i] += amplitude * math.Exp(-0.5*z*z)
	}
}

// Sum adds every source element-wise into a new slice as long as the longest
// input.
func Sum(srcs ...[]float64) []float64 {
	n := 0
	for _, s := range srcs {
		n = max(n, len(s))
	}
	out := make([]float64, n)
	for _, s := range srcs {
		if len(s) == 0 {
			continue
		}
		vecmath.AddBlockInPlace(out[:len(s)], s)
	}
	return out
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
