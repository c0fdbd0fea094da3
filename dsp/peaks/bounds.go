package peaks

// Sample is the set of numeric types a Finder operates on. Differences of two
// samples (thresholds, prominences, x distances) use the same type.
type Sample interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Bounds is an inclusive [min, max] range where either side may be absent.
// The zero value is unconstrained.
type Bounds[T Sample] struct {
	min, max       T
	hasMin, hasMax bool
}

// SetMin sets the lower bound and leaves the upper bound untouched.
func (b *Bounds[T]) SetMin(v T) {
	b.min = v
	b.hasMin = true
}

// SetMax sets the upper bound and leaves the lower bound untouched.
func (b *Bounds[T]) SetMax(v T) {
	b.max = v
	b.hasMax = true
}

// Min returns the lower bound and whether it is set.
func (b Bounds[T]) Min() (T, bool) { return b.min, b.hasMin }

// Max returns the upper bound and whether it is set.
func (b Bounds[T]) Max() (T, bool) { return b.max, b.hasMax }

// IsSet reports whether at least one side is constrained.
func (b Bounds[T]) IsSet() bool { return b.hasMin || b.hasMax }

// Contains reports whether v satisfies both configured sides. With min > max
// no value is contained. NaN fails any configured side.
func (b Bounds[T]) Contains(v T) bool {
	if b.hasMin && !(v >= b.min) {
		return false
	}
	if b.hasMax && !(v <= b.max) {
		return false
	}
	return true
}

// span returns |a-b|. ok is false when the difference overflows S, in which
// case the distance is larger than any representable bound.
func span[S Sample](a, b S) (d S, ok bool) {
	if a < b {
		a, b = b, a
	}
	d = a - b
	var zero S
	if d < zero {
		return d, false
	}
	return d, true
}

// drop returns high-low for high >= low. A signed difference that wraps
// saturates at the largest value of T.
func drop[T Sample](high, low T) T {
	d := high - low
	var zero T
	if d < zero {
		return maxValue[T]()
	}
	return d
}

// maxValue returns the largest value of a signed integer T.
func maxValue[T Sample]() T {
	m := T(1)
	for next := m*2 + 1; next > m; next = m*2 + 1 {
		m = next
	}
	return m
}

// finite reports whether v is neither NaN nor infinite. Both give NaN for
// v - v; every integer and finite float gives zero.
func finite[S Sample](v S) bool {
	var zero S
	return v-v == zero
}
