package testutil

import (
	"math"
	"sort"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireStrictlyIncreasing fails t unless positions are sorted ascending
// without duplicates.
func RequireStrictlyIncreasing(t *testing.T, positions []int) {
	t.Helper()
	if !sort.IntsAreSorted(positions) {
		t.Fatalf("positions not sorted: %v", positions)
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1] {
			t.Fatalf("duplicate position %d at index %d", positions[i], i)
		}
	}
}

// RequireSubset fails t unless every element of sub is contained in super.
func RequireSubset(t *testing.T, sub, super []int) {
	t.Helper()
	seen := make(map[int]bool, len(super))
	for _, v := range super {
		seen[v] = true
	}
	for _, v := range sub {
		if !seen[v] {
			t.Fatalf("%d in %v but not in %v", v, sub, super)
		}
	}
}
