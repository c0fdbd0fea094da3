package peaks

import "slices"

// selectByDistance enforces the distance bounds on peaks, which must be
// ordered by position and have Height populated. xAt maps a sample index to
// its coordinate and must be non-decreasing. The result keeps position order.
func selectByDistance[T, S Sample](peaks []Peak[T], xAt func(int) S, b Bounds[S]) []Peak[T] {
	n := len(peaks)
	if n == 0 || !b.IsSet() {
		return peaks
	}

	x := make([]S, n)
	for i := range peaks {
		x[i] = xAt(peaks[i].MiddlePosition())
	}

	removed := make([]bool, n)

	if minDist, ok := b.Min(); ok {
		// Visit by descending height, ties by ascending position.
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		slices.SortFunc(order, func(a, c int) int {
			ha, hc := *peaks[a].Height, *peaks[c].Height
			switch {
			case ha > hc:
				return -1
			case ha < hc:
				return 1
			}
			return a - c
		})

		for _, k := range order {
			if removed[k] {
				continue
			}
			for j := k - 1; j >= 0; j-- {
				if d, ok := span(x[k], x[j]); !ok || d >= minDist {
					break
				}
				removed[j] = true
			}
			for j := k + 1; j < n; j++ {
				if d, ok := span(x[k], x[j]); !ok || d >= minDist {
					break
				}
				removed[j] = true
			}
		}
	}

	if maxDist, ok := b.Max(); ok {
		survivors := make([]int, 0, n)
		for i := range peaks {
			if !removed[i] {
				survivors = append(survivors, i)
			}
		}

		// Evaluated once against the min-distance survivors; drops do not cascade.
		isolated := make([]bool, len(survivors))
		for s, i := range survivors {
			near := false
			if s > 0 {
				if d, ok := span(x[i], x[survivors[s-1]]); ok && d <= maxDist {
					near = true
				}
			}
			if s+1 < len(survivors) {
				if d, ok := span(x[i], x[survivors[s+1]]); ok && d <= maxDist {
					near = true
				}
			}
			isolated[s] = !near
		}
		for s, i := range survivors {
			if isolated[s] {
				removed[i] = true
			}
		}
	}

	out := peaks[:0]
	for i := range peaks {
		if !removed[i] {
			out = append(out, peaks[i])
		}
	}
	return out
}
