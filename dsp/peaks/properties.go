package peaks

// The helpers below compute a property class for p on first use and cache it
// on the peak. data must be the sequence p was detected in.

func heightOf[T Sample](data []T, p *Peak[T]) T {
	if p.Height == nil {
		h := data[p.LeftPosition]
		p.Height = &h
	}
	return *p.Height
}

func thresholdsOf[T Sample](data []T, p *Peak[T]) (left, right T) {
	if p.LeftThreshold == nil || p.RightThreshold == nil {
		h := heightOf(data, p)
		l := drop(h, data[p.LeftPosition-1])
		r := drop(h, data[p.RightPosition+1])
		p.LeftThreshold, p.RightThreshold = &l, &r
	}
	return *p.LeftThreshold, *p.RightThreshold
}

func plateauSizeOf[T Sample](p *Peak[T]) int {
	if p.PlateauSize == nil {
		s := p.RightPosition - p.LeftPosition + 1
		p.PlateauSize = &s
	}
	return *p.PlateauSize
}

// retain keeps the peaks for which keep returns true, reusing the backing
// array. keep may populate fields of the peak it is given.
func retain[T Sample](peaks []Peak[T], keep func(*Peak[T]) bool) []Peak[T] {
	out := peaks[:0]
	for i := range peaks {
		if keep(&peaks[i]) {
			out = append(out, peaks[i])
		}
	}
	return out
}

func filterPlateauSize[T Sample](peaks []Peak[T], b Bounds[int]) []Peak[T] {
	return retain(peaks, func(p *Peak[T]) bool {
		return b.Contains(plateauSizeOf(p))
	})
}

func filterHeight[T Sample](data []T, peaks []Peak[T], b Bounds[T]) []Peak[T] {
	return retain(peaks, func(p *Peak[T]) bool {
		return b.Contains(heightOf(data, p))
	})
}

// filterThreshold requires both sides to satisfy b independently.
func filterThreshold[T Sample](data []T, peaks []Peak[T], b Bounds[T]) []Peak[T] {
	return retain(peaks, func(p *Peak[T]) bool {
		l, r := thresholdsOf(data, p)
		return b.Contains(l) && b.Contains(r)
	})
}
