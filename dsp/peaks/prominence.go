package peaks

// prominenceOf computes the topographic prominence of p against the full
// sequence and caches it together with both bases.
//
// Each side is scanned outward from the plateau, tracking the lowest sample,
// until a sample strictly higher than the peak or the sequence boundary is
// reached. The peak is drowned by the shallower of the two valleys.
func prominenceOf[T Sample](data []T, p *Peak[T]) T {
	if p.Prominence != nil && p.LeftBase != nil && p.RightBase != nil {
		return *p.Prominence
	}

	h := heightOf(data, p)

	leftMin, leftBase := h, 0
	for i := p.LeftPosition - 1; i >= 0; i-- {
		v := data[i]
		if v > h {
			leftBase = i
			break
		}
		if v < leftMin {
			leftMin = v
		}
	}

	rightMin, rightBase := h, len(data)-1
	for i := p.RightPosition + 1; i < len(data); i++ {
		v := data[i]
		if v > h {
			rightBase = i
			break
		}
		if v < rightMin {
			rightMin = v
		}
	}

	floor := leftMin
	if rightMin > floor {
		floor = rightMin
	}
	prom := drop(h, floor)

	p.Prominence = &prom
	p.LeftBase = &leftBase
	p.RightBase = &rightBase
	return prom
}

func filterProminence[T Sample](data []T, peaks []Peak[T], b Bounds[T]) []Peak[T] {
	return retain(peaks, func(p *Peak[T]) bool {
		return b.Contains(prominenceOf(data, p))
	})
}
