package peaks

// localMaxima returns every maximal plateau of data that is a strict local
// maximum, ordered by position. Endpoints never qualify because a peak needs
// a lower neighbour on both sides. Each plateau is visited once.
func localMaxima[T Sample](data []T) []Peak[T] {
	n := len(data)
	if n < 3 {
		return nil
	}

	var out []Peak[T]
	i := 1
	for i < n-1 {
		if !(data[i-1] < data[i]) {
			i++
			continue
		}

		// Rising edge at i; find the right edge of the plateau.
		j := i
		for j+1 < n-1 && data[j+1] == data[i] {
			j++
		}
		if data[j+1] < data[i] {
			out = append(out, Peak[T]{LeftPosition: i, RightPosition: j})
		}
		i = j + 1
	}
	return out
}
