package peaks

func ptr[T any](v T) *T { return &v }

func middles[T Sample](ps []Peak[T]) []int {
	var out []int
	for _, p := range ps {
		out = append(out, p.MiddlePosition())
	}
	return out
}

func spans[T Sample](ps []Peak[T]) [][2]int {
	var out [][2]int
	for _, p := range ps {
		out = append(out, [2]int{p.LeftPosition, p.RightPosition})
	}
	return out
}
