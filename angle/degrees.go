package angle

// CircularChecker wraps a whole-degree heading into [0, 360).
func CircularChecker(in int) (out int) {
	out = in % 360
	if out < 0 {
		out += 360
	}
	return
}
