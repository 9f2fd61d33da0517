package compute

// Mandelbrot maps a size×size grid onto [-2, 2)×[-2, 2) and counts the
// points whose orbit stays within radius 2 for maxIter iterations.
func Mandelbrot(size, maxIter int) int64 {
	var count int64
	fsize := float64(size)

	for py := 0; py < size; py++ {
		y0 := float64(py)*4.0/fsize - 2.0
		for px := 0; px < size; px++ {
			x0 := float64(px)*4.0/fsize - 2.0
			if escapeTime(x0, y0, maxIter) == maxIter {
				count++
			}
		}
	}

	return count
}

// escapeTime returns the number of iterations before z leaves the radius-2
// disc, capped at maxIter.
func escapeTime(x0, y0 float64, maxIter int) int {
	x, y := 0.0, 0.0
	i := 0
	for x*x+y*y <= 4.0 && i < maxIter {
		x, y = x*x-y*y+x0, 2.0*x*y+y0
		i++
	}
	return i
}
