package compute

import "math"

// a is entry (i, j) of the infinite matrix A = 1 / ((i+j)(i+j+1)/2 + i + 1).
func a(i, j int) float64 {
	return 1.0 / float64((i+j)*(i+j+1)/2+i+1)
}

func multiplyAv(v, av []float64) {
	for i := range av {
		var sum float64
		for j := range v {
			sum += a(i, j) * v[j]
		}
		av[i] = sum
	}
}

func multiplyAtv(v, atv []float64) {
	for i := range atv {
		var sum float64
		for j := range v {
			sum += a(j, i) * v[j]
		}
		atv[i] = sum
	}
}

func multiplyAtAv(v, out, tmp []float64) {
	multiplyAv(v, tmp)
	multiplyAtv(tmp, out)
}

// SpectralNorm approximates the spectral norm of the n×n leading block of A
// with the given number of power iterations.
func SpectralNorm(n, iterations int) float64 {
	u := make([]float64, n)
	v := make([]float64, n)
	tmp := make([]float64, n)
	for i := range u {
		u[i] = 1
	}

	for i := 0; i < iterations; i++ {
		multiplyAtAv(u, v, tmp)
		multiplyAtAv(v, u, tmp)
	}

	var vBv, vv float64
	for i := 0; i < n; i++ {
		vBv += u[i] * v[i]
		vv += v[i] * v[i]
	}

	return math.Sqrt(vBv / vv)
}
