package jackknife

import (
	"fmt"

	"github.com/grahamgower/moments/internal/lru"
)

// maxCached bounds the number of distinct (n, order) matrices retained in
// memory at once.
const maxCached = 256

// cacheKey identifies a jackknife matrix by sample size and extrapolation
// order (1: n+1 -> n+2 entries; 2: n+1 -> n+3 entries).
type cacheKey struct {
	n     int
	order int
}

var cache = lru.New[cacheKey, [][]float64](maxCached)

// Matrix returns the dense (n+1+order)x(n+1) extrapolation matrix mapping
// an n-sample moment vector (n+1 entries) to the (n+order)-sample
// extrapolated vector. Matrices are pure functions of (n, order) and are
// cached after first construction.
func Matrix(n, order int) ([][]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("Matrix: n=%d: %w", n, ErrBadSampleSize)
	}
	if order != 1 && order != 2 {
		return nil, fmt.Errorf("Matrix: order=%d: %w", order, ErrBadOrder)
	}
	key := cacheKey{n: n, order: order}
	if m, ok := cache.Get(key); ok {
		return m, nil
	}
	m := build(n, order)
	cache.Put(key, m)
	return m, nil
}

// build constructs the extrapolation matrix by local quadratic (three-point
// Lagrange) interpolation of the underlying allele-frequency function,
// sampled on the source grid x_i = i/n and evaluated on the target grid
// y_j = j/(n+order). At the two frequency-class extremes, where i-1 or i+1
// would fall outside [0, n], the interpolation falls back to a one-sided
// triple of source points.
func build(n, order int) [][]float64 {
	rows := n + order + 1
	cols := n + 1
	out := make([][]float64, rows)

	for j := 0; j < rows; j++ {
		y := float64(j) / float64(n+order)
		i := int(y*float64(n) + 0.5) // nearest source index
		i0 := clamp(i-1, 0, cols-3)
		w := quadraticWeights(n, i0, y)
		row := make([]float64, cols)
		row[i0] = w[0]
		row[i0+1] = w[1]
		row[i0+2] = w[2]
		out[j] = row
	}
	return out
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// quadraticWeights returns the Lagrange basis weights for evaluating the
// quadratic interpolant through source points (i0, i0+1, i0+2) (each at
// x_k = k/n) at target frequency y.
func quadraticWeights(n, i0 int, y float64) [3]float64 {
	x0 := float64(i0) / float64(n)
	x1 := float64(i0+1) / float64(n)
	x2 := float64(i0+2) / float64(n)

	var w [3]float64
	w[0] = ((y - x1) * (y - x2)) / ((x0 - x1) * (x0 - x2))
	w[1] = ((y - x0) * (y - x2)) / ((x1 - x0) * (x1 - x2))
	w[2] = ((y - x0) * (y - x1)) / ((x2 - x0) * (x2 - x1))
	return w
}

// ExtrapolateOne applies the order-1 matrix (n+1 -> n+2 entries) to phi.
func ExtrapolateOne(phi []float64) ([]float64, error) {
	return extrapolate(phi, 1)
}

// ExtrapolateTwo applies the order-2 matrix (n+1 -> n+3 entries) to phi.
func ExtrapolateTwo(phi []float64) ([]float64, error) {
	return extrapolate(phi, 2)
}

func extrapolate(phi []float64, order int) ([]float64, error) {
	n := len(phi) - 1
	m, err := Matrix(n, order)
	if err != nil {
		return nil, fmt.Errorf("extrapolate: %w", err)
	}
	out := make([]float64, len(m))
	for j, row := range m {
		var acc float64
		for k, w := range row {
			acc += w * phi[k]
		}
		out[j] = acc
	}
	return out, nil
}
