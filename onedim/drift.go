package onedim

import (
	"fmt"

	"github.com/grahamgower/moments/tridiag"
)

// Drift builds the Moran-style coalescent drift generator for a sample of
// size n (phi has n+1 entries, indices 0..n).
//
// Writing r(k) = k*(n-k) for the birth/death rate out of frequency class k
// (zero at both k=0 and k=n, so the generator needs no boundary special
// casing), the generator is the tridiagonal
//
//	G[k][k-1] = r(k-1)     (birth at k-1 moving into k)
//	G[k][k]   = -2*r(k)
//	G[k][k+1] = r(k+1)     (death at k+1 moving into k)
//
// Column sums of G are identically zero (mass lost moving "down" out of
// k+1 exactly accounts for the mass gained moving "up" into k, and vice
// versa), so total mass is conserved under drift alone. Solving the steady
// state of this generator against a single infinite-sites source at k=1
// reproduces phi_k ∝ 1/k, the classical neutral result. The caller
// rescales by 1/(4*N) when assembling a per-step system; this function
// returns the bare generator.
func Drift(n int) (*tridiag.System, error) {
	if n < 2 {
		return nil, fmt.Errorf("Drift: n=%d: %w", n, ErrBadSampleSize)
	}

	size := n + 1
	r := func(k int) float64 { return float64(k) * float64(n-k) }

	s := &tridiag.System{
		Sub:   make([]float64, size),
		Diag:  make([]float64, size),
		Super: make([]float64, size),
	}
	for k := 0; k < size; k++ {
		s.Diag[k] = -2 * r(k)
		if k > 0 {
			s.Sub[k] = r(k - 1)
		}
		if k < size-1 {
			s.Super[k] = r(k + 1)
		}
	}
	return s, nil
}
