package onedim

import (
	"fmt"

	"github.com/grahamgower/moments/tridiag"
)

// MutationInfiniteSites builds the rank-1 infinite-sites mutation source for
// a sample of size n: new mutations enter only at frequency class 1, at
// rate n*theta (theta = 4*N*u, population-scaled mutation rate), matching
// the classical single-entry source term. The returned vector has n+1
// entries and is added directly to d(phi)/dt, not composed into a matrix.
func MutationInfiniteSites(n int, theta float64) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("MutationInfiniteSites: n=%d: %w", n, ErrBadSampleSize)
	}
	b := make([]float64, n+1)
	b[1] = float64(n) * theta
	return b, nil
}

// MutationReversible builds the full two-way mutation generator for a
// sample of size n under a reversible (finite-sites) model: each of the
// n-k ancestral copies at frequency class k mutates forward at rate
// thetaFd, and each of the k derived copies mutates backward at rate
// thetaBd. Unlike the infinite-sites source, this operates on the whole
// state space 0..n (no absorbing corners get masked away, since mutation
// recurs indefinitely), and is tridiagonal for the same reason Drift is:
//
//	G[k][k-1] = thetaFd*(n-k+1)  (an ancestral copy at k-1 mutating forward)
//	G[k][k]   = -(thetaFd*(n-k) + thetaBd*k)
//	G[k][k+1] = thetaBd*(k+1)    (a derived copy at k+1 mutating back)
//
// Column sums are zero by the same telescoping argument as Drift, so this
// conserves total probability mass over the full state space.
func MutationReversible(n int, thetaFd, thetaBd float64) (*tridiag.System, error) {
	if n < 2 {
		return nil, fmt.Errorf("MutationReversible: n=%d: %w", n, ErrBadSampleSize)
	}

	size := n + 1
	fwd := func(k int) float64 { return thetaFd * float64(n-k) } // k -> k+1
	bwd := func(k int) float64 { return thetaBd * float64(k) }   // k -> k-1

	s := &tridiag.System{
		Sub:   make([]float64, size),
		Diag:  make([]float64, size),
		Super: make([]float64, size),
	}
	for k := 0; k < size; k++ {
		s.Diag[k] = -(fwd(k) + bwd(k))
		if k > 0 {
			s.Sub[k] = fwd(k - 1)
		}
		if k < size-1 {
			s.Super[k] = bwd(k + 1)
		}
	}
	return s, nil
}
