package onedim_test

import (
	"testing"

	"github.com/grahamgower/moments/internal/sparse"
	"github.com/grahamgower/moments/onedim"
	"github.com/stretchr/testify/require"
)

func columnSums(t *testing.T, rows, cols int, c *sparse.COO) []float64 {
	t.Helper()
	sums := make([]float64, cols)
	for _, e := range c.Entries {
		sums[e.Col] += e.Val
	}
	return sums
}

// TestDriftConservesMass checks that Drift's column sums are all zero,
// i.e. total probability mass is conserved under pure drift.
func TestDriftConservesMass(t *testing.T) {
	n := 12
	d, err := onedim.Drift(n)
	require.NoError(t, err)

	c := sparse.FromTridiag(sparse.Tridiag{Sub: d.Sub, Diag: d.Diag, Super: d.Super})
	sums := columnSums(t, n+1, n+1, c)
	for k, s := range sums {
		require.InDelta(t, 0, s, 1e-9, "column %d", k)
	}
}

// TestDriftNeutralSteadyState checks that drift + an infinite-sites source
// balance exactly at phi_k = theta/k for interior k (spec Property 1).
func TestDriftNeutralSteadyState(t *testing.T) {
	n := 16
	theta := 0.3

	d, err := onedim.Drift(n)
	require.NoError(t, err)
	b, err := onedim.MutationInfiniteSites(n, theta)
	require.NoError(t, err)

	c := sparse.FromTridiag(sparse.Tridiag{Sub: d.Sub, Diag: d.Diag, Super: d.Super})

	phi := make([]float64, n+1)
	for k := 1; k < n; k++ {
		phi[k] = theta / float64(k)
	}

	rate := c.Apply(phi)
	for k := 1; k < n; k++ {
		require.InDelta(t, 0, rate[k]+b[k], 1e-9, "interior balance at k=%d", k)
	}
}

// TestSelection1ConservesMass checks S1's column sums are all zero.
func TestSelection1ConservesMass(t *testing.T) {
	n := 10
	s1, err := onedim.Selection1(n, 2.0, 0.5)
	require.NoError(t, err)

	sums := columnSums(t, n+1, n+1, s1)
	for k, s := range sums {
		require.InDelta(t, 0, s, 1e-7, "column %d", k)
	}
}

// TestSelection2ConservesMass checks S2's column sums are all zero.
func TestSelection2ConservesMass(t *testing.T) {
	n := 10
	s2, err := onedim.Selection2(n, -1.5, 0.1)
	require.NoError(t, err)

	sums := columnSums(t, n+1, n+1, s2)
	for k, s := range sums {
		require.InDelta(t, 0, s, 1e-7, "column %d", k)
	}
}

// TestMutationInfiniteSitesSource checks the rank-1 source vector shape.
func TestMutationInfiniteSitesSource(t *testing.T) {
	n := 8
	theta := 1.2
	b, err := onedim.MutationInfiniteSites(n, theta)
	require.NoError(t, err)
	require.Len(t, b, n+1)
	require.InDelta(t, float64(n)*theta, b[1], 1e-12)
	for k, v := range b {
		if k != 1 {
			require.Zero(t, v)
		}
	}
}

// TestMutationReversibleConservesMass checks the two-way mutation
// generator's column sums are zero, since it operates on the full 0..n
// state space rather than masking fixed/lost corners.
func TestMutationReversibleConservesMass(t *testing.T) {
	n := 9
	m, err := onedim.MutationReversible(n, 0.01, 0.02)
	require.NoError(t, err)

	c := sparse.FromTridiag(sparse.Tridiag{Sub: m.Sub, Diag: m.Diag, Super: m.Super})
	sums := columnSums(t, n+1, n+1, c)
	for k, s := range sums {
		require.InDelta(t, 0, s, 1e-9, "column %d", k)
	}
}

// TestBadSampleSize checks the shared sample-size validation.
func TestBadSampleSize(t *testing.T) {
	_, err := onedim.Drift(1)
	require.ErrorIs(t, err, onedim.ErrBadSampleSize)

	_, err = onedim.Selection1(1, 1, 0.5)
	require.ErrorIs(t, err, onedim.ErrBadSampleSize)

	_, err = onedim.MutationInfiniteSites(0, 1)
	require.ErrorIs(t, err, onedim.ErrBadSampleSize)

	_, err = onedim.MutationReversible(1, 0.1, 0.1)
	require.ErrorIs(t, err, onedim.ErrBadSampleSize)
}
