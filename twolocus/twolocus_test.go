package twolocus_test

import (
	"testing"

	"github.com/grahamgower/moments/demography"
	"github.com/grahamgower/moments/twolocus"
	"github.com/stretchr/testify/require"
)

// TestSimplexIndexRoundTrip checks that Flat/Triple are mutual inverses
// and that Each visits exactly Size() triples.
func TestSimplexIndexRoundTrip(t *testing.T) {
	n := 6
	idx, err := twolocus.Index(n)
	require.NoError(t, err)

	count := 0
	idx.Each(func(f, i, j, k int) {
		count++
		g, err := idx.Flat(i, j, k)
		require.NoError(t, err)
		require.Equal(t, f, g)

		bi, bj, bk := idx.Triple(f)
		require.Equal(t, i, bi)
		require.Equal(t, j, bj)
		require.Equal(t, k, bk)
	})
	require.Equal(t, idx.Size(), count)
	require.Equal(t, (n+1)*(n+2)*(n+3)/6, idx.Size())
}

// TestIndexRejectsBadSampleSize checks the minimum-n guard.
func TestIndexRejectsBadSampleSize(t *testing.T) {
	_, err := twolocus.Index(0)
	require.ErrorIs(t, err, twolocus.ErrBadSampleSize)
}

func columnSums(size int, m interface{ ToDense() [][]float64 }) []float64 {
	dense := m.ToDense()
	sums := make([]float64, size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			sums[j] += dense[i][j]
		}
	}
	return sums
}

// TestDriftConservesMass checks that Drift's generator has zero column
// sums (no probability mass created or destroyed by pure drift).
func TestDriftConservesMass(t *testing.T) {
	n := 5
	idx, err := twolocus.Index(n)
	require.NoError(t, err)
	m, err := twolocus.Drift(n)
	require.NoError(t, err)

	for _, s := range columnSums(idx.Size(), m) {
		require.InDelta(t, 0, s, 1e-9)
	}
}

// TestRecombinationConservesMass checks Recombination's generator is
// also column-sum-zero.
func TestRecombinationConservesMass(t *testing.T) {
	n := 5
	idx, err := twolocus.Index(n)
	require.NoError(t, err)
	m, err := twolocus.Recombination(n, 2.0)
	require.NoError(t, err)

	for _, s := range columnSums(idx.Size(), m) {
		require.InDelta(t, 0, s, 1e-9)
	}
}

// TestSelectionConservesMass checks Selection's generator is also
// column-sum-zero, regardless of the fitness values chosen.
func TestSelectionConservesMass(t *testing.T) {
	n := 5
	idx, err := twolocus.Index(n)
	require.NoError(t, err)
	m, err := twolocus.Selection(n, 0.1, -0.2, 0.05)
	require.NoError(t, err)

	for _, s := range columnSums(idx.Size(), m) {
		require.InDelta(t, 0, s, 1e-9)
	}
}

// TestMutationReversibleConservesMass checks the reversible two-locus
// mutation generator's column sums vanish.
func TestMutationReversibleConservesMass(t *testing.T) {
	n := 5
	idx, err := twolocus.Index(n)
	require.NoError(t, err)
	m, err := twolocus.MutationReversible(n, 0.3, 0.1)
	require.NoError(t, err)

	for _, s := range columnSums(idx.Size(), m) {
		require.InDelta(t, 0, s, 1e-9)
	}
}

// TestProjectPreservesTotal checks that two-locus projection preserves
// total probability mass.
func TestProjectPreservesTotal(t *testing.T) {
	n := 8
	tl, err := twolocus.NewTLSpectrum(n)
	require.NoError(t, err)
	idx, err := tl.Index()
	require.NoError(t, err)
	idx.Each(func(f, i, j, k int) {
		tl.Data[f] = 1.0
	})

	out, err := tl.Project(5)
	require.NoError(t, err)
	require.InDelta(t, tl.Sum(), out.Sum(), 1e-6)
}

// TestFoldIdempotent checks that folding twice matches folding once.
func TestFoldIdempotent(t *testing.T) {
	n := 6
	tl, err := twolocus.NewTLSpectrum(n)
	require.NoError(t, err)
	idx, err := tl.Index()
	require.NoError(t, err)
	idx.Each(func(f, i, j, k int) {
		tl.Data[f] = float64(i + 2*j + 3*k + 1)
	})

	once, err := tl.Fold()
	require.NoError(t, err)
	twice, err := once.Fold()
	require.NoError(t, err)
	require.InDeltaSlice(t, once.Data, twice.Data, 1e-9)
}

// TestIntegrateNeutralConservesMass checks that integrating a uniform
// two-locus distribution under neutral drift plus recombination for a
// short time keeps total probability mass at 1.
func TestIntegrateNeutralConservesMass(t *testing.T) {
	n := 4
	tl, err := twolocus.NewTLSpectrum(n)
	require.NoError(t, err)
	idx, err := tl.Index()
	require.NoError(t, err)
	idx.Each(func(f, i, j, k int) {
		tl.Data[f] = 1.0 / float64(idx.Size())
	})

	cfg := twolocus.Config{
		N:      demography.Constant([]float64{1.0}),
		TFinal: 0.05,
		DtFac:  0.1,
		Rho:    1.0,
	}
	require.NoError(t, twolocus.Integrate(tl, cfg))
	require.InDelta(t, 1.0, tl.Sum(), 1e-4)
}

// TestIntegrateMarginalMatchesOneLocusSFS reproduces end-to-end scenario 6:
// for n=30, rho=0, theta=1, starting from an all-zero two-locus
// distribution and integrating with infinite-sites mutation at both loci
// until the system nears equilibrium, each locus's marginal
// allele-frequency spectrum converges to the familiar one-locus neutral
// result phi_k = theta/k (the marginal drift at either locus has
// onedim.Drift's k*(n-k) rates, and MutationInfiniteSites injects each
// locus's new mutations at that locus's count 1, so for k>=1 each locus's
// marginal drift+mutation dynamics is its own 1D neutral system).
func TestIntegrateMarginalMatchesOneLocusSFS(t *testing.T) {
	n := 30
	theta := 1.0

	tl, err := twolocus.NewTLSpectrum(n)
	require.NoError(t, err)

	cfg := twolocus.Config{
		N:      demography.Constant([]float64{1.0}),
		TFinal: 12,
		DtFac:  0.05,
		Rho:    0,
		Theta:  theta,
	}
	require.NoError(t, twolocus.Integrate(tl, cfg))

	for locus := 0; locus < 2; locus++ {
		marginal, err := tl.MarginalSFS(locus)
		require.NoError(t, err)
		for k := 1; k < n; k++ {
			require.InDelta(t, theta/float64(k), marginal[k], 5e-2, "locus=%d k=%d", locus, k)
		}
	}
}
