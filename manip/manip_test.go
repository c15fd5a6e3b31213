package manip_test

import (
	"testing"

	"github.com/grahamgower/moments/manip"
	"github.com/grahamgower/moments/spectrum"
	"github.com/stretchr/testify/require"
)

func uniformSpectrum(t *testing.T, n int) *spectrum.Spectrum {
	t.Helper()
	data := make([]float64, n+1)
	for i := range data {
		data[i] = float64(i + 1)
	}
	sp, err := spectrum.New([]int{n + 1}, data, nil, false, spectrum.MaskNone)
	require.NoError(t, err)
	return sp
}

// TestProjectPreservesTotal checks that hypergeometric downsampling
// preserves the total mass (each source cell's weight distributes across
// the projected axis summing to 1).
func TestProjectPreservesTotal(t *testing.T) {
	phi := uniformSpectrum(t, 20)
	var want float64
	for _, v := range phi.Data() {
		want += v
	}

	out, err := manip.Project(phi, []int{11})
	require.NoError(t, err)

	var got float64
	for _, v := range out.Data() {
		got += v
	}
	require.InDelta(t, want, got, 1e-8)
}

// TestProjectRejectsUpsample checks that Project refuses a larger target
// sample size.
func TestProjectRejectsUpsample(t *testing.T) {
	phi := uniformSpectrum(t, 5)
	_, err := manip.Project(phi, []int{10})
	require.ErrorIs(t, err, manip.ErrSampleTooLarge)
}

// TestSplitMergeIdentity checks Property 2: splitting a population into
// two descendants and immediately merging them back reproduces the
// source spectrum exactly, since the hypergeometric partition weights
// used by Split sum to the Merge anti-diagonal exactly.
func TestSplitMergeIdentity(t *testing.T) {
	n := 8
	phi := uniformSpectrum(t, n)

	n1, n2 := 3, 5
	split, err := manip.Split(phi, 0, n1, n2)
	require.NoError(t, err)
	require.Equal(t, []int{n1 + 1, n2 + 1}, split.Shape())

	merged, err := manip.Merge(split)
	require.NoError(t, err)
	require.Equal(t, []int{n + 1}, merged.Shape())

	for k := 0; k <= n; k++ {
		want, err := phi.At(k)
		require.NoError(t, err)
		got, err := merged.At(k)
		require.NoError(t, err)
		require.InDelta(t, want, got, 1e-8, "k=%d", k)
	}
}

// TestSplitRejectsOversizedDescendants checks that n1+n2 exceeding the
// source axis's sample size is rejected.
func TestSplitRejectsOversizedDescendants(t *testing.T) {
	phi := uniformSpectrum(t, 4)
	_, err := manip.Split(phi, 0, 3, 3)
	require.ErrorIs(t, err, manip.ErrSampleTooLarge)
}

// TestMergeRejectsSingleAxis checks Merge's two-population guard.
func TestMergeRejectsSingleAxis(t *testing.T) {
	phi := uniformSpectrum(t, 4)
	_, err := manip.Merge(phi)
	require.ErrorIs(t, err, manip.ErrNotTwoPop)
}

// TestAdmixNewPreservesTotal checks that the exact admixture construction
// conserves total mass: every source cell's probability mass spreads
// across the new axis summing to 1.
func TestAdmixNewPreservesTotal(t *testing.T) {
	n1, n2 := 6, 6
	data := make([]float64, (n1+1)*(n2+1))
	for i := range data {
		data[i] = 1.0
	}
	phi, err := spectrum.New([]int{n1 + 1, n2 + 1}, data, nil, false, spectrum.MaskNone)
	require.NoError(t, err)

	var want float64
	for _, v := range phi.Data() {
		want += v
	}

	out, err := manip.AdmixNew(phi, 0, 1, 5, 0.4)
	require.NoError(t, err)

	var got float64
	for _, v := range out.Data() {
		got += v
	}
	require.InDelta(t, want, got, 1e-6)
}

// TestAdmixNewRejectsBadFraction checks the mixture-fraction bound.
func TestAdmixNewRejectsBadFraction(t *testing.T) {
	phi := uniformSpectrum(t, 4)
	split, err := manip.Split(phi, 0, 2, 2)
	require.NoError(t, err)
	_, err = manip.AdmixNew(split, 0, 1, 2, 1.5)
	require.ErrorIs(t, err, manip.ErrBadMixtureFraction)
}

// TestAdmixInPlacePreservesShape checks that the approximate in-place
// admixture keeps the spectrum's shape and axis count fixed, and returns
// a non-negative residual when dst and src hold identical marginals.
func TestAdmixInPlacePreservesShape(t *testing.T) {
	n1, n2 := 6, 6
	data := make([]float64, (n1+1)*(n2+1))
	for i := range data {
		data[i] = 1.0
	}
	phi, err := spectrum.New([]int{n1 + 1, n2 + 1}, data, nil, false, spectrum.MaskNone)
	require.NoError(t, err)

	out, residual, err := manip.AdmixInPlace(phi, 1, 0, n1, 0.3)
	require.NoError(t, err)
	require.Equal(t, phi.Shape(), out.Shape())
	require.GreaterOrEqual(t, residual, 0.0)
}

// TestAdmixInPlaceRejectsBadAxes checks axis validation.
func TestAdmixInPlaceRejectsBadAxes(t *testing.T) {
	phi := uniformSpectrum(t, 4)
	_, _, err := manip.AdmixInPlace(phi, 0, 0, 2, 0.3)
	require.ErrorIs(t, err, manip.ErrAxisOutOfRange)
}

// TestReorderRoundTrip checks that reordering by a permutation and then
// by its inverse reproduces the source spectrum.
func TestReorderRoundTrip(t *testing.T) {
	shape := []int{3, 4, 2}
	data := make([]float64, 3*4*2)
	for i := range data {
		data[i] = float64(i)
	}
	phi, err := spectrum.New(shape, data, []string{"a", "b", "c"}, false, spectrum.MaskNone)
	require.NoError(t, err)

	perm := []int{2, 0, 1}
	reordered, err := manip.Reorder(phi, perm)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, reordered.Shape())
	require.Equal(t, []string{"c", "a", "b"}, reordered.PopNames())

	inv := make([]int, len(perm))
	for k, p := range perm {
		inv[p] = k
	}
	back, err := manip.Reorder(reordered, inv)
	require.NoError(t, err)
	require.Equal(t, phi.Data(), back.Data())
}

// TestReorderRejectsBadPermutation checks permutation validation.
func TestReorderRejectsBadPermutation(t *testing.T) {
	shape := []int{3, 3}
	phi, err := spectrum.Zeros(shape, nil, false, spectrum.MaskNone)
	require.NoError(t, err)
	_, err = manip.Reorder(phi, []int{0, 0})
	require.ErrorIs(t, err, manip.ErrAxisOutOfRange)
}
