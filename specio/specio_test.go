package specio_test

import (
	"bytes"
	"testing"

	"github.com/grahamgower/moments/specio"
	"github.com/grahamgower/moments/spectrum"
	"github.com/grahamgower/moments/twolocus"
	"github.com/stretchr/testify/require"
)

func TestSpectrumRoundTrip(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	sp, err := spectrum.New([]int{3, 4}, data, []string{"popA", "popB"}, false, spectrum.MaskNone)
	require.NoError(t, err)
	require.NoError(t, sp.SetMasked(true, 0, 0))

	var buf bytes.Buffer
	require.NoError(t, specio.WriteSpectrum(&buf, sp))

	got, err := specio.ReadSpectrum(&buf)
	require.NoError(t, err)
	require.Equal(t, sp.Shape(), got.Shape())
	require.Equal(t, sp.Folded(), got.Folded())
	require.Equal(t, sp.PopNames(), got.PopNames())
	require.Equal(t, sp.Data(), got.Data())
	require.Equal(t, sp.Mask(), got.Mask())
}

func TestSpectrumRoundTripFolded(t *testing.T) {
	sp, err := spectrum.Zeros([]int{5}, []string{"popA"}, true, spectrum.MaskCorners)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, specio.WriteSpectrum(&buf, sp))

	got, err := specio.ReadSpectrum(&buf)
	require.NoError(t, err)
	require.True(t, got.Folded())
	require.Equal(t, sp.Mask(), got.Mask())
}

func TestReadSpectrumRejectsBadHeader(t *testing.T) {
	_, err := specio.ReadSpectrum(bytes.NewBufferString("not a header\n1 2\n0 0\n"))
	require.ErrorIs(t, err, specio.ErrBadHeader)
}

func TestReadSpectrumSkipsComments(t *testing.T) {
	input := "# a comment\n# another\n2 2 unfolded\n1 2 3 4\n0 0 0 0\n"
	sp, err := specio.ReadSpectrum(bytes.NewBufferString(input))
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, sp.Shape())
	require.Equal(t, []float64{1, 2, 3, 4}, sp.Data())
}

func TestTLSpectrumRoundTrip(t *testing.T) {
	tl, err := twolocus.NewTLSpectrum(4)
	require.NoError(t, err)
	idx, err := tl.Index()
	require.NoError(t, err)
	for f := range tl.Data {
		tl.Data[f] = float64(f)
	}
	tl.Mask[0] = true
	require.Equal(t, idx.Size(), len(tl.Data))

	var buf bytes.Buffer
	require.NoError(t, specio.WriteTLSpectrum(&buf, tl))

	got, err := specio.ReadTLSpectrum(&buf)
	require.NoError(t, err)
	require.Equal(t, tl.N, got.N)
	require.Equal(t, tl.Folded, got.Folded)
	require.Equal(t, tl.Data, got.Data)
	require.Equal(t, tl.Mask, got.Mask)
}

func TestReadTLSpectrumRejectsBadHeader(t *testing.T) {
	_, err := specio.ReadTLSpectrum(bytes.NewBufferString("4\n1 2\n0 0\n"))
	require.ErrorIs(t, err, specio.ErrBadHeader)
}
