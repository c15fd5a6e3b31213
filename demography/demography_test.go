package demography_test

import (
	"testing"

	"github.com/grahamgower/moments/demography"
	"github.com/stretchr/testify/require"
)

func TestConstantSchedule(t *testing.T) {
	s := demography.Constant([]float64{2.0, 0.5})
	require.Equal(t, []float64{2.0, 0.5}, s.Evaluate(0))
	require.Equal(t, []float64{2.0, 0.5}, s.Evaluate(100))
}

func TestFuncSchedule(t *testing.T) {
	s := demography.Func(func(t float64) []float64 { return []float64{1 + t} })
	require.Equal(t, []float64{1.0}, s.Evaluate(0))
	require.Equal(t, []float64{3.5}, s.Evaluate(2.5))
}

func TestFrozenSubstitutesSentinel(t *testing.T) {
	inner := demography.Constant([]float64{1.0, 2.0, 0.1})
	s := demography.Frozen(inner, []bool{false, true, false})
	got := s.Evaluate(0)
	require.Equal(t, []float64{1.0, demography.FrozenSize, 0.1}, got)
}

func TestTwoEpochConstant(t *testing.T) {
	s := demography.TwoEpoch(0.3, 1.5)
	require.Equal(t, []float64{0.3}, s.Evaluate(0))
	require.Equal(t, []float64{0.3}, s.Evaluate(1.5))
}

func TestBottlegrowthEndpoints(t *testing.T) {
	s := demography.Bottlegrowth(0.1, 2.0, 1.0)
	require.InDelta(t, 0.1, s.Evaluate(0)[0], 1e-9)
	require.InDelta(t, 2.0, s.Evaluate(1.0)[0], 1e-9)
	mid := s.Evaluate(0.5)[0]
	require.Greater(t, mid, 0.1)
	require.Less(t, mid, 2.0)
}

func TestBottlegrowthClampsOutOfRangeTime(t *testing.T) {
	s := demography.Bottlegrowth(0.1, 2.0, 1.0)
	require.InDelta(t, 0.1, s.Evaluate(-1)[0], 1e-9)
	require.InDelta(t, 2.0, s.Evaluate(5)[0], 1e-9)
}
