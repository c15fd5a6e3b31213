package onedim

import (
	"fmt"

	"github.com/grahamgower/moments/internal/sparse"
	"github.com/grahamgower/moments/jackknife"
)

// Selection1 builds the additive (h=1/2) selection operator S1_n, the part
// of the population-scaled selection term proportional to gamma*h.
//
// The forward diffusion selection term is a flux divergence
// -d/dx[ gamma*(h + (1-2h)*x) * x*(1-x) * phi ], which splits into an
// additive piece weighted by w1(x) = x*(1-x) and a dominance piece weighted
// by w2(x) = x^2*(1-x); both vanish at x=0 and x=1. S1_n is built by
// extending phi to a sample of size n+1 via jackknife.Matrix(n,1), applying
// the diagonal weight w1 on that finer grid, and differencing adjacent grid
// points back down to n+1 entries: since w1 vanishes at both endpoints of
// the finer grid, the resulting difference telescopes to zero over any
// input vector, so S1_n conserves total mass by construction.
func Selection1(n int, gamma, h float64) (*sparse.COO, error) {
	return buildSelection(n, gamma*h, w1)
}

// Selection2 builds the dominance-deviation operator S2_n, the part of the
// selection term proportional to gamma*(1-2h). See Selection1 for the
// shared construction; only the weight function differs.
func Selection2(n int, gamma, h float64) (*sparse.COO, error) {
	return buildSelection(n, gamma*(1-2*h), w2)
}

func w1(y float64) float64 { return y * (1 - y) }
func w2(y float64) float64 { return y * y * (1 - y) }

// buildSelection composes Diff * diag(weight) * Je1 into a sparse operator,
// where Je1 = jackknife.Matrix(n, 1) extends an n-sample vector (n+1
// entries) to an (n+1)-sample vector (n+2 entries, grid y_j = j/(n+1)), and
// Diff is the adjacent-difference operator mapping those n+2 entries back
// to n+1 entries: row i of the result is scale*(n+1)*(weight(y_{i+1})*Je1
// row i+1 - weight(y_i)*Je1 row i).
func buildSelection(n int, scale float64, weight func(float64) float64) (*sparse.COO, error) {
	if n < 2 {
		return nil, fmt.Errorf("buildSelection: n=%d: %w", n, ErrBadSampleSize)
	}
	je1, err := jackknife.Matrix(n, 1)
	if err != nil {
		return nil, fmt.Errorf("buildSelection: %w", err)
	}

	size := n + 1
	denomN := float64(n + 1)
	out := sparse.New(size, size)
	for i := 0; i < size; i++ {
		yLo := float64(i) / denomN
		yHi := float64(i+1) / denomN
		wLo := -scale * denomN * weight(yLo)
		wHi := scale * denomN * weight(yHi)
		rowLo := je1[i]
		rowHi := je1[i+1]
		for k := 0; k < size; k++ {
			if rowLo[k] != 0 {
				out.Add(i, k, wLo*rowLo[k])
			}
			if rowHi[k] != 0 {
				out.Add(i, k, wHi*rowHi[k])
			}
		}
	}
	return out, nil
}
