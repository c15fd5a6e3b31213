package twodim

import (
	"fmt"

	"github.com/grahamgower/moments/internal/sparse"
	"github.com/grahamgower/moments/jackknife"
)

// Selection2Pop builds the non-separable two-population selection cross
// term between axisA and axisB, used when dominance (h != 1/2) couples the
// two populations' frequencies in a way onedim's per-axis Selection2 cannot
// express alone.
//
// This generalizes onedim.Selection2's construction to two dimensions: each
// axis is extended one sample larger via jackknife.Matrix(n,1), weighted by
// w(ya,yb) = ya*(1-ya)*yb*(1-yb) (which vanishes whenever either axis sits
// at its own boundary), and differenced back down along both axes. Because
// w vanishes at every boundary of either axis independently, summing the
// result over all (ia,ib) telescopes to zero in each axis in turn, so the
// joint operator conserves mass the same way its 1D counterpart does.
// Other axes are broadcast over unchanged.
func Selection2Pop(shape []int, axisA, axisB int, gamma, h float64) (*sparse.COO, error) {
	if err := validateShape(shape); err != nil {
		return nil, fmt.Errorf("Selection2Pop: %w", err)
	}
	p := len(shape)
	if axisA < 0 || axisA >= p || axisB < 0 || axisB >= p || axisA == axisB {
		return nil, fmt.Errorf("Selection2Pop: axisA=%d axisB=%d: %w", axisA, axisB, ErrAxisOutOfRange)
	}

	na := shape[axisA] - 1
	nb := shape[axisB] - 1
	jeA, err := jackknife.Matrix(na, 1)
	if err != nil {
		return nil, fmt.Errorf("Selection2Pop: %w", err)
	}
	jeB, err := jackknife.Matrix(nb, 1)
	if err != nil {
		return nil, fmt.Errorf("Selection2Pop: %w", err)
	}

	scale := gamma * (1 - 2*h)
	denom := float64(na+1) * float64(nb+1)
	weight := func(ya, yb float64) float64 { return ya * (1 - ya) * yb * (1 - yb) }

	st := strides(shape)
	out := sparse.New(total(shape), total(shape))

	eachOtherIndex(shape, axisA, axisB, func(idx []int) {
		for ia := 0; ia <= na; ia++ {
			yaLo := float64(ia) / float64(na+1)
			yaHi := float64(ia+1) / float64(na+1)
			for ib := 0; ib <= nb; ib++ {
				ybLo := float64(ib) / float64(nb+1)
				ybHi := float64(ib+1) / float64(nb+1)

				idx[axisA], idx[axisB] = ia, ib
				target := flat(idx, st)

				corners := [4]struct {
					rowA, rowB int
					weight     float64
				}{
					{ia + 1, ib + 1, scale * denom * weight(yaHi, ybHi)},
					{ia + 1, ib, -scale * denom * weight(yaHi, ybLo)},
					{ia, ib + 1, -scale * denom * weight(yaLo, ybHi)},
					{ia, ib, scale * denom * weight(yaLo, ybLo)},
				}
				for _, c := range corners {
					if c.weight == 0 {
						continue
					}
					rowA := jeA[c.rowA]
					rowB := jeB[c.rowB]
					for ka, wa := range rowA {
						if wa == 0 {
							continue
						}
						for kb, wb := range rowB {
							if wb == 0 {
								continue
							}
							idx[axisA], idx[axisB] = ka, kb
							source := flat(idx, st)
							out.Add(target, source, c.weight*wa*wb)
						}
					}
				}
				idx[axisA], idx[axisB] = ia, ib
			}
		}
	})
	return out, nil
}
