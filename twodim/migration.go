package twodim

import (
	"fmt"

	"github.com/grahamgower/moments/internal/sparse"
	"gonum.org/v1/gonum/mat"
)

// Migration assembles the joint migration generator over a p-population
// spectrum of the given shape (shape[k] = n_k+1), from a p x p rate matrix
// m where m.At(a, b) is the rate at which a derived lineage in population b
// migrates into population a (direct sum over unordered axis pairs), and N
// is the current per-population effective size used to scale each entry
// by 4*N_destination. The generator must be rebuilt whenever m or N
// changes. Diagonal entries of m are ignored.
//
// For each unordered pair (a, b), two transition types are added,
// broadcasting over every combination of the other axes' indices:
//
//	(ia, ib) -> (ia+1, ib-1) at rate 4*N[a]*m[a][b]*ib*(n_a-ia)   (lineage b -> a)
//	(ia, ib) -> (ia-1, ib+1) at rate 4*N[b]*m[b][a]*ia*(n_b-ib)   (lineage a -> b)
//
// Built as a standard CTMC generator (off-diagonal entries are incoming
// rates, the diagonal is minus the total outflow of that state), so column
// sums are zero by construction and total probability mass is conserved.
func Migration(shape []int, m *mat.Dense, N []float64) (*sparse.COO, error) {
	if err := validateShape(shape); err != nil {
		return nil, fmt.Errorf("Migration: %w", err)
	}
	p := len(shape)
	mr, mc := m.Dims()
	if mr != p || mc != p {
		return nil, fmt.Errorf("Migration: m is %dx%d, want %dx%d: %w", mr, mc, p, p, ErrMigrationMatrixShape)
	}
	if len(N) != p {
		return nil, fmt.Errorf("Migration: len(N)=%d, want %d: %w", len(N), p, ErrSizeVectorLength)
	}

	st := strides(shape)
	n := total(shape)
	out := sparse.New(n, n)

	for a := 0; a < p; a++ {
		for b := a + 1; b < p; b++ {
			addPairMigration(out, shape, st, a, b, 4*N[a]*m.At(a, b), 4*N[b]*m.At(b, a))
		}
	}
	return out, nil
}

func addPairMigration(out *sparse.COO, shape, st []int, a, b int, rateAB, rateBA float64) {
	na := shape[a] - 1
	nb := shape[b] - 1

	eachOtherIndex(shape, a, b, func(idx []int) {
		for ia := 0; ia < shape[a]; ia++ {
			for ib := 0; ib < shape[b]; ib++ {
				idx[a], idx[b] = ia, ib
				source := flat(idx, st)

				if rateAB != 0 && ib > 0 && ia < na {
					rate := rateAB * float64(ib) * float64(na-ia)
					idx[a], idx[b] = ia+1, ib-1
					target := flat(idx, st)
					out.Add(target, source, rate)
					out.Add(source, source, -rate)
					idx[a], idx[b] = ia, ib
				}
				if rateBA != 0 && ia > 0 && ib < nb {
					rate := rateBA * float64(ia) * float64(nb-ib)
					idx[a], idx[b] = ia-1, ib+1
					target := flat(idx, st)
					out.Add(target, source, rate)
					out.Add(source, source, -rate)
					idx[a], idx[b] = ia, ib
				}
			}
		}
	})
}
