package twolocus

import (
	"fmt"

	"github.com/grahamgower/moments/internal/sparse"
)

// counts4 returns the four haplotype counts (AB, Ab, aB, ab) for a
// triple (i, j, k) at sample size n.
func counts4(i, j, k, n int) [4]int {
	return [4]int{i, j, k, n - i - j - k}
}

// applyTypeMove returns the triple reached by moving one lineage from
// haplotype type p to type q (p, q in 0..3, indexing AB, Ab, aB, ab), or
// ok=false if p has no lineages to give up.
func applyTypeMove(i, j, k, n, p, q int) (ni, nj, nk int, ok bool) {
	c := counts4(i, j, k, n)
	if c[p] <= 0 {
		return 0, 0, 0, false
	}
	c[p]--
	c[q]++
	return c[0], c[1], c[2], true
}

// Drift builds the two-locus generalization of the single-locus Moran
// drift generator: for every ordered pair of haplotype types (p, q), a
// lineage of type p is replaced by an offspring of type q at rate
// n_p*n_q, the direct four-type extension of onedim.Drift's r(k)=k*(n-k)
// two-type rate. Column sums are zero by the same incoming-rate/outgoing-
// outflow construction used throughout the module.
func Drift(n int) (*sparse.COO, error) {
	idx, err := Index(n)
	if err != nil {
		return nil, fmt.Errorf("Drift: %w", err)
	}
	m := sparse.New(idx.Size(), idx.Size())

	idx.Each(func(f, i, j, k int) {
		c := counts4(i, j, k, n)
		var outflow float64
		for p := 0; p < 4; p++ {
			if c[p] == 0 {
				continue
			}
			for q := 0; q < 4; q++ {
				if q == p || c[q] == 0 {
					continue
				}
				rate := float64(c[p]) * float64(c[q])
				if rate == 0 {
					continue
				}
				ni, nj, nk, ok := applyTypeMove(i, j, k, n, p, q)
				if !ok {
					continue
				}
				g, err := idx.Flat(ni, nj, nk)
				if err != nil {
					continue
				}
				m.Add(g, f, rate)
				outflow += rate
			}
		}
		if outflow != 0 {
			m.Add(f, f, -outflow)
		}
	})
	return m, nil
}

// Recombination builds the exact finite-sample recombination generator:
// a random AB and ab chromosome in the sample recombine into Ab and aB
// (and the symmetric reverse), at rates proportional to the product of
// the two donor haplotype counts. Because recombination does not change
// the sample size n, this finite-n generator is used directly rather than
// a continuum jackknife n -> n+1 extension: that extension exists to
// reconcile allele-frequency moments across closure orders, which does
// not arise on a fixed, already-finite haplotype-count simplex.
func Recombination(n int, rho float64) (*sparse.COO, error) {
	idx, err := Index(n)
	if err != nil {
		return nil, fmt.Errorf("Recombination: %w", err)
	}
	m := sparse.New(idx.Size(), idx.Size())

	idx.Each(func(f, i, j, k int) {
		nab := n - i - j - k
		var outflow float64

		if fwd := rho * float64(i) * float64(nab); fwd != 0 {
			if g, err := idx.Flat(i-1, j+1, k+1); err == nil {
				m.Add(g, f, fwd)
				outflow += fwd
			}
		}
		if bwd := rho * float64(j) * float64(k); bwd != 0 {
			if g, err := idx.Flat(i+1, j-1, k-1); err == nil {
				m.Add(g, f, bwd)
				outflow += bwd
			}
		}
		if outflow != 0 {
			m.Add(f, f, -outflow)
		}
	})
	return m, nil
}

// Selection builds a frequency-dependent Moran selection generator: a
// lineage of type p is replaced by an offspring of type q at rate
// n_p*n_q*w_q, where w_q is type q's relative fitness (1+sAB for AB,
// 1+sA for Ab, 1+sB for aB, 1 for the ab baseline). This is Drift's
// generator with the replacing type's rate scaled by fitness, the same
// relationship onedim.Selection1/Selection2 bear to onedim.Drift.
func Selection(n int, sAB, sA, sB float64) (*sparse.COO, error) {
	idx, err := Index(n)
	if err != nil {
		return nil, fmt.Errorf("Selection: %w", err)
	}
	fitness := [4]float64{1 + sAB, 1 + sA, 1 + sB, 1}
	m := sparse.New(idx.Size(), idx.Size())

	idx.Each(func(f, i, j, k int) {
		c := counts4(i, j, k, n)
		var outflow float64
		for p := 0; p < 4; p++ {
			if c[p] == 0 {
				continue
			}
			for q := 0; q < 4; q++ {
				if q == p || c[q] == 0 {
					continue
				}
				rate := float64(c[p]) * float64(c[q]) * fitness[q]
				if rate == 0 {
					continue
				}
				ni, nj, nk, ok := applyTypeMove(i, j, k, n, p, q)
				if !ok {
					continue
				}
				g, err := idx.Flat(ni, nj, nk)
				if err != nil {
					continue
				}
				m.Add(g, f, rate)
				outflow += rate
			}
		}
		if outflow != 0 {
			m.Add(f, f, -outflow)
		}
	})
	return m, nil
}

// MutationInfiniteSites returns the source vector injecting new mutations
// under the infinite-sites assumption: a single new A mutation arises on
// an ab background (producing one Ab haplotype) and a single new B
// mutation arises on an ab background (producing one aB haplotype), each
// at rate n*theta, mirroring onedim.MutationInfiniteSites's b[1]=n*theta
// boundary source generalized to the two loci.
func MutationInfiniteSites(n int, theta float64) ([]float64, error) {
	idx, err := Index(n)
	if err != nil {
		return nil, fmt.Errorf("MutationInfiniteSites: %w", err)
	}
	b := make([]float64, idx.Size())
	if fAb, err := idx.Flat(0, 1, 0); err == nil {
		b[fAb] += theta * float64(n)
	}
	if faB, err := idx.Flat(0, 0, 1); err == nil {
		b[faB] += theta * float64(n)
	}
	return b, nil
}

// MutationReversible builds the recurrent (two-way) mutation generator at
// both loci, applied symmetrically: forward rate u converts ab->Ab and
// aB->AB (locus-A mutation) as well as ab->aB and Ab->AB (locus-B
// mutation); backward rate v reverses each. Using one (u, v) pair for
// both loci is a deliberate simplification of a model that could in
// principle take four independent rates; spec names only (n, u, v).
func MutationReversible(n int, u, v float64) (*sparse.COO, error) {
	idx, err := Index(n)
	if err != nil {
		return nil, fmt.Errorf("MutationReversible: %w", err)
	}
	m := sparse.New(idx.Size(), idx.Size())

	type move struct{ p, q int }
	forward := []move{{3, 1}, {2, 0}, {3, 2}, {1, 0}} // locus A: ab->Ab, aB->AB; locus B: ab->aB, Ab->AB
	backward := []move{{1, 3}, {0, 2}, {2, 3}, {0, 1}}

	idx.Each(func(f, i, j, k int) {
		c := counts4(i, j, k, n)
		var outflow float64
		apply := func(mv move, rate float64) {
			if rate == 0 || c[mv.p] == 0 {
				return
			}
			rate *= float64(c[mv.p])
			ni, nj, nk, ok := applyTypeMove(i, j, k, n, mv.p, mv.q)
			if !ok {
				return
			}
			g, err := idx.Flat(ni, nj, nk)
			if err != nil {
				return
			}
			m.Add(g, f, rate)
			outflow += rate
		}
		for _, mv := range forward {
			apply(mv, u)
		}
		for _, mv := range backward {
			apply(mv, v)
		}
		if outflow != 0 {
			m.Add(f, f, -outflow)
		}
	})
	return m, nil
}
