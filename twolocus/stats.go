package twolocus

import "fmt"

// freqs returns the four haplotype frequencies (pAB, pAb, paB, pab) for
// triple (i, j, k) at sample size n.
func freqs(i, j, k, n int) (pAB, pAb, paB, pab float64) {
	fn := float64(n)
	return float64(i) / fn, float64(j) / fn, float64(k) / fn, float64(n-i-j-k) / fn
}

// linkageD returns the classic linkage-disequilibrium statistic
// D = pAB*pab - pAb*paB for a triple.
func linkageD(i, j, k, n int) float64 {
	pAB, pAb, paB, pab := freqs(i, j, k, n)
	return pAB*pab - pAb*paB
}

// D returns E[D], the expected linkage disequilibrium under t's
// distribution.
func (t *TLSpectrum) D() (float64, error) {
	idx, err := t.Index()
	if err != nil {
		return 0, err
	}
	var sum float64
	idx.Each(func(f, i, j, k int) {
		sum += t.Data[f] * linkageD(i, j, k, t.N)
	})
	return sum, nil
}

// D2 returns E[D^2].
func (t *TLSpectrum) D2() (float64, error) {
	idx, err := t.Index()
	if err != nil {
		return 0, err
	}
	var sum float64
	idx.Each(func(f, i, j, k int) {
		d := linkageD(i, j, k, t.N)
		sum += t.Data[f] * d * d
	})
	return sum, nil
}

// Pi2 returns E[pA(1-pA)pB(1-pB)], the product of single-locus
// heterozygosities (the pi2 statistic of the Hill-Robertson/moments.LD
// framework).
func (t *TLSpectrum) Pi2() (float64, error) {
	idx, err := t.Index()
	if err != nil {
		return 0, err
	}
	var sum float64
	idx.Each(func(f, i, j, k int) {
		pAB, pAb, paB, _ := freqs(i, j, k, t.N)
		pA := pAB + pAb
		pB := pAB + paB
		sum += t.Data[f] * pA * (1 - pA) * pB * (1 - pB)
	})
	return sum, nil
}

// Dz returns E[D*(1-2pA)*(1-2pB)], the cross moment relating linkage
// disequilibrium to both loci's allele-frequency skew.
func (t *TLSpectrum) Dz() (float64, error) {
	idx, err := t.Index()
	if err != nil {
		return 0, err
	}
	var sum float64
	idx.Each(func(f, i, j, k int) {
		pAB, pAb, paB, _ := freqs(i, j, k, t.N)
		pA := pAB + pAb
		pB := pAB + paB
		d := linkageD(i, j, k, t.N)
		sum += t.Data[f] * d * (1 - 2*pA) * (1 - 2*pB)
	})
	return sum, nil
}

// Heterozygosity returns [2*E[pA(1-pA)], 2*E[pB(1-pB)]], the expected
// per-locus heterozygosity, mirroring TLSpectrum_mod.py's H() convenience.
func (t *TLSpectrum) Heterozygosity() ([2]float64, error) {
	idx, err := t.Index()
	if err != nil {
		return [2]float64{}, err
	}
	var hA, hB float64
	idx.Each(func(f, i, j, k int) {
		pAB, pAb, paB, _ := freqs(i, j, k, t.N)
		pA := pAB + pAb
		pB := pAB + paB
		hA += t.Data[f] * 2 * pA * (1 - pA)
		hB += t.Data[f] * 2 * pB * (1 - pB)
	})
	return [2]float64{hA, hB}, nil
}

// MarginalSFS returns the single-locus allele-frequency spectrum implied
// by t at one of its two loci: locus 0 (A) carries the derived allele on
// haplotypes AB and Ab, so its count at triple (i, j, k) is i+j; locus 1
// (B) carries it on AB and aB, so its count is i+k. The result has length
// N+1 and sums to t's total mass, mirroring TLSpectrum_mod.py's marginal
// extraction used to cross-check two-locus integration against the
// independently-computed one-locus spectrum.
func (t *TLSpectrum) MarginalSFS(locus int) ([]float64, error) {
	if locus != 0 && locus != 1 {
		return nil, fmt.Errorf("MarginalSFS: locus must be 0 or 1, got %d: %w", locus, ErrBadSampleSize)
	}
	idx, err := t.Index()
	if err != nil {
		return nil, err
	}
	out := make([]float64, t.N+1)
	idx.Each(func(f, i, j, k int) {
		var count int
		if locus == 0 {
			count = i + j
		} else {
			count = i + k
		}
		out[count] += t.Data[f]
	})
	return out, nil
}

// Project downsamples t to a smaller sample size nNew via the
// multivariate-hypergeometric generalization of spectrum/manip's
// per-axis projection: the probability of drawing (i', j', k') derived
// haplotypes without replacement from (i, j, k, ab) is
// C(i,i')C(j,j')C(k,k')C(ab,ab') / C(n,nNew), summed over the source
// distribution.
func (t *TLSpectrum) Project(nNew int) (*TLSpectrum, error) {
	if nNew > t.N {
		return nil, fmt.Errorf("Project: nNew=%d exceeds N=%d: %w", nNew, t.N, ErrBadSampleSize)
	}
	srcIdx, err := t.Index()
	if err != nil {
		return nil, err
	}
	out, err := NewTLSpectrum(nNew)
	if err != nil {
		return nil, fmt.Errorf("Project: %w", err)
	}
	dstIdx, err := out.Index()
	if err != nil {
		return nil, err
	}
	denom := choose(t.N, nNew)
	if denom == 0 {
		return out, nil
	}

	srcIdx.Each(func(f, i, j, k int) {
		v := t.Data[f]
		if v == 0 {
			return
		}
		ab := t.N - i - j - k
		dstIdx.Each(func(g, ni, nj, nk int) {
			nab := nNew - ni - nj - nk
			if nab < 0 || nab > ab {
				return
			}
			w := choose(i, ni) * choose(j, nj) * choose(k, nk) * choose(ab, nab) / denom
			if w == 0 {
				return
			}
			out.Data[g] += v * w
		})
	})
	out.Folded = t.Folded
	return out, nil
}

// Fold collapses t under the simultaneous ancestral/derived relabeling
// at both loci (AB<->ab, Ab<->aB), folding each triple into whichever of
// itself and its complement is lexicographically smaller, the two-locus
// analogue of spectrum.Spectrum.Fold's single-locus complement.
func (t *TLSpectrum) Fold() (*TLSpectrum, error) {
	idx, err := t.Index()
	if err != nil {
		return nil, err
	}
	out := t.Clone()
	out.Folded = true

	idx.Each(func(f, i, j, k int) {
		ab := t.N - i - j - k
		ci, cj, ck := ab, k, j
		representative := i < ci || (i == ci && j <= cj)
		if !representative {
			out.Data[f] = 0
			out.Mask[f] = true
			return
		}
		cf, err := idx.Flat(ci, cj, ck)
		if err != nil || cf == f {
			return
		}
		out.Data[f] = t.Data[f] + t.Data[cf]
		out.Data[cf] = 0
		out.Mask[cf] = true
	})
	return out, nil
}

// choose returns C(n,k) as a float64, computed by an exact int64
// multiplicative loop rather than manip/combinatorics.go's log-gamma form
// (twolocus does not import manip, to keep the dependency direction
// one-way from manip/integrate down to the numeric cores).
func choose(n, k int) float64 {
	if k < 0 || k > n || n < 0 {
		return 0
	}
	return float64(binomialCoeff(n, k))
}

func binomialCoeff(n, k int) int64 {
	if k > n-k {
		k = n - k
	}
	var result int64 = 1
	for i := 0; i < k; i++ {
		result = result * int64(n-i) / int64(i+1)
	}
	return result
}
