package manip

import (
	"fmt"

	"github.com/grahamgower/moments/internal/mlog"
	"github.com/grahamgower/moments/spectrum"
)

// AdmixNew builds a new population of size nNew by drawing a fraction m
// of its lineages from src1 and the remainder from src2, both sampled
// without replacement from the corresponding source axes, and appends it
// as the last axis of the result; src1 and src2 are left in place. The
// construction is equivalent to the "sequential pick one lineage at a
// time" operator definition: conditioning on drawing exactly d of the
// nNew lineages from src1 (Binomial(nNew, d, m)), the derived count of
// the new population is the sum of a hypergeometric draw of d from src1
// and a hypergeometric draw of nNew-d from src2.
func AdmixNew(phi *spectrum.Spectrum, axis1, axis2 int, nNew int, m float64) (*spectrum.Spectrum, error) {
	if m < 0 || m > 1 {
		return nil, fmt.Errorf("AdmixNew: m=%v: %w", m, ErrBadMixtureFraction)
	}
	shape := phi.Shape()
	if axis1 < 0 || axis1 >= len(shape) || axis2 < 0 || axis2 >= len(shape) || axis1 == axis2 {
		return nil, fmt.Errorf("AdmixNew: axes %d,%d: %w", axis1, axis2, ErrAxisOutOfRange)
	}
	n1 := shape[axis1] - 1
	n2 := shape[axis2] - 1
	if nNew > n1+n2 {
		return nil, fmt.Errorf("AdmixNew: nNew=%d exceeds n1+n2=%d: %w", nNew, n1+n2, ErrSampleTooLarge)
	}

	// binom[d] = P(d of the nNew lineages are drawn from axis1) under
	// Binomial(nNew, m); it is combined below with the hypergeometric
	// derived-count probabilities per source-count pair (i1,i2).
	binom := make([]float64, nNew+1)
	for d := 0; d <= nNew; d++ {
		binom[d] = binomialWeight(nNew, d, m)
	}

	st := strides(shape)
	outShape := append([]int(nil), shape...)
	outShape = append(outShape, nNew+1)
	out, err := spectrum.Zeros(outShape, nil, phi.Folded(), spectrum.MaskNone)
	if err != nil {
		return nil, fmt.Errorf("AdmixNew: %w", err)
	}
	outSt := strides(outShape)
	newAxis := len(outShape) - 1

	data := phi.Data()
	outData := out.Data()

	eachOtherIndexMerge(shape, axis1, axis2, func(idx []int) {
		base := 0
		outBase := 0
		for k, v := range idx {
			base += v * st[k]
			if k != axis1 && k != axis2 {
				outBase += v * outSt[k]
			}
		}
		for i1 := 0; i1 <= n1; i1++ {
			for i2 := 0; i2 <= n2; i2++ {
				v := data[base+i1*st[axis1]+i2*st[axis2]]
				if v == 0 {
					continue
				}
				for d := 0; d <= nNew; d++ {
					pd := binom[d]
					if pd == 0 {
						continue
					}
					for a := 0; a <= d; a++ {
						pa := hypergeometricWeight(n1, i1, d, a)
						if pa == 0 {
							continue
						}
						for b := 0; b <= nNew-d; b++ {
							pb := hypergeometricWeight(n2, i2, nNew-d, b)
							if pb == 0 {
								continue
							}
							c := a + b
							outData[outBase+i1*outSt[axis1]+i2*outSt[axis2]+c*outSt[newAxis]] += v * pd * pa * pb
						}
					}
				}
			}
		}
	})

	out.MaskCorners()
	return out, nil
}

// AdmixInPlace approximates in-place admixture of src into dst (replacing
// dst's axis with an admixed population of the same sample size) by
// fitting a nonnegative combination of keep+1 exact candidate spectra,
// each built the way AdmixNew builds its joint distribution but
// restricted to a fixed number of src-derived lineages, against the
// binomial mean/variance targets for a mixture fraction m. This matches
// the first two moments of the mixing distribution rather than the exact
// combinatorial marginal AdmixNew computes, trading a small, logged
// residual for staying within a single axis (no dimension increase).
func AdmixInPlace(phi *spectrum.Spectrum, srcAxis, dstAxis, keep int, m float64) (*spectrum.Spectrum, float64, error) {
	if m < 0 || m > 1 {
		return nil, 0, fmt.Errorf("AdmixInPlace: m=%v: %w", m, ErrBadMixtureFraction)
	}
	shape := phi.Shape()
	if dstAxis < 0 || dstAxis >= len(shape) || srcAxis < 0 || srcAxis >= len(shape) || dstAxis == srcAxis {
		return nil, 0, fmt.Errorf("AdmixInPlace: axes %d,%d: %w", dstAxis, srcAxis, ErrAxisOutOfRange)
	}
	nDst := shape[dstAxis] - 1
	if keep < 0 || keep > nDst {
		keep = nDst
	}

	// candidates[d] replaces dst's nDst lineages with (nDst-d) resampled
	// from dst itself and d drawn from src, for d = 0..keep.
	candidates := make([]*spectrum.Spectrum, keep+1)
	for d := 0; d <= keep; d++ {
		cand, err := admixCandidate(phi, dstAxis, srcAxis, nDst, d)
		if err != nil {
			return nil, 0, fmt.Errorf("AdmixInPlace: %w", err)
		}
		candidates[d] = cand
	}

	targetMean := float64(nDst) * m
	targetVar := float64(nDst) * m * (1 - m)

	a := make([][]float64, 2)
	a[0] = make([]float64, keep+1)
	a[1] = make([]float64, keep+1)
	for d := 0; d <= keep; d++ {
		fd := float64(d)
		a[0][d] = fd
		a[1][d] = fd * fd
	}
	b := []float64{targetMean, targetMean*targetMean + targetVar}

	weights, residual, converged := nnls(a, b, 50*(keep+1))
	if !converged {
		mlog.Warn(0, "nnls_residual", residual, "AdmixInPlace: NNLS active-set solver did not converge within its iteration budget")
	}
	wsum := 0.0
	for _, w := range weights {
		wsum += w
	}
	if wsum <= 0 {
		weights[0] = 1
		wsum = 1
	}

	out, err := zerosLike(phi)
	if err != nil {
		return nil, 0, fmt.Errorf("AdmixInPlace: %w", err)
	}
	outData := out.Data()
	for d, cand := range candidates {
		w := weights[d] / wsum
		if w == 0 {
			continue
		}
		cd := cand.Data()
		for i, v := range cd {
			outData[i] += w * v
		}
	}
	out.MaskCorners()

	if residual > 1e-3 {
		mlog.Warn(0, "nnls_residual", residual, "AdmixInPlace: moment-matching residual exceeds tolerance")
	}

	return out, residual, nil
}

func zerosLike(phi *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	return spectrum.Zeros(phi.Shape(), phi.PopNames(), phi.Folded(), spectrum.MaskNone)
}

// admixCandidate builds the exact joint spectrum when exactly d of dst's
// nDst lineages are resampled from src (hypergeometrically) and the
// remaining nDst-d are resampled from dst itself, leaving every other
// axis (including src, which is marginalized into the mixture and thus
// structurally still present but not altered in place by this helper)
// untouched in shape.
func admixCandidate(phi *spectrum.Spectrum, dstAxis, srcAxis, nDst, d int) (*spectrum.Spectrum, error) {
	shape := phi.Shape()
	nSrc := shape[srcAxis] - 1
	st := strides(shape)

	out, err := zerosLike(phi)
	if err != nil {
		return nil, err
	}
	outData := out.Data()
	data := phi.Data()

	eachOtherIndexMerge(shape, dstAxis, srcAxis, func(idx []int) {
		base := 0
		for k, v := range idx {
			base += v * st[k]
		}
		for iDst := 0; iDst <= nDst; iDst++ {
			for iSrc := 0; iSrc <= nSrc; iSrc++ {
				v := data[base+iDst*st[dstAxis]+iSrc*st[srcAxis]]
				if v == 0 {
					continue
				}
				for c := 0; c <= nDst; c++ {
					aLo := c - d
					if aLo < 0 {
						aLo = 0
					}
					aHi := c
					if aHi > nDst-d {
						aHi = nDst - d
					}
					for a := aLo; a <= aHi; a++ {
						b := c - a
						pDst := hypergeometricWeight(nDst, iDst, nDst-d, a)
						if pDst == 0 {
							continue
						}
						pSrc := hypergeometricWeight(nSrc, iSrc, d, b)
						if pSrc == 0 {
							continue
						}
						outData[base+c*st[dstAxis]+iSrc*st[srcAxis]] += v * pDst * pSrc
					}
				}
			}
		}
	})

	out.MaskCorners()
	return out, nil
}
