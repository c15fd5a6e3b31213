package manip

import (
	"fmt"

	"github.com/grahamgower/moments/spectrum"
)

// Reorder permutes a spectrum's population axes according to perm, so
// that the result's axis k holds source axis perm[k]. It is the
// supplemented convenience Manips.py uses internally to bring a pair of
// axes adjacent before a pairwise Split/Merge/AdmixNew call.
func Reorder(phi *spectrum.Spectrum, perm []int) (*spectrum.Spectrum, error) {
	shape := phi.Shape()
	if len(perm) != len(shape) {
		return nil, fmt.Errorf("Reorder: len(perm)=%d want %d: %w", len(perm), len(shape), ErrShapeMismatch)
	}
	seen := make([]bool, len(shape))
	for _, p := range perm {
		if p < 0 || p >= len(shape) || seen[p] {
			return nil, fmt.Errorf("Reorder: perm %v is not a valid permutation: %w", perm, ErrAxisOutOfRange)
		}
		seen[p] = true
	}

	outShape := make([]int, len(shape))
	labels := phi.PopNames()
	var outLabels []string
	if len(labels) == len(shape) {
		outLabels = make([]string, len(shape))
	}
	for k, p := range perm {
		outShape[k] = shape[p]
		if outLabels != nil {
			outLabels[k] = labels[p]
		}
	}

	out, err := spectrum.Zeros(outShape, outLabels, phi.Folded(), spectrum.MaskNone)
	if err != nil {
		return nil, fmt.Errorf("Reorder: %w", err)
	}

	st := strides(shape)
	outSt := strides(outShape)
	data := phi.Data()
	outData := out.Data()

	idx := make([]int, len(shape))
	var rec func(k int, srcBase, dstBase int)
	rec = func(k int, srcBase, dstBase int) {
		if k == len(shape) {
			outData[dstBase] = data[srcBase]
			return
		}
		for idx[k] = 0; idx[k] < shape[k]; idx[k]++ {
			rec(k+1, srcBase+idx[k]*st[k], dstBase+idx[k]*outSt[invPerm(perm, k)])
		}
	}
	rec(0, 0, 0)

	out.MaskCorners()
	return out, nil
}

// invPerm returns the destination axis that source axis k maps to, i.e.
// the index p such that perm[p] == k.
func invPerm(perm []int, k int) int {
	for p, v := range perm {
		if v == k {
			return p
		}
	}
	return -1
}
