package manip

import (
	"fmt"

	"github.com/grahamgower/moments/spectrum"
)

// Merge collapses a two-population spectrum's two axes into a single
// population by anti-diagonal summation: the merged population's derived
// count at k is the sum of phi[i,j] over every i+j==k, since a lineage
// derived in either ancestral population is derived in the merged one.
// phi must have exactly two axes; a spectrum with any other number of
// axes is rejected with ErrNotTwoPop, so Merge does not merge axes of a
// higher-dimensional spectrum.
func Merge(phi *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	if phi.NumPops() != 2 {
		return nil, fmt.Errorf("Merge: %w", ErrNotTwoPop)
	}
	return mergeAxes(phi, 0, 1)
}

// mergeAxes implements the anti-diagonal collapse of axisA and axisB,
// broadcasting over any other axes and appending the merged axis last.
func mergeAxes(phi *spectrum.Spectrum, axisA, axisB int) (*spectrum.Spectrum, error) {
	shape := phi.Shape()

	nA := shape[axisA] - 1
	nB := shape[axisB] - 1
	merged := nA + nB

	outShape := make([]int, 0, len(shape)-1)
	var outLabels []string
	srcLabels := phi.PopNames()
	if len(srcLabels) == len(shape) {
		outLabels = make([]string, 0, len(shape)-1)
	}
	for k, s := range shape {
		if k == axisA || k == axisB {
			continue
		}
		outShape = append(outShape, s)
		if outLabels != nil {
			outLabels = append(outLabels, srcLabels[k])
		}
	}
	outShape = append(outShape, merged+1)
	if outLabels != nil {
		outLabels = append(outLabels, srcLabels[axisA]+"+"+srcLabels[axisB])
	}

	out, err := spectrum.Zeros(outShape, outLabels, phi.Folded(), spectrum.MaskNone)
	if err != nil {
		return nil, fmt.Errorf("Merge: %w", err)
	}

	srcSt := strides(shape)
	outSt := strides(outShape)
	newAxis := len(outShape) - 1

	data := phi.Data()
	outData := out.Data()

	eachOtherIndexMerge(shape, axisA, axisB, func(idx []int) {
		base := 0
		outBase := 0
		outPos := 0
		for k, v := range idx {
			if k == axisA || k == axisB {
				continue
			}
			base += v * srcSt[k]
			outBase += v * outSt[outPos]
			outPos++
		}
		for i := 0; i <= nA; i++ {
			for j := 0; j <= nB; j++ {
				v := data[base+i*srcSt[axisA]+j*srcSt[axisB]]
				if v == 0 {
					continue
				}
				outData[outBase+(i+j)*outSt[newAxis]] += v
			}
		}
	})

	out.MaskCorners()
	return out, nil
}

// eachOtherIndexMerge invokes fn once per combination of indices on axes
// other than a and b, with idx[a] and idx[b] left at zero.
func eachOtherIndexMerge(shape []int, a, b int, fn func(idx []int)) {
	idx := make([]int, len(shape))
	var rec func(k int)
	rec = func(k int) {
		if k == len(shape) {
			fn(idx)
			return
		}
		if k == a || k == b {
			rec(k + 1)
			return
		}
		for idx[k] = 0; idx[k] < shape[k]; idx[k]++ {
			rec(k + 1)
		}
	}
	rec(0)
}
