package manip

import (
	"fmt"

	"github.com/grahamgower/moments/spectrum"
)

// Split divides axis into two descendant populations of sizes n1 and n2
// (each a sample size, so n1+n2 must not exceed axis's current sample
// size). It first projects axis down to n1+n2 if necessary, then, for
// every derived count k on that axis, spreads phi[k] across the joint
// (i,j) grid with i+j=k according to the hypergeometric partition of k
// derived lineages into the two descendants: weight
// C(n1,i)*C(n2,j)/C(n1+n2,k). The new axis is appended as the last axis;
// all other axes are broadcast unchanged.
func Split(phi *spectrum.Spectrum, axis, n1, n2 int) (*spectrum.Spectrum, error) {
	shape := phi.Shape()
	if axis < 0 || axis >= len(shape) {
		return nil, fmt.Errorf("Split: axis %d: %w", axis, ErrAxisOutOfRange)
	}
	if n1 < 0 || n2 < 0 {
		return nil, fmt.Errorf("Split: negative descendant size: %w", ErrSampleTooLarge)
	}
	total := n1 + n2
	n := shape[axis] - 1

	src := phi
	if total < n {
		var err error
		targetShape := append([]int(nil), shape...)
		targetShape[axis] = total + 1
		src, err = Project(phi, targetShape)
		if err != nil {
			return nil, fmt.Errorf("Split: %w", err)
		}
	} else if total > n {
		return nil, fmt.Errorf("Split: n1+n2=%d exceeds source sample size %d: %w", total, n, ErrSampleTooLarge)
	}

	srcShape := src.Shape()
	st := strides(srcShape)

	outShape := make([]int, 0, len(srcShape)+1)
	var outLabels []string
	srcLabels := src.PopNames()
	if len(srcLabels) == len(srcShape) {
		outLabels = make([]string, 0, len(srcShape)+1)
	}
	for k, s := range srcShape {
		if k == axis {
			outShape = append(outShape, n1+1)
			if outLabels != nil {
				outLabels = append(outLabels, srcLabels[k]+"_1")
			}
			continue
		}
		outShape = append(outShape, s)
		if outLabels != nil {
			outLabels = append(outLabels, srcLabels[k])
		}
	}
	outShape = append(outShape, n2+1)
	if outLabels != nil {
		outLabels = append(outLabels, srcLabels[axis]+"_2")
	}

	out, err := spectrum.Zeros(outShape, outLabels, src.Folded(), spectrum.MaskNone)
	if err != nil {
		return nil, fmt.Errorf("Split: %w", err)
	}
	outSt := strides(outShape)
	newAxis := len(outShape) - 1

	data := src.Data()
	outData := out.Data()

	forEachLine(srcShape, st, axis, func(base int) {
		line := gatherLine(data, base, st[axis], total+1)
		outBase := remapBase(base, st, outSt, axis)
		for k := 0; k <= total; k++ {
			v := line[k]
			if v == 0 {
				continue
			}
			denom := choose(total, k)
			if denom == 0 {
				continue
			}
			iLo := k - n2
			if iLo < 0 {
				iLo = 0
			}
			iHi := k
			if iHi > n1 {
				iHi = n1
			}
			for i := iLo; i <= iHi; i++ {
				j := k - i
				w := choose(n1, i) * choose(n2, j) / denom
				outData[outBase+i*outSt[axis]+j*outSt[newAxis]] += v * w
			}
		}
	})
	out.MaskCorners()
	return out, nil
}
