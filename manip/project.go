package manip

import (
	"fmt"

	"github.com/grahamgower/moments/spectrum"
)

// Project downsamples phi to newShape (one new sample size per axis, each
// no larger than the current one) via the standard hypergeometric
// projection formula: the expected spectrum of a sub-sample of size
// newN drawn without replacement from a sample of size n holding k
// derived alleles is C(k,i)*C(n-k,newN-i)/C(n,newN) at count i.
func Project(phi *spectrum.Spectrum, newShape []int) (*spectrum.Spectrum, error) {
	shape := phi.Shape()
	if len(newShape) != len(shape) {
		return nil, fmt.Errorf("Project: len(newShape)=%d want %d: %w", len(newShape), len(shape), ErrShapeMismatch)
	}
	for axis := range shape {
		if newShape[axis] > shape[axis] {
			return nil, fmt.Errorf("Project: axis %d: new size %d exceeds source %d: %w", axis, newShape[axis]-1, shape[axis]-1, ErrSampleTooLarge)
		}
	}

	cur := phi.Clone()
	for axis := range shape {
		if newShape[axis] == cur.Shape()[axis] {
			continue
		}
		next, err := projectAxis(cur, axis, newShape[axis]-1)
		if err != nil {
			return nil, fmt.Errorf("Project: %w", err)
		}
		cur = next
	}
	return cur, nil
}

func projectAxis(phi *spectrum.Spectrum, axis, newN int) (*spectrum.Spectrum, error) {
	shape := phi.Shape()
	n := shape[axis] - 1
	st := strides(shape)

	outShape := append([]int(nil), shape...)
	outShape[axis] = newN + 1
	out, err := spectrum.Zeros(outShape, phi.PopNames(), phi.Folded(), spectrum.MaskNone)
	if err != nil {
		return nil, err
	}
	outSt := strides(outShape)

	data := phi.Data()
	outData := out.Data()

	forEachLine(shape, st, axis, func(base int) {
		line := gatherLine(data, base, st[axis], n+1)
		outBase := remapBase(base, st, outSt, axis)
		for i := 0; i <= newN; i++ {
			var acc float64
			for k := i; k <= n-(newN-i); k++ {
				acc += line[k] * hypergeometricWeight(n, k, newN, i)
			}
			outData[outBase+i*outSt[axis]] = acc
		}
	})
	out.MaskCorners()
	return out, nil
}

// remapBase converts a flat base offset computed against st (with axis's
// own index held at zero) into the equivalent base against outSt, given
// both shapes agree on every axis except axis.
func remapBase(base int, st, outSt []int, axis int) int {
	outBase := 0
	rem := base
	for k, s := range st {
		if k == axis {
			continue
		}
		v := rem / s
		rem -= v * s
		outBase += v * outSt[k]
	}
	return outBase
}
