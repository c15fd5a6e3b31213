package spectrum

import "fmt"

// Marginalize sums out the given axis, returning a Spectrum with one
// fewer population. The two absorbing corners of the result are remasked
// via MaskCorners; any other masking on the summed-out axis is lost, since
// a marginal spectrum has no notion of "the same cell" the source mask
// referred to.
func (s *Spectrum) Marginalize(axis int) (*Spectrum, error) {
	p := len(s.shape)
	if axis < 0 || axis >= p {
		return nil, fmt.Errorf("Marginalize: axis %d: %w", axis, ErrAxisOutOfRange)
	}
	if p == 1 {
		return nil, fmt.Errorf("Marginalize: cannot marginalize the only axis: %w", ErrAxisOutOfRange)
	}

	outShape := make([]int, 0, p-1)
	outLabels := make([]string, 0, p-1)
	for k := 0; k < p; k++ {
		if k == axis {
			continue
		}
		outShape = append(outShape, s.shape[k])
		outLabels = append(outLabels, s.pops[k])
	}
	out, err := Zeros(outShape, outLabels, s.folded, MaskNone)
	if err != nil {
		return nil, fmt.Errorf("Marginalize: %w", err)
	}

	eachIndex(s.shape, func(idx []int) {
		v := s.data[s.flatIndex(idx)]
		if v == 0 {
			return
		}
		outIdx := make([]int, 0, p-1)
		for k, x := range idx {
			if k == axis {
				continue
			}
			outIdx = append(outIdx, x)
		}
		off := out.flatIndex(outIdx)
		out.data[off] += v
	})

	out.MaskCorners()
	return out, nil
}
