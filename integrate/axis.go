package integrate

// strides computes row-major strides for shape, matching spectrum.Spectrum's
// own layout convention.
func strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		s[k] = acc
		acc *= shape[k]
	}
	return s
}

// forEachLine invokes fn once per combination of indices on axes other
// than axis, passing the flat offset of that line's first element; the
// caller walks the line with stride st[axis].
func forEachLine(shape, st []int, axis int, fn func(base int)) {
	idx := make([]int, len(shape))
	var rec func(a int)
	rec = func(a int) {
		if a == len(shape) {
			base := 0
			for k, v := range idx {
				if k != axis {
					base += v * st[k]
				}
			}
			fn(base)
			return
		}
		if a == axis {
			rec(a + 1)
			return
		}
		for idx[a] = 0; idx[a] < shape[a]; idx[a]++ {
			rec(a + 1)
		}
	}
	rec(0)
}

// gatherLine copies the line starting at base with stride axisStride and
// length n out of data into a fresh slice.
func gatherLine(data []float64, base, axisStride, n int) []float64 {
	line := make([]float64, n)
	for i := 0; i < n; i++ {
		line[i] = data[base+i*axisStride]
	}
	return line
}

// scatterLine writes line back into data at base with stride axisStride.
func scatterLine(data []float64, base, axisStride int, line []float64) {
	for i, v := range line {
		data[base+i*axisStride] = v
	}
}
