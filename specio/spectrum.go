package specio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grahamgower/moments/spectrum"
)

// ReadSpectrum parses the Spectrum text format: any number of leading
// "#"-prefixed comment lines, then a header line
// "<n1+1> <n2+1> ... <np+1> (folded|unfolded) pop1 pop2 ...", then one
// line of C-order whitespace-separated floats and one line of C-order
// 0/1 mask entries.
func ReadSpectrum(r io.Reader) (*spectrum.Spectrum, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 64*1024*1024)

	header, err := nextNonCommentLine(sc)
	if err != nil {
		return nil, fmt.Errorf("ReadSpectrum: %w", err)
	}
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return nil, fmt.Errorf("ReadSpectrum: header %q: %w", header, ErrBadHeader)
	}

	p := 0
	shape := make([]int, 0, len(fields))
	for p < len(fields) {
		if fields[p] == "folded" || fields[p] == "unfolded" {
			break
		}
		v, err := strconv.Atoi(fields[p])
		if err != nil {
			return nil, fmt.Errorf("ReadSpectrum: shape token %q: %w", fields[p], ErrBadHeader)
		}
		shape = append(shape, v)
		p++
	}
	if p >= len(fields) || len(shape) == 0 {
		return nil, fmt.Errorf("ReadSpectrum: header %q missing fold flag: %w", header, ErrBadHeader)
	}
	folded := fields[p] == "folded"
	p++
	labels := fields[p:]
	if len(labels) == 0 {
		labels = nil
	}

	total := 1
	for _, s := range shape {
		total *= s
	}

	data, err := readFloatRow(sc, total)
	if err != nil {
		return nil, fmt.Errorf("ReadSpectrum: data row: %w", err)
	}
	maskInts, err := readFloatRow(sc, total)
	if err != nil {
		return nil, fmt.Errorf("ReadSpectrum: mask row: %w", err)
	}
	mask := make([]bool, total)
	for i, v := range maskInts {
		mask[i] = v != 0
	}

	sp, err := spectrum.New(shape, data, labels, folded, spectrum.MaskNone)
	if err != nil {
		return nil, fmt.Errorf("ReadSpectrum: %w", err)
	}
	for i, m := range mask {
		if !m {
			continue
		}
		idx := unflatten(i, shape)
		if err := sp.SetMasked(true, idx...); err != nil {
			return nil, fmt.Errorf("ReadSpectrum: %w", err)
		}
	}
	return sp, nil
}

// WriteSpectrum serializes phi in the format ReadSpectrum parses.
func WriteSpectrum(w io.Writer, phi *spectrum.Spectrum) error {
	bw := bufio.NewWriter(w)

	shape := phi.Shape()
	parts := make([]string, 0, len(shape)+1+len(shape))
	for _, s := range shape {
		parts = append(parts, strconv.Itoa(s))
	}
	if phi.Folded() {
		parts = append(parts, "folded")
	} else {
		parts = append(parts, "unfolded")
	}
	parts = append(parts, phi.PopNames()...)
	if _, err := fmt.Fprintln(bw, strings.Join(parts, " ")); err != nil {
		return fmt.Errorf("WriteSpectrum: %w", err)
	}

	if err := writeFloatRow(bw, phi.Data()); err != nil {
		return fmt.Errorf("WriteSpectrum: %w", err)
	}
	maskRow := make([]float64, len(phi.Mask()))
	for i, m := range phi.Mask() {
		if m {
			maskRow[i] = 1
		}
	}
	if err := writeFloatRow(bw, maskRow); err != nil {
		return fmt.Errorf("WriteSpectrum: %w", err)
	}
	return bw.Flush()
}

func unflatten(flat int, shape []int) []int {
	idx := make([]int, len(shape))
	for k := len(shape) - 1; k >= 0; k-- {
		idx[k] = flat % shape[k]
		flat /= shape[k]
	}
	return idx
}
