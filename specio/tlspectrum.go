package specio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grahamgower/moments/twolocus"
)

// ReadTLSpectrum parses the TLSpectrum text format: any number of
// leading "#"-prefixed comment lines, then a header line
// "<n> (folded|unfolded)", then one line of whitespace-separated floats
// and one line of 0/1 mask entries, each holding one value per
// haplotype-count triple in SimplexIndex order. This packs only the
// C(n+3,3) simplex entries rather than the full zero-padded (n+1)^3
// cube, since TLSpectrum never materializes the out-of-simplex cells.
func ReadTLSpectrum(r io.Reader) (*twolocus.TLSpectrum, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 64*1024*1024)

	header, err := nextNonCommentLine(sc)
	if err != nil {
		return nil, fmt.Errorf("ReadTLSpectrum: %w", err)
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, fmt.Errorf("ReadTLSpectrum: header %q: %w", header, ErrBadHeader)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("ReadTLSpectrum: sample size token %q: %w", fields[0], ErrBadHeader)
	}
	var folded bool
	switch fields[1] {
	case "folded":
		folded = true
	case "unfolded":
		folded = false
	default:
		return nil, fmt.Errorf("ReadTLSpectrum: fold flag %q: %w", fields[1], ErrBadHeader)
	}

	idx, err := twolocus.Index(n)
	if err != nil {
		return nil, fmt.Errorf("ReadTLSpectrum: %w", err)
	}
	total := idx.Size()
	data, err := readFloatRow(sc, total)
	if err != nil {
		return nil, fmt.Errorf("ReadTLSpectrum: data row: %w", err)
	}
	maskFloats, err := readFloatRow(sc, total)
	if err != nil {
		return nil, fmt.Errorf("ReadTLSpectrum: mask row: %w", err)
	}
	mask := make([]bool, total)
	for i, v := range maskFloats {
		mask[i] = v != 0
	}

	tl, err := twolocus.FromData(n, data, mask, folded)
	if err != nil {
		return nil, fmt.Errorf("ReadTLSpectrum: %w", err)
	}
	return tl, nil
}

// WriteTLSpectrum serializes tl in the format ReadTLSpectrum parses: the
// C(n+3,3) simplex entries of Data and then Mask, in SimplexIndex order.
// It does not write a zero-padded (n+1)^3 cube.
func WriteTLSpectrum(w io.Writer, tl *twolocus.TLSpectrum) error {
	bw := bufio.NewWriter(w)

	fold := "unfolded"
	if tl.Folded {
		fold = "folded"
	}
	if _, err := fmt.Fprintf(bw, "%d %s\n", tl.N, fold); err != nil {
		return fmt.Errorf("WriteTLSpectrum: %w", err)
	}

	if err := writeFloatRow(bw, tl.Data); err != nil {
		return fmt.Errorf("WriteTLSpectrum: %w", err)
	}
	maskRow := make([]float64, len(tl.Mask))
	for i, m := range tl.Mask {
		if m {
			maskRow[i] = 1
		}
	}
	if err := writeFloatRow(bw, maskRow); err != nil {
		return fmt.Errorf("WriteTLSpectrum: %w", err)
	}
	return bw.Flush()
}
