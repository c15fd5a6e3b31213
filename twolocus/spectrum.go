package twolocus

import (
	"fmt"
	"math"
)

// TLSpectrum is a probability distribution over the simplex of
// four-haplotype configurations for a fixed two-locus sample size N:
// Data[f] is the probability mass on the haplotype-count triple Flat
// maps to f. Mask marks entries callers should ignore (mirroring
// spectrum.Spectrum's masking convention); Folded records whether allele
// labels have been collapsed to minor/major.
type TLSpectrum struct {
	N      int
	Data   []float64
	Mask   []bool
	Folded bool

	idx *SimplexIndex
}

// NewTLSpectrum builds a zero-valued TLSpectrum for sample size n.
func NewTLSpectrum(n int) (*TLSpectrum, error) {
	idx, err := Index(n)
	if err != nil {
		return nil, fmt.Errorf("NewTLSpectrum: %w", err)
	}
	return &TLSpectrum{
		N:    n,
		Data: make([]float64, idx.Size()),
		Mask: make([]bool, idx.Size()),
		idx:  idx,
	}, nil
}

// FromData wraps an existing Data/Mask pair (e.g. loaded from specio)
// into a TLSpectrum, validating their length against N's simplex size.
func FromData(n int, data []float64, mask []bool, folded bool) (*TLSpectrum, error) {
	idx, err := Index(n)
	if err != nil {
		return nil, fmt.Errorf("FromData: %w", err)
	}
	if len(data) != idx.Size() {
		return nil, fmt.Errorf("FromData: len(data)=%d want %d: %w", len(data), idx.Size(), ErrVectorLength)
	}
	if mask == nil {
		mask = make([]bool, idx.Size())
	} else if len(mask) != idx.Size() {
		return nil, fmt.Errorf("FromData: len(mask)=%d want %d: %w", len(mask), idx.Size(), ErrVectorLength)
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("FromData: %w", ErrNonFinite)
		}
	}
	return &TLSpectrum{N: n, Data: data, Mask: mask, Folded: folded, idx: idx}, nil
}

// Index returns the sample's SimplexIndex, rebuilding/fetching the cached
// instance if the receiver was constructed via FromData before it was
// populated (idx is always set by the constructors above, so this is
// mainly a convenience for callers holding a bare TLSpectrum literal).
func (t *TLSpectrum) Index() (*SimplexIndex, error) {
	if t.idx != nil {
		return t.idx, nil
	}
	idx, err := Index(t.N)
	if err != nil {
		return nil, err
	}
	t.idx = idx
	return idx, nil
}

// At returns the probability mass at haplotype-count triple (i, j, k).
func (t *TLSpectrum) At(i, j, k int) (float64, error) {
	idx, err := t.Index()
	if err != nil {
		return 0, err
	}
	f, err := idx.Flat(i, j, k)
	if err != nil {
		return 0, err
	}
	return t.Data[f], nil
}

// Clone returns a deep copy of t.
func (t *TLSpectrum) Clone() *TLSpectrum {
	out := &TLSpectrum{
		N:      t.N,
		Data:   append([]float64(nil), t.Data...),
		Mask:   append([]bool(nil), t.Mask...),
		Folded: t.Folded,
		idx:    t.idx,
	}
	return out
}

// Sum returns the total probability mass, which a well-formed TLSpectrum
// keeps at 1 (up to integration error) since the simplex enumerates every
// possible haplotype-count configuration.
func (t *TLSpectrum) Sum() float64 {
	var s float64
	for i, v := range t.Data {
		if i < len(t.Mask) && t.Mask[i] {
			continue
		}
		s += v
	}
	return s
}
