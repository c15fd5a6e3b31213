package spectrum

import "fmt"

// MaskPolicy controls which cells a constructor marks as excluded from
// inference and from certain manipulations (spec: "masked" corners).
type MaskPolicy int

const (
	// MaskNone leaves every cell unmasked.
	MaskNone MaskPolicy = iota

	// MaskCorners marks the two boundary cells (all derived-allele-count
	// zero, all fixed) as masked. These are not observable as segregating
	// sites under the standard ascertainment.
	MaskCorners

	// MaskDiagonal additionally masks cells where every axis shares the
	// same count as axis 0 (used by some reversible-mutation workflows
	// that want to exclude the monomorphic diagonal).
	MaskDiagonal
)

// Spectrum is a dense, masked, labeled tensor of expected segregating-site
// density over derived-allele-count configurations for 1 to 5 populations.
//
// Data is stored row-major (C-order): for shape (n1+1, ..., np+1), the flat
// index of (i1, ..., ip) is i1*s1 + i2*s2 + ... + ip where sk is the stride
// of axis k (product of the sizes of the axes after k).
type Spectrum struct {
	shape  []int     // n_k+1 per axis, len(shape) == p
	stride []int     // row-major strides, len(stride) == p
	data   []float64 // flat buffer, len == prod(shape)
	mask   []bool    // same length as data
	pops   []string  // population labels, len == p
	folded bool       // true if ancestral state is unknown
}

// maxPopulations bounds the number of simultaneous populations a dense
// joint spectrum can practically hold.
const maxPopulations = 5

// strides computes row-major strides for shape.
func strides(shape []int) []int {
	p := len(shape)
	s := make([]int, p)
	acc := 1
	for k := p - 1; k >= 0; k-- {
		s[k] = acc
		acc *= shape[k]
	}
	return s
}

// validateShape checks that shape is non-empty, within the population
// bound, and strictly positive along every axis.
func validateShape(shape []int) error {
	if len(shape) == 0 || len(shape) > maxPopulations {
		return fmt.Errorf("validateShape: p=%d: %w", len(shape), ErrTooManyPopulations)
	}
	for axis, n := range shape {
		if n < 1 {
			return fmt.Errorf("validateShape: axis %d size %d: %w", axis, n, ErrBadShape)
		}
	}
	return nil
}

// New constructs a Spectrum from a flat, row-major data array.
//
// Stage 1 (Validate): shape bounds, data/mask length, label count.
// Stage 2 (Prepare): compute strides, copy data/labels defensively.
// Stage 3 (Finalize): apply mask policy for the two absorbing corners.
func New(shape []int, data []float64, labels []string, folded bool, policy MaskPolicy) (*Spectrum, error) {
	// Stage 1: validate
	if err := validateShape(shape); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	total := 1
	for _, n := range shape {
		total *= n
	}
	if len(data) != total {
		return nil, fmt.Errorf("New: len(data)=%d want %d: %w", len(data), total, ErrShapeMismatch)
	}
	if labels != nil && len(labels) != len(shape) {
		return nil, fmt.Errorf("New: len(labels)=%d want %d: %w", len(labels), len(shape), ErrLabelMismatch)
	}
	for i, v := range data {
		if isNonFinite(v) {
			return nil, fmt.Errorf("New: cell %d: %w", i, ErrNonFinite)
		}
	}

	// Stage 2: prepare
	sh := append([]int(nil), shape...)
	buf := append([]float64(nil), data...)
	var lbl []string
	if labels != nil {
		lbl = append([]string(nil), labels...)
	} else {
		lbl = make([]string, len(shape))
		for i := range lbl {
			lbl[i] = fmt.Sprintf("pop%d", i)
		}
	}
	sp := &Spectrum{
		shape:  sh,
		stride: strides(sh),
		data:   buf,
		mask:   make([]bool, total),
		pops:   lbl,
		folded: folded,
	}

	// Stage 3: mask policy
	applyMaskPolicy(sp, policy)

	return sp, nil
}

// Zeros constructs an all-zero Spectrum of the given shape.
func Zeros(shape []int, labels []string, folded bool, policy MaskPolicy) (*Spectrum, error) {
	total := 1
	for _, n := range shape {
		total *= n
	}
	return New(shape, make([]float64, total), labels, folded, policy)
}

func isNonFinite(v float64) bool {
	return v != v || v > maxFinite || v < -maxFinite
}

const maxFinite = 1.7976931348623157e+308

// applyMaskPolicy marks the absorbing corners per policy. Corner status is
// preserved by split/merge/admix, so this is the single place that
// decides which flat indices those corners are.
func applyMaskPolicy(sp *Spectrum, policy MaskPolicy) {
	if policy == MaskNone {
		return
	}
	lo := make([]int, len(sp.shape)) // all-zero corner
	hi := make([]int, len(sp.shape)) // all-fixed corner
	for k, n := range sp.shape {
		hi[k] = n - 1
	}
	sp.mask[sp.flatIndex(lo)] = true
	sp.mask[sp.flatIndex(hi)] = true

	if policy == MaskDiagonal {
		n0 := sp.shape[0]
		idx := make([]int, len(sp.shape))
		for i := 0; i < n0; i++ {
			ok := true
			for k, n := range sp.shape {
				if n != n0 {
					ok = false
					break
				}
				idx[k] = i
			}
			if ok {
				sp.mask[sp.flatIndex(idx)] = true
			}
		}
	}
}

// Shape returns a defensive copy of the per-axis sizes (n_k+1).
func (s *Spectrum) Shape() []int { return append([]int(nil), s.shape...) }

// NumPops returns the number of population axes.
func (s *Spectrum) NumPops() int { return len(s.shape) }

// Folded reports whether ancestral state is treated as unknown.
func (s *Spectrum) Folded() bool { return s.folded }

// PopNames returns a defensive copy of the population labels.
func (s *Spectrum) PopNames() []string { return append([]string(nil), s.pops...) }

// flatIndex computes the row-major flat offset for idx without bounds
// checking; callers must validate first.
func (s *Spectrum) flatIndex(idx []int) int {
	off := 0
	for k, v := range idx {
		off += v * s.stride[k]
	}
	return off
}

// checkIndex validates idx against the declared shape.
func (s *Spectrum) checkIndex(idx []int) error {
	if len(idx) != len(s.shape) {
		return fmt.Errorf("checkIndex: len(idx)=%d want %d: %w", len(idx), len(s.shape), ErrOutOfRange)
	}
	for k, v := range idx {
		if v < 0 || v >= s.shape[k] {
			return fmt.Errorf("checkIndex: axis %d index %d out of [0,%d): %w", k, v, s.shape[k], ErrOutOfRange)
		}
	}
	return nil
}

// At returns the cell value at idx.
func (s *Spectrum) At(idx ...int) (float64, error) {
	if err := s.checkIndex(idx); err != nil {
		return 0, fmt.Errorf("At: %w", err)
	}
	return s.data[s.flatIndex(idx)], nil
}

// Set assigns the cell value at idx, rejecting non-finite inputs.
func (s *Spectrum) Set(value float64, idx ...int) error {
	if err := s.checkIndex(idx); err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	if isNonFinite(value) {
		return fmt.Errorf("Set: %w", ErrNonFinite)
	}
	s.data[s.flatIndex(idx)] = value
	return nil
}

// IsMasked reports whether idx is excluded from inference.
func (s *Spectrum) IsMasked(idx ...int) (bool, error) {
	if err := s.checkIndex(idx); err != nil {
		return false, fmt.Errorf("IsMasked: %w", err)
	}
	return s.mask[s.flatIndex(idx)], nil
}

// SetMasked sets the mask flag at idx.
func (s *Spectrum) SetMasked(masked bool, idx ...int) error {
	if err := s.checkIndex(idx); err != nil {
		return fmt.Errorf("SetMasked: %w", err)
	}
	s.mask[s.flatIndex(idx)] = masked
	return nil
}

// Data returns the flat row-major backing buffer. Callers that mutate the
// returned slice mutate the Spectrum directly; used by integrate/manip
// which own the Spectrum for the duration of their operation.
func (s *Spectrum) Data() []float64 { return s.data }

// Mask returns the flat row-major mask buffer, mutable in place.
func (s *Spectrum) Mask() []bool { return s.mask }

// Clone deep-copies data, mask, and metadata.
func (s *Spectrum) Clone() *Spectrum {
	return &Spectrum{
		shape:  append([]int(nil), s.shape...),
		stride: append([]int(nil), s.stride...),
		data:   append([]float64(nil), s.data...),
		mask:   append([]bool(nil), s.mask...),
		pops:   append([]string(nil), s.pops...),
		folded: s.folded,
	}
}
