// Package spectrum defines the Spectrum type: a masked, labeled dense
// tensor over derived-allele-count configurations, plus the arithmetic
// and bookkeeping primitives every other package builds on.
package spectrum

import "errors"

// Sentinel errors for the spectrum package. Callers MUST use errors.Is
// to branch on semantics; messages are never wrapped at definition site.
var (
	// ErrBadShape indicates a shape with a non-positive axis size.
	ErrBadShape = errors.New("spectrum: invalid shape")

	// ErrShapeMismatch indicates a data/mask slice whose length disagrees
	// with the product of the declared shape.
	ErrShapeMismatch = errors.New("spectrum: data/mask length does not match shape")

	// ErrLabelMismatch indicates the number of population labels disagrees
	// with the number of axes.
	ErrLabelMismatch = errors.New("spectrum: label count does not match shape")

	// ErrOutOfRange indicates an index tuple outside the declared shape.
	ErrOutOfRange = errors.New("spectrum: index out of range")

	// ErrAxisOutOfRange indicates an axis index outside [0, p).
	ErrAxisOutOfRange = errors.New("spectrum: axis out of range")

	// ErrDimensionMismatch indicates two spectra with incompatible shapes
	// were combined (Add, Sub, elementwise ops).
	ErrDimensionMismatch = errors.New("spectrum: dimension mismatch")

	// ErrTooManyPopulations indicates a shape with no axes or with more
	// than five axes, the practical ceiling for a dense joint spectrum.
	ErrTooManyPopulations = errors.New("spectrum: more than five populations")

	// ErrNonFinite indicates a NaN or ±Inf entry was encountered where a
	// finite value is required (construction, Set).
	ErrNonFinite = errors.New("spectrum: non-finite value")
)
