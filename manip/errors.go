// Package manip implements the spectrum-manipulation primitives that
// connect successive integration phases: split, merge, project, and the
// two admixture operators (component C6). All of them act on one or two
// axes of a spectrum.Spectrum while leaving any other axes untouched.
package manip

import "errors"

// Sentinel errors for the manip package.
var (
	// ErrAxisOutOfRange indicates an axis index outside a spectrum's shape.
	ErrAxisOutOfRange = errors.New("manip: axis index out of range")

	// ErrSampleTooLarge indicates requested new sample sizes exceeding
	// what the source axis can provide.
	ErrSampleTooLarge = errors.New("manip: requested sample size exceeds source")

	// ErrNotTwoPop indicates Merge was called on a spectrum without
	// exactly two population axes.
	ErrNotTwoPop = errors.New("manip: merge requires exactly two population axes")

	// ErrShapeMismatch indicates a Project target shape with the wrong
	// number of axes.
	ErrShapeMismatch = errors.New("manip: target shape has the wrong number of axes")

	// ErrBadMixtureFraction indicates an admixture fraction outside [0,1].
	ErrBadMixtureFraction = errors.New("manip: admixture fraction must be in [0,1]")
)
