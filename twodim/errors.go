// Package twodim assembles operators that couple a pair of population axes:
// migration between any two populations in a joint spectrum (component C3),
// and the non-separable two-population selection cross term used when
// dominance doesn't decompose into independent per-axis pieces. Both are
// built as sparse operators over the full flattened joint state space,
// broadcasting over whatever other axes the spectrum carries.
package twodim

import "errors"

// Sentinel errors for the twodim package.
var (
	// ErrBadShape indicates a shape with fewer than 2 axes or an axis of
	// size less than 2.
	ErrBadShape = errors.New("twodim: shape must have at least 2 axes, each of size >= 2")

	// ErrAxisOutOfRange indicates an axis pair index outside the shape.
	ErrAxisOutOfRange = errors.New("twodim: axis index out of range")

	// ErrMigrationMatrixShape indicates a migration-rate matrix whose
	// dimensions disagree with the number of populations in shape.
	ErrMigrationMatrixShape = errors.New("twodim: migration matrix shape does not match population count")

	// ErrSizeVectorLength indicates a population-size vector whose length
	// disagrees with the number of populations in shape.
	ErrSizeVectorLength = errors.New("twodim: size vector length does not match population count")
)
