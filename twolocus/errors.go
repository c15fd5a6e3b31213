// Package twolocus implements the two-locus diffusion core (component
// C7): a probability distribution over the simplex of four-haplotype
// counts (AB, Ab, aB, ab) summing to a fixed sample size n, its drift,
// recombination, selection and mutation operators, and the time
// integrator that advances it.
package twolocus

import "errors"

// Sentinel errors for the twolocus package.
var (
	// ErrBadSampleSize indicates a sample size below the minimum the
	// simplex index supports.
	ErrBadSampleSize = errors.New("twolocus: sample size too small")

	// ErrOutOfSimplex indicates a haplotype-count triple outside the
	// valid simplex i+j+k<=n, i,j,k>=0.
	ErrOutOfSimplex = errors.New("twolocus: haplotype counts outside simplex")

	// ErrVectorLength indicates a Data/Mask slice whose length disagrees
	// with the simplex size implied by N.
	ErrVectorLength = errors.New("twolocus: vector length does not match simplex size")

	// ErrNonFinite indicates a NaN or infinite entry where a finite value
	// is required.
	ErrNonFinite = errors.New("twolocus: non-finite value")
)
