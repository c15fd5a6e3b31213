// Package jackknife implements the moment-closure extrapolation that lets
// a finite-sample recursion close: given an n-sample moment vector,
// produce the (n+1)- or (n+2)-sample vector that the drift and selection
// operators of packages onedim/twodim/twolocus need to close their
// recursions.
package jackknife

import "errors"

// Sentinel errors for the jackknife package.
var (
	// ErrBadSampleSize indicates a sample size below the minimum needed
	// for quadratic interpolation (n must be at least 2).
	ErrBadSampleSize = errors.New("jackknife: sample size too small")

	// ErrBadOrder indicates an order outside the supported {1, 2}.
	ErrBadOrder = errors.New("jackknife: order must be 1 or 2")

	// ErrVectorLength indicates a vector whose length disagrees with the
	// sample size implied by the requested matrix.
	ErrVectorLength = errors.New("jackknife: vector length mismatch")
)
