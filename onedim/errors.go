// Package onedim assembles the single-axis operators the per-axis ADI
// sub-step combines: Moran-style drift, additive and dominance selection,
// and the infinite-sites / reversible mutation source. Drift is
// closed-form; selection leans on jackknife for the moment closure that
// couples a sample of size n to one of size n+1.
package onedim

import "errors"

// Sentinel errors for the onedim package.
var (
	// ErrBadSampleSize indicates a sample size too small to hold a drift
	// or selection operator (n must be at least 2).
	ErrBadSampleSize = errors.New("onedim: sample size must be at least 2")

	// ErrVectorLength indicates a frequency-spectrum vector whose length
	// disagrees with the sample size an operator was built for.
	ErrVectorLength = errors.New("onedim: vector length does not match sample size")
)
