// Package integrate implements the ADI operator-split SFS integrator
// (component C5): mutation injection, a migration half-step, a per-axis
// Crank-Nicolson drift+selection solve, and a closing migration half-step,
// with adaptive time-stepping and an operator cache keyed by the inputs
// that actually change an axis's assembled system.
package integrate

import "errors"

// Sentinel errors for the integrate package.
var (
	// ErrBadConfig indicates a Config whose per-population vectors
	// disagree in length with the spectrum's population count.
	ErrBadConfig = errors.New("integrate: config vector length does not match population count")

	// ErrNonFinite indicates phi contained a NaN or Inf after a step,
	// signalling operator mis-assembly rather than a recoverable
	// numerical-accuracy issue.
	ErrNonFinite = errors.New("integrate: non-finite value in phi after step")
)
