// Package tridiag implements a dense tridiagonal LU solver: in-place
// Thomas-form elimination over three arrays (sub, diag, super), used on
// the neutral fast path where each per-axis ADI sub-step collapses to a
// tridiagonal system.
package tridiag

import "errors"

// Sentinel errors for the tridiag package.
var (
	// ErrLengthMismatch indicates sub/diag/super have inconsistent lengths.
	ErrLengthMismatch = errors.New("tridiag: sub/diag/super length mismatch")

	// ErrTooShort indicates a system with fewer than 2 unknowns.
	ErrTooShort = errors.New("tridiag: system must have at least 2 unknowns")

	// ErrSingular indicates a zero pivot was encountered during elimination.
	ErrSingular = errors.New("tridiag: singular system (zero pivot)")

	// ErrRHSLength indicates a right-hand-side vector whose length disagrees
	// with the factored system's dimension.
	ErrRHSLength = errors.New("tridiag: right-hand-side length mismatch")
)
