// Package demography provides the callable population-size-schedule
// abstraction integrate steps against: a SizeSchedule maps simulated time
// to a vector of relative population sizes, one per spectrum axis.
package demography

import "errors"

// ErrLengthMismatch indicates a Frozen schedule whose frozen mask length
// disagrees with its inner schedule's size vector.
var ErrLengthMismatch = errors.New("demography: frozen mask length does not match schedule size vector")
