// Package spectrum implements the site-frequency-spectrum data model: a
// masked, labeled dense tensor over derived-allele-count configurations for
// one to five populations.
//
// A Spectrum owns a flat row-major buffer, a parallel mask bitmap, and
// metadata (population labels, folded/unfolded flag). It is created by
// New or Zeros or by specio (the module has no steady-state
// constructor), mutated in
// place by integrate and manip, and carries no behavior of its own beyond
// arithmetic, folding, and marginalization — the numeric machinery that
// advances or reshapes it lives in the sibling packages.
package spectrum
