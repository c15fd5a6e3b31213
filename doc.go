// Package moments implements a diffusion-approximation engine for
// population genetics: it evolves an allele-frequency probability
// distribution (a Spectrum, or its two-locus haplotype-count analogue,
// a TLSpectrum) forward in time under drift, selection, migration,
// recombination, and mutation, and derives summary statistics from the
// result.
//
// Subpackages are organized by concern:
//
//	spectrum/       — Spectrum type: shape, masking, folding, marginalizing
//	demography/     — population-size schedules driving drift/migration rates
//	onedim/         — single-population drift, selection, and mutation generators
//	twodim/         — two-population migration and selection generators
//	jackknife/      — moment-closure extension/restriction between sample sizes
//	tridiag/        — banded linear-system solves used by the 1D/2D steppers
//	integrate/      — Crank-Nicolson time-stepping over a Spectrum
//	manip/          — Project/Split/Merge/Admix/Reorder sample-size and
//	                  population-axis operations
//	twolocus/       — haplotype-count simplex and its own drift/recombination/
//	                  selection/mutation generators and Crank-Nicolson solve
//	ldstats/        — linkage-disequilibrium moment statistics, integrated
//	                  independently of twolocus
//	specio/         — the Spectrum/TLSpectrum text file format
//	cmd/momentsctl/ — a command-line driver over all of the above
package moments
