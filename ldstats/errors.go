// Package ldstats implements component C8: the reduced linkage-
// disequilibrium moment vector (D2, Dz, pi2 per population, plus
// per-population heterozygosity), its time evolution, population
// splitting, and the sigma_D2 normalizer used to report LD decay curves
// independent of an arbitrary reference population's drift scale.
//
// Integrate solves the Hill-Robertson/Ohta-Kimura closed second-order
// moment recursion directly (see generator in moments.go) as a linear
// system coupling every population's D2/Dz/pi2/H, driven by
// recombination, mutation, and migration. That representation is
// independent of twolocus's finite-sample haplotype-count simplex: the two
// packages are parallel pipelines over different state representations.
package ldstats

import "errors"

// Sentinel errors for the ldstats package.
var (
	// ErrNoPopulations indicates an LDStats with zero population blocks.
	ErrNoPopulations = errors.New("ldstats: no population blocks")

	// ErrPopOutOfRange indicates a population index outside an LDStats's
	// block count.
	ErrPopOutOfRange = errors.New("ldstats: population index out of range")

	// ErrUnknownStat indicates a Get/Set call naming a statistic key not
	// present in Names.
	ErrUnknownStat = errors.New("ldstats: unknown statistic name")

	// ErrBadConfig indicates an Integrate call with invalid parameters.
	ErrBadConfig = errors.New("ldstats: invalid configuration")

	// ErrNonFinite indicates an integration step produced a NaN or Inf
	// moment, signalling an unstable step size for the given rho/theta/N.
	ErrNonFinite = errors.New("ldstats: non-finite moment during integration")
)
