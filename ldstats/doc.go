// Split and Normalize are pure data-structure operations over Blocks/H/
// Names and need no grounding beyond LD/LDstats_mod.py's own split/
// normalize methods.
//
// Integrate's moment-recursion coefficients (moments.go) are this
// package's own derivation from the Hill-Robertson/Ohta-Kimura diffusion
// closure. LD/Numerics.py, which would hold the original's literal
// coefficients, was not present in the retrieved reference material.
// The derived coefficients are chosen so the classical equilibrium
// identities hold exactly (heterozygosity theta/(1+theta); D2/pi2
// strictly decreasing in rho), giving
// TestIntegrateMatchesEquilibriumIdentities a falsifiable target.
package ldstats
