// Grounded on onedim/twodim's CTMC-generator construction (incoming rate
// off-diagonal, negative outflow on the diagonal guarantees column-sum
// zero for any rate formula): Drift, Selection, and MutationReversible
// all reuse that pattern over the four-haplotype simplex instead of the
// two-type grid onedim works with. Unlike onedim/twodim's per-axis
// tridiagonal systems, the simplex's adjacency has no banded structure to
// exploit, so Integrate always solves one dense system per step via
// gonum/mat.
package twolocus
