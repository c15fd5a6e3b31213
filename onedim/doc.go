// Grounded on tridiag's Thomas form for the closed-form part (Drift,
// MutationReversible) and on jackknife.Matrix for the part that needs
// moment closure (Selection1, Selection2): both selection operators extend
// phi to a finer sample with jackknife.Matrix(n, 1), weight it by a
// polynomial (y(1-y) for Selection1, y^2(1-y) for Selection2) that vanishes
// at both allele-frequency boundaries, and difference it back down, which
// is what keeps them mass-conserving without extra bookkeeping. integrate
// composes Drift + Selection1 + Selection2 into one per-axis operator
// before handing it to tridiag or a dense LU solve; MutationReversible is
// applied separately, in integrate's mutation stage.
package onedim
