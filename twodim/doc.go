// Grounded on onedim's operator-assembly style (sparse.COO built via
// jackknife extension + boundary-vanishing weight + differencing) lifted to
// a joint pair of axes, and on the CTMC-generator construction used by
// onedim.Drift (off-diagonal entries are incoming rates, the diagonal is
// minus total outflow), which makes mass conservation automatic rather than
// something each caller has to re-derive. integrate builds a Migration
// operator from the rate matrix and the current sizes for each migration
// half-step; Selection2Pop is a standalone operator that integrate does
// not call.
package twodim
