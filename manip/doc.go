// Grounded on onedim/twodim's hypergeometric and CTMC-generator patterns:
// Project and Split reuse the hypergeometric weight helpers in
// combinatorics.go the way onedim.Selection's jackknife-extended weights
// do, and AdmixNew's combinatorial construction is checked against the
// "sequential pick-one" operator definition algebraically rather than
// copied line for line. None of these touch the integration machinery in
// onedim, twodim, or integrate; they only reshape or recombine a
// spectrum.Spectrum's data between bouts of Integrate.
package manip
