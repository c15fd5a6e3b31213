// See matrix.go for the construction contract; this file only documents
// the package's role for godoc consumers.
//
// Consumers: onedim.Selection1/Selection2 (n+1, n+2 sample closures for
// 1-axis selection) and twodim's 2-pop selection cross terms.
package jackknife
