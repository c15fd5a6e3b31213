// Grounded on matrix/ops.LU's staged Doolittle decomposition (Stage 1
// validate, Stage 2 prepare, Stage 3 execute) but specialized to the
// three-array Thomas form, since a general dense LU would waste the O(n)
// structure the neutral integration path depends on for performance.
package tridiag
