package tridiag

// Apply computes y = S*x for the (unfactored) tridiagonal system s,
// without building a Factorization; used for the explicit side of a
// Crank-Nicolson step, where only the matrix-vector product is needed.
func (s *System) Apply(x []float64) []float64 {
	n := len(s.Diag)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		v := s.Diag[i] * x[i]
		if i > 0 {
			v += s.Sub[i] * x[i-1]
		}
		if i < n-1 {
			v += s.Super[i] * x[i+1]
		}
		y[i] = v
	}
	return y
}
