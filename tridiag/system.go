package tridiag

import "fmt"

// System is a dense tridiagonal matrix in Thomas form: Sub holds the
// sub-diagonal (Sub[0] is unused), Diag the main diagonal, Super the
// super-diagonal (Super[n-1] is unused). All three have length n.
type System struct {
	Sub, Diag, Super []float64
}

// Factorization is the result of eliminating a System; it is reused
// across Solve calls against different right-hand sides and is only
// rebuilt by the caller when N or dt change.
type Factorization struct {
	n      int
	cPrime []float64 // modified super-diagonal coefficients
	dPrime []float64 // reciprocal pivots, kept for Solve
	lower  []float64 // modified sub-diagonal multipliers
}

// Factor performs in-place-style Thomas elimination on a copy of s,
// producing a reusable Factorization.
//
// Stage 1 (Validate): equal-length arrays, n >= 2.
// Stage 2 (Prepare): allocate forward-sweep coefficient arrays.
// Stage 3 (Execute): forward elimination, checking for zero pivots.
func (s *System) Factor() (*Factorization, error) {
	n := len(s.Diag)
	if len(s.Sub) != n || len(s.Super) != n {
		return nil, fmt.Errorf("Factor: %w", ErrLengthMismatch)
	}
	if n < 2 {
		return nil, fmt.Errorf("Factor: n=%d: %w", n, ErrTooShort)
	}

	cPrime := make([]float64, n)
	dPivot := make([]float64, n)
	lower := make([]float64, n)

	if s.Diag[0] == 0 {
		return nil, fmt.Errorf("Factor: pivot 0: %w", ErrSingular)
	}
	cPrime[0] = s.Super[0] / s.Diag[0]
	dPivot[0] = 1.0 / s.Diag[0]

	for i := 1; i < n; i++ {
		lower[i] = s.Sub[i]
		denom := s.Diag[i] - lower[i]*cPrime[i-1]
		if denom == 0 {
			return nil, fmt.Errorf("Factor: pivot %d: %w", i, ErrSingular)
		}
		dPivot[i] = 1.0 / denom
		if i < n-1 {
			cPrime[i] = s.Super[i] * dPivot[i]
		}
	}

	return &Factorization{n: n, cPrime: cPrime, dPrime: dPivot, lower: lower}, nil
}

// Solve applies the cached factorization to rhs, returning x such that
// the original tridiagonal system satisfies S*x = rhs. rhs is not
// mutated; a fresh result slice is returned.
func (f *Factorization) Solve(rhs []float64) ([]float64, error) {
	if len(rhs) != f.n {
		return nil, fmt.Errorf("Solve: len(rhs)=%d want %d: %w", len(rhs), f.n, ErrRHSLength)
	}

	dStar := make([]float64, f.n)
	dStar[0] = rhs[0] * f.dPrime[0]
	for i := 1; i < f.n; i++ {
		dStar[i] = (rhs[i] - f.lower[i]*dStar[i-1]) * f.dPrime[i]
	}

	x := make([]float64, f.n)
	x[f.n-1] = dStar[f.n-1]
	for i := f.n - 2; i >= 0; i-- {
		x[i] = dStar[i] - f.cPrime[i]*x[i+1]
	}
	return x, nil
}

// Solve factors s and applies it to rhs in one call, for callers that do
// not need to reuse the factorization across multiple right-hand sides.
func Solve(s *System, rhs []float64) ([]float64, error) {
	f, err := s.Factor()
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	return f.Solve(rhs)
}
