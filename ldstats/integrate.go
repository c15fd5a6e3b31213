package ldstats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Integrate advances y's moments in place from t=0 to tf under
// recombination rate rho and mutation rate theta (both already
// population-scaled, 4*N*r and 4*N*u), current population sizes nu (one
// per block in y, evaluated as constant over [0, tf]), and an optional
// migration-rate matrix m (nil or npops<2 disables migration coupling).
// It builds the closed D2/Dz/pi2/H moment-recursion generator (see
// generator in moments.go) and advances the resulting linear system with
// the same Crank-Nicolson dense solve twolocus.Integrate uses, reusing y's
// existing state as the initial condition rather than reseeding it from
// any other representation.
func Integrate(y *LDStats, nu []float64, tf, dt, rho, theta float64, m *mat.Dense) error {
	npops := y.NumPops()
	if len(nu) != npops {
		return fmt.Errorf("Integrate: len(nu)=%d want %d: %w", len(nu), npops, ErrBadConfig)
	}
	if tf < 0 || dt <= 0 {
		return fmt.Errorf("Integrate: tf=%v dt=%v: %w", tf, dt, ErrBadConfig)
	}
	if npops < 2 {
		m = nil
	}

	a, err := generator(npops, nu, rho, theta, m)
	if err != nil {
		return fmt.Errorf("Integrate: %w", err)
	}
	src := forcing(npops, nu, theta)

	size := npops * blockDim
	nSteps := 1
	if tf > 0 {
		nSteps = int(math.Ceil(tf / dt))
	}
	step := tf / float64(nSteps)

	lhs := mat.NewDense(size, size, nil)
	rhs := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			v := a.At(i, j) * step / 2
			if i == j {
				lhs.Set(i, j, 1-v)
				rhs.Set(i, j, 1+v)
			} else {
				lhs.Set(i, j, -v)
				rhs.Set(i, j, v)
			}
		}
	}
	var lu mat.LU
	lu.Factorize(lhs)

	state := make([]float64, size)
	for p := 0; p < npops; p++ {
		state[blockDim*p+0] = y.Blocks[p][0]
		state[blockDim*p+1] = y.Blocks[p][1]
		state[blockDim*p+2] = y.Blocks[p][2]
		state[blockDim*p+3] = y.H[p]
	}

	for s := 0; s < nSteps; s++ {
		// The forcing term's RHS contribution is solved at the same
		// Crank-Nicolson weight as the matrix terms, consistent with the
		// implicit step elsewhere in this matrix-based ODE family.
		rhsVec := mat.NewVecDense(size, nil)
		rhsVec.MulVec(rhs, mat.NewVecDense(size, state))
		b := make([]float64, size)
		for i := range b {
			b[i] = rhsVec.AtVec(i) + step*src[i]
		}

		var sol mat.VecDense
		if err := lu.SolveVecTo(&sol, false, mat.NewVecDense(size, b)); err != nil {
			return fmt.Errorf("Integrate: linear solve: %w", err)
		}
		for i := range state {
			v := sol.AtVec(i)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("Integrate: step=%d: %w", s, ErrNonFinite)
			}
			state[i] = v
		}
	}

	for p := 0; p < npops; p++ {
		y.Blocks[p][0] = state[blockDim*p+0]
		y.Blocks[p][1] = state[blockDim*p+1]
		y.Blocks[p][2] = state[blockDim*p+2]
		y.H[p] = state[blockDim*p+3]
	}
	return nil
}
