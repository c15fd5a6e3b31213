package integrate

import (
	"fmt"

	"github.com/grahamgower/moments/internal/sparse"
	"github.com/grahamgower/moments/onedim"
	"github.com/grahamgower/moments/tridiag"
	"gonum.org/v1/gonum/mat"
)

// axisKey identifies a fully-assembled per-axis Crank-Nicolson system: the
// axis's sample size, its current effective population size, selection
// parameters, and the step size. Rebuilding only happens when one of these
// actually changes, and the cache lives on the Integrator value rather
// than behind a package-level variable, so concurrent Integrate calls over
// independent spectra never share state.
type axisKey struct {
	axis  int
	n     int
	N     float64
	gamma float64
	h     float64
	dt    float64
}

// axisOp is one axis's assembled Crank-Nicolson system, in whichever form
// matches its regime: the neutral fast path reuses a tridiag.Factorization,
// the selected path factors a dense matrix via gonum (selection's jackknife
// coupling breaks the tridiagonal sparsity pattern).
type axisOp struct {
	neutral bool

	tridiagRHS *tridiag.System
	tridiagLHS *tridiag.Factorization

	denseRHS *mat.Dense
	denseLU  *mat.LU
}

// Integrator owns the operator cache for one Integrate call. It carries no
// package-level state, so concurrent calls never share a cache.
type Integrator struct {
	cache map[axisKey]*axisOp
}

func newIntegrator() *Integrator {
	return &Integrator{cache: make(map[axisKey]*axisOp)}
}

// axisOperator returns the (possibly cached) Crank-Nicolson system for one
// axis: dt is the full step (the system is built with dt/2), Npop the
// axis's current effective size.
func (ig *Integrator) axisOperator(axis, n int, Npop, gamma, h, dt float64) (*axisOp, error) {
	key := axisKey{axis: axis, n: n, N: Npop, gamma: gamma, h: h, dt: dt}
	if op, ok := ig.cache[key]; ok {
		return op, nil
	}

	op, err := buildAxisOperator(n, Npop, gamma, h, dt)
	if err != nil {
		return nil, err
	}
	ig.cache[key] = op
	return op, nil
}

func buildAxisOperator(n int, Npop, gamma, h, dt float64) (*axisOp, error) {
	drift, err := onedim.Drift(n)
	if err != nil {
		return nil, fmt.Errorf("buildAxisOperator: %w", err)
	}
	driftScale := 1.0 / (4.0 * Npop)
	half := dt / 2.0

	if gamma == 0 {
		rhs := &tridiag.System{
			Sub:   make([]float64, n+1),
			Diag:  make([]float64, n+1),
			Super: make([]float64, n+1),
		}
		lhs := &tridiag.System{
			Sub:   make([]float64, n+1),
			Diag:  make([]float64, n+1),
			Super: make([]float64, n+1),
		}
		for i := 0; i <= n; i++ {
			d := driftScale * drift.Diag[i]
			lhs.Diag[i] = 1 - half*d
			rhs.Diag[i] = 1 + half*d
			if i > 0 {
				s := driftScale * drift.Sub[i]
				lhs.Sub[i] = -half * s
				rhs.Sub[i] = half * s
			}
			if i < n {
				s := driftScale * drift.Super[i]
				lhs.Super[i] = -half * s
				rhs.Super[i] = half * s
			}
		}
		factor, err := lhs.Factor()
		if err != nil {
			return nil, fmt.Errorf("buildAxisOperator: %w", err)
		}
		return &axisOp{neutral: true, tridiagRHS: rhs, tridiagLHS: factor}, nil
	}

	s1, err := onedim.Selection1(n, gamma, h)
	if err != nil {
		return nil, fmt.Errorf("buildAxisOperator: %w", err)
	}
	s2, err := onedim.Selection2(n, gamma, h)
	if err != nil {
		return nil, fmt.Errorf("buildAxisOperator: %w", err)
	}

	full := sparse.FromTridiag(sparse.Tridiag{Sub: drift.Sub, Diag: drift.Diag, Super: drift.Super}).Scale(driftScale)
	full.AddInto(s1)
	full.AddInto(s2)
	dense := full.ToDense()

	size := n + 1
	lhs := mat.NewDense(size, size, nil)
	rhs := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			a := dense[i][j]
			v := half * a
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
	return &axisOp{neutral: false, denseRHS: rhs, denseLU: &lu}, nil
}

// step applies this axis operator's Crank-Nicolson system to line in
// place, returning the new line.
func (op *axisOp) step(line []float64) ([]float64, error) {
	if op.neutral {
		rhs := op.tridiagRHS.Apply(line)
		return op.tridiagLHS.Solve(rhs)
	}
	n := len(line)
	b := mat.NewVecDense(n, nil)
	b.MulVec(op.denseRHS, mat.NewVecDense(n, line))

	var x mat.VecDense
	if err := op.denseLU.SolveVecTo(&x, false, b); err != nil {
		return nil, fmt.Errorf("axisOp.step: %w", err)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
