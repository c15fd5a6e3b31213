package twolocus

import (
	"fmt"
	"math"

	"github.com/grahamgower/moments/demography"
	"github.com/grahamgower/moments/internal/mlog"
	"github.com/grahamgower/moments/internal/sparse"
	"gonum.org/v1/gonum/mat"
)

// ErrBadConfig indicates an Integrate configuration that failed
// validation before any stepping was attempted.
var ErrBadConfig = fmt.Errorf("twolocus: invalid configuration")

// Config collects the parameters of a two-locus integration run: the
// background population-size schedule (drift scale 1/(4N)), the
// recombination rate rho, additive selection coefficients on the three
// non-baseline haplotypes, and one of two mutation models (infinite
// sites via Theta, or reversible via U/V).
type Config struct {
	N      demography.SizeSchedule
	TFinal float64
	DtFac  float64

	Rho          float64
	SAB, SA, SB  float64
	Theta        float64
	U, V         float64
	FiniteGenome bool

	Verbose bool
}

// cacheKey identifies a built generator+factorization by the parameters
// that determine it, so unchanged steps reuse the same matrix the way
// integrate.Integrator caches per-axis operators.
type cacheKey struct {
	n           int
	Npop        float64
	rho         float64
	sAB, sA, sB float64
	u, v        float64
	dt          float64
}

type cachedOp struct {
	rhs *mat.Dense
	lu  *mat.LU
}

// Integrator owns the generator cache across repeated Integrate calls
// with the same TLSpectrum, avoiding rebuilding the dense system every
// step when N, rho, or dt haven't changed since the previous one.
type Integrator struct {
	cache map[cacheKey]*cachedOp
}

// NewIntegrator returns an Integrator with an empty cache.
func NewIntegrator() *Integrator {
	return &Integrator{cache: make(map[cacheKey]*cachedOp)}
}

// Integrate advances tl forward to cfg.TFinal in place, building one
// combined drift+recombination+selection generator per distinct
// (N, dt) pair and solving a single dense Crank-Nicolson system per step
// via gonum/mat — the price of the simplex's irregular adjacency, which
// has no tridiagonal structure to exploit.
func Integrate(tl *TLSpectrum, cfg Config) error {
	ig := NewIntegrator()
	return ig.Integrate(tl, cfg)
}

// Integrate is the Integrator-bound form of the package-level Integrate,
// letting callers reuse one cache across a sequence of epochs.
func (ig *Integrator) Integrate(tl *TLSpectrum, cfg Config) error {
	if cfg.N == nil {
		return fmt.Errorf("Integrate: nil size schedule: %w", ErrBadConfig)
	}
	if cfg.TFinal < 0 || cfg.DtFac <= 0 {
		return fmt.Errorf("Integrate: TFinal=%v DtFac=%v: %w", cfg.TFinal, cfg.DtFac, ErrBadConfig)
	}
	idx, err := tl.Index()
	if err != nil {
		return fmt.Errorf("Integrate: %w", err)
	}

	var source []float64
	if cfg.Theta > 0 {
		// Drift is scaled by 1/(4N) below, so the source takes the
		// matching 1/4 (each locus's marginal equilibrium is N*theta/k).
		source, err = MutationInfiniteSites(tl.N, cfg.Theta/4)
		if err != nil {
			return fmt.Errorf("Integrate: %w", err)
		}
	}
	var mutGen *sparse.COO
	if cfg.U > 0 || cfg.V > 0 {
		mutGen, err = MutationReversible(tl.N, cfg.U, cfg.V)
		if err != nil {
			return fmt.Errorf("Integrate: %w", err)
		}
	}

	t := 0.0
	for t < cfg.TFinal {
		Ncur := cfg.N.Evaluate(t)
		Npop := Ncur[0]

		dt := cfg.DtFac * cfg.TFinal
		if dt > cfg.TFinal-t {
			dt = cfg.TFinal - t
		}

		op, err := ig.operator(idx, tl.N, Npop, cfg, dt, mutGen)
		if err != nil {
			return fmt.Errorf("Integrate: %w", err)
		}

		size := idx.Size()
		rhsVec := mat.NewVecDense(size, nil)
		rhsVec.MulVec(op.rhs, mat.NewVecDense(size, tl.Data))
		rhs := make([]float64, size)
		for i := range rhs {
			rhs[i] = rhsVec.AtVec(i)
			if source != nil {
				rhs[i] += dt * source[i]
			}
		}

		var sol mat.VecDense
		if err := op.lu.SolveVecTo(&sol, false, mat.NewVecDense(size, rhs)); err != nil {
			return fmt.Errorf("Integrate: linear solve: %w", err)
		}
		for i := range tl.Data {
			v := sol.AtVec(i)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("Integrate: t=%v: %w", t, ErrNonFinite)
			}
			tl.Data[i] = v
		}

		t += dt
		mlog.Progress(t, dt, "twolocus step")
	}
	return nil
}

func (ig *Integrator) operator(idx *SimplexIndex, n int, Npop float64, cfg Config, dt float64, mutGen *sparse.COO) (*cachedOp, error) {
	key := cacheKey{n: n, Npop: Npop, rho: cfg.Rho, sAB: cfg.SAB, sA: cfg.SA, sB: cfg.SB, u: cfg.U, v: cfg.V, dt: dt}
	if op, ok := ig.cache[key]; ok {
		return op, nil
	}

	drift, err := Drift(n)
	if err != nil {
		return nil, err
	}
	recomb, err := Recombination(n, cfg.Rho)
	if err != nil {
		return nil, err
	}
	sel, err := Selection(n, cfg.SAB, cfg.SA, cfg.SB)
	if err != nil {
		return nil, err
	}

	size := idx.Size()
	gen := drift.Scale(1.0 / (4.0 * Npop))
	gen.AddInto(recomb)
	gen.AddInto(sel)
	if mutGen != nil {
		gen.AddInto(mutGen)
	}

	dense := gen.ToDense()
	lhs := mat.NewDense(size, size, nil)
	rhs := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			a := dense[i][j] * dt / 2
			if i == j {
				lhs.Set(i, j, 1-a)
				rhs.Set(i, j, 1+a)
			} else {
				lhs.Set(i, j, -a)
				rhs.Set(i, j, a)
			}
		}
	}

	var lu mat.LU
	lu.Factorize(lhs)

	op := &cachedOp{rhs: rhs, lu: &lu}
	ig.cache[key] = op
	return op, nil
}
