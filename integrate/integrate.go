package integrate

import (
	"fmt"
	"math"

	"github.com/grahamgower/moments/internal/mlog"
	"github.com/grahamgower/moments/onedim"
	"github.com/grahamgower/moments/spectrum"
	"github.com/grahamgower/moments/twodim"
)

const maxDtHalvings = 10

// Integrate advances phi in place from t=0 to cfg.TFinal under an
// operator-split scheme: mutation injection, a migration half-step, a
// per-axis Crank-Nicolson drift+selection solve, and a closing migration
// half-step, with adaptive dt and an operator cache scoped to this call.
func Integrate(phi *spectrum.Spectrum, cfg Config) error {
	p := phi.NumPops()
	shape := phi.Shape()

	gamma, err := resolvePerPop(cfg.Gamma, p, "Gamma")
	if err != nil {
		return err
	}
	h, err := resolvePerPop(cfg.H, p, "H")
	if err != nil {
		return err
	}
	theta, err := resolveTheta(cfg.Theta, p)
	if err != nil {
		return err
	}
	frozen, err := resolveFrozen(cfg.Frozen, p)
	if err != nil {
		return err
	}
	var thetaFd, thetaBd []float64
	if cfg.FiniteGenome {
		thetaFd, err = resolvePerPop(cfg.ThetaFd, p, "ThetaFd")
		if err != nil {
			return err
		}
		thetaBd, err = resolvePerPop(cfg.ThetaBd, p, "ThetaBd")
		if err != nil {
			return err
		}
	}

	ig := newIntegrator()
	st := strides(shape)
	data := phi.Data()

	t := 0.0
	for t < cfg.TFinal {
		Ncur := cfg.N.Evaluate(t)
		dt := math.Min(cfg.DtFac*cfg.TFinal, dtSafe(Ncur, gamma, h))
		if t+dt > cfg.TFinal {
			dt = cfg.TFinal - t
		}

		dt = adjustForSizeChange(cfg, t, dt, Ncur)
		Nmid := cfg.N.Evaluate(t + dt/2)

		if err := stepOnce(ig, shape, st, data, cfg, gamma, h, theta, frozen, thetaFd, thetaBd, Nmid, dt, t); err != nil {
			return err
		}

		if isNonFinite(data) {
			return fmt.Errorf("Integrate: t=%g: %w", t+dt, ErrNonFinite)
		}

		t += dt
		mlog.Progress(t, dt, "step complete")
	}
	return nil
}

// adjustForSizeChange halves dt up to maxDtHalvings times when the
// midpoint population size differs from the starting size by more than
// 50% relative. On exhaustion it warns and proceeds at whatever dt
// remains.
func adjustForSizeChange(cfg Config, t, dt float64, Nstart []float64) float64 {
	for i := 0; i < maxDtHalvings; i++ {
		Nmid := cfg.N.Evaluate(t + dt/2)
		if !sizeChangedTooMuch(Nstart, Nmid) {
			return dt
		}
		dt /= 2
	}
	mlog.Warn(t, "dt", dt, "adaptive dt halving exhausted; proceeding at current dt")
	return dt
}

func sizeChangedTooMuch(a, b []float64) bool {
	for k := range a {
		if a[k] == 0 {
			continue
		}
		rel := math.Abs(b[k]-a[k]) / a[k]
		if rel > 0.5 {
			return true
		}
	}
	return false
}

// dtSafe bounds the step size by the fastest timescale present: drift
// (inversely proportional to the smallest population size) and selection
// (proportional to the largest |gamma*h|). This is a heuristic, not a
// literal stability bound; it keeps adaptive-dt exercising the halving
// path for strongly selected or small populations without needing a full
// spectral-radius computation per step.
func dtSafe(N, gamma, h []float64) float64 {
	minN := math.Inf(1)
	for _, n := range N {
		if n < minN {
			minN = n
		}
	}
	maxSel := 0.0
	for k := range gamma {
		s := math.Abs(gamma[k] * h[k])
		if s > maxSel {
			maxSel = s
		}
	}
	return 0.5 / (1.0/(2*minN) + maxSel + 1e-12)
}

func isNonFinite(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

func stepOnce(
	ig *Integrator,
	shape, st []int,
	data []float64,
	cfg Config,
	gamma, h, theta []float64,
	frozen []bool,
	thetaFd, thetaBd []float64,
	Ncur []float64,
	dt, t float64,
) error {
	p := len(shape)

	// Stage 1: mutation injection.
	for axis := 0; axis < p; axis++ {
		n := shape[axis] - 1
		axisStride := st[axis]
		if cfg.FiniteGenome {
			gen, err := onedim.MutationReversible(n, thetaFd[axis], thetaBd[axis])
			if err != nil {
				return fmt.Errorf("stepOnce: %w", err)
			}
			forEachLine(shape, st, axis, func(base int) {
				line := gatherLine(data, base, axisStride, n+1)
				rate := gen.Apply(line)
				for i := range line {
					line[i] += dt * rate[i]
				}
				scatterLine(data, base, axisStride, line)
			})
		} else {
			// Drift enters the axis operators scaled by 1/(4N), so the
			// source takes the matching 1/4: at constant N the
			// equilibrium is phi_k = N*theta/k.
			b, err := onedim.MutationInfiniteSites(n, theta[axis]/4)
			if err != nil {
				return fmt.Errorf("stepOnce: %w", err)
			}
			forEachLine(shape, st, axis, func(base int) {
				for i, bv := range b {
					if bv != 0 {
						data[base+i*axisStride] += dt * bv
					}
				}
			})
		}
	}

	// Stage 2 & 4: migration half-steps, if a rate matrix was supplied.
	applyMigrationHalfStep := func() error {
		if cfg.M == nil || p < 2 {
			return nil
		}
		mig, err := twodim.Migration(shape, cfg.M, Ncur)
		if err != nil {
			return fmt.Errorf("stepOnce: %w", err)
		}
		rate := mig.Apply(data)
		for i := range data {
			data[i] += (dt / 2) * rate[i]
		}
		return nil
	}
	if err := applyMigrationHalfStep(); err != nil {
		return err
	}

	// Stage 3: per-axis Crank-Nicolson drift+selection.
	for axis := 0; axis < p; axis++ {
		if frozen[axis] {
			continue
		}
		n := shape[axis] - 1
		axisStride := st[axis]
		op, err := ig.axisOperator(axis, n, Ncur[axis], gamma[axis], h[axis], dt)
		if err != nil {
			return fmt.Errorf("stepOnce: %w", err)
		}
		var stepErr error
		forEachLine(shape, st, axis, func(base int) {
			if stepErr != nil {
				return
			}
			line := gatherLine(data, base, axisStride, n+1)
			out, err := op.step(line)
			if err != nil {
				stepErr = err
				return
			}
			scatterLine(data, base, axisStride, out)
		})
		if stepErr != nil {
			return fmt.Errorf("stepOnce: %w", stepErr)
		}
	}

	if err := applyMigrationHalfStep(); err != nil {
		return err
	}
	return nil
}
