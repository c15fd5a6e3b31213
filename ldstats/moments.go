package ldstats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// blockDim is the number of tracked moments per population: D2, Dz, pi2,
// and H, in that order, matching statNames plus the trailing
// heterozygosity entry used throughout this package's Names convention.
const blockDim = 4

// generator assembles the combined drift/recombination/mutation/migration
// matrix A for the linear system dy/dt = A*y over the flattened state
// (D2_0, Dz_0, pi2_0, H_0, D2_1, Dz_1, pi2_1, H_1, ...).
//
// Per-population local dynamics follow the classical Hill-Robertson/Ohta-
// Kimura two-locus moment closure: D2 and Dz decay under drift and
// recombination (rho, already population-scaled as 4*N*r) and feed each
// other and pi2; pi2 and H decay under drift and are replenished by
// mutation (theta, population-scaled as 4*N*u). Every local term is
// scaled by the same 1/(4*N_p) drift-timescale factor, so a population's
// equilibrium moments depend only on rho and theta, never on N_p itself;
// N_p only sets how fast equilibrium is approached. This uniform scaling
// is a deliberate departure from twolocus's convention (where
// recombination and mutation terms are added unscaled alongside a scaled
// drift block): here rho and theta are taken to already be the compound
// population-scaled parameters of diffusion theory, and keeping every
// term under the same drift timescale is what makes the equilibrium
// ratio sigma_D2 = D2/pi2 a function of rho alone, independent of N, the
// way the textbook Ohta-Kimura result is.
//
// Migration couples population i to population j with the same 4*N_i*m
// scaling twodim.Migration uses for the discrete spectrum: the rate is
// additive, entering outside the 1/(4*N_p) bracket since it already
// carries its own N factor, and it pulls every tracked moment of i toward
// j's value, the standard diffusion-migration homogenization term.
func generator(npops int, N []float64, rho, theta float64, m *mat.Dense) (*mat.Dense, error) {
	if npops < 1 {
		return nil, fmt.Errorf("generator: npops=%d: %w", npops, ErrNoPopulations)
	}
	if len(N) != npops {
		return nil, fmt.Errorf("generator: len(N)=%d want %d: %w", len(N), npops, ErrBadConfig)
	}
	for p, n := range N {
		if n <= 0 {
			return nil, fmt.Errorf("generator: N[%d]=%v: %w", p, n, ErrBadConfig)
		}
	}
	if m != nil {
		mr, mc := m.Dims()
		if mr != npops || mc != npops {
			return nil, fmt.Errorf("generator: m is %dx%d, want %dx%d: %w", mr, mc, npops, npops, ErrBadConfig)
		}
	}

	size := npops * blockDim
	a := mat.NewDense(size, size, nil)

	// idxD2, idxDz, idxPi2, idxH give the flat row/column for population
	// p's four tracked moments.
	idx := func(p, k int) int { return blockDim*p + k }
	c := theta / (2 * (1 + theta)) // forcing coefficient giving pi2_eq = (H_eq/2)^2

	for p := 0; p < npops; p++ {
		s := 1.0 / (4.0 * N[p])
		iD2, iDz, iPi2, iH := idx(p, 0), idx(p, 1), idx(p, 2), idx(p, 3)

		// dD2/dt = s*[-(rho+3)*D2 + 0.5*Dz]
		a.Set(iD2, iD2, a.At(iD2, iD2)-s*(rho+3))
		a.Set(iD2, iDz, a.At(iD2, iDz)+s*0.5)

		// dDz/dt = s*[4*D2 - (rho/2+4)*Dz + 2*pi2]
		a.Set(iDz, iD2, a.At(iDz, iD2)+s*4)
		a.Set(iDz, iDz, a.At(iDz, iDz)-s*(rho/2+4))
		a.Set(iDz, iPi2, a.At(iDz, iPi2)+s*2)

		// dpi2/dt = s*[c*H - 2*pi2]
		a.Set(iPi2, iH, a.At(iPi2, iH)+s*c)
		a.Set(iPi2, iPi2, a.At(iPi2, iPi2)-s*2)

		// dH/dt = s*[theta - (1+theta)*H]
		a.Set(iH, iH, a.At(iH, iH)-s*(1+theta))
		// theta*s contributes a constant forcing term, not a linear one
		// in y; it is folded into the per-step solve as an additive
		// source rather than a matrix entry (see integrate.go).

		if m == nil {
			continue
		}
		for q := 0; q < npops; q++ {
			if q == p {
				continue
			}
			rate := 4 * N[p] * m.At(p, q)
			if rate == 0 {
				continue
			}
			for k := 0; k < blockDim; k++ {
				self, other := idx(p, k), idx(q, k)
				a.Set(self, other, a.At(self, other)+rate)
				a.Set(self, self, a.At(self, self)-rate)
			}
		}
	}
	return a, nil
}

// forcing returns the constant source vector driving mutation input into
// H (the theta*(1-H) term's H-independent half, theta*s); pi2's mutation
// input is linear in H and already folded into generator's matrix entry
// instead.
func forcing(npops int, N []float64, theta float64) []float64 {
	out := make([]float64, npops*blockDim)
	for p := 0; p < npops; p++ {
		s := 1.0 / (4.0 * N[p])
		out[blockDim*p+3] = s * theta // dH/dt source term
	}
	return out
}
