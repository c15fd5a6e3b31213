package main

import (
	"fmt"

	"github.com/grahamgower/moments/demography"
	"github.com/grahamgower/moments/integrate"
	"github.com/spf13/cobra"
)

func newIntegrateCmd() *cobra.Command {
	var (
		in, out      string
		nu           string
		tFinal       float64
		dtFac        float64
		gamma        string
		h            string
		theta        float64
		frozen       string
		finiteGenome bool
		thetaFd      string
		thetaBd      string
	)

	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Advance a Spectrum forward under the diffusion approximation",
		RunE: func(cmd *cobra.Command, args []string) error {
			phi, err := readSpectrumFile(in)
			if err != nil {
				return fmt.Errorf("integrate: %w", err)
			}

			nuVals, err := parseFloats(nu)
			if err != nil {
				return fmt.Errorf("integrate: --nu: %w", err)
			}
			if nuVals == nil {
				nuVals = make([]float64, phi.NumPops())
				for i := range nuVals {
					nuVals[i] = 1.0
				}
			}
			gammaVals, err := parseFloats(gamma)
			if err != nil {
				return fmt.Errorf("integrate: --gamma: %w", err)
			}
			hVals, err := parseFloats(h)
			if err != nil {
				return fmt.Errorf("integrate: --h: %w", err)
			}
			thetaFdVals, err := parseFloats(thetaFd)
			if err != nil {
				return fmt.Errorf("integrate: --theta-fd: %w", err)
			}
			thetaBdVals, err := parseFloats(thetaBd)
			if err != nil {
				return fmt.Errorf("integrate: --theta-bd: %w", err)
			}
			frozenInts, err := parseInts(frozen)
			if err != nil {
				return fmt.Errorf("integrate: --frozen: %w", err)
			}
			var frozenVals []bool
			if frozenInts != nil {
				frozenVals = make([]bool, len(frozenInts))
				for i, v := range frozenInts {
					frozenVals[i] = v != 0
				}
			}

			cfg := integrate.Config{
				N:            demography.Constant(nuVals),
				TFinal:       tFinal,
				DtFac:        dtFac,
				Gamma:        gammaVals,
				H:            hVals,
				Theta:        theta,
				Frozen:       frozenVals,
				FiniteGenome: finiteGenome,
				ThetaFd:      thetaFdVals,
				ThetaBd:      thetaBdVals,
				Verbose:      verbose,
			}
			if err := integrate.Integrate(phi, cfg); err != nil {
				return fmt.Errorf("integrate: %w", err)
			}
			return writeSpectrumFile(out, phi)
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "input Spectrum file (- for stdin)")
	cmd.Flags().StringVar(&out, "out", "-", "output Spectrum file (- for stdout)")
	cmd.Flags().StringVar(&nu, "nu", "", "comma-separated constant relative population sizes, one per axis")
	cmd.Flags().Float64Var(&tFinal, "tfinal", 0, "integration time in units of 2N generations")
	cmd.Flags().Float64Var(&dtFac, "dtfac", 0.01, "adaptive step-size factor")
	cmd.Flags().StringVar(&gamma, "gamma", "", "comma-separated per-population selection coefficients")
	cmd.Flags().StringVar(&h, "h", "", "comma-separated per-population dominance coefficients")
	cmd.Flags().Float64Var(&theta, "theta", 1.0, "population-scaled mutation rate, applied to every axis")
	cmd.Flags().StringVar(&frozen, "frozen", "", "comma-separated 0/1 flags marking axes exempt from drift and selection")
	cmd.Flags().BoolVar(&finiteGenome, "finite-genome", false, "use the reversible finite-genome mutation model")
	cmd.Flags().StringVar(&thetaFd, "theta-fd", "", "comma-separated forward mutation rates (finite-genome model)")
	cmd.Flags().StringVar(&thetaBd, "theta-bd", "", "comma-separated backward mutation rates (finite-genome model)")
	return cmd
}
