package main

import (
	"fmt"

	"github.com/grahamgower/moments/demography"
	"github.com/grahamgower/moments/twolocus"
	"github.com/spf13/cobra"
)

func newTwolocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twolocus",
		Short: "Operate on two-locus haplotype-count simplex spectra (TLSpectrum)",
	}
	cmd.AddCommand(newTwolocusIntegrateCmd(), newTwolocusNewCmd())
	return cmd
}

func newTwolocusNewCmd() *cobra.Command {
	var out string
	var n int
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a zero-valued TLSpectrum for a given sample size",
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := twolocus.NewTLSpectrum(n)
			if err != nil {
				return fmt.Errorf("twolocus new: %w", err)
			}
			return writeTLSpectrumFile(out, tl)
		},
	}
	cmd.Flags().StringVar(&out, "out", "-", "output TLSpectrum file (- for stdout)")
	cmd.Flags().IntVar(&n, "n", 20, "haplotype sample size")
	return cmd
}

func newTwolocusIntegrateCmd() *cobra.Command {
	var (
		in, out      string
		nu           string
		tFinal       float64
		dtFac        float64
		rho          float64
		sAB, sA, sB  float64
		theta        float64
		u, v         float64
		finiteGenome bool
	)
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Advance a TLSpectrum forward under drift, recombination, selection, and mutation",
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := readTLSpectrumFile(in)
			if err != nil {
				return fmt.Errorf("twolocus integrate: %w", err)
			}
			nuVals, err := parseFloats(nu)
			if err != nil {
				return fmt.Errorf("twolocus integrate: --nu: %w", err)
			}
			if nuVals == nil {
				nuVals = []float64{1.0}
			}
			cfg := twolocus.Config{
				N:            demography.Constant(nuVals),
				TFinal:       tFinal,
				DtFac:        dtFac,
				Rho:          rho,
				SAB:          sAB,
				SA:           sA,
				SB:           sB,
				Theta:        theta,
				U:            u,
				V:            v,
				FiniteGenome: finiteGenome,
				Verbose:      verbose,
			}
			if err := twolocus.Integrate(tl, cfg); err != nil {
				return fmt.Errorf("twolocus integrate: %w", err)
			}
			return writeTLSpectrumFile(out, tl)
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "input TLSpectrum file (- for stdin)")
	cmd.Flags().StringVar(&out, "out", "-", "output TLSpectrum file (- for stdout)")
	cmd.Flags().StringVar(&nu, "nu", "", "single-element relative population size, default 1")
	cmd.Flags().Float64Var(&tFinal, "tfinal", 0, "integration time in units of 2N generations")
	cmd.Flags().Float64Var(&dtFac, "dtfac", 0.01, "adaptive step-size factor")
	cmd.Flags().Float64Var(&rho, "rho", 0, "population-scaled recombination rate")
	cmd.Flags().Float64Var(&sAB, "sAB", 0, "selection coefficient on the AB haplotype")
	cmd.Flags().Float64Var(&sA, "sA", 0, "selection coefficient on the Ab haplotype")
	cmd.Flags().Float64Var(&sB, "sB", 0, "selection coefficient on the aB haplotype")
	cmd.Flags().Float64Var(&theta, "theta", 0, "infinite-sites mutation rate")
	cmd.Flags().Float64Var(&u, "u", 0, "forward mutation rate (reversible/finite-genome model)")
	cmd.Flags().Float64Var(&v, "v", 0, "backward mutation rate (reversible/finite-genome model)")
	cmd.Flags().BoolVar(&finiteGenome, "finite-genome", false, "use the reversible finite-genome mutation model instead of infinite sites")
	return cmd
}
