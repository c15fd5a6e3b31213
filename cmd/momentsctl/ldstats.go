package main

import (
	"fmt"

	"github.com/grahamgower/moments/ldstats"
	"github.com/spf13/cobra"
)

func newLDStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ldstats",
		Short: "Compute single-population linkage-disequilibrium moments",
	}
	cmd.AddCommand(newLDStatsIntegrateCmd())
	return cmd
}

func newLDStatsIntegrateCmd() *cobra.Command {
	var (
		out       string
		nu        float64
		tFinal    float64
		dt        float64
		rho       float64
		theta     float64
	)
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate D2/Dz/pi2/H moments for a single population and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := ldstats.New(1)
			if err != nil {
				return fmt.Errorf("ldstats integrate: %w", err)
			}
			if err := ldstats.Integrate(y, []float64{nu}, tFinal, dt, rho, theta, nil); err != nil {
				return fmt.Errorf("ldstats integrate: %w", err)
			}

			w, err := createOut(out)
			if err != nil {
				return fmt.Errorf("ldstats integrate: %w", err)
			}
			defer w.Close()
			for _, name := range y.Names {
				v, err := y.Get(name)
				if err != nil {
					return fmt.Errorf("ldstats integrate: %w", err)
				}
				if _, err := fmt.Fprintf(w, "%s\t%g\n", name, v); err != nil {
					return fmt.Errorf("ldstats integrate: %w", err)
				}
			}
			dprime, err := y.Dprime(0)
			if err != nil {
				return fmt.Errorf("ldstats integrate: %w", err)
			}
			_, err = fmt.Fprintf(w, "Dprime_0\t%g\n", dprime)
			return err
		},
	}
	cmd.Flags().StringVar(&out, "out", "-", "output stats file (- for stdout)")
	cmd.Flags().Float64Var(&nu, "nu", 1.0, "relative population size")
	cmd.Flags().Float64Var(&tFinal, "tfinal", 0.05, "integration time in units of 2N generations")
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "step size in units of 2N generations")
	cmd.Flags().Float64Var(&rho, "rho", 0, "population-scaled recombination rate")
	cmd.Flags().Float64Var(&theta, "theta", 0.001, "population-scaled mutation rate")
	return cmd
}
