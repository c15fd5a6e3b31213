package main

import (
	"github.com/grahamgower/moments/internal/mlog"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "momentsctl",
		Short:         "Drive the moments diffusion-approximation engine from the shell",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			mlog.SetVerbose(verbose)
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log integrator progress to stderr")

	cmd.AddCommand(
		newIntegrateCmd(),
		newProjectCmd(),
		newFoldCmd(),
		newSplitCmd(),
		newMergeCmd(),
		newReorderCmd(),
		newTwolocusCmd(),
		newLDStatsCmd(),
	)
	return cmd
}
