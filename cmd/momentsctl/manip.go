package main

import (
	"fmt"

	"github.com/grahamgower/moments/manip"
	"github.com/spf13/cobra"
)

func newProjectCmd() *cobra.Command {
	var in, out, shape string
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Downsample a Spectrum to a smaller sample size per axis",
		RunE: func(cmd *cobra.Command, args []string) error {
			phi, err := readSpectrumFile(in)
			if err != nil {
				return fmt.Errorf("project: %w", err)
			}
			newShape, err := parseInts(shape)
			if err != nil {
				return fmt.Errorf("project: --shape: %w", err)
			}
			projected, err := manip.Project(phi, newShape)
			if err != nil {
				return fmt.Errorf("project: %w", err)
			}
			return writeSpectrumFile(out, projected)
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "input Spectrum file (- for stdin)")
	cmd.Flags().StringVar(&out, "out", "-", "output Spectrum file (- for stdout)")
	cmd.Flags().StringVar(&shape, "shape", "", "comma-separated target (n_i+1) per axis, required")
	cmd.MarkFlagRequired("shape")
	return cmd
}

func newFoldCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "fold",
		Short: "Collapse a Spectrum onto the minor-allele frequency folding",
		RunE: func(cmd *cobra.Command, args []string) error {
			phi, err := readSpectrumFile(in)
			if err != nil {
				return fmt.Errorf("fold: %w", err)
			}
			return writeSpectrumFile(out, phi.Fold())
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "input Spectrum file (- for stdin)")
	cmd.Flags().StringVar(&out, "out", "-", "output Spectrum file (- for stdout)")
	return cmd
}

func newSplitCmd() *cobra.Command {
	var in, out string
	var axis, n1, n2 int
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split one population axis into two descendant axes",
		RunE: func(cmd *cobra.Command, args []string) error {
			phi, err := readSpectrumFile(in)
			if err != nil {
				return fmt.Errorf("split: %w", err)
			}
			split, err := manip.Split(phi, axis, n1, n2)
			if err != nil {
				return fmt.Errorf("split: %w", err)
			}
			return writeSpectrumFile(out, split)
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "input Spectrum file (- for stdin)")
	cmd.Flags().StringVar(&out, "out", "-", "output Spectrum file (- for stdout)")
	cmd.Flags().IntVar(&axis, "axis", 0, "axis index of the ancestral population to split")
	cmd.Flags().IntVar(&n1, "n1", 0, "sample size of the first descendant population")
	cmd.Flags().IntVar(&n2, "n2", 0, "sample size of the second descendant population")
	return cmd
}

func newMergeCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge a two-population Spectrum's axes into a single population",
		RunE: func(cmd *cobra.Command, args []string) error {
			phi, err := readSpectrumFile(in)
			if err != nil {
				return fmt.Errorf("merge: %w", err)
			}
			merged, err := manip.Merge(phi)
			if err != nil {
				return fmt.Errorf("merge: %w", err)
			}
			return writeSpectrumFile(out, merged)
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "input Spectrum file (- for stdin)")
	cmd.Flags().StringVar(&out, "out", "-", "output Spectrum file (- for stdout)")
	return cmd
}

func newReorderCmd() *cobra.Command {
	var in, out, perm string
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Permute a Spectrum's population axes",
		RunE: func(cmd *cobra.Command, args []string) error {
			phi, err := readSpectrumFile(in)
			if err != nil {
				return fmt.Errorf("reorder: %w", err)
			}
			permVals, err := parseInts(perm)
			if err != nil {
				return fmt.Errorf("reorder: --perm: %w", err)
			}
			reordered, err := manip.Reorder(phi, permVals)
			if err != nil {
				return fmt.Errorf("reorder: %w", err)
			}
			return writeSpectrumFile(out, reordered)
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "input Spectrum file (- for stdin)")
	cmd.Flags().StringVar(&out, "out", "-", "output Spectrum file (- for stdout)")
	cmd.Flags().StringVar(&perm, "perm", "", "comma-separated destination axis order, required")
	cmd.MarkFlagRequired("perm")
	return cmd
}
