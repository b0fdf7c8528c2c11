package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/bct"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/latinsquare"
)

var latinCmd = &cobra.Command{
	Use:   "latin N",
	Short: "Sample a uniformly random Latin square of order N",
	Args:  cobra.ExactArgs(1),
	RunE:  runLatin,
}

func init() {
	latinCmd.Flags().Bool("reduced", false, "return the reduced-form square")
	latinCmd.Flags().Bool("one-indexed", false, "use values 1..n instead of 0..n-1")
}

func runLatin(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid order %q: %w", args[0], err)
	}
	reduced, _ := cmd.Flags().GetBool("reduced")
	oneIndexed, _ := cmd.Flags().GetBool("one-indexed")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	opts := latinsquare.Options{
		RNG:        newRNG(),
		MaxRetries: cfg.Sampling.MaxRetries,
		Reduced:    reduced,
		OneIndexed: oneIndexed,
		Diag:       logger,
		BCTOptions: bct.Options{
			MaxColumnRepeats:  cfg.Sampling.MaxColumnRepeats,
			InnerRejectionCap: cfg.Sampling.InnerRejectionCap,
		},
	}
	sq, err := latinsquare.Sample(n, opts)
	if err != nil {
		return fmt.Errorf("sample failed: %w", err)
	}
	printTable(sq)
	return nil
}
