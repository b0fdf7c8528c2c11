package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/bct"
)

var bctCmd = &cobra.Command{
	Use:   "bct",
	Short: "Sample a binary contingency table with given row/column sums",
	Args:  cobra.NoArgs,
	RunE:  runBCT,
}

func init() {
	bctCmd.Flags().String("r", "", "comma-separated row sums")
	bctCmd.Flags().String("c", "", "comma-separated column sums")
}

func runBCT(cmd *cobra.Command, args []string) error {
	rStr, _ := cmd.Flags().GetString("r")
	cStr, _ := cmd.Flags().GetString("c")
	if rStr == "" || cStr == "" {
		return fmt.Errorf("--r and --c are required")
	}
	r, err := parseInts(rStr)
	if err != nil {
		return err
	}
	c, err := parseInts(cStr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	opts := bct.Options{
		RNG:               newRNG(),
		MaxRetries:        cfg.Sampling.MaxRetries,
		MaxColumnRepeats:  cfg.Sampling.MaxColumnRepeats,
		InnerRejectionCap: cfg.Sampling.InnerRejectionCap,
		Diag:              logger,
	}
	table, err := bct.Sample(r, c, opts)
	if err != nil {
		return fmt.Errorf("sample failed: %w", err)
	}
	printTable(table)
	return nil
}
