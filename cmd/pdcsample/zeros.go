package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/bct"
)

var zerosCmd = &cobra.Command{
	Use:   "zeros",
	Short: "Sample a binary contingency table with forbidden cells forced to zero",
	Args:  cobra.NoArgs,
	RunE:  runZeros,
}

func init() {
	zerosCmd.Flags().String("r", "", "comma-separated row sums")
	zerosCmd.Flags().String("c", "", "comma-separated column sums")
	zerosCmd.Flags().String("forbidden", "", "semicolon-separated i,j cell coordinates forced to zero")
}

func runZeros(cmd *cobra.Command, args []string) error {
	rStr, _ := cmd.Flags().GetString("r")
	cStr, _ := cmd.Flags().GetString("c")
	forbiddenStr, _ := cmd.Flags().GetString("forbidden")
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

	forced := bct.NewMask(len(r), len(c))
	if forbiddenStr != "" {
		for _, pair := range strings.Split(forbiddenStr, ";") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			coords := strings.Split(pair, ",")
			if len(coords) != 2 {
				return fmt.Errorf("invalid forbidden cell %q: want i,j", pair)
			}
			i, err := strconv.Atoi(strings.TrimSpace(coords[0]))
			if err != nil {
				return fmt.Errorf("invalid forbidden cell %q: %w", pair, err)
			}
			j, err := strconv.Atoi(strings.TrimSpace(coords[1]))
			if err != nil {
				return fmt.Errorf("invalid forbidden cell %q: %w", pair, err)
			}
			if i < 0 || i >= len(r) || j < 0 || j >= len(c) {
				return fmt.Errorf("forbidden cell %q out of range", pair)
			}
			forced[i][j] = true
		}
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
	table, err := bct.SampleWithZeros(r, c, forced, opts)
	if err != nil {
		return fmt.Errorf("sample failed: %w", err)
	}
	printTable(table)
	return nil
}
