package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/bct"
)

var feasibleCmd = &cobra.Command{
	Use:   "feasible",
	Short: "Check whether any binary table exists with the given row/column sums",
	Args:  cobra.NoArgs,
	RunE:  runFeasible,
}

func init() {
	feasibleCmd.Flags().String("r", "", "comma-separated row sums")
	feasibleCmd.Flags().String("c", "", "comma-separated column sums")
}

func runFeasible(cmd *cobra.Command, args []string) error {
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
	fmt.Println(bct.Feasible(r, c))
	return nil
}
