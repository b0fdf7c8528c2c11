// Command pdcsample is a CLI front-end over the bct and latinsquare
// packages: draw binary contingency tables (with or without forbidden
// cells), draw Latin squares, and check Gale–Ryser feasibility.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	seed    int64
	format  string
)

var rootCmd = &cobra.Command{
	Use:   "pdcsample",
	Short: "Uniform samplers for binary contingency tables and Latin squares",
	Long: `pdcsample draws uniformly random binary contingency tables with
prescribed row and column sums, optionally with forbidden cells, and
uniformly random Latin squares, via exact Probabilistic Divide-and-Conquer
sampling.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: none)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic output")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "RNG seed (0 picks a time-based seed)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "grid", "output format: grid or json")

	rootCmd.AddCommand(bctCmd)
	rootCmd.AddCommand(zerosCmd)
	rootCmd.AddCommand(latinCmd)
	rootCmd.AddCommand(feasibleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
