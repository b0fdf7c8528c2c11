package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/config"
	"github.com/StephenDeSalvo/desalvo-standard-library-sub003/observe"
)

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

func newLogger(cfg *config.Config) *observe.Logger {
	level := observe.Level(cfg.Framework.LogLevel)
	if verbose {
		level = observe.LevelDebug
	}
	return observe.NewLogger(observe.LoggerConfig{
		Level:  level,
		Format: observe.Format(cfg.Framework.LogFormat),
	})
}

func newRNG() *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

// parseInts splits a comma-separated list of integers, skipping blank
// fields so "--r 1,2,3" and "--r 1, 2, 3" both work.
func parseInts(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// printTable renders t per the --format flag: a space-separated grid, or a
// JSON array of rows.
func printTable(t [][]int) {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(t); err != nil {
			fmt.Fprintf(os.Stderr, "pdcsample: encode output: %v\n", err)
		}
		return
	}
	for _, row := range t {
		for j, v := range row {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Print(v)
		}
		fmt.Println()
	}
}
