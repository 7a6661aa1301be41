// Package combos enumerates operator settings for optimizer sweeps: every
// non-empty subset of mutation strategies paired with every non-empty subset
// of crossover strategies.
package combos

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Operators lists the strategy names to combine.
type Operators struct {
	Mutations  []string `yaml:"mutations"`
	Crossovers []string `yaml:"crossovers"`
}

// Default returns the reference operator set.
func Default() Operators {
	return Operators{
		Mutations:  []string{"BE1", "RA1", "TP1", "TB2", "TR1", "TO1"},
		Crossovers: []string{"B", "E"},
	}
}

// LoadOperators reads an operator set from a YAML file.
func LoadOperators(path string) (Operators, error) {
	var ops Operators
	data, err := os.ReadFile(path)
	if err != nil {
		return ops, err
	}
	if err := yaml.Unmarshal(data, &ops); err != nil {
		return ops, fmt.Errorf("operators %s: %w", path, err)
	}
	return ops, nil
}

// Subsets returns every non-empty subset of items, smallest first. Subsets
// of the same size keep the order of items, lexicographically by position.
func Subsets(items []string) [][]string {
	var out [][]string
	for k := 1; k <= len(items); k++ {
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			s := make([]string, k)
			for i, j := range idx {
				s[i] = items[j]
			}
			out = append(out, s)

			// advance to the next index combination
			i := k - 1
			for i >= 0 && idx[i] == len(items)-k+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
	return out
}

// Config is one mutation/crossover pairing.
type Config struct {
	Mutations  []string
	Crossovers []string
}

// String renders c as command-line arguments, e.g. "-m BE1,RA1 -c B".
func (c Config) String() string {
	return "-m " + strings.Join(c.Mutations, ",") + " -c " + strings.Join(c.Crossovers, ",")
}

// Configs pairs every mutation subset with every crossover subset, dropping
// the pairings of one mutation with one crossover.
func Configs(ops Operators) []Config {
	var out []Config
	crossovers := Subsets(ops.Crossovers)
	for _, m := range Subsets(ops.Mutations) {
		for _, c := range crossovers {
			if len(m)*len(c) > 1 {
				out = append(out, Config{Mutations: m, Crossovers: c})
			}
		}
	}
	return out
}

// Write prints one config per line.
func Write(w io.Writer, configs []Config) error {
	bw := bufio.NewWriter(w)
	for _, c := range configs {
		if _, err := fmt.Fprintln(bw, c); err != nil {
			return err
		}
	}
	return bw.Flush()
}
