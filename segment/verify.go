// SPDX-License-Identifier: MIT
// Package: trinoise/segment
//
// verify.go — empirical checks over a whole period.

package segment

import (
	"fmt"

	"github.com/katalvlaran/trinoise/depth"
)

// Conjecture is the outcome of checking that every neighborhood length of a
// table lies in {1, N-1, N}.
type Conjecture struct {
	Base          int    `yaml:"base" json:"base"`
	Period        uint64 `yaml:"period" json:"period"`
	Neighborhoods int    `yaml:"neighborhoods" json:"neighborhoods"`
	// Applicable is false for N = 2, where the conjecture is not claimed.
	Applicable bool `yaml:"applicable" json:"applicable"`
	Holds      bool `yaml:"holds" json:"holds"`
	// Lengths maps each observed run length to the number of runs with it.
	Lengths    map[uint64]int `yaml:"lengths" json:"lengths"`
	Violations []Neighborhood `yaml:"violations,omitempty" json:"violations,omitempty"`
}

// VerifyConjecture checks every neighborhood of t against {1, N-1, N}.
// Violating runs are listed, not corrected.
func VerifyConjecture(t *Table) Conjecture {
	n := uint64(t.base)
	c := Conjecture{
		Base:          t.base,
		Period:        t.period,
		Neighborhoods: len(t.runs),
		Applicable:    t.base > 2,
		Lengths:       make(map[uint64]int),
	}
	for _, nb := range t.runs {
		c.Lengths[nb.Length]++
		if nb.Length != 1 && nb.Length != n-1 && nb.Length != n {
			c.Violations = append(c.Violations, nb)
		}
	}
	c.Holds = len(c.Violations) == 0

	return c
}

// CheckPartition verifies that the neighborhoods of t tile [0, N^N) exactly
// once each, that consecutive runs differ in depth, and that every index
// inside a run has the run depth. Depths are recomputed from the digits of
// each index, not read back from the table, so a faulty fill is caught too.
// Complexity: O(N·N^N).
func CheckPartition(t *Table) error {
	if len(t.runs) == 0 {
		return fmt.Errorf("CheckPartition: no neighborhoods: %w", ErrPartition)
	}
	var total uint64
	for i, nb := range t.runs {
		if nb.Length == 0 {
			return fmt.Errorf("CheckPartition: empty run at %d: %w", nb.Start, ErrPartition)
		}
		total += nb.Length
		next := t.runs[(i+1)%len(t.runs)]
		if (nb.Start+nb.Length)%t.period != next.Start {
			return fmt.Errorf("CheckPartition: run at %d does not meet run at %d: %w", nb.Start, next.Start, ErrPartition)
		}
		if len(t.runs) > 1 && nb.Depth == next.Depth {
			return fmt.Errorf("CheckPartition: runs at %d and %d share depth %d: %w", nb.Start, next.Start, nb.Depth, ErrPartition)
		}
		for k := uint64(0); k < nb.Length; k++ {
			r := (nb.Start + k) % t.period
			if int(t.depths[r]) != nb.Depth {
				return fmt.Errorf("CheckPartition: index %d inside run at %d has another depth: %w", r, nb.Start, ErrPartition)
			}
			if d := depth.OfReduced(r, t.base); d != nb.Depth {
				return fmt.Errorf("CheckPartition: index %d has depth %d, table says %d: %w", r, d, nb.Depth, ErrPartition)
			}
		}
	}
	if total != t.period {
		return fmt.Errorf("CheckPartition: runs cover %d indices, period %d: %w", total, t.period, ErrPartition)
	}

	return nil
}
