// SPDX-License-Identifier: MIT
// Package: trinoise/tri
//
// generator.go — the periodic noise generator.
//
// A Generator fixes the base and, optionally, a shared period table. Without
// a table every query walks its neighborhood on demand; with one, queries are
// binary searches. Both modes return identical values.

package tri

import (
	"fmt"

	"github.com/katalvlaran/trinoise/digits"
	"github.com/katalvlaran/trinoise/segment"
)

// Option customizes a Generator.
type Option func(*generatorConfig)

type generatorConfig struct {
	table *segment.Table
}

// WithTable makes the generator answer from a prebuilt table. The table is
// only read, so one table may back any number of generators.
// Panics on nil.
func WithTable(t *segment.Table) Option {
	if t == nil {
		panic("tri: WithTable(nil)")
	}
	return func(c *generatorConfig) {
		c.table = t
	}
}

// Generator produces the trinoise sequence of one base. It holds no mutable
// state and is safe for concurrent use.
type Generator struct {
	base   int
	period uint64
	table  *segment.Table
}

// New returns a Generator for base.
// Returns digits.ErrInvalidBase / digits.ErrOverflow for a bad base and
// ErrBaseMismatch if WithTable supplied a table of another base.
func New(base int, opts ...Option) (*Generator, error) {
	period, err := digits.Period(base)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	var cfg generatorConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.table != nil && cfg.table.Base() != base {
		return nil, fmt.Errorf("New: table base %d, generator base %d: %w", cfg.table.Base(), base, ErrBaseMismatch)
	}

	return &Generator{base: base, period: period, table: cfg.table}, nil
}

// Base returns N.
func (g *Generator) Base() int { return g.base }

// Period returns N^N.
func (g *Generator) Period() uint64 { return g.period }

// Tabled reports whether the generator answers from a precomputed table.
func (g *Generator) Tabled() bool { return g.table != nil }

// NeighborhoodAt returns the neighborhood of a reduced index r < N^N.
func (g *Generator) NeighborhoodAt(r uint64) (segment.Neighborhood, error) {
	if g.table != nil {
		return g.table.NeighborhoodAt(r)
	}

	return segment.NeighborhoodAt(r, g.base)
}

// reduce validates and reduces a caller index through digits.Reduce, so
// errors carry the same context as every other entry point.
func (g *Generator) reduce(index int64) (uint64, error) {
	return digits.Reduce(index, g.base)
}

// Neighborhood returns the neighborhood containing index mod N^N.
func (g *Generator) Neighborhood(index int64) (segment.Neighborhood, error) {
	r, err := g.reduce(index)
	if err != nil {
		return segment.Neighborhood{}, fmt.Errorf("Generator.Neighborhood: %w", err)
	}

	return g.NeighborhoodAt(r)
}

// Tri returns the trinoise value of index.
func (g *Generator) Tri(index int64) (int, error) {
	r, err := g.reduce(index)
	if err != nil {
		return 0, fmt.Errorf("Generator.Tri: %w", err)
	}

	return g.TriReduced(r)
}

// TriReduced returns the trinoise value of a reduced index r < N^N, as
// produced by digits.ParseIndex for naturals beyond int64.
func (g *Generator) TriReduced(r uint64) (int, error) {
	nb, err := g.NeighborhoodAt(r)
	if err != nil {
		return 0, fmt.Errorf("Generator.TriReduced: %w", err)
	}

	return Project(nb.Length), nil
}

// Category returns the category of index.
func (g *Generator) Category(index int64) (Category, error) {
	nb, err := g.Neighborhood(index)
	if err != nil {
		return Other, fmt.Errorf("Generator.Category: %w", err)
	}

	return Classify(nb.Length, g.base), nil
}

// Successors returns how many indices after index (mod N^N) still belong to
// its neighborhood. Adding Successors+1 to an index jumps to the start of
// the next neighborhood.
func (g *Generator) Successors(index int64) (uint64, error) {
	r, err := g.reduce(index)
	if err != nil {
		return 0, fmt.Errorf("Generator.Successors: %w", err)
	}
	nb, err := g.NeighborhoodAt(r)
	if err != nil {
		return 0, fmt.Errorf("Generator.Successors: %w", err)
	}

	return nb.Length - 1 - nb.Offset(r, g.period), nil
}

// Fill writes tri(start), tri(start+1), … into dst, wrapping at N^N.
// Each neighborhood is resolved once and copied for all of its remaining
// members.
func (g *Generator) Fill(dst []int, start int64) error {
	r, err := g.reduce(start)
	if err != nil {
		return fmt.Errorf("Generator.Fill: %w", err)
	}
	for i := 0; i < len(dst); {
		nb, err := g.NeighborhoodAt(r)
		if err != nil {
			return fmt.Errorf("Generator.Fill: %w", err)
		}
		v := Project(nb.Length)
		left := nb.Length - nb.Offset(r, g.period)
		k := min(left, uint64(len(dst)-i))
		for j := uint64(0); j < k; j++ {
			dst[i] = v
			i++
		}
		r = (r + k) % g.period
	}

	return nil
}
