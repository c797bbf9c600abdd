// SPDX-License-Identifier: MIT
// Package: trinoise/segment
//
// table.go — the precomputed period table.
//
// Build runs in two phases:
//  1. Depth fill: [0, N^N) is cut into one contiguous chunk per worker. Each
//     worker owns a depth.Walker started at its chunk and writes only its own
//     sub-slice, so no synchronization is needed beyond errgroup.Wait.
//  2. Run scan: one sequential pass over the depths finds every boundary
//     i with depth[i] != depth[i-1]; the run touching index 0 is merged with
//     the run touching N^N-1 when both share a depth.
//
// The table is never written after Build returns.

package segment

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trinoise/depth"
	"github.com/katalvlaran/trinoise/digits"
)

// Table holds the depth of every reduced index of one base together with
// the neighborhoods they form. Runs are ordered by Start; when a run wraps
// past N^N-1 it is the last one.
type Table struct {
	base   int
	period uint64
	depths []uint8
	runs   []Neighborhood
}

// Build computes the period table for base.
// Returns digits.ErrInvalidBase / digits.ErrOverflow for a bad base,
// ErrTableTooLarge if N^N exceeds the configured maximum, and ctx.Err() if
// the context is cancelled while the depths are being filled.
func Build(ctx context.Context, base int, opts ...Option) (*Table, error) {
	cfg := newBuildConfig(opts...)
	period, err := digits.Period(base)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if period > cfg.maxPeriod {
		return nil, fmt.Errorf("Build: base %d has period %d, limit %d: %w", base, period, cfg.maxPeriod, ErrTableTooLarge)
	}

	began := time.Now()
	depths := make([]uint8, period)
	if err := fillDepths(ctx, base, depths, cfg.workers); err != nil {
		return nil, fmt.Errorf("Build: base %d: %w", base, err)
	}
	filled := time.Since(began)
	runs := scanRuns(depths)

	cfg.logger.Debug("period table built",
		"base", base,
		"period", period,
		"neighborhoods", len(runs),
		"workers", cfg.workers,
		"fill", filled,
		"total", time.Since(began),
	)

	return &Table{base: base, period: period, depths: depths, runs: runs}, nil
}

// fillDepths writes depth(i) into depths[i] using up to workers goroutines.
func fillDepths(ctx context.Context, base int, depths []uint8, workers int) error {
	n := uint64(len(depths))
	w := uint64(max(workers, 1))
	if w > n {
		w = n
	}
	chunk := (n + w - 1) / w

	g, gctx := errgroup.WithContext(ctx)
	for lo := uint64(0); lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			return fillRange(gctx, base, lo, depths[lo:hi])
		})
	}

	return g.Wait()
}

// fillRange fills part with the depths of lo, lo+1, ….
func fillRange(ctx context.Context, base int, lo uint64, part []uint8) error {
	w, err := depth.NewWalker(base, lo)
	if err != nil {
		return err
	}
	for i := range part {
		if i&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		part[i] = uint8(w.Depth())
		w.Next()
	}

	return nil
}

// scanRuns splits the cyclic depth sequence into maximal equal-depth runs.
func scanRuns(depths []uint8) []Neighborhood {
	n := uint64(len(depths))

	// first interior boundary
	first := uint64(1)
	for first < n && depths[first] == depths[first-1] {
		first++
	}
	if first == n {
		return []Neighborhood{{Start: 0, Length: n, Depth: int(depths[0])}}
	}

	wrap := depths[0] == depths[n-1]
	s := uint64(0)
	if wrap {
		s = first
	}
	var runs []Neighborhood
	for i := s + 1; i <= n; i++ {
		if i == n || depths[i] != depths[s] {
			runs = append(runs, Neighborhood{Start: s, Length: i - s, Depth: int(depths[s])})
			s = i
		}
	}
	if wrap {
		// the head [0, first) continues the tail run
		runs[len(runs)-1].Length += first
	}

	return runs
}

// Base returns N.
func (t *Table) Base() int { return t.base }

// Period returns N^N.
func (t *Table) Period() uint64 { return t.period }

// Len returns the number of neighborhoods.
func (t *Table) Len() int { return len(t.runs) }

// Depth returns the stored depth of the reduced index r.
func (t *Table) Depth(r uint64) (int, error) {
	if r >= t.period {
		return 0, fmt.Errorf("Table.Depth: %d not below period %d: %w", r, t.period, digits.ErrInvalidIndex)
	}

	return int(t.depths[r]), nil
}

// NeighborhoodOf returns the neighborhood containing index mod N^N.
func (t *Table) NeighborhoodOf(index int64) (Neighborhood, error) {
	r, err := digits.Reduce(index, t.base)
	if err != nil {
		return Neighborhood{}, fmt.Errorf("Table.NeighborhoodOf: %w", err)
	}

	return t.at(r), nil
}

// NeighborhoodAt returns the neighborhood containing the reduced index r.
func (t *Table) NeighborhoodAt(r uint64) (Neighborhood, error) {
	if r >= t.period {
		return Neighborhood{}, fmt.Errorf("Table.NeighborhoodAt: %d not below period %d: %w", r, t.period, digits.ErrInvalidIndex)
	}

	return t.at(r), nil
}

// at finds the run with the greatest Start <= r; indices before the first
// Start belong to the wrapping run, which is stored last.
func (t *Table) at(r uint64) Neighborhood {
	i := sort.Search(len(t.runs), func(i int) bool { return t.runs[i].Start > r }) - 1
	if i < 0 {
		i = len(t.runs) - 1
	}

	return t.runs[i]
}

// Neighborhoods returns a copy of all neighborhoods in Start order.
func (t *Table) Neighborhoods() []Neighborhood {
	out := make([]Neighborhood, len(t.runs))
	copy(out, t.runs)

	return out
}

// Each calls fn for every neighborhood in Start order until fn returns false.
func (t *Table) Each(fn func(Neighborhood) bool) {
	for _, nb := range t.runs {
		if !fn(nb) {
			return
		}
	}
}
