// SPDX-License-Identifier: MIT
// Package: trinoise/segment

package segment

import (
	"fmt"

	"github.com/katalvlaran/trinoise/depth"
	"github.com/katalvlaran/trinoise/digits"
)

// NeighborhoodOf returns the neighborhood containing index mod N^N without
// materializing a table (neighborhoodOf).
//
// The run is found by walking left, then right, from the reduced index and
// recomputing depths until one differs, crossing the 0 / N^N-1 boundary when
// needed. Per-query cost is proportional to the run length.
func NeighborhoodOf(index int64, base int) (Neighborhood, error) {
	r, err := digits.Reduce(index, base)
	if err != nil {
		return Neighborhood{}, fmt.Errorf("NeighborhoodOf: %w", err)
	}

	return NeighborhoodAt(r, base)
}

// NeighborhoodAt is NeighborhoodOf for an already reduced index.
// Returns digits.ErrInvalidIndex if r is not below N^N.
func NeighborhoodAt(r uint64, base int) (Neighborhood, error) {
	period, err := digits.Period(base)
	if err != nil {
		return Neighborhood{}, fmt.Errorf("NeighborhoodAt: %w", err)
	}
	if r >= period {
		return Neighborhood{}, fmt.Errorf("NeighborhoodAt: %d not below period %d: %w", r, period, digits.ErrInvalidIndex)
	}

	d := depth.OfReduced(r, base)
	start, length := r, uint64(1)
	for length < period {
		prev := (start + period - 1) % period
		if depth.OfReduced(prev, base) != d {
			break
		}
		start = prev
		length++
	}
	for length < period {
		if depth.OfReduced((start+length)%period, base) != d {
			break
		}
		length++
	}

	return Neighborhood{Start: start, Length: length, Depth: d}, nil
}
