// SPDX-License-Identifier: MIT
// Package: trinoise/tri

package tri

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trinoise/segment"
)

// ErrBaseMismatch indicates a table built for a different base than the
// generator's.
var ErrBaseMismatch = errors.New("tri: table base does not match generator base")

// Tri returns the trinoise value of index for base: the length of the
// neighborhood containing index mod N^N, minus one. No table is built.
func Tri(index int64, base int) (int, error) {
	nb, err := segment.NeighborhoodOf(index, base)
	if err != nil {
		return 0, fmt.Errorf("Tri: %w", err)
	}

	return Project(nb.Length), nil
}

// Signature returns the category of every neighborhood of t in Start order,
// the wrapping neighborhood last.
func Signature(t *segment.Table) []Category {
	out := make([]Category, 0, t.Len())
	t.Each(func(nb segment.Neighborhood) bool {
		out = append(out, Classify(nb.Length, t.Base()))
		return true
	})

	return out
}
