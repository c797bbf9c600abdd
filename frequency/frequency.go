// SPDX-License-Identifier: MIT
// Package: trinoise/frequency

package frequency

import (
	"context"
	"fmt"

	"github.com/katalvlaran/trinoise/segment"
	"github.com/katalvlaran/trinoise/tri"
)

// Unit says what a Frequencies value counts.
type Unit string

const (
	// UnitIndex counts reduced indices.
	UnitIndex Unit = "index"
	// UnitNeighborhood counts neighborhoods.
	UnitNeighborhood Unit = "neighborhood"
)

// Frequencies is a histogram over one period.
//
// Values maps each raw trinoise value to its count; at N = 2 the values 0
// and N-2 coincide and share one key. Zero/Mid/Top/Other hold the same data
// by category, and Total is their sum.
type Frequencies struct {
	Base   int            `yaml:"base" json:"base"`
	Unit   Unit           `yaml:"unit" json:"unit"`
	Total  uint64         `yaml:"total" json:"total"`
	Zero   uint64         `yaml:"zero" json:"zero"`
	Mid    uint64         `yaml:"mid" json:"mid"`
	Top    uint64         `yaml:"top" json:"top"`
	Other  uint64         `yaml:"other" json:"other"`
	Values map[int]uint64 `yaml:"values" json:"values"`
}

// Count returns the count recorded for category c.
func (f Frequencies) Count(c tri.Category) uint64 {
	switch c {
	case tri.Zero:
		return f.Zero
	case tri.Mid:
		return f.Mid
	case tri.Top:
		return f.Top
	default:
		return f.Other
	}
}

// Counts returns a copy of the value → count mapping.
func (f Frequencies) Counts() map[int]uint64 {
	out := make(map[int]uint64, len(f.Values))
	for k, v := range f.Values {
		out[k] = v
	}

	return out
}

// add records weight occurrences of a neighborhood of the given length.
func (f *Frequencies) add(length, weight uint64) {
	switch tri.Classify(length, f.Base) {
	case tri.Zero:
		f.Zero += weight
	case tri.Mid:
		f.Mid += weight
	case tri.Top:
		f.Top += weight
	default:
		f.Other += weight
	}
	f.Values[tri.Project(length)] += weight
	f.Total += weight
}

// FromTable counts tri over every reduced index of t. All members of a
// neighborhood share its value, so each run contributes its length.
// The result always sums to N^N.
func FromTable(t *segment.Table) Frequencies {
	f := Frequencies{Base: t.Base(), Unit: UnitIndex, Values: make(map[int]uint64, 3)}
	t.Each(func(nb segment.Neighborhood) bool {
		f.add(nb.Length, nb.Length)
		return true
	})

	return f
}

// NeighborhoodsFromTable counts each neighborhood of t once.
func NeighborhoodsFromTable(t *segment.Table) Frequencies {
	f := Frequencies{Base: t.Base(), Unit: UnitNeighborhood, Values: make(map[int]uint64, 3)}
	t.Each(func(nb segment.Neighborhood) bool {
		f.add(nb.Length, 1)
		return true
	})

	return f
}

// Of builds the period table of base and returns its per-index frequencies
// (frequencies). Build options pass through to segment.Build.
func Of(ctx context.Context, base int, opts ...segment.Option) (Frequencies, error) {
	t, err := segment.Build(ctx, base, opts...)
	if err != nil {
		return Frequencies{}, fmt.Errorf("frequency.Of: %w", err)
	}

	return FromTable(t), nil
}
