// SPDX-License-Identifier: MIT
// Package: trinoise/frequency
//
// report.go — ratios and the combined diagnostic report.

package frequency

import (
	"context"
	"fmt"

	"github.com/katalvlaran/trinoise/segment"
)

// Ratios between category counts. A ratio is nil when its denominator is 0.
type Ratios struct {
	ZeroOverMid *float64 `yaml:"zero_over_mid,omitempty" json:"zero_over_mid,omitempty"`
	ZeroOverTop *float64 `yaml:"zero_over_top,omitempty" json:"zero_over_top,omitempty"`
	MidOverTop  *float64 `yaml:"mid_over_top,omitempty" json:"mid_over_top,omitempty"`
}

// ratio returns &(a/b), or nil when b is 0.
func ratio(a, b uint64) *float64 {
	if b == 0 {
		return nil
	}
	r := float64(a) / float64(b)

	return &r
}

// Ratios computes the observed category ratios of f.
func (f Frequencies) Ratios() Ratios {
	return Ratios{
		ZeroOverMid: ratio(f.Zero, f.Mid),
		ZeroOverTop: ratio(f.Zero, f.Top),
		MidOverTop:  ratio(f.Mid, f.Top),
	}
}

// Balanced reports whether Zero and Mid occur equally often, the first
// conjecture for N > 2 when counted per neighborhood.
func (f Frequencies) Balanced() bool {
	return f.Zero == f.Mid
}

// Report gathers every diagnostic of one base.
type Report struct {
	Base               int                `yaml:"base" json:"base"`
	Period             uint64             `yaml:"period" json:"period"`
	Indices            Frequencies        `yaml:"indices" json:"indices"`
	Neighborhoods      Frequencies        `yaml:"neighborhoods" json:"neighborhoods"`
	IndexRatios        Ratios             `yaml:"index_ratios" json:"index_ratios"`
	NeighborhoodRatios Ratios             `yaml:"neighborhood_ratios" json:"neighborhood_ratios"`
	Conjecture         segment.Conjecture `yaml:"conjecture" json:"conjecture"`
	// PartitionError is empty when the neighborhoods tile the period.
	PartitionError string `yaml:"partition_error,omitempty" json:"partition_error,omitempty"`
}

// NewReport analyzes an existing table.
func NewReport(t *segment.Table) Report {
	idx := FromTable(t)
	nbs := NeighborhoodsFromTable(t)
	r := Report{
		Base:               t.Base(),
		Period:             t.Period(),
		Indices:            idx,
		Neighborhoods:      nbs,
		IndexRatios:        idx.Ratios(),
		NeighborhoodRatios: nbs.Ratios(),
		Conjecture:         segment.VerifyConjecture(t),
	}
	if err := segment.CheckPartition(t); err != nil {
		r.PartitionError = err.Error()
	}

	return r
}

// Analyze builds the table of base and reports on it.
func Analyze(ctx context.Context, base int, opts ...segment.Option) (Report, error) {
	t, err := segment.Build(ctx, base, opts...)
	if err != nil {
		return Report{}, fmt.Errorf("Analyze: %w", err)
	}

	return NewReport(t), nil
}
