// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trinoise/frequency"
	"github.com/katalvlaran/trinoise/segment"
)

// textRenderer is implemented by every command result.
type textRenderer interface {
	renderText(w io.Writer) error
}

// render writes v in the configured format.
func (a *app) render(w io.Writer, v textRenderer) error {
	switch a.cfg.Format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	default:
		return v.renderText(w)
	}
}

// table writes tab-separated rows aligned in columns.
func table(w io.Writer, header string, rows func(tw io.Writer)) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)

	return tw.Flush()
}

type triRow struct {
	Index    string `yaml:"index" json:"index"`
	Reduced  uint64 `yaml:"reduced" json:"reduced"`
	Value    int    `yaml:"value" json:"value"`
	Category string `yaml:"category" json:"category"`
}

type triRows []triRow

func (rs triRows) renderText(w io.Writer) error {
	return table(w, "INDEX\tREDUCED\tTRI\tCATEGORY", func(tw io.Writer) {
		for _, r := range rs {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Index, r.Reduced, r.Value, r.Category)
		}
	})
}

type depthRow struct {
	Index   string `yaml:"index" json:"index"`
	Reduced uint64 `yaml:"reduced" json:"reduced"`
	Digits  []int  `yaml:"digits,flow" json:"digits"`
	Depth   int    `yaml:"depth" json:"depth"`
	Aligned int    `yaml:"aligned" json:"aligned"`
}

type depthRows []depthRow

func (rs depthRows) renderText(w io.Writer) error {
	return table(w, "INDEX\tREDUCED\tDIGITS\tDEPTH\tALIGNED", func(tw io.Writer) {
		for _, r := range rs {
			fmt.Fprintf(tw, "%s\t%d\t%v\t%d\t%d\n", r.Index, r.Reduced, r.Digits, r.Depth, r.Aligned)
		}
	})
}

type neighborhoodRow struct {
	Index        string               `yaml:"index" json:"index"`
	Reduced      uint64               `yaml:"reduced" json:"reduced"`
	Neighborhood segment.Neighborhood `yaml:"neighborhood" json:"neighborhood"`
	Successors   uint64               `yaml:"successors" json:"successors"`
	Wraps        bool                 `yaml:"wraps" json:"wraps"`
}

type neighborhoodRows []neighborhoodRow

func (rs neighborhoodRows) renderText(w io.Writer) error {
	return table(w, "INDEX\tREDUCED\tSTART\tLENGTH\tDEPTH\tSUCCESSORS\tWRAPS", func(tw io.Writer) {
		for _, r := range rs {
			nb := r.Neighborhood
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%t\n", r.Index, r.Reduced, nb.Start, nb.Length, nb.Depth, r.Successors, r.Wraps)
		}
	})
}

type sequenceOutput struct {
	Base   int    `yaml:"base" json:"base"`
	Start  string `yaml:"start" json:"start"`
	Values []int  `yaml:"values,flow" json:"values"`
}

func (s sequenceOutput) renderText(w io.Writer) error {
	parts := make([]string, len(s.Values))
	for i, v := range s.Values {
		parts[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))

	return err
}

type reportOutput struct {
	frequency.Report `yaml:",inline"`
}

func (r reportOutput) renderText(w io.Writer) error {
	fmt.Fprintf(w, "base %d, period %d\n\n", r.Base, r.Period)
	err := table(w, "UNIT\tZERO(0)\tMID(N-2)\tTOP(N-1)\tOTHER\tTOTAL", func(tw io.Writer) {
		for _, f := range []frequency.Frequencies{r.Indices, r.Neighborhoods} {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\n", f.Unit, f.Zero, f.Mid, f.Top, f.Other, f.Total)
		}
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nneighborhood ratios: zero/mid=%s zero/top=%s mid/top=%s\n",
		formatRatio(r.NeighborhoodRatios.ZeroOverMid),
		formatRatio(r.NeighborhoodRatios.ZeroOverTop),
		formatRatio(r.NeighborhoodRatios.MidOverTop))
	fmt.Fprintf(w, "conjecture: %s\n", conjectureVerdict(r.Conjecture))
	partition := "ok"
	if r.PartitionError != "" {
		partition = r.PartitionError
	}
	_, err = fmt.Fprintf(w, "partition: %s\n", partition)

	return err
}

type verifyRow struct {
	Conjecture segment.Conjecture `yaml:"conjecture" json:"conjecture"`
	Partition  string             `yaml:"partition" json:"partition"`
}

type verifyRows []verifyRow

func (rs verifyRows) renderText(w io.Writer) error {
	return table(w, "BASE\tPERIOD\tNEIGHBORHOODS\tLENGTHS\tCONJECTURE\tPARTITION", func(tw io.Writer) {
		for _, r := range rs {
			c := r.Conjecture
			fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\n", c.Base, c.Period, c.Neighborhoods, formatLengths(c.Lengths), conjectureVerdict(c), r.Partition)
		}
	})
}

// formatRatio prints a ratio with four decimals, or "n/a" when undefined.
func formatRatio(r *float64) string {
	if r == nil {
		return "n/a"
	}

	return strconv.FormatFloat(*r, 'f', 4, 64)
}

// formatLengths prints a length histogram as "len:count" pairs in length order.
func formatLengths(m map[uint64]int) string {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d:%d", k, m[k])
	}

	return strings.Join(parts, " ")
}

// conjectureVerdict summarizes a conjecture check in one word or phrase.
func conjectureVerdict(c segment.Conjecture) string {
	switch {
	case !c.Holds:
		return fmt.Sprintf("violated (%d runs)", len(c.Violations))
	case !c.Applicable:
		return "holds (not claimed for base 2)"
	default:
		return "holds"
	}
}
