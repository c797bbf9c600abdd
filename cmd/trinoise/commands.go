// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trinoise/depth"
	"github.com/katalvlaran/trinoise/digits"
	"github.com/katalvlaran/trinoise/frequency"
	"github.com/katalvlaran/trinoise/segment"
	"github.com/katalvlaran/trinoise/tri"
)

func (a *app) triCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tri INDEX...",
		Short: "Print tri(INDEX) for each natural number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator(cmd.Context())
			if err != nil {
				return err
			}
			rows := make(triRows, 0, len(args))
			for _, arg := range args {
				r, err := digits.ParseIndex(arg, g.Base())
				if err != nil {
					return err
				}
				nb, err := g.NeighborhoodAt(r)
				if err != nil {
					return err
				}
				rows = append(rows, triRow{
					Index:    arg,
					Reduced:  r,
					Value:    tri.Project(nb.Length),
					Category: tri.Classify(nb.Length, g.Base()).String(),
				})
			}

			return a.render(cmd.OutOrStdout(), rows)
		},
	}
}

func (a *app) depthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "depth INDEX...",
		Short: "Print the digit array and depth of each natural number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := a.cfg.Base
			rows := make(depthRows, 0, len(args))
			for _, arg := range args {
				r, err := digits.ParseIndex(arg, base)
				if err != nil {
					return err
				}
				d := digits.Decode(r, base, nil)
				rows = append(rows, depthRow{
					Index:   arg,
					Reduced: r,
					Digits:  d,
					Depth:   depth.Depth(d),
					Aligned: depth.Aligned(d),
				})
			}

			return a.render(cmd.OutOrStdout(), rows)
		},
	}
}

func (a *app) neighborhoodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighborhood INDEX...",
		Short: "Print the equal-depth neighborhood containing each natural number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator(cmd.Context())
			if err != nil {
				return err
			}
			rows := make(neighborhoodRows, 0, len(args))
			for _, arg := range args {
				r, err := digits.ParseIndex(arg, g.Base())
				if err != nil {
					return err
				}
				nb, err := g.NeighborhoodAt(r)
				if err != nil {
					return err
				}
				rows = append(rows, neighborhoodRow{
					Index:        arg,
					Reduced:      r,
					Neighborhood: nb,
					Successors:   nb.Length - 1 - nb.Offset(r, g.Period()),
					Wraps:        nb.Wraps(g.Period()),
				})
			}

			return a.render(cmd.OutOrStdout(), rows)
		},
	}
}

// maxSequenceCount caps the values one sequence call prints.
const maxSequenceCount = 1 << 24

func (a *app) sequenceCmd() *cobra.Command {
	var start string
	var count int
	cmd := &cobra.Command{
		Use:   "sequence",
		Short: "Print COUNT consecutive trinoise values from START",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 || count > maxSequenceCount {
				return fmt.Errorf("sequence: count %d outside [0, %d]: %w", count, maxSequenceCount, errInvalidConfig)
			}
			g, err := a.generator(cmd.Context())
			if err != nil {
				return err
			}
			r, err := digits.ParseIndex(start, g.Base())
			if err != nil {
				return err
			}
			values := make([]int, count)
			// r < N^N <= MaxInt64
			if err := g.Fill(values, int64(r)); err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), sequenceOutput{
				Base:   g.Base(),
				Start:  start,
				Values: values,
			})
		},
	}
	cmd.Flags().StringVar(&start, "start", "0", "first index (any natural number)")
	cmd.Flags().IntVarP(&count, "count", "n", 32, "number of values (at most 16777216)")

	return cmd
}

func (a *app) frequenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frequencies",
		Short: "Sweep one period and report value frequencies and conjecture checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, err := a.buildTable(cmd.Context(), a.cfg.Base)
			if err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), reportOutput{Report: frequency.NewReport(tbl)})
		},
	}
}

func (a *app) verifyCmd() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the partition and run-length conjecture for a range of bases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("to") {
				to = a.cfg.Base
			}
			if from < digits.MinBase {
				return fmt.Errorf("verify: from %d: %w", from, digits.ErrInvalidBase)
			}
			if to < from {
				return fmt.Errorf("verify: empty range %d..%d: %w", from, to, errInvalidConfig)
			}
			rows := make(verifyRows, 0, to-from+1)
			for base := from; base <= to; base++ {
				tbl, err := a.buildTable(cmd.Context(), base)
				if err != nil {
					return err
				}
				row := verifyRow{Conjecture: segment.VerifyConjecture(tbl), Partition: "ok"}
				if err := segment.CheckPartition(tbl); err != nil {
					row.Partition = err.Error()
				}
				if !row.Conjecture.Holds {
					a.logger.Warn("run-length conjecture violated", "base", base, "violations", len(row.Conjecture.Violations))
				}
				rows = append(rows, row)
			}

			return a.render(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().IntVar(&from, "from", digits.MinBase, "first base")
	cmd.Flags().IntVar(&to, "to", 0, "last base (default: --base)")

	return cmd
}
