// SPDX-License-Identifier: MIT
// Package: trinoise/segment
//
// types.go — neighborhood value type and sentinel errors.

package segment

import "errors"

// ErrTableTooLarge indicates a period above the configured table limit.
var ErrTableTooLarge = errors.New("segment: period exceeds table limit")

// ErrPartition indicates that a set of neighborhoods does not tile the
// index space exactly with maximal runs.
var ErrPartition = errors.New("segment: neighborhoods do not partition the period")

// Neighborhood is a maximal run of cyclically contiguous indices that share
// the same depth. A run may wrap from N^N-1 to 0, in which case
// Start+Length exceeds the period.
type Neighborhood struct {
	Start  uint64 `yaml:"start" json:"start"`
	Length uint64 `yaml:"length" json:"length"`
	Depth  int    `yaml:"depth" json:"depth"`
}

// Offset returns the distance from Start to the reduced index r, walking
// forward cyclically.
func (n Neighborhood) Offset(r, period uint64) uint64 {
	return (r + period - n.Start) % period
}

// Contains reports whether the reduced index r belongs to n.
func (n Neighborhood) Contains(r, period uint64) bool {
	return n.Offset(r, period) < n.Length
}

// Last returns the reduced index of the final member of n.
func (n Neighborhood) Last(period uint64) uint64 {
	return (n.Start + n.Length - 1) % period
}

// Wraps reports whether n crosses the boundary between N^N-1 and 0.
func (n Neighborhood) Wraps(period uint64) bool {
	return n.Start+n.Length > period
}
