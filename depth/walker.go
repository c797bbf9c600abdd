// SPDX-License-Identifier: MIT
// Package: trinoise/depth

package depth

import (
	"fmt"

	"github.com/katalvlaran/trinoise/digits"
)

// Walker yields the depth of consecutive indices in counting order.
// Each step re-examines only the positions rewritten by the odometer carry.
// A Walker is not safe for concurrent use.
type Walker struct {
	odo      *digits.Odometer
	mismatch []bool
	depth    int
}

// NewWalker returns a Walker positioned at start mod N^N.
func NewWalker(base int, start uint64) (*Walker, error) {
	odo, err := digits.NewOdometer(base, start)
	if err != nil {
		return nil, fmt.Errorf("depth.NewWalker: %w", err)
	}
	w := &Walker{odo: odo, mismatch: make([]bool, base)}
	for i, x := range odo.Digits() {
		if x != i {
			w.mismatch[i] = true
			w.depth++
		}
	}

	return w, nil
}

// Index returns the current reduced index.
func (w *Walker) Index() uint64 { return w.odo.Index() }

// Depth returns the depth of the current index.
func (w *Walker) Depth() int { return w.depth }

// Digits returns the current digit array (read-only view).
func (w *Walker) Digits() []int { return w.odo.Digits() }

// Next advances to the following index, wrapping at N^N.
func (w *Walker) Next() {
	d := w.odo.Digits()
	for i := w.odo.Next(); i < len(d); i++ {
		m := d[i] != i
		if m == w.mismatch[i] {
			continue
		}
		w.mismatch[i] = m
		if m {
			w.depth++
		} else {
			w.depth--
		}
	}
}
