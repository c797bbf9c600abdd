// SPDX-License-Identifier: MIT
// Package: trinoise/digits
//
// odometer.go — counting-order enumeration of digit arrays.

package digits

import "fmt"

// Odometer walks the index space in counting order, keeping the digit array
// of the current index in sync. Advancing costs O(1) amortized: only the
// positions touched by the carry are rewritten.
//
// An Odometer is not safe for concurrent use; give each goroutine its own.
type Odometer struct {
	base   int
	period uint64
	index  uint64
	digits []int
}

// NewOdometer returns an Odometer positioned at start mod N^N.
func NewOdometer(base int, start uint64) (*Odometer, error) {
	period, err := Period(base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodOdometer, err)
	}
	start %= period

	return &Odometer{
		base:   base,
		period: period,
		index:  start,
		digits: Decode(start, base, nil),
	}, nil
}

// Base returns N.
func (o *Odometer) Base() int { return o.base }

// Period returns N^N.
func (o *Odometer) Period() uint64 { return o.period }

// Index returns the current reduced index.
func (o *Odometer) Index() uint64 { return o.index }

// Digits returns the current digit array. The slice is owned by the
// Odometer and changes on Next; callers must not modify it.
func (o *Odometer) Digits() []int { return o.digits }

// Next advances to the following index, wrapping N^N-1 to 0, and returns the
// most significant position whose digit changed. Positions from that value
// through N-1 were rewritten; earlier positions are untouched.
func (o *Odometer) Next() int {
	i := o.base - 1
	for ; i >= 0; i-- {
		o.digits[i]++
		if o.digits[i] < o.base {
			break
		}
		o.digits[i] = 0
	}
	if i < 0 {
		// carry left the array: every digit is zero again
		o.index = 0

		return 0
	}
	o.index++

	return i
}
