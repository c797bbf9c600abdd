// SPDX-License-Identifier: MIT
// Package: trinoise/depth

package depth

import (
	"fmt"

	"github.com/katalvlaran/trinoise/digits"
)

// Depth returns the number of positions i with d[i] != i.
// Complexity: O(len(d)).
func Depth(d []int) int {
	n := 0
	for i, x := range d {
		if x != i {
			n++
		}
	}

	return n
}

// Aligned returns the number of positions i with d[i] == i, i.e.
// len(d) - Depth(d).
func Aligned(d []int) int {
	return len(d) - Depth(d)
}

// Of returns the depth of index mod N^N (depthOf).
// Errors are those of digits.Reduce.
func Of(index int64, base int) (int, error) {
	r, err := digits.Reduce(index, base)
	if err != nil {
		return 0, fmt.Errorf("depth.Of: %w", err)
	}

	return OfReduced(r, base), nil
}

// OfReduced returns the depth of the low N base-N digits of r without
// allocating. The base is not validated.
func OfReduced(r uint64, base int) int {
	b := uint64(base)
	n := 0
	for i := base - 1; i >= 0; i-- {
		if int(r%b) != i {
			n++
		}
		r /= b
	}

	return n
}

// IdentityIndex returns the reduced index whose digit array is the identity,
// the only index of depth 0.
func IdentityIndex(base int) (uint64, error) {
	if _, err := digits.Period(base); err != nil {
		return 0, fmt.Errorf("depth.IdentityIndex: %w", err)
	}
	b := uint64(base)
	var v uint64
	for i := 0; i < base; i++ {
		v = v*b + uint64(i)
	}

	return v, nil
}
