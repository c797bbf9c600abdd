// SPDX-License-Identifier: MIT
// Package: trinoise/digits
//
// digits.go — period, reduction and the digit-array view of an index.

package digits

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strings"
)

const (
	// MinBase is the smallest supported base.
	MinBase = 2
	// MaxBase is the largest base whose period N^N fits an int64
	// (15^15 = 437893890380859375; 16^16 = 2^64).
	MaxBase = 15
)

// Period returns N^N, the number of distinct digit arrays for base N and the
// period of the trinoise sequence.
// Returns ErrInvalidBase if base < MinBase and ErrOverflow if the product
// leaves the int64 range.
// Complexity: O(N) time, O(1) space.
func Period(base int) (uint64, error) {
	if base < MinBase {
		return 0, fmt.Errorf("%s: base %d: %w", methodPeriod, base, ErrInvalidBase)
	}
	b := uint64(base)
	p := uint64(1)
	for i := 0; i < base; i++ {
		hi, lo := bits.Mul64(p, b)
		if hi != 0 || lo > math.MaxInt64 {
			return 0, fmt.Errorf("%s: %d^%d: %w", methodPeriod, base, base, ErrOverflow)
		}
		p = lo
	}

	return p, nil
}

// Reduce returns index mod N^N.
// The base is validated before the index.
func Reduce(index int64, base int) (uint64, error) {
	period, err := Period(base)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodReduce, err)
	}
	if index < 0 {
		return 0, fmt.Errorf("%s: index %d: %w", methodReduce, index, ErrInvalidIndex)
	}

	return uint64(index) % period, nil
}

// ReduceBig returns index mod N^N for naturals of any size.
// A nil or negative index yields ErrInvalidIndex.
func ReduceBig(index *big.Int, base int) (uint64, error) {
	period, err := Period(base)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodReduceBig, err)
	}
	if index == nil || index.Sign() < 0 {
		return 0, fmt.Errorf("%s: %w", methodReduceBig, ErrInvalidIndex)
	}
	m := new(big.Int).Mod(index, new(big.Int).SetUint64(period))

	return m.Uint64(), nil
}

// ParseIndex parses a decimal natural number of arbitrary size and reduces
// it modulo N^N. Signs, blanks and non-digits are rejected with
// ErrInvalidIndex.
func ParseIndex(s string, base int) (uint64, error) {
	if _, err := Period(base); err != nil {
		return 0, fmt.Errorf("%s: %w", methodParseIndex, err)
	}
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("%s: %q: %w", methodParseIndex, s, ErrInvalidIndex)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", methodParseIndex, s, ErrInvalidIndex)
	}

	return ReduceBig(n, base)
}

// ToDigits returns the length-N digit array of index mod N^N, most
// significant digit first.
//
// Example:
//
//	d, _ := ToDigits(5, 3) // [0 1 2], the identity array of base 3
func ToDigits(index int64, base int) ([]int, error) {
	r, err := Reduce(index, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodToDigits, err)
	}

	return Decode(r, base, nil), nil
}

// Decode writes the low N base-N digits of v into dst (reallocated when its
// capacity is below base) and returns dst[:base]. Because N^N is a power of
// the base, the low N digits of any v are exactly the digits of v mod N^N.
// The base is not validated; callers pass a base accepted by Period.
// Complexity: O(N), no allocation when cap(dst) >= base.
func Decode(v uint64, base int, dst []int) []int {
	if cap(dst) < base {
		dst = make([]int, base)
	}
	dst = dst[:base]
	b := uint64(base)
	for i := base - 1; i >= 0; i-- {
		dst[i] = int(v % b)
		v /= b
	}

	return dst
}

// FromDigits evaluates a most-significant-first digit array in base N.
// Returns ErrBadDigits if len(d) != base or a digit lies outside [0, base).
func FromDigits(d []int, base int) (uint64, error) {
	if _, err := Period(base); err != nil {
		return 0, fmt.Errorf("%s: %w", methodFromDigits, err)
	}
	if len(d) != base {
		return 0, fmt.Errorf("%s: length %d, want %d: %w", methodFromDigits, len(d), base, ErrBadDigits)
	}
	b := uint64(base)
	var v uint64
	for i, x := range d {
		if x < 0 || x >= base {
			return 0, fmt.Errorf("%s: digit %d at position %d: %w", methodFromDigits, x, i, ErrBadDigits)
		}
		v = v*b + uint64(x)
	}

	return v, nil
}
