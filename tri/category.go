// SPDX-License-Identifier: MIT
// Package: trinoise/tri

package tri

// Category names the canonical trinoise values independently of the base.
type Category int

const (
	// Zero is a neighborhood of length 1 (value 0).
	Zero Category = iota
	// Mid is a neighborhood of length N-1 (value N-2).
	Mid
	// Top is a neighborhood of length N (value N-1).
	Top
	// Other is any length outside {1, N-1, N}; it only appears if the
	// run-length conjecture fails.
	Other
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Zero:
		return "zero"
	case Mid:
		return "mid"
	case Top:
		return "top"
	default:
		return "other"
	}
}

// Value returns the trinoise value of c for base, or -1 for Other.
func (c Category) Value(base int) int {
	switch c {
	case Zero:
		return 0
	case Mid:
		return base - 2
	case Top:
		return base - 1
	default:
		return -1
	}
}

// Classify maps a neighborhood length to its category. Length 1 is checked
// first, so at N = 2 (where 1 == N-1) it is Zero.
func Classify(length uint64, base int) Category {
	switch length {
	case 1:
		return Zero
	case uint64(base - 1):
		return Mid
	case uint64(base):
		return Top
	default:
		return Other
	}
}

// Project returns the raw trinoise value of a neighborhood length
// (length - 1). Lengths are never clamped.
func Project(length uint64) int {
	return int(length) - 1
}
