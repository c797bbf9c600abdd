// Package digits is the index space of trinoise: it reduces natural numbers
// modulo the period N^N and maps them to and from their length-N base-N
// digit arrays.
//
// What:
//
//   - Period(N) = N^N, overflow-checked (never wraps).
//   - Reduce / ReduceBig / ParseIndex bring any natural number into [0, N^N).
//   - ToDigits / Decode produce the zero-padded, most-significant-first digit
//     array; FromDigits is the inverse.
//   - Odometer enumerates digit arrays in counting order with O(1) amortized
//     carry propagation.
//
// Convention:
//
//	Position k of a digit array aligns with position k of the identity array
//	[0, 1, …, N-1]. Index 0 is [0, 0, …, 0]; the identity array itself is the
//	index Σ k·N^(N-1-k) (5 for N=3).
//
// Errors:
//
//   - ErrInvalidBase: N < 2.
//   - ErrInvalidIndex: negative, nil or malformed natural number.
//   - ErrOverflow: N^N does not fit an int64 (N > MaxBase).
//   - ErrBadDigits: digit array of the wrong length or with a digit outside [0, N).
package digits
