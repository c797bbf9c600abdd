// Package depth measures how far a digit array has drifted from the identity
// array [0, 1, …, N-1].
//
// The depth of an array is the number of positions i whose digit is not i.
// It is not a Hamming distance against an arbitrary array: the reference is
// always the identity, which is never materialized.
//
// Depth is the node depth of the array in the reachability tree of
// single-position edits rooted at the identity; Aligned is its complement
// (positions that still agree with the identity).
//
// Walker couples a digits.Odometer with a running depth so that a full period
// can be swept in O(N^N) amortized time instead of O(N·N^N).
package depth
