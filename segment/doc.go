// Package segment partitions the cyclic index space [0, N^N) into
// neighborhoods: maximal contiguous runs of indices sharing the same depth.
//
// What:
//
//   - Build computes the depth of every index once (parallel, incremental
//     odometer walkers) and scans the run boundaries in a single pass,
//     joining the run that wraps from N^N-1 back to 0.
//   - Table is the result: immutable, caller-owned, safe for any number of
//     concurrent readers. Lookups are O(log R) over R run starts.
//   - NeighborhoodOf / NeighborhoodAt answer the same question without a
//     table by walking left and right from the queried index until the
//     depth changes.
//   - VerifyConjecture and CheckPartition validate a table empirically.
//
// Run lengths are always measured from actual adjacency. The conjecture that
// every length lies in {1, N-1, N} (N > 2) is reported, never assumed.
//
// Complexity:
//
//   - Build:          O(N^N) amortized time, N^N bytes + O(R) runs memory.
//   - Table lookup:   O(log R).
//   - NeighborhoodOf: O(L·N) for a run of length L, O(1) memory.
//
// Usable range: tables are limited to periods up to 1<<25 by default
// (N ≤ 8; N = 8 has 16,777,216 indices). Streaming lookups work for every
// base up to digits.MaxBase.
//
// Errors:
//
//   - digits.ErrInvalidBase, digits.ErrInvalidIndex, digits.ErrOverflow.
//   - ErrTableTooLarge: the period exceeds the configured maximum.
//   - ErrPartition: CheckPartition found a gap, overlap or non-maximal run.
package segment
