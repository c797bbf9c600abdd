// Package frequency tabulates how often each trinoise value occurs over one
// full period, as a diagnostic for the structural conjectures.
//
// Two views are computed from the same table:
//
//   - per index: every reduced index counted once, so the counts sum to N^N;
//   - per neighborhood: every run counted once (the histogram of the
//     neighborhood signature).
//
// Ratios between the categories are reported as observed. Nothing in this
// package assumes that Zero and Mid are equally frequent or that Mid/Top
// approaches N-2; those are the quantities it exists to measure.
package frequency
