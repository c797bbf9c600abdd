// Package tri projects neighborhoods onto the three trinoise values and
// exposes the periodic noise generator built on them.
//
// 🚀 What is trinoise?
//
//	For base N, every natural number i is reduced modulo N^N, mapped to its
//	length-N base-N digit array, and given the depth of that array (positions
//	differing from the identity [0, 1, …, N-1]). Consecutive indices of equal
//	depth form neighborhoods. tri(i) is the length of i's neighborhood minus
//	one, which is observed to be one of 0, N-2 or N-1.
//
// ✨ Properties:
//   - deterministic and periodic: tri(i) == tri(i + N^N)
//   - three categories: Zero (0), Mid (N-2), Top (N-1)
//   - base 2 is degenerate: 0 and N-2 coincide, and the result is kept as is
//   - Successors(i) tells how many following indices share i's value, so a
//     stream can be produced one neighborhood at a time (Fill)
//
// ⚙️ Usage:
//
//	v, err := tri.Tri(12345, 5) // streaming, no table
//
//	tbl, _ := segment.Build(ctx, 6)
//	g, _ := tri.New(6, tri.WithTable(tbl))
//	buf := make([]int, 1024)
//	_ = g.Fill(buf, 0)
//
// Errors:
//   - digits.ErrInvalidBase / digits.ErrInvalidIndex / digits.ErrOverflow
//   - ErrBaseMismatch: WithTable received a table of another base.
package tri
