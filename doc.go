// Package trinoise is a deterministic three-valued sequence over the natural
// numbers, built from base-N digit arrays and their distance to the identity.
//
// 🚀 What is trinoise?
//
//	For a base N (2..15) every index i is reduced modulo N^N and read as a
//	length-N digit array. Its depth counts the positions that differ from
//	the identity array [0, 1, …, N-1]. Cyclic runs of equal depth form
//	neighborhoods, and tri(i) is the length of i's neighborhood minus one.
//	Empirically every neighborhood has length 1, N-1 or N, so tri takes the
//	values 0, N-2 and N-1.
//
// Under the hood, everything is organized under these subpackages:
//
//	digits/    — period N^N, index reduction (int64, *big.Int, decimal), odometer
//	depth/     — depth and aligned counts, incremental depth Walker
//	segment/   — period Table (parallel build), streaming neighborhoods, checks
//	tri/       — tri projection, categories, Generator and noise streams
//	frequency/ — per-index and per-neighborhood histograms and reports
//	cmd/trinoise — command-line front end
//
// Quick example, base 3:
//
//	index  0 1 2 3 4 5 6 7 8 9 …
//	depth  2 2 1 1 1 0 2 2 1 3 …
//	tri    2 2 2 2 2 0 1 1 0 1 …
//
// Index 26 closes the period and shares depth 2 with indices 0 and 1, so
// the three form one neighborhood across the boundary.
//
//	go get github.com/katalvlaran/trinoise
package trinoise
