package segment_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/trinoise/digits"
	"github.com/katalvlaran/trinoise/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// base3Runs lists the base-3 neighborhoods derived from the hand-computed
// depth sequence 2 2 1 1 1 0 2 2 1 3 3 2 2 2 1 3 3 2 3 3 2 2 2 1 3 3 2.
// Index 26 (depth 2) joins indices 0 and 1 across the period boundary.
var base3Runs = []segment.Neighborhood{
	{Start: 2, Length: 3, Depth: 1},
	{Start: 5, Length: 1, Depth: 0},
	{Start: 6, Length: 2, Depth: 2},
	{Start: 8, Length: 1, Depth: 1},
	{Start: 9, Length: 2, Depth: 3},
	{Start: 11, Length: 3, Depth: 2},
	{Start: 14, Length: 1, Depth: 1},
	{Start: 15, Length: 2, Depth: 3},
	{Start: 17, Length: 1, Depth: 2},
	{Start: 18, Length: 2, Depth: 3},
	{Start: 20, Length: 3, Depth: 2},
	{Start: 23, Length: 1, Depth: 1},
	{Start: 24, Length: 2, Depth: 3},
	{Start: 26, Length: 3, Depth: 2},
}

func mustBuild(t *testing.T, base int, opts ...segment.Option) *segment.Table {
	t.Helper()
	tbl, err := segment.Build(context.Background(), base, opts...)
	require.NoError(t, err, "Build(%d)", base)

	return tbl
}

// TestBuild_Base2 checks the degenerate base: depths 1 0 2 1, with 3 and 0
// joined across the boundary.
func TestBuild_Base2(t *testing.T) {
	t.Parallel()

	tbl := mustBuild(t, 2)
	assert.Equal(t, uint64(4), tbl.Period())
	assert.Equal(t, 2, tbl.Base())
	assert.Equal(t, []segment.Neighborhood{
		{Start: 1, Length: 1, Depth: 0},
		{Start: 2, Length: 1, Depth: 2},
		{Start: 3, Length: 2, Depth: 1},
	}, tbl.Neighborhoods())
}

// TestBuild_Base3 compares the whole base-3 partition with the oracle.
func TestBuild_Base3(t *testing.T) {
	t.Parallel()

	tbl := mustBuild(t, 3)
	require.Equal(t, base3Runs, tbl.Neighborhoods())
	assert.Equal(t, len(base3Runs), tbl.Len())

	nb, err := tbl.NeighborhoodOf(0)
	require.NoError(t, err)
	assert.Equal(t, segment.Neighborhood{Start: 26, Length: 3, Depth: 2}, nb)
	assert.True(t, nb.Wraps(tbl.Period()))
	assert.Equal(t, uint64(1), nb.Last(tbl.Period()))

	nb, err = tbl.NeighborhoodOf(27 + 12)
	require.NoError(t, err)
	assert.Equal(t, segment.Neighborhood{Start: 11, Length: 3, Depth: 2}, nb)
}

// TestBuild_WorkersAgree checks that the fan-out does not change the result.
func TestBuild_WorkersAgree(t *testing.T) {
	t.Parallel()

	for base := digits.MinBase; base <= 5; base++ {
		one := mustBuild(t, base, segment.WithWorkers(1))
		for _, w := range []int{2, 3, 7, 64} {
			many := mustBuild(t, base, segment.WithWorkers(w))
			require.Equal(t, one.Neighborhoods(), many.Neighborhoods(), "base %d workers %d", base, w)
		}
	}
}

// TestTable_MatchesStreaming compares every table lookup with the
// table-free walk.
func TestTable_MatchesStreaming(t *testing.T) {
	t.Parallel()

	for base := digits.MinBase; base <= 6; base++ {
		tbl := mustBuild(t, base)
		for r := uint64(0); r < tbl.Period(); r++ {
			fromTable, err := tbl.NeighborhoodAt(r)
			require.NoError(t, err)
			streamed, err := segment.NeighborhoodAt(r, base)
			require.NoError(t, err)
			require.Equal(t, fromTable, streamed, "base %d index %d", base, r)
			require.True(t, fromTable.Contains(r, tbl.Period()))
		}
	}
}

// TestTable_Tiling checks the union-of-intervals property: collecting the
// neighborhood of every index covers each index exactly once.
func TestTable_Tiling(t *testing.T) {
	t.Parallel()

	for base := digits.MinBase; base <= 5; base++ {
		tbl := mustBuild(t, base)
		period := tbl.Period()
		seen := make(map[uint64]segment.Neighborhood)
		for r := uint64(0); r < period; r++ {
			nb, err := tbl.NeighborhoodAt(r)
			require.NoError(t, err)
			seen[nb.Start] = nb
		}
		cover := make([]int, period)
		for _, nb := range seen {
			for k := uint64(0); k < nb.Length; k++ {
				cover[(nb.Start+k)%period]++
			}
		}
		for r, c := range cover {
			require.Equal(t, 1, c, "base %d index %d covered %d times", base, r, c)
		}
		require.NoError(t, segment.CheckPartition(tbl))
	}
}

// TestTable_Depth reads stored depths and rejects unreduced indices.
func TestTable_Depth(t *testing.T) {
	t.Parallel()

	tbl := mustBuild(t, 3)
	d, err := tbl.Depth(5)
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	_, err = tbl.Depth(27)
	assert.ErrorIs(t, err, digits.ErrInvalidIndex)
	_, err = tbl.NeighborhoodAt(27)
	assert.ErrorIs(t, err, digits.ErrInvalidIndex)
	_, err = tbl.NeighborhoodOf(-1)
	assert.ErrorIs(t, err, digits.ErrInvalidIndex)
}

// TestTable_Each stops when the callback returns false.
func TestTable_Each(t *testing.T) {
	t.Parallel()

	tbl := mustBuild(t, 3)
	var got []segment.Neighborhood
	tbl.Each(func(nb segment.Neighborhood) bool {
		got = append(got, nb)
		return len(got) < 3
	})
	assert.Equal(t, base3Runs[:3], got)
}

// TestTable_NeighborhoodsIsCopy guards the immutability of the table.
func TestTable_NeighborhoodsIsCopy(t *testing.T) {
	t.Parallel()

	tbl := mustBuild(t, 3)
	runs := tbl.Neighborhoods()
	runs[0].Length = 99
	assert.Equal(t, base3Runs, tbl.Neighborhoods())
}

// TestBuild_Errors covers base validation, the size limit and cancellation.
func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, err := segment.Build(ctx, 1)
	assert.ErrorIs(t, err, digits.ErrInvalidBase)
	_, err = segment.Build(ctx, digits.MaxBase+1)
	assert.ErrorIs(t, err, digits.ErrOverflow)
	_, err = segment.Build(ctx, 9)
	assert.ErrorIs(t, err, segment.ErrTableTooLarge, "9^9 exceeds the default limit")
	_, err = segment.Build(ctx, 5, segment.WithMaxPeriod(100))
	assert.ErrorIs(t, err, segment.ErrTableTooLarge)

	// a raised limit is still clamped to HardMaxPeriod
	for _, base := range []int{11, digits.MaxBase} {
		require.NotPanics(t, func() {
			_, err = segment.Build(ctx, base, segment.WithMaxPeriod(math.MaxUint64))
		}, "base %d", base)
		assert.ErrorIs(t, err, segment.ErrTableTooLarge, "base %d", base)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = segment.Build(cancelled, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBuild_Logger checks that the build reports through the given logger.
func TestBuild_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mustBuild(t, 3, segment.WithLogger(logger))
	assert.Contains(t, buf.String(), "period table built")
	assert.Contains(t, buf.String(), "neighborhoods=14")
}

// TestOptions_Panic checks that option constructors reject meaningless values.
func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { segment.WithWorkers(-1) })
	assert.Panics(t, func() { segment.WithMaxPeriod(0) })
	assert.Panics(t, func() { segment.WithLogger(nil) })
}
