package tri_test

import (
	"testing"

	"github.com/katalvlaran/trinoise/digits"
	"github.com/katalvlaran/trinoise/tri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerator_ModesAgree compares the streaming and tabled generators with
// the package-level Tri over a full period.
func TestGenerator_ModesAgree(t *testing.T) {
	t.Parallel()

	for base := digits.MinBase; base <= 5; base++ {
		streaming, err := tri.New(base)
		require.NoError(t, err)
		tabled, err := tri.New(base, tri.WithTable(mustTable(t, base)))
		require.NoError(t, err)
		assert.False(t, streaming.Tabled())
		assert.True(t, tabled.Tabled())

		for i := int64(0); i < int64(streaming.Period()); i++ {
			want, err := tri.Tri(i, base)
			require.NoError(t, err)
			a, err := streaming.Tri(i)
			require.NoError(t, err)
			b, err := tabled.Tri(i)
			require.NoError(t, err)
			require.Equal(t, want, a, "streaming base %d index %d", base, i)
			require.Equal(t, want, b, "tabled base %d index %d", base, i)
		}
	}
}

// TestGenerator_Fill checks the stream against per-index values, across the
// period boundary and for a starting point inside a neighborhood.
func TestGenerator_Fill(t *testing.T) {
	t.Parallel()

	for _, tabled := range []bool{false, true} {
		var opts []tri.Option
		if tabled {
			opts = append(opts, tri.WithTable(mustTable(t, 3)))
		}
		g, err := tri.New(3, opts...)
		require.NoError(t, err)

		for _, start := range []int64{0, 1, 12, 25, 26, 27 + 3} {
			buf := make([]int, 60)
			require.NoError(t, g.Fill(buf, start))
			for k, v := range buf {
				want := base3Values[(start+int64(k))%27]
				require.Equal(t, want, v, "tabled=%v start %d offset %d", tabled, start, k)
			}
		}

		require.NoError(t, g.Fill(nil, 0), "empty destination is a no-op")
		assert.ErrorIs(t, g.Fill(make([]int, 3), -1), digits.ErrInvalidIndex)
	}
}

// TestGenerator_Successors follows the reference crate's successor counts
// for base 3, with the cyclic join at the period boundary.
func TestGenerator_Successors(t *testing.T) {
	t.Parallel()

	g, err := tri.New(3)
	require.NoError(t, err)
	want := map[int64]uint64{0: 1, 1: 0, 2: 2, 3: 1, 4: 0, 5: 0, 6: 1, 26: 2, 27: 1}
	for i, w := range want {
		got, err := g.Successors(i)
		require.NoError(t, err)
		assert.Equal(t, w, got, "index %d", i)
	}

	// jumping by Successors+1 visits every neighborhood once per period
	var visits int
	for i := int64(2); i < 2+27; visits++ {
		s, err := g.Successors(i)
		require.NoError(t, err)
		i += int64(s) + 1
	}
	assert.Equal(t, 14, visits)
}

// TestGenerator_Category maps indices to categories.
func TestGenerator_Category(t *testing.T) {
	t.Parallel()

	g, err := tri.New(3)
	require.NoError(t, err)
	c, err := g.Category(5)
	require.NoError(t, err)
	assert.Equal(t, tri.Zero, c)
	c, err = g.Category(0)
	require.NoError(t, err)
	assert.Equal(t, tri.Top, c)
	_, err = g.Category(-1)
	assert.ErrorIs(t, err, digits.ErrInvalidIndex)
}

// TestGenerator_Errors covers construction and index validation.
func TestGenerator_Errors(t *testing.T) {
	t.Parallel()

	_, err := tri.New(1)
	assert.ErrorIs(t, err, digits.ErrInvalidBase)
	_, err = tri.New(4, tri.WithTable(mustTable(t, 3)))
	assert.ErrorIs(t, err, tri.ErrBaseMismatch)
	assert.Panics(t, func() { tri.WithTable(nil) })

	g, err := tri.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Base())
	_, err = g.Tri(-1)
	assert.ErrorIs(t, err, digits.ErrInvalidIndex)
	_, err = g.TriReduced(27)
	assert.ErrorIs(t, err, digits.ErrInvalidIndex)
	_, err = g.Successors(-1)
	assert.ErrorIs(t, err, digits.ErrInvalidIndex)
	_, err = g.Neighborhood(-1)
	assert.ErrorIs(t, err, digits.ErrInvalidIndex)

	// index errors carry the digits.Reduce context unchanged
	_, reduceErr := digits.Reduce(-1, 3)
	require.Error(t, reduceErr)
	_, err = g.Tri(-1)
	assert.EqualError(t, err, "Generator.Tri: "+reduceErr.Error())
	err = g.Fill(make([]int, 1), -1)
	assert.EqualError(t, err, "Generator.Fill: "+reduceErr.Error())
}
