package segment_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/trinoise/segment"
	"github.com/stretchr/testify/require"
)

// TestTable_ConcurrentReaders shares one table between many goroutines
// without synchronization; run with -race.
func TestTable_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	tbl := mustBuild(t, 5)
	const readers = 16
	var wg sync.WaitGroup
	wg.Add(readers)
	errs := make(chan error, readers)

	for g := 0; g < readers; g++ {
		go func(offset uint64) {
			defer wg.Done()
			for r := offset; r < tbl.Period(); r += readers {
				got, err := tbl.NeighborhoodAt(r)
				if err != nil {
					errs <- err
					return
				}
				want, err := segment.NeighborhoodAt(r, tbl.Base())
				if err != nil {
					errs <- err
					return
				}
				if got != want {
					errs <- segment.ErrPartition
					return
				}
			}
		}(uint64(g))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
