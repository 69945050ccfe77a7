package rectcut

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxCells is the default exhaustive-search bound on rows*cols.
// 28 cells means 2^27 candidate masks, a few seconds of work; every
// extra cell doubles it.
const DefaultMaxCells = 28

// cancelEvery is how many candidate masks a worker examines between
// context checks.
const cancelEvery = 8192

// Enumerator walks the full candidate space for a grid and collects the
// partitions that validate. The zero value uses DefaultMaxCells.
type Enumerator struct {
	// MaxCells bounds rows*cols for exhaustive search. Zero means
	// DefaultMaxCells.
	MaxCells int
}

func (e Enumerator) maxCells() int {
	limit := DefaultMaxCells
	if e.MaxCells > 0 {
		limit = e.MaxCells
	}
	// A uint64 mask holds 62 cells once cell 0 is pinned; in practice
	// the wall is hit long before that.
	if limit > 62 {
		limit = 62
	}
	return limit
}

// Enumerate returns every solution partition of d in increasing mask
// order. The order carries no meaning but is stable across runs, so
// callers can sample it reproducibly.
//
// Candidates fix cell 0's label to 0. A solution and its complement
// describe the same cut with the labels swapped, and cell 0 carries
// opposite labels in the two, so this enumerates each cut exactly once.
//
// Grids past the MaxCells bound fail with ErrSearchSpaceTooLarge. The
// context is checked periodically; cancellation aborts with ctx.Err().
func (e Enumerator) Enumerate(ctx context.Context, d Dims) ([]Partition, error) {
	n := d.Cells()
	if n > e.maxCells() {
		return nil, fmt.Errorf(
			"%w: %dx%d grid needs %d-bit masks, limit is %d",
			ErrSearchSpaceTooLarge, d.Rows, d.Cols, n, e.maxCells(),
		)
	}
	if d.Rows%2 == 1 && d.Cols%2 == 1 {
		// The center cell is its own rotation partner and can never
		// carry the opposite label of itself.
		return nil, nil
	}

	// Workers take contiguous mask ranges; validation of one mask is
	// independent of every other, and concatenating the per-range
	// results in range order preserves increasing mask order.
	span := uint64(1) << n
	workers := runtime.GOMAXPROCS(0)
	if shardCap := int(span / (2 * cancelEvery)); workers > shardCap {
		workers = shardCap
	}
	if workers < 1 {
		workers = 1
	}

	// Shard bounds stay even so every shard keeps the cell-0 pin.
	chunk := span / uint64(workers) &^ 1
	found := make([][]Partition, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := chunk * uint64(w)
		hi := lo + chunk
		if w == workers-1 {
			hi = span
		}
		g.Go(func() error {
			v := newValidator(d)
			var batch []Partition
			for mask, i := lo, 0; mask < hi; mask, i = mask+2, i+1 {
				if i%cancelEvery == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
				if v.valid(mask) {
					batch = append(batch, Partition{Dims: d, mask: mask})
				}
			}
			found[w] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var solutions []Partition
	for _, batch := range found {
		solutions = append(solutions, batch...)
	}
	return solutions, nil
}

// Count returns the number of solution partitions of d. Same bounds and
// cancellation behavior as Enumerate.
func (e Enumerator) Count(ctx context.Context, d Dims) (int, error) {
	solutions, err := e.Enumerate(ctx, d)
	if err != nil {
		return 0, err
	}
	return len(solutions), nil
}
