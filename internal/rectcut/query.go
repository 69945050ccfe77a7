package rectcut

import "context"

// Query is the engine's front door: it validates raw dimensions,
// answers odd-by-odd grids without enumerating, and serves everything
// else through a per-instance result cache. Construct one per process
// (or per test); there is no package-level state.
type Query struct {
	cache *cache
}

// NewQuery builds a facade around enum. The zero Enumerator gives the
// default exhaustive bound.
func NewQuery(enum Enumerator) *Query {
	return &Query{cache: newCache(enum)}
}

// Count returns the number of ways to cut a rows-by-cols grid into two
// 4-connected regions exchanged by a 180-degree rotation.
//
// Bad input fails with ErrInvalidDimensions; a grid past the
// exhaustive bound fails with ErrSearchSpaceTooLarge. A zero count is
// a result, not an error.
func (q *Query) Count(ctx context.Context, rows, cols int) (int, error) {
	d, err := NewDims(rows, cols)
	if err != nil {
		return 0, err
	}
	if d.Rows%2 == 1 && d.Cols%2 == 1 {
		return 0, nil
	}
	nd, _ := d.Normalized()
	entry, err := q.cache.get(ctx, nd)
	if err != nil {
		return 0, err
	}
	return entry.count, nil
}

// Solutions returns every valid partition of a rows-by-cols grid, in
// the caller's orientation, in a deterministic order. The returned
// slice is the caller's to keep; cached state is never aliased.
func (q *Query) Solutions(ctx context.Context, rows, cols int) ([]Partition, error) {
	d, err := NewDims(rows, cols)
	if err != nil {
		return nil, err
	}
	if d.Rows%2 == 1 && d.Cols%2 == 1 {
		return nil, nil
	}
	nd, swapped := d.Normalized()
	entry, err := q.cache.get(ctx, nd)
	if err != nil {
		return nil, err
	}
	solutions := make([]Partition, len(entry.solutions))
	for i, p := range entry.solutions {
		if swapped {
			p = p.Transpose()
		}
		solutions[i] = p
	}
	return solutions, nil
}
