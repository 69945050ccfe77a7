package rectcut

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCountFixtures(t *testing.T) {
	t.Parallel()

	q := NewQuery(Enumerator{})
	ctx := context.Background()

	for _, test := range knownCounts {
		count, err := q.Count(ctx, test.rows, test.cols)
		require.NoError(t, err)
		assert.Equal(t, test.count, count, "%dx%d", test.rows, test.cols)
	}
}

func TestQueryInvalidDimensions(t *testing.T) {
	t.Parallel()

	q := NewQuery(Enumerator{})
	ctx := context.Background()

	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-2, 3}, {21, 2}} {
		_, err := q.Count(ctx, dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%v", dims)
		_, err = q.Solutions(ctx, dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%v", dims)
	}
}

func TestQueryOddByOddIsZeroNotError(t *testing.T) {
	t.Parallel()

	// A huge odd-by-odd grid is still an instant zero: parity rejects
	// it before any enumeration or bound check.
	q := NewQuery(Enumerator{MaxCells: 8})
	ctx := context.Background()

	count, err := q.Count(ctx, 19, 19)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = q.Count(ctx, 1, 1)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestQueryTransposeSymmetry(t *testing.T) {
	t.Parallel()

	q := NewQuery(Enumerator{})
	ctx := context.Background()

	for _, dims := range [][2]int{{2, 3}, {3, 4}, {2, 6}, {4, 5}} {
		a, err := q.Count(ctx, dims[0], dims[1])
		require.NoError(t, err)
		b, err := q.Count(ctx, dims[1], dims[0])
		require.NoError(t, err)
		assert.Equal(t, a, b, "%v", dims)
	}
}

func TestQuerySolutionsMatchOrientation(t *testing.T) {
	t.Parallel()

	q := NewQuery(Enumerator{})
	ctx := context.Background()

	solutions, err := q.Solutions(ctx, 4, 3)
	require.NoError(t, err)
	require.Len(t, solutions, 9)

	for _, p := range solutions {
		assert.Equal(t, Dims{Rows: 4, Cols: 3}, p.Dims)
		assert.True(t, Valid(p), "transposed partition failed validation:\n%s", p)
	}
}

func TestQueryIdempotence(t *testing.T) {
	t.Parallel()

	q := NewQuery(Enumerator{})
	ctx := context.Background()

	first, err := q.Solutions(ctx, 3, 4)
	require.NoError(t, err)
	second, err := q.Solutions(ctx, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Instances are independent: a fresh facade recomputes and agrees.
	other, err := NewQuery(Enumerator{}).Solutions(ctx, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, first, other)
}

func TestQuerySearchSpaceTooLarge(t *testing.T) {
	t.Parallel()

	q := NewQuery(Enumerator{MaxCells: 12})
	ctx := context.Background()

	count, err := q.Count(ctx, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 9, count)

	_, err = q.Count(ctx, 4, 4)
	require.ErrorIs(t, err, ErrSearchSpaceTooLarge)
	_, err = q.Solutions(ctx, 4, 4)
	require.ErrorIs(t, err, ErrSearchSpaceTooLarge)
}

func TestQueryConcurrentCallersAgree(t *testing.T) {
	t.Parallel()

	q := NewQuery(Enumerator{})
	ctx := context.Background()

	const callers = 16
	counts := make([]int, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			counts[i], errs[i] = q.Count(ctx, 3, 6)
		}()
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, 23, counts[i])
	}
}
