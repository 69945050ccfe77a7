package rectcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid2x2(t *testing.T) {
	t.Parallel()

	d := Dims{Rows: 2, Cols: 2}

	tests := []struct {
		name string
		mask uint64
		want bool
	}{
		{"vertical cut", 0b1010, true},
		{"horizontal cut", 0b1100, true},
		{"vertical cut, labels swapped", 0b0101, true},
		{"horizontal cut, labels swapped", 0b0011, true},
		{"diagonal breaks rotation rule", 0b0110, false},
		{"all one label", 0b0000, false},
		{"three against one", 0b1110, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Valid(NewPartition(d, test.mask)))
		})
	}
}

func TestValidRejectsDisconnectedRegions(t *testing.T) {
	t.Parallel()

	// 2x4 grid, label 1 at cells {0, 3, 5, 6}:
	//   # . . #
	//   . # # .
	// Every cell opposes its rotation partner, but both label classes
	// fall apart into pieces.
	p := NewPartition(Dims{Rows: 2, Cols: 4}, 0b0110_1001)
	assert.False(t, Valid(p))
}

func TestValidOddCellCount(t *testing.T) {
	t.Parallel()

	// 3x3 has a center cell paired with itself; nothing validates.
	d := Dims{Rows: 3, Cols: 3}
	for mask := uint64(0); mask < 1<<9; mask++ {
		if Valid(NewPartition(d, mask)) {
			t.Fatalf("mask %#b validated on a 3x3 grid", mask)
		}
	}
}

func TestReachableCount(t *testing.T) {
	t.Parallel()

	// Same split grid as above: label 1 splits into {0} and {5, 6},
	// label 0 into {1, 2}, {4}, and {7}.
	p := NewPartition(Dims{Rows: 2, Cols: 4}, 0b0110_1001)

	assert.Equal(t, 1, ReachableCount(p, 0, 1))
	assert.Equal(t, 2, ReachableCount(p, 5, 1))
	assert.Equal(t, 2, ReachableCount(p, 6, 1))
	assert.Equal(t, 2, ReachableCount(p, 1, 0))
	assert.Equal(t, 1, ReachableCount(p, 4, 0))
	assert.Equal(t, 1, ReachableCount(p, 7, 0))

	// A connected region reaches all of its cells from any seed.
	whole := NewPartition(Dims{Rows: 2, Cols: 2}, 0b1100)
	assert.Equal(t, 2, ReachableCount(whole, 2, 1))
	assert.Equal(t, 2, ReachableCount(whole, 0, 0))
}

func TestReachableCountBadSeedPanics(t *testing.T) {
	t.Parallel()

	p := NewPartition(Dims{Rows: 2, Cols: 2}, 0b1100)
	assert.Panics(t, func() { ReachableCount(p, 0, 1) })
	assert.Panics(t, func() { ReachableCount(p, 4, 0) })
}
