package rectcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionLabels(t *testing.T) {
	t.Parallel()

	p := NewPartition(Dims{Rows: 2, Cols: 2}, 0b1010)
	assert.Equal(t, []uint8{0, 1, 0, 1}, p.Labels())
	assert.Equal(t, uint8(1), p.Label(3))
	assert.Equal(t, uint8(0), p.Label(2))
}

func TestPartitionTranspose(t *testing.T) {
	t.Parallel()

	// 2x3 grid, right column labeled 1:
	//   . . #
	//   . . #
	p := NewPartition(Dims{Rows: 2, Cols: 3}, 0b100100)

	tp := p.Transpose()
	assert.Equal(t, Dims{Rows: 3, Cols: 2}, tp.Dims)
	assert.Equal(t, []uint8{0, 0, 0, 0, 1, 1}, tp.Labels())
	assert.Equal(t, p, tp.Transpose())
}

func TestPartitionString(t *testing.T) {
	t.Parallel()

	p := NewPartition(Dims{Rows: 2, Cols: 2}, 0b1100)
	assert.Equal(t, "..\n##\n", p.String())
}

func TestNewPartitionRejectsStrayBits(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewPartition(Dims{Rows: 2, Cols: 2}, 1<<4)
	})
}
