package rectcut

import (
	"fmt"
	"strings"
)

// Partition assigns one of two labels to every cell of a grid. Bit i of
// the mask is the label of cell i (row-major). Value type, immutable;
// consumers may copy it freely.
type Partition struct {
	Dims
	mask uint64
}

// NewPartition builds a partition from a raw cell mask. Bits above the
// grid size must be zero.
func NewPartition(d Dims, mask uint64) Partition {
	if n := d.Cells(); n < 64 && mask>>n != 0 {
		panic(AssertionError{fmt.Sprintf(
			"mask %#x has bits outside %dx%d grid", mask, d.Rows, d.Cols,
		)})
	}
	return Partition{Dims: d, mask: mask}
}

// Mask returns the raw cell mask.
func (p Partition) Mask() uint64 {
	return p.mask
}

// Label returns the label (0 or 1) of cell i.
func (p Partition) Label(i int) uint8 {
	p.checkIndex(i)
	return uint8(p.mask >> i & 1)
}

// Labels returns the row-major 0/1 label sequence, one entry per cell.
// The slice is freshly allocated; callers may keep it.
func (p Partition) Labels() []uint8 {
	labels := make([]uint8, p.Cells())
	for i := range labels {
		labels[i] = uint8(p.mask >> i & 1)
	}
	return labels
}

// Transpose returns the same cut on the transposed grid: cell (r, c)
// keeps its label at (c, r).
func (p Partition) Transpose() Partition {
	t := Dims{Rows: p.Cols, Cols: p.Rows}
	var mask uint64
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			if p.mask>>(r*p.Cols+c)&1 != 0 {
				mask |= 1 << (c*t.Cols + r)
			}
		}
	}
	return Partition{Dims: t, mask: mask}
}

// String renders the grid with '.' for label 0 and '#' for label 1, one
// row per line.
func (p Partition) String() string {
	var b strings.Builder
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			if p.mask>>(r*p.Cols+c)&1 != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
