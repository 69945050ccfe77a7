// Package rectcut counts the ways an m-by-n grid of unit cells can be
// split into two edge-connected regions that map onto each other under
// a 180-degree rotation of the grid.
package rectcut

import "fmt"

// MaxDimension caps a single grid side. The candidate space grows as
// 2^(rows*cols), so anything past this is far beyond exhaustive reach
// anyway.
const MaxDimension = 20

// Dims holds validated grid dimensions. Cells are indexed row-major:
// index = row*Cols + col.
type Dims struct {
	Rows, Cols int
}

// NewDims validates raw dimensions. Both sides must be in
// [1, MaxDimension]; anything else is ErrInvalidDimensions.
func NewDims(rows, cols int) (Dims, error) {
	if rows <= 0 || cols <= 0 || rows > MaxDimension || cols > MaxDimension {
		return Dims{}, fmt.Errorf(
			"%w: %dx%d (sides must be in 1..%d)",
			ErrInvalidDimensions, rows, cols, MaxDimension,
		)
	}
	return Dims{Rows: rows, Cols: cols}, nil
}

// Cells returns the number of cells in the grid.
func (d Dims) Cells() int {
	return d.Rows * d.Cols
}

// Normalized returns d with Rows <= Cols, and whether the sides were
// swapped. Transposing a grid transposes its solutions one-to-one, so
// the normalized pair makes a sound cache key.
func (d Dims) Normalized() (Dims, bool) {
	if d.Rows > d.Cols {
		return Dims{Rows: d.Cols, Cols: d.Rows}, true
	}
	return d, false
}

// CellIndex maps (row, col) to a cell index.
func (d Dims) CellIndex(row, col int) int {
	if row < 0 || row >= d.Rows || col < 0 || col >= d.Cols {
		panic(AssertionError{fmt.Sprintf(
			"cell (%d, %d) outside %dx%d grid", row, col, d.Rows, d.Cols,
		)})
	}
	return row*d.Cols + col
}

// RotatedIndex maps a cell to its partner under a 180-degree rotation
// of the grid. Rotation takes (r, c) to (Rows-1-r, Cols-1-c), which in
// row-major indexing is Cells()-1-i.
func (d Dims) RotatedIndex(i int) int {
	d.checkIndex(i)
	return d.Cells() - 1 - i
}

// Neighbors appends the 4-adjacent cell indices of i (up, down, left,
// right, skipping grid edges) to buf and returns the result. Pass a
// reused buffer to avoid allocation in hot loops.
func (d Dims) Neighbors(i int, buf []int) []int {
	d.checkIndex(i)
	row, col := i/d.Cols, i%d.Cols
	if row > 0 {
		buf = append(buf, i-d.Cols)
	}
	if row < d.Rows-1 {
		buf = append(buf, i+d.Cols)
	}
	if col > 0 {
		buf = append(buf, i-1)
	}
	if col < d.Cols-1 {
		buf = append(buf, i+1)
	}
	return buf
}

func (d Dims) checkIndex(i int) {
	if i < 0 || i >= d.Cells() {
		panic(AssertionError{fmt.Sprintf(
			"cell index %d outside %dx%d grid", i, d.Rows, d.Cols,
		)})
	}
}
