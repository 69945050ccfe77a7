package rectcut

import (
	"math/bits"

	"github.com/gammazero/deque"
)

// validator bundles the scratch buffers flood fill needs so a hot
// enumeration loop does not allocate per candidate. Not safe for
// concurrent use; each worker owns its own validator.
type validator struct {
	dims    Dims
	visited []bool
	queue   deque.Deque[int]
	nbuf    [4]int
}

func newValidator(d Dims) *validator {
	return &validator{
		dims:    d,
		visited: make([]bool, d.Cells()),
	}
}

// valid reports whether mask encodes a solution: every cell carries the
// opposite label of its 180-degree partner, and each label class forms
// a single 4-connected region. The pairwise rotation check runs first
// and short-circuits, since it rejects almost all candidates for a few
// bit operations; connectivity is saved for the survivors.
func (v *validator) valid(mask uint64) bool {
	n := v.dims.Cells()
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		if mask>>i&1 == mask>>j&1 {
			return false
		}
	}
	if n%2 != 0 {
		// Odd cell count leaves a center cell paired with itself.
		return false
	}
	return v.connected(mask, 0) && v.connected(mask, 1)
}

// connected reports whether every cell carrying label is reachable from
// the first such cell in index order.
func (v *validator) connected(mask uint64, label uint64) bool {
	n := v.dims.Cells()
	total := bits.OnesCount64(mask)
	if label == 0 {
		total = n - total
	}
	if total == 0 {
		return false
	}
	seed := 0
	for mask>>seed&1 != label {
		seed++
	}
	return v.floodCount(mask, seed, label) == total
}

// floodCount counts the cells carrying label that are reachable from
// seed via 4-neighbor steps. seed must carry label. Each cell is
// enqueued at most once, so a call is O(cells).
func (v *validator) floodCount(mask uint64, seed int, label uint64) int {
	if mask>>seed&1 != label {
		panic(AssertionError{"flood fill seeded outside its region"})
	}
	for i := range v.visited {
		v.visited[i] = false
	}
	v.queue.Clear()
	v.queue.PushBack(seed)
	v.visited[seed] = true
	count := 0
	for v.queue.Len() > 0 {
		i := v.queue.PopFront()
		count++
		for _, j := range v.dims.Neighbors(i, v.nbuf[:0]) {
			if !v.visited[j] && mask>>j&1 == label {
				v.visited[j] = true
				v.queue.PushBack(j)
			}
		}
	}
	return count
}

// Valid reports whether p is a solution partition. Convenience wrapper
// around a throwaway validator; enumeration reuses one instead.
func Valid(p Partition) bool {
	return newValidator(p.Dims).valid(p.mask)
}

// ReachableCount counts the cells of p carrying label that flood fill
// reaches from seed. seed must itself carry label.
func ReachableCount(p Partition, seed int, label uint8) int {
	p.checkIndex(seed)
	return newValidator(p.Dims).floodCount(p.mask, seed, uint64(label))
}
