package board

import "github.com/vovakirdan/tui-sweeper/internal/core"

// AdjacencyIndex maps each cell to its existing, unmasked neighbours.
// Entries are computed on first lookup and cached for the lifetime of the
// board; Reset builds a new index.
type AdjacencyIndex struct {
	height int
	width  int
	masked []bool
	cache  [][]int
	ready  []bool
}

// NewAdjacencyIndex creates an index for a height x width grid.
// masked is row-major and may be nil when no cell is masked.
func NewAdjacencyIndex(height, width int, masked []bool) *AdjacencyIndex {
	n := height * width
	if masked == nil {
		masked = make([]bool, n)
	}
	return &AdjacencyIndex{
		height: height,
		width:  width,
		masked: masked,
		cache:  make([][]int, n),
		ready:  make([]bool, n),
	}
}

// Neighbors returns the unmasked neighbours of c in reading order: the row
// above left to right, then left and right, then the row below.
// Out-of-range coordinates have no neighbours.
func (a *AdjacencyIndex) Neighbors(c core.Coord) []core.Coord {
	if !c.Within(a.height, a.width) {
		return nil
	}
	idx := a.indices(c.Index(a.width))
	out := make([]core.Coord, len(idx))
	for i, n := range idx {
		out[i] = core.FromIndex(n, a.width)
	}
	return out
}

// cached reports how many cells have their neighbour list computed.
func (a *AdjacencyIndex) cached() int {
	n := 0
	for _, ok := range a.ready {
		if ok {
			n++
		}
	}
	return n
}

// indices returns the neighbour list of the row-major index i.
// The returned slice is shared with the cache and must not be modified.
func (a *AdjacencyIndex) indices(i int) []int {
	if a.ready[i] {
		return a.cache[i]
	}

	c := core.FromIndex(i, a.width)
	result := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nc := c.Add(dx, dy)
			if (dx == 0 && dy == 0) || !nc.Within(a.height, a.width) {
				continue
			}
			n := nc.Index(a.width)
			if !a.masked[n] {
				result = append(result, n)
			}
		}
	}

	a.cache[i] = result
	a.ready[i] = true
	return result
}
