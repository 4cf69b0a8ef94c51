// Package spatial provides near-radius vertex queries used by the builder's
// coincident-vertex merge policy (spec.md §4.F). Adapted from the
// teacher's own spatial.HashGrid/Index pair, retargeted from
// types.Point/types.VertexID to this module's vertex coordinates/vertex.ID.
package spatial

import (
	"math"

	"github.com/gotin/tin/vertex"
)

// HashGrid implements Index using a uniform spatial hash grid: the
// teacher's chosen structure for this kind of incremental point set (no
// pack example reaches for an R-tree or k-d tree third-party library, so
// the grid remains the grounded choice here too).
type HashGrid struct {
	cellSize float64
	cells    map[[2]int][]vertex.ID
}

// NewHashGrid creates a hash grid index with the given cell size, which
// should be on the order of the mesh's nominal point spacing.
func NewHashGrid(cellSize float64) *HashGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &HashGrid{
		cellSize: cellSize,
		cells:    make(map[[2]int][]vertex.ID),
	}
}

// FindNear returns vertex ids in cells overlapping a radius around (x,y).
func (h *HashGrid) FindNear(x, y, radius float64) []vertex.ID {
	if radius < 0 {
		radius = 0
	}

	if radius == 0 {
		cell := h.pointToCell(x, y)
		return append([]vertex.ID(nil), h.cells[cell]...)
	}

	min := h.pointToCell(x-radius, y-radius)
	max := h.pointToCell(x+radius, y+radius)

	var result []vertex.ID
	for cy := min[1]; cy <= max[1]; cy++ {
		for cx := min[0]; cx <= max[0]; cx++ {
			if ids, ok := h.cells[[2]int{cx, cy}]; ok {
				result = append(result, ids...)
			}
		}
	}

	return result
}

// Add registers vertex id at (x,y).
func (h *HashGrid) Add(id vertex.ID, x, y float64) {
	cell := h.pointToCell(x, y)
	h.cells[cell] = append(h.cells[cell], id)
}

func (h *HashGrid) pointToCell(x, y float64) [2]int {
	return [2]int{
		int(math.Floor(x / h.cellSize)),
		int(math.Floor(y / h.cellSize)),
	}
}
