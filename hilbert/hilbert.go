// Package hilbert sorts vertices along a Hilbert space-filling curve before
// incremental insertion (spec.md §4.E "Insertion order"), so that
// consecutively inserted points tend to be spatially close, keeping the
// point locator's walk distance short.
//
// Key computation is embarrassingly parallel (each vertex's key depends
// only on its own coordinates), so it is farmed out with the teacher
// pack's essentials.ConcurrentMap, the same concurrency primitive
// mbrukman-model3d's dual-contouring exporter uses for its own
// per-element precomputation passes. The sort itself, and every mesh
// mutation that follows, stays single-threaded per spec.md's insertion
// model.
package hilbert

import (
	"sort"

	"github.com/unixpickle/essentials"

	"github.com/gotin/tin/vertex"
)

// Order is the number of bits per dimension used by the curve. 16 bits
// gives 65536 cells per axis, far finer than any float64 coordinate
// spacing this library expects to resolve.
const Order = 16

// Key computes the Hilbert distance of (x, y) along a curve of the given
// bit order, after mapping [min,max] linearly onto the curve's integer
// grid. Points outside [min,max] are clamped.
func Key(x, y, minX, minY, maxX, maxY float64, order uint) uint64 {
	side := uint64(1) << order
	gx := gridCoord(x, minX, maxX, side)
	gy := gridCoord(y, minY, maxY, side)
	return xy2d(order, gx, gy)
}

func gridCoord(v, lo, hi float64, side uint64) uint64 {
	if hi <= lo {
		return 0
	}
	f := (v - lo) / (hi - lo)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	g := uint64(f * float64(side-1))
	if g >= side {
		g = side - 1
	}
	return g
}

// xy2d converts (x,y) grid coordinates to their distance along the Hilbert
// curve of the given order, using the standard bit-rotation algorithm.
func xy2d(order uint, x, y uint64) uint64 {
	var d uint64
	for s := uint64(1) << (order - 1); s > 0; s >>= 1 {
		var rx, ry uint64
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		x, y = rotate(s, x, y, rx, ry)
	}
	return d
}

func rotate(n, x, y, rx, ry uint64) (uint64, uint64) {
	if ry == 0 {
		if rx == 1 {
			x = n - 1 - x
			y = n - 1 - y
		}
		x, y = y, x
	}
	return x, y
}

// SortVertices returns a permutation of indices into vs, ordered by
// Hilbert key over vs's bounding box, computed with up to numGos
// goroutines (0 selects essentials.ConcurrentMap's default).
func SortVertices(vs []vertex.Vertex, numGos int) []int {
	n := len(vs)
	if n == 0 {
		return nil
	}
	bb := vertex.ComputeBoundingBox(vs)

	keys := make([]uint64, n)
	essentials.ConcurrentMap(numGos, n, func(i int) {
		keys[i] = Key(vs[i].X, vs[i].Y, bb.MinX, bb.MinY, bb.MaxX, bb.MaxY, Order)
	})

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		ki, kj := keys[order[i]], keys[order[j]]
		if ki != kj {
			return ki < kj
		}
		return order[i] < order[j]
	})
	return order
}
