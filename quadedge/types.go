// Package quadedge implements the edge-pool allocator and mesh topology of
// spec.md §4.B-§4.C: a paged pool of half-edge pairs addressed by stable
// 32-bit indices, and the navigation primitives (next/prev/twin/pinwheel)
// and mutations (flip/split) built on top of it.
//
// The allocation strategy follows the "compacting array" choice documented
// in DESIGN.md: each page keeps its live pairs in a dense prefix, and
// freeing a pair swaps it with the page's last live pair, re-patching the
// handful of external references the moved pair held. This mirrors the
// teacher's cdt.TriSoup.AddTri/RemoveTri free-list-and-reuse idiom, applied
// to half-edge pairs instead of triangles.
package quadedge

import "github.com/gotin/tin/vertex"

// EdgeIndex is a stable (until the next mutating pool operation) identifier
// for one directed half-edge. The base half-edge of a pair has an even
// index; its twin has the same index with the low bit set (index XOR 1).
type EdgeIndex int32

// NilEdge is the sentinel "no edge" value.
const NilEdge EdgeIndex = -1

// IsNil reports whether e is the nil sentinel.
func (e EdgeIndex) IsNil() bool {
	return e < 0
}

// IsBase reports whether e is the base (even-indexed) half of its pair.
func (e EdgeIndex) IsBase() bool {
	return e&1 == 0
}

// Twin returns the other half-edge of e's pair: base<->twin by flipping the
// low bit, per spec.md §3 ("Edge index").
func (e EdgeIndex) Twin() EdgeIndex {
	if e < 0 {
		return e
	}
	return e ^ 1
}

const (
	pairsPerPage     = 1024
	halfEdgesPerPage = pairsPerPage * 2
)

// pageIndex splits a half-edge index into its page number and slot within
// that page. i >> 11 is the page (2048 = 1<<11 half-edges per page); i &
// 0x7FF is the slot, per spec.md §4.B.
func pageIndex(i EdgeIndex) (page int, slot int) {
	return int(i) >> 11, int(i) & 0x7FF
}

func makeIndex(page, slot int) EdgeIndex {
	return EdgeIndex(page<<11 | slot)
}

// record is the per-half-edge payload: origin vertex, navigation links, and
// (read/written only through the twin slot — see packed.go) the bit-packed
// flag/constraint word.
type record struct {
	origin vertex.ID
	next   EdgeIndex
	prev   EdgeIndex
	packed uint32
}
