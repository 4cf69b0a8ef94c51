// Package constraint embeds segment and region constraints into a
// quad-edge mesh (spec.md §4.F): forcing a constrained edge into the
// triangulation by flipping whatever unconstrained edges cross it (the
// Lawson channel algorithm), then flood-filling region interior/border
// labels outward from a seed face.
//
// InsertSegment's find-all-crossings-then-flip-until-gone loop is adapted
// from the teacher's cdt.forceEdge/findIntersectingEdges: the same
// gather-a-worklist, flip-and-requeue-new-crossings structure, re-expressed
// over quadedge.Pool edges instead of TriSoup (TriID, edge-index) pairs.
package constraint

import (
	"github.com/pkg/errors"

	"github.com/gotin/tin/predicates"
	"github.com/gotin/tin/quadedge"
	"github.com/gotin/tin/vertex"
)

// ErrCrossesExistingConstraint is returned when a new segment constraint
// would have to flip an edge that is itself already constrained —
// two constraints intersect, which is a precondition violation per
// spec.md §4.F.
var ErrCrossesExistingConstraint = errors.New("constraint: segment crosses an existing constrained edge")

// ErrZeroLength is returned for a degenerate (equal-endpoint) segment.
var ErrZeroLength = errors.New("constraint: zero-length segment")

// ErrForceFailed is returned when the flip loop exceeds its budget without
// producing the requested edge (indicates a non-Delaunay or otherwise
// inconsistent mesh, or truly overlapping input geometry).
var ErrForceFailed = errors.New("constraint: failed to force segment into mesh")

// VertexLookup resolves a vertex.ID to coordinates.
type VertexLookup interface {
	Vertex(id vertex.ID) vertex.Vertex
}

// Kind distinguishes the two constraint flavors spec.md §4.F defines:
// closed region borders (which also get interior-face labeling) and open
// polylines (line-member only, no interior side).
type Kind int

const (
	KindRegionBorder Kind = iota
	KindLinear
)

// InsertSegment forces the edge (a,b) to exist in the mesh, flipping any
// unconstrained edges that cross it, then marks it with the given kind and
// constraint id. If (a,b) already exists as an edge, no flips are needed.
func InsertSegment(pool *quadedge.Pool, vl VertexLookup, th vertex.Thresholds, a, b vertex.ID, kind Kind, constraintID int32) error {
	if a == b {
		return ErrZeroLength
	}

	if e, ok := findDirectEdge(pool, a, b); ok {
		tag(pool, e, kind, constraintID)
		return nil
	}

	if err := forceEdge(pool, vl, th, a, b); err != nil {
		return err
	}

	e, ok := findDirectEdge(pool, a, b)
	if !ok {
		return errors.Wrapf(ErrForceFailed, "constraint: edge (%v,%v) missing after forcing", a, b)
	}
	tag(pool, e, kind, constraintID)
	return nil
}

func tag(pool *quadedge.Pool, e quadedge.EdgeIndex, kind Kind, constraintID int32) {
	pool.SetConstrained(e, true)
	if constraintID != quadedge.NoConstraint {
		pool.SetConstraintIndex(e, constraintID)
	}
	switch kind {
	case KindRegionBorder:
		pool.SetRegionBorder(e, true)
	case KindLinear:
		pool.SetLineMember(e, true)
	}
}

func findDirectEdge(pool *quadedge.Pool, a, b vertex.ID) (quadedge.EdgeIndex, bool) {
	var found quadedge.EdgeIndex = quadedge.NilEdge
	pool.BaseEdges(func(e quadedge.EdgeIndex) {
		if !found.IsNil() {
			return
		}
		if pool.Origin(e) == a && pool.Destination(e) == b {
			found = e
			return
		}
		twin := e.Twin()
		if pool.Origin(twin) == a && pool.Destination(twin) == b {
			found = twin
		}
	})
	if found.IsNil() {
		return quadedge.NilEdge, false
	}
	return found, true
}

// forceEdge flips every unconstrained edge crossing segment (a,b) until
// the segment is representable as a single mesh edge, following the
// teacher's Lawson channel loop.
func forceEdge(pool *quadedge.Pool, vl VertexLookup, th vertex.Thresholds, a, b vertex.ID) error {
	pa := vl.Vertex(a)
	pb := vl.Vertex(b)

	crossing := collectCrossings(pool, vl, th, a, b, pa, pb)
	maxFlips := (pool.Count() + 8) * 3
	flips := 0

	for len(crossing) > 0 && flips < maxFlips {
		e := crossing[0]
		crossing = crossing[1:]

		if !pool.Live(e) {
			continue
		}
		if pool.IsConstrained(e) {
			return errors.Wrapf(ErrCrossesExistingConstraint,
				"constraint: segment (%v,%v) crosses constrained edge (%v,%v)",
				a, b, pool.Origin(e), pool.Destination(e))
		}
		if !segmentsCross(vl, th, pool, e, a, b, pa, pb) {
			continue
		}

		pool.Flip(e)
		flips++

		for _, cand := range []quadedge.EdgeIndex{e, pool.FaceNext(e), pool.FaceNext(pool.FaceNext(e)),
			e.Twin(), pool.FaceNext(e.Twin()), pool.FaceNext(pool.FaceNext(e.Twin()))} {
			if segmentsCross(vl, th, pool, cand, a, b, pa, pb) {
				crossing = append(crossing, cand)
			}
		}
	}

	if flips >= maxFlips {
		return errors.Wrapf(ErrForceFailed, "constraint: exceeded flip budget forcing (%v,%v)", a, b)
	}
	return nil
}

func collectCrossings(pool *quadedge.Pool, vl VertexLookup, th vertex.Thresholds, a, b vertex.ID, pa, pb vertex.Vertex) []quadedge.EdgeIndex {
	var out []quadedge.EdgeIndex
	pool.BaseEdges(func(e quadedge.EdgeIndex) {
		if segmentsCross(vl, th, pool, e, a, b, pa, pb) {
			out = append(out, e)
		}
	})
	return out
}

// segmentsCross reports whether e's undirected endpoints properly cross
// segment (a,b): strict crossing only, shared endpoints never count.
func segmentsCross(vl VertexLookup, th vertex.Thresholds, pool *quadedge.Pool, e quadedge.EdgeIndex, a, b vertex.ID, pa, pb vertex.Vertex) bool {
	u := pool.Origin(e)
	v := pool.Destination(e)
	if u == a || u == b || v == a || v == b {
		return false
	}
	if u.IsGhost() || v.IsGhost() {
		return false
	}

	pu := vl.Vertex(u)
	pv := vl.Vertex(v)

	o1 := predicates.Orient2D(pa, pb, pu, th)
	o2 := predicates.Orient2D(pa, pb, pv, th)
	o3 := predicates.Orient2D(pu, pv, pa, th)
	o4 := predicates.Orient2D(pu, pv, pb, th)

	return o1 != o2 && o1 != 0 && o2 != 0 &&
		o3 != o4 && o3 != 0 && o4 != 0
}
