package ols

import (
	"github.com/gotin/tin/nn"
	"github.com/gotin/tin/quadedge"
	"github.com/gotin/tin/vertex"
)

// SamplePolicy selects how CollectSamples gathers a query's neighborhood
// (spec.md §4.H).
type SamplePolicy int

const (
	// NaturalNeighborhood takes the query's natural neighbors (the cavity
	// that would form if the query were inserted) plus the second ring
	// around them.
	NaturalNeighborhood SamplePolicy = iota

	// CoincidentVertex takes the pinwheel ring around an existing vertex
	// plus its second ring; used for interpolation exactly at a vertex
	// and for CrossValidate.
	CoincidentVertex
)

// VertexLookup resolves a vertex.ID to coordinates and the value being
// regressed (vertex.Vertex.Z).
type VertexLookup interface {
	Vertex(id vertex.ID) vertex.Vertex
}

// CollectSamples gathers the neighborhood sample set for a query, per
// policy. exclude, if not vertex.Ghost, omits that vertex from the result
// (used by cross-validation to leave the query vertex itself out of its
// own fit).
func CollectSamples(pool *quadedge.Pool, vl VertexLookup, th vertex.Thresholds, startFace quadedge.EdgeIndex, q vertex.Vertex, policy SamplePolicy, exclude vertex.ID) ([]vertex.ID, error) {
	var ring []vertex.ID

	switch policy {
	case CoincidentVertex:
		e := edgeWithOrigin(pool, q.Index)
		if e.IsNil() {
			return nil, ErrNoSamples
		}
		quadedge.Walk(pool, e, func(edge quadedge.EdgeIndex) bool {
			d := pool.Destination(edge)
			if !d.IsGhost() {
				ring = append(ring, d)
			}
			return true
		})
	default:
		res, err := nn.Query(pool, vl, th, startFace, q)
		if err != nil {
			return nil, err
		}
		for _, w := range res.Weights {
			ring = append(ring, w.Vertex)
		}
	}

	seen := make(map[vertex.ID]bool, len(ring))
	for _, id := range ring {
		seen[id] = true
	}

	second := make(map[vertex.ID]bool)
	for _, id := range ring {
		e := edgeWithOrigin(pool, id)
		if e.IsNil() {
			continue
		}
		quadedge.Walk(pool, e, func(edge quadedge.EdgeIndex) bool {
			d := pool.Destination(edge)
			if !d.IsGhost() && !seen[d] {
				second[d] = true
			}
			return true
		})
	}

	out := make([]vertex.ID, 0, len(ring)+len(second))
	out = append(out, ring...)
	for id := range second {
		out = append(out, id)
	}

	if !exclude.IsGhost() {
		filtered := out[:0]
		for _, id := range out {
			if id != exclude {
				filtered = append(filtered, id)
			}
		}
		out = filtered
	}

	if len(out) == 0 {
		return nil, ErrNoSamples
	}
	return out, nil
}

// edgeWithOrigin returns a live half-edge whose origin is v, or NilEdge if
// v has no incident edges in the mesh. Scans base edges, checking both
// directions of each pair, since a base edge's stored origin may be either
// endpoint.
func edgeWithOrigin(pool *quadedge.Pool, v vertex.ID) quadedge.EdgeIndex {
	found := quadedge.NilEdge
	pool.BaseEdges(func(e quadedge.EdgeIndex) {
		if !found.IsNil() {
			return
		}
		switch v {
		case pool.Origin(e):
			found = e
		case pool.Origin(e.Twin()):
			found = e.Twin()
		}
	})
	return found
}
