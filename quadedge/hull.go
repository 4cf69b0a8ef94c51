package quadedge

import "github.com/gotin/tin/vertex"

// This file navigates the hull ring: the cycle of real-real edges whose
// twin side closes into a ghost triangle (see Pool's ghost-vertex
// convention). Every hull edge's ghost triangle has the ring
// et, g1, g2 with et = e.Twin(), g1 touching the hull edge's destination and
// Ghost, and g2 touching Ghost and the hull edge's origin — so adjacent
// ghost triangles share a half-edge pair across g1/g2's twins, which is
// what lets these helpers step from one hull edge to the next without
// walking through the triangulation interior.

// IsHullEdge reports whether e is a real-real edge whose twin side closes
// the hull (its twin's left face is a ghost triangle).
func IsHullEdge(p *Pool, e EdgeIndex) bool {
	if p.Origin(e).IsGhost() || p.Destination(e).IsGhost() {
		return false
	}
	et := e.Twin()
	g1 := p.FaceNext(et)
	g2 := p.FaceNext(g1)
	return p.Origin(g2) == vertex.Ghost
}

// NextHullEdge returns the hull edge following e around the hull ring, in
// the direction of e (i.e. the edge starting at Destination(e)).
func NextHullEdge(p *Pool, e EdgeIndex) EdgeIndex {
	et := e.Twin()
	g1 := p.FaceNext(et)
	g2 := p.FaceNext(g1)
	return p.FacePrev(g2.Twin()).Twin()
}

// PrevHullEdge returns the hull edge preceding e around the hull ring (the
// edge ending at Origin(e)).
func PrevHullEdge(p *Pool, e EdgeIndex) EdgeIndex {
	et := e.Twin()
	g1 := p.FaceNext(et)
	return p.FaceNext(g1.Twin()).Twin()
}
