package quadedge

import "github.com/gotin/tin/vertex"

// SplitFace inserts vertex v strictly inside the triangular face bounded
// by e, Next(e), Next(Next(e)) — i.e. triangle (A,B,C) — replacing it with
// three triangles (A,B,V), (B,C,V), (C,A,V), per spec.md §4.C's
// vertex-in-face insertion case.
//
// Returns the face's original three boundary edges (e, Next(e),
// Next(Next(e)), unchanged by the split) so the caller's legalize pass
// knows exactly which edges might now violate the Delaunay condition
// against v — mirroring the teacher's insertPointInTriangle, which returns
// the same three post-split EdgeToLegalize entries.
func (p *Pool) SplitFace(e EdgeIndex, v vertex.ID) (boundary [3]EdgeIndex) {
	a := p.Origin(e)
	e2 := p.Next(e)
	b := p.Origin(e2)
	e3 := p.Next(e2)
	c := p.Origin(e3)

	av := p.Allocate(a, v)
	bv := p.Allocate(b, v)
	cv := p.Allocate(c, v)

	avT := av.Twin()
	bvT := bv.Twin()
	cvT := cv.Twin()

	// triangle (A, B, V)
	p.Link(e, bv)
	p.Link(bv, avT)
	p.Link(avT, e)

	// triangle (B, C, V)
	p.Link(e2, cv)
	p.Link(cv, bvT)
	p.Link(bvT, e2)

	// triangle (C, A, V)
	p.Link(e3, av)
	p.Link(av, cvT)
	p.Link(cvT, e3)

	return [3]EdgeIndex{e, e2, e3}
}
