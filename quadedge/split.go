package quadedge

import "github.com/gotin/tin/vertex"

// SplitResult names the edges produced by SplitEdge, all with origin m
// except AM and MA's opposite twins, for callers that need to re-locate
// around the new vertex without re-deriving them from the pinwheel.
type SplitResult struct {
	AM EdgeIndex // origin a, destination m (e's old pair, reused)
	MB EdgeIndex // origin m, destination b (newly allocated)
	MC EdgeIndex // origin m, destination c (apex of e's left face)
	MD EdgeIndex // origin m, destination d (apex of twin(e)'s left face)
}

// SplitEdge inserts vertex m at a point on edge e, replacing e's two
// adjacent triangles (A,B,C) and (B,A,D) with four triangles
// (A,M,C), (M,B,C), (B,M,D), (M,A,D), per spec.md §4.C's vertex-on-edge
// insertion case.
//
// e's pair is reused and shortened to A-M; a new pair M-B replaces the
// destination half; two new pairs M-C and M-D connect the new vertex to
// the two apexes. If e (or its twin) carried a constrained/region flag,
// SplitEdge copies it onto the corresponding shortened half so the
// constraint survives the split; the two new apex-connecting edges are
// always left unconstrained and marked synthetic.
func (p *Pool) SplitEdge(e EdgeIndex, m vertex.ID) SplitResult {
	et := e.Twin()

	a := p.Origin(e)
	b := p.Origin(et)

	e2 := p.Next(e)
	e3 := p.Next(e2)
	c := p.Origin(e3)

	e4 := p.Next(et)
	e5 := p.Next(e4)
	d := p.Origin(e5)

	wasConstrained := p.IsConstrained(e)
	wasRegionBorder := p.IsRegionBorder(e)
	wasLineMember := p.IsLineMember(e)
	constraintID := p.ConstraintIndex(e)

	mb := p.Allocate(m, b)
	mc := p.Allocate(m, c)
	md := p.Allocate(m, d)

	p.SetOrigin(et, m) // et: was B->A, becomes M->A

	_ = a // a remains origin(e); kept for documentation clarity

	p.SetSynthetic(mc, true)
	p.SetSynthetic(md, true)

	if wasConstrained {
		p.SetConstrained(e, true)
		p.SetConstrained(mb, true)
	}
	if wasRegionBorder {
		p.SetRegionBorder(e, true)
		p.SetRegionBorder(mb, true)
	}
	if wasLineMember {
		p.SetLineMember(e, true)
		p.SetLineMember(mb, true)
	}
	if constraintID != NoConstraint {
		p.SetConstraintIndex(e, constraintID)
		p.SetConstraintIndex(mb, constraintID)
	}

	mcTwin := mc.Twin()
	mdTwin := md.Twin()
	etNew := et // now M->A

	// triangle (A, M, C): e(A->M), mc(M->C), e3(C->A)
	p.Link(e, mc)
	p.Link(mc, e3)
	p.Link(e3, e)

	// triangle (M, B, C): mb(M->B), e2(B->C), mcTwin(C->M)
	p.Link(mb, e2)
	p.Link(e2, mcTwin)
	p.Link(mcTwin, mb)

	// triangle (B, M, D): mb.Twin()(B->M), md(M->D), e5(D->B)
	mbTwin := mb.Twin()
	p.Link(mbTwin, md)
	p.Link(md, e5)
	p.Link(e5, mbTwin)

	// triangle (M, A, D): etNew(M->A), e4(A->D), mdTwin(D->M)
	p.Link(etNew, e4)
	p.Link(e4, mdTwin)
	p.Link(mdTwin, etNew)

	return SplitResult{AM: e, MB: mb, MC: mc, MD: md}
}
