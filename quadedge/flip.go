package quadedge

// Flip performs a Delaunay diagonal swap on e: the quadrilateral formed by
// e's two adjacent triangles is rediagonalized from origin(e)-destination(e)
// to the two triangles' opposite apexes. e's pair is reused in place (no
// allocation): callers must not flip an edge carrying constraint flags —
// build.Builder.legalize (build/builder.go) checks IsConstrained before
// calling Flip, per spec.md §4.D.
//
// Before:
//
//	triangle (A,B,C) = e(A→B), e2=Next(e)(B→C), e3=Next(e2)(C→A)
//	triangle (B,A,D) = et(B→A), e4=Next(et)(A→D), e5=Next(e4)(D→B)
//
// After: the shared edge becomes C→D (reusing e's pair), giving
// triangle (C,A,D) and triangle (D,B,C).
func (p *Pool) Flip(e EdgeIndex) {
	et := e.Twin()

	e2 := p.Next(e)
	e3 := p.Next(e2)
	e4 := p.Next(et)
	e5 := p.Next(e4)

	c := p.Origin(e3)
	d := p.Origin(e5)

	p.SetOrigin(e, c)
	p.SetOrigin(et, d)

	p.Link(e3, e4)
	p.Link(e4, et)
	p.Link(et, e3)

	p.Link(e5, e2)
	p.Link(e2, e)
	p.Link(e, e5)
}
