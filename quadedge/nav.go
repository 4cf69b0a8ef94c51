package quadedge

// This file derives vertex-ring navigation from the stored face-ring links
// (Next/Prev, set by Link) and the pair-twin relationship, following the
// standard half-edge rotation identities: rotating a half-edge once around
// its origin, CCW, is twin(prev(e)); rotating CW is next(twin(e)).

// Twin returns the other half-edge of e's pair.
func (p *Pool) Twin(e EdgeIndex) EdgeIndex {
	return e.Twin()
}

// FaceNext returns the next half-edge around e's left face, CCW.
func (p *Pool) FaceNext(e EdgeIndex) EdgeIndex {
	return p.Next(e)
}

// FacePrev returns the previous half-edge around e's left face, CCW.
func (p *Pool) FacePrev(e EdgeIndex) EdgeIndex {
	return p.Prev(e)
}

// OriginNext returns the next half-edge CCW around origin(e): the edge
// obtained by rotating e one step counter-clockwise about its base vertex.
// Derived as twin(prev(e)) since prev(e) is the face-ring edge ending at
// origin(e).
func (p *Pool) OriginNext(e EdgeIndex) EdgeIndex {
	return p.Prev(e).Twin()
}

// OriginPrev returns the next half-edge CW around origin(e): the inverse of
// OriginNext, derived as next(twin(e)).
func (p *Pool) OriginPrev(e EdgeIndex) EdgeIndex {
	return p.Next(e.Twin())
}

// DestNext returns the next half-edge CCW around destination(e), i.e.
// OriginNext(twin(e)) reflected back through twin so the result still
// points away from destination(e).
func (p *Pool) DestNext(e EdgeIndex) EdgeIndex {
	return p.OriginNext(e.Twin()).Twin()
}

// DestPrev returns the next half-edge CW around destination(e).
func (p *Pool) DestPrev(e EdgeIndex) EdgeIndex {
	return p.OriginPrev(e.Twin()).Twin()
}
