package quadedge

// Pinwheel is a restartable iterator over the half-edges leaving a single
// vertex, in CCW order, per spec.md §4.C's "pinwheel" vertex-ring walk. It
// is lazy: no slice is built, so it survives vertex insertions that don't
// touch the ring being walked. It does not detect mutations of the ring
// itself.
type Pinwheel struct {
	pool    *Pool
	start   EdgeIndex
	cur     EdgeIndex
	started bool
}

// NewPinwheel begins a ring walk at the outgoing half-edge e. Successive
// Next calls visit every half-edge with origin(e) as their origin, CCW,
// until the walk returns to e.
func NewPinwheel(p *Pool, e EdgeIndex) *Pinwheel {
	return &Pinwheel{pool: p, start: e, cur: e}
}

// Next returns the next outgoing half-edge in the ring, or (NilEdge, false)
// once the walk has returned to the starting edge.
func (pw *Pinwheel) Next() (EdgeIndex, bool) {
	if !pw.started {
		pw.started = true
		return pw.cur, true
	}
	nxt := pw.pool.OriginNext(pw.cur)
	if nxt == pw.start {
		return NilEdge, false
	}
	pw.cur = nxt
	return pw.cur, true
}

// Reset restarts the walk at its original edge.
func (pw *Pinwheel) Reset() {
	pw.cur = pw.start
	pw.started = false
}

// Walk calls fn for every outgoing half-edge around origin(e), CCW,
// starting at e. fn's return value stops the walk early when false.
func Walk(p *Pool, e EdgeIndex, fn func(EdgeIndex) bool) {
	pw := NewPinwheel(p, e)
	for {
		cur, ok := pw.Next()
		if !ok {
			return
		}
		if !fn(cur) {
			return
		}
	}
}

// Degree counts the number of outgoing half-edges around origin(e).
func Degree(p *Pool, e EdgeIndex) int {
	n := 0
	Walk(p, e, func(EdgeIndex) bool {
		n++
		return true
	})
	return n
}
