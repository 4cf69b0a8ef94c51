package quadedge

import "github.com/gotin/tin/vertex"

// page holds pairsPerPage half-edge pairs (2*pairsPerPage records). Live
// pairs occupy the dense prefix [0, live); freeing a pair swaps it with the
// last live pair in the page (see free.go's compaction logic).
type page struct {
	rec  [halfEdgesPerPage]record
	live int // number of allocated pairs in this page
	next *page
}

func (pg *page) full() bool {
	return pg.live >= pairsPerPage
}

// Pool is a paged object pool for half-edge pairs (spec.md §4.B).
//
// It owns all memory for half-edges. Allocate is not O(1): it looks up its
// page's number by a linear scan over the pages (see pageNumber), so its
// cost grows with the page count. Each edge's constrained/region-border/line-member flags and constraint
// id are packed directly into the edge's own record (see packed.go)
// rather than a separate side table, so they survive compaction for free.
type Pool struct {
	pages []*page
	avail *page // head of the singly linked list of pages with free capacity
}

// NewPool creates an empty edge pool with one page pre-allocated. The
// available-page list becomes empty whenever every page is full; the next
// Allocate then adds a page.
func NewPool() *Pool {
	p := &Pool{}
	p.addPage()
	return p
}

func (p *Pool) addPage() *page {
	pg := &page{next: p.avail}
	p.pages = append(p.pages, pg)
	p.avail = pg
	return pg
}

// pageNumber returns pg's index within p.pages by a linear scan. Pages are
// never removed, so the result is stable; Allocate calls it on every
// allocation. Record addressing itself uses the page number carried in the
// EdgeIndex.
func (p *Pool) pageNumber(pg *page) int {
	for i, cand := range p.pages {
		if cand == pg {
			return i
		}
	}
	return -1
}

// Allocate creates a new half-edge pair with origins a (base) and b (twin),
// clears all flags, sets the constraint id to NoConstraint, and returns the
// base edge's index. Its cost includes pageNumber's scan over the pages. A
// new page is added at the start of an Allocate call that finds no page
// with free capacity.
func (p *Pool) Allocate(a, b vertex.ID) EdgeIndex {
	if p.avail == nil || p.avail.full() {
		p.addPage()
	}
	pg := p.avail
	pageNum := p.pageNumber(pg)
	slotPair := pg.live
	pg.live++

	base := makeIndex(pageNum, slotPair*2)
	twin := base | 1

	_, baseSlot := pageIndex(base)
	_, twinSlot := pageIndex(twin)
	pg.rec[baseSlot] = record{origin: a, next: NilEdge, prev: NilEdge, packed: 0}
	pg.rec[twinSlot] = record{origin: b, next: NilEdge, prev: NilEdge, packed: uint32(NoConstraint)}

	if pg.full() {
		p.popAvail(pg)
	}
	return base
}

func (p *Pool) popAvail(pg *page) {
	if p.avail == pg {
		p.avail = pg.next
		return
	}
	for cur := p.avail; cur != nil; cur = cur.next {
		if cur.next == pg {
			cur.next = pg.next
			return
		}
	}
}

func (p *Pool) pushAvail(pg *page) {
	for cur := p.avail; cur != nil; cur = cur.next {
		if cur == pg {
			return
		}
	}
	pg.next = p.avail
	p.avail = pg
}

// Live reports whether e names a currently allocated half-edge.
func (p *Pool) Live(e EdgeIndex) bool {
	if e.IsNil() {
		return false
	}
	pg, slot := pageIndex(e)
	if pg < 0 || pg >= len(p.pages) {
		return false
	}
	pair := slot / 2
	return pair < p.pages[pg].live
}

// Origin returns the origin vertex of e (vertex.Ghost if e leaves the ghost
// vertex of a hull-closing ghost triangle).
func (p *Pool) Origin(e EdgeIndex) vertex.ID {
	pg, slot := pageIndex(e)
	return p.pages[pg].rec[slot].origin
}

// SetOrigin reassigns the origin of e (used by Flip/SplitEdge).
func (p *Pool) SetOrigin(e EdgeIndex, v vertex.ID) {
	pg, slot := pageIndex(e)
	p.pages[pg].rec[slot].origin = v
}

// Destination returns origin(twin(e)).
func (p *Pool) Destination(e EdgeIndex) vertex.ID {
	return p.Origin(e.Twin())
}

// Next returns the forward link of e.
func (p *Pool) Next(e EdgeIndex) EdgeIndex {
	pg, slot := pageIndex(e)
	return p.pages[pg].rec[slot].next
}

// SetNext sets the forward link of e.
func (p *Pool) SetNext(e, v EdgeIndex) {
	pg, slot := pageIndex(e)
	p.pages[pg].rec[slot].next = v
}

// Prev returns the reverse link of e.
func (p *Pool) Prev(e EdgeIndex) EdgeIndex {
	pg, slot := pageIndex(e)
	return p.pages[pg].rec[slot].prev
}

// SetPrev sets the reverse link of e.
func (p *Pool) SetPrev(e, v EdgeIndex) {
	pg, slot := pageIndex(e)
	p.pages[pg].rec[slot].prev = v
}

// Link ties a to be followed by b around a face: next(a)=b, prev(b)=a.
func (p *Pool) Link(a, b EdgeIndex) {
	p.SetNext(a, b)
	p.SetPrev(b, a)
}

// BaseEdges calls fn for every live base (even-indexed) half-edge. Order is
// unspecified but stable between mutations.
func (p *Pool) BaseEdges(fn func(EdgeIndex)) {
	for pg, page := range p.pages {
		for pair := 0; pair < page.live; pair++ {
			fn(makeIndex(pg, pair*2))
		}
	}
}

// Count returns the number of live (undirected) edges.
func (p *Pool) Count() int {
	n := 0
	for _, pg := range p.pages {
		n += pg.live
	}
	return n
}
