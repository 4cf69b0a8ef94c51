package quadedge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotin/tin/quadedge"
	"github.com/gotin/tin/vertex"
)

// buildQuad constructs two triangles (A,B,C) and (B,A,D) sharing edge AB,
// plus the outer face A->C->B->D formed by their boundary twins, so every
// live half-edge has next/prev links; it returns the pool and e1 (A->B).
func buildQuad(t *testing.T) (*quadedge.Pool, quadedge.EdgeIndex) {
	t.Helper()
	p := quadedge.NewPool()

	const a, b, c, d vertex.ID = 0, 1, 2, 3

	e1 := p.Allocate(a, b)
	e2 := p.Allocate(b, c)
	e3 := p.Allocate(c, a)
	p.Link(e1, e2)
	p.Link(e2, e3)
	p.Link(e3, e1)

	et := e1.Twin()
	e4 := p.Allocate(a, d)
	e5 := p.Allocate(d, b)
	p.Link(et, e4)
	p.Link(e4, e5)
	p.Link(e5, et)

	p.Link(e3.Twin(), e2.Twin())
	p.Link(e2.Twin(), e5.Twin())
	p.Link(e5.Twin(), e4.Twin())
	p.Link(e4.Twin(), e3.Twin())

	return p, e1
}

func allLiveEdges(p *quadedge.Pool) []quadedge.EdgeIndex {
	var out []quadedge.EdgeIndex
	p.BaseEdges(func(e quadedge.EdgeIndex) {
		out = append(out, e, e.Twin())
	})
	return out
}

func TestQuadEdgeInvariants(t *testing.T) {
	p, _ := buildQuad(t)

	for _, e := range allLiveEdges(p) {
		assert.Equal(t, e, p.Next(p.Prev(e)), "next(prev(e)) == e")
		assert.Equal(t, e, p.Prev(p.Next(e)), "prev(next(e)) == e")
		assert.Equal(t, e, e.Twin().Twin(), "twin(twin(e)) == e")
		assert.Equal(t, p.Destination(e), p.Origin(e.Twin()), "origin(twin(e)) == destination(e)")
	}
}

func TestFlip(t *testing.T) {
	p, e1 := buildQuad(t)

	const a, b, c, d vertex.ID = 0, 1, 2, 3
	et := e1.Twin()
	require.Equal(t, a, p.Origin(e1))
	require.Equal(t, b, p.Origin(et))

	p.Flip(e1)

	assert.Equal(t, c, p.Origin(e1), "flipped edge now originates at C")
	assert.Equal(t, d, p.Origin(et), "flipped edge's twin now originates at D")

	for _, e := range allLiveEdges(p) {
		assert.Equal(t, e, p.Next(p.Prev(e)))
		assert.Equal(t, e, p.Prev(p.Next(e)))
	}
}

func TestSplitEdge(t *testing.T) {
	p, e1 := buildQuad(t)
	const m vertex.ID = 4

	res := p.SplitEdge(e1, m)

	assert.Equal(t, m, p.Destination(res.AM))
	assert.Equal(t, m, p.Origin(res.MB))
	assert.Equal(t, m, p.Origin(res.MC))
	assert.Equal(t, m, p.Origin(res.MD))

	assert.True(t, p.IsSynthetic(res.MC))
	assert.True(t, p.IsSynthetic(res.MD))

	for _, e := range allLiveEdges(p) {
		assert.Equal(t, e, p.Next(p.Prev(e)))
		assert.Equal(t, e, p.Prev(p.Next(e)))
		assert.Equal(t, p.Destination(e), p.Origin(e.Twin()))
	}
}

func TestSplitEdgePreservesConstraint(t *testing.T) {
	p, e1 := buildQuad(t)
	p.SetConstrained(e1, true)
	require.True(t, p.SetConstraintIndex(e1, 7))

	res := p.SplitEdge(e1, vertex.ID(4))

	assert.True(t, p.IsConstrained(res.AM))
	assert.True(t, p.IsConstrained(res.MB))
	assert.EqualValues(t, 7, p.ConstraintIndex(res.AM))
	assert.EqualValues(t, 7, p.ConstraintIndex(res.MB))
	assert.False(t, p.IsConstrained(res.MC))
}

func TestPinwheelWalksAllOutgoingEdges(t *testing.T) {
	p, e1 := buildQuad(t)

	count := 0
	quadedge.Walk(p, e1, func(quadedge.EdgeIndex) bool {
		count++
		return true
	})
	assert.Equal(t, quadedge.Degree(p, e1), count)
	assert.GreaterOrEqual(t, count, 2)
}

func TestSplitFace(t *testing.T) {
	p, e1 := buildQuad(t)
	const v vertex.ID = 9

	boundary := p.SplitFace(e1, v)
	assert.Equal(t, e1, boundary[0])

	for _, e := range allLiveEdges(p) {
		assert.Equal(t, e, p.Next(p.Prev(e)))
		assert.Equal(t, e, p.Prev(p.Next(e)))
		assert.Equal(t, p.Destination(e), p.Origin(e.Twin()))
	}

	// every new triangle touching v should have v reachable in one hop.
	found := false
	quadedge.Walk(p, boundary[0], func(quadedge.EdgeIndex) bool { return true })
	quadedge.Walk(p, boundary[0], func(e quadedge.EdgeIndex) bool {
		if p.Destination(e) == v {
			found = true
		}
		return true
	})
	assert.True(t, found)
}

func TestFreeCompactsPage(t *testing.T) {
	p := quadedge.NewPool()
	e1 := p.Allocate(0, 1)
	e2 := p.Allocate(1, 2)
	_ = p.Allocate(2, 3)

	require.Equal(t, 3, p.Count())
	p.Free(e1)
	assert.Equal(t, 2, p.Count())
	assert.Equal(t, vertex.ID(2), p.Origin(e1)) // the page's last pair moved into e1's slot
	assert.True(t, p.Live(e2))                  // e2 was not the last pair, so it stays in place
}
