package locate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotin/tin/locate"
	"github.com/gotin/tin/quadedge"
	"github.com/gotin/tin/vertex"
)

type vertexTable map[vertex.ID]vertex.Vertex

func (vt vertexTable) Vertex(id vertex.ID) vertex.Vertex {
	return vt[id]
}

// buildSquare builds two triangles covering the unit square: (0,1,2) and
// (2,3,0) with vertices 0=(0,0) 1=(1,0) 2=(1,1) 3=(0,1).
func buildSquare(t *testing.T) (*quadedge.Pool, vertexTable, quadedge.EdgeIndex) {
	t.Helper()
	p := quadedge.NewPool()
	vt := vertexTable{
		0: vertex.New(0, 0, 0, 0),
		1: vertex.New(1, 0, 0, 1),
		2: vertex.New(1, 1, 0, 2),
		3: vertex.New(0, 1, 0, 3),
	}

	e01 := p.Allocate(0, 1)
	e12 := p.Allocate(1, 2)
	e20 := p.Allocate(2, 0)
	p.Link(e01, e12)
	p.Link(e12, e20)
	p.Link(e20, e01)

	e02 := e20.Twin() // origin 0, dest 2
	e23 := p.Allocate(2, 3)
	e30 := p.Allocate(3, 0)
	p.Link(e02, e23)
	p.Link(e23, e30)
	p.Link(e30, e02)

	return p, vt, e01
}

func TestLocateFindsInteriorPoint(t *testing.T) {
	p, vt, start := buildSquare(t)
	loc := locate.New(p, vt, vertex.NewThresholds(1.0), 42)
	loc.SetHint(start)

	res, err := loc.Locate(vertex.New(0.8, 0.2, 0, 99))
	require.NoError(t, err)
	assert.False(t, res.OnEdge)
}

func TestLocateFindsSecondTriangle(t *testing.T) {
	p, vt, start := buildSquare(t)
	loc := locate.New(p, vt, vertex.NewThresholds(1.0), 7)
	loc.SetHint(start)

	res, err := loc.Locate(vertex.New(0.2, 0.8, 0, 99))
	require.NoError(t, err)
	assert.False(t, res.OnEdge)
}

func TestLocateOnSharedDiagonal(t *testing.T) {
	p, vt, start := buildSquare(t)
	loc := locate.New(p, vt, vertex.NewThresholds(1.0), 1)
	loc.SetHint(start)

	res, err := loc.Locate(vertex.New(0.5, 0.5, 0, 99))
	require.NoError(t, err)
	assert.True(t, res.OnEdge)
}

func TestLocateOutsideHull(t *testing.T) {
	p, vt, start := buildSquare(t)
	loc := locate.New(p, vt, vertex.NewThresholds(1.0), 3)
	loc.SetHint(start)

	_, err := loc.Locate(vertex.New(5, 5, 0, 99))
	assert.ErrorIs(t, err, locate.ErrOutsideHull)
}
