package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotin/tin/constraint"
	"github.com/gotin/tin/quadedge"
	"github.com/gotin/tin/vertex"
)

type vertexTable map[vertex.ID]vertex.Vertex

func (vt vertexTable) Vertex(id vertex.ID) vertex.Vertex { return vt[id] }

// buildFan builds four triangles around a shared center vertex (4) over a
// unit square, so neither diagonal 0-2 nor 1-3 is an edge: both pass
// through the center vertex.
func buildFan(t *testing.T) (*quadedge.Pool, vertexTable) {
	t.Helper()
	p := quadedge.NewPool()
	vt := vertexTable{
		0: vertex.New(0, 0, 0, 0),
		1: vertex.New(1, 0, 0, 1),
		2: vertex.New(1, 1, 0, 2),
		3: vertex.New(0, 1, 0, 3),
		4: vertex.New(0.5, 0.5, 0, 4),
	}

	// triangles: (0,1,4) (1,2,4) (2,3,4) (3,0,4), sharing center 4.
	e01 := p.Allocate(0, 1)
	e14 := p.Allocate(1, 4)
	e40 := p.Allocate(4, 0)
	p.Link(e01, e14)
	p.Link(e14, e40)
	p.Link(e40, e01)

	e12 := p.Allocate(1, 2)
	e24 := p.Allocate(2, 4)
	e41 := e14.Twin()
	p.Link(e41, e12)
	p.Link(e12, e24)
	p.Link(e24, e41)

	e23 := p.Allocate(2, 3)
	e34 := p.Allocate(3, 4)
	e42 := e24.Twin()
	p.Link(e42, e23)
	p.Link(e23, e34)
	p.Link(e34, e42)

	e30 := p.Allocate(3, 0)
	e04 := e40.Twin()
	e43 := e34.Twin()
	p.Link(e43, e30)
	p.Link(e30, e04)
	p.Link(e04, e43)

	return p, vt
}

func TestInsertSegmentDirectEdgeIsTagged(t *testing.T) {
	p, vt := buildFan(t)
	th := vertex.NewThresholds(1.0)

	err := constraint.InsertSegment(p, vt, th, 0, 1, constraint.KindRegionBorder, 5)
	require.NoError(t, err)

	e, ok := func() (quadedge.EdgeIndex, bool) {
		var found quadedge.EdgeIndex = quadedge.NilEdge
		p.BaseEdges(func(e quadedge.EdgeIndex) {
			if p.Origin(e) == 0 && p.Destination(e) == 1 {
				found = e
			}
		})
		return found, !found.IsNil()
	}()
	require.True(t, ok)
	assert.True(t, p.IsConstrained(e))
	assert.True(t, p.IsRegionBorder(e))
	assert.EqualValues(t, 5, p.ConstraintIndex(e))
}

func TestInsertSegmentZeroLength(t *testing.T) {
	p, vt := buildFan(t)
	th := vertex.NewThresholds(1.0)
	err := constraint.InsertSegment(p, vt, th, 2, 2, constraint.KindLinear, 0)
	assert.ErrorIs(t, err, constraint.ErrZeroLength)
}

func TestLabelRegionMarksReachableFaces(t *testing.T) {
	p, _ := buildFan(t)

	var seed quadedge.EdgeIndex
	p.BaseEdges(func(e quadedge.EdgeIndex) {
		if p.Origin(e) == 0 && p.Destination(e) == 1 {
			seed = e
		}
	})

	n := constraint.LabelRegion(p, seed)
	assert.Equal(t, 4, n)
	assert.True(t, p.IsRegionInterior(seed))
}
