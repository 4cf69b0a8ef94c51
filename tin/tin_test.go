package tin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotin/tin/ols"
	"github.com/gotin/tin/tin"
	"github.com/gotin/tin/vertex"
)

// insertBootstrapped inserts pts in order, asserting the builder's buffering
// contract: the first two points are buffered without error while the seed
// triangle is still being assembled, and every call from the third on
// succeeds. pts[0:3] must be non-collinear.
func insertBootstrapped(t *testing.T, m *tin.Mesh, pts [][3]float64) []vertex.ID {
	t.Helper()
	ids := make([]vertex.ID, 0, len(pts))
	for i, p := range pts {
		id, err := m.Insert(p[0], p[1], p[2])
		if i < 2 {
			require.NoError(t, err, "buffered bootstrap point")
		} else {
			require.NoError(t, err)
		}
		ids = append(ids, id)
	}
	return ids
}

func unitSquare(t *testing.T, opts ...tin.Option) (*tin.Mesh, []vertex.ID) {
	t.Helper()
	m, err := tin.NewMesh(1.0, opts...)
	require.NoError(t, err)

	ids := insertBootstrapped(t, m, [][3]float64{{0, 0, 0}, {10, 0, 0}, {10, 10, 0}, {0, 10, 0}})
	return m, ids
}

func TestNewMeshRejectsNonPositiveSpacing(t *testing.T) {
	_, err := tin.NewMesh(0)
	assert.ErrorIs(t, err, tin.ErrInvalidSpacing)
}

func TestInsertAndBoundingBox(t *testing.T) {
	m, _ := unitSquare(t)
	bb := m.BoundingBox()
	assert.Equal(t, 0.0, bb.MinX)
	assert.Equal(t, 10.0, bb.MaxX)
	assert.Equal(t, 0.0, bb.MinY)
	assert.Equal(t, 10.0, bb.MaxY)
}

func TestLocateFindsInteriorPoint(t *testing.T) {
	m, _ := unitSquare(t)
	res, err := m.Locate(-1, 3, 6)
	require.NoError(t, err)
	assert.False(t, res.OnEdge)
}

func TestInterpolateNNOnFlatSurface(t *testing.T) {
	m, _ := unitSquare(t)
	z, err := m.InterpolateNN(5, 5, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0, z, 1e-9)
}

func TestInterpolateOLSPlanarRecoversTilt(t *testing.T) {
	m, err := tin.NewMesh(1.0)
	require.NoError(t, err)

	const a, b, c = 2.0, -3.0, 5.0
	pts := [][3]float64{}
	for _, p := range [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}} {
		pts = append(pts, [3]float64{p[0], p[1], a*p[0] + b*p[1] + c})
	}
	insertBootstrapped(t, m, pts)

	res, err := m.InterpolateOLS(2.5, 7.5, ols.Planar, false)
	require.NoError(t, err)
	want := a*2.5 + b*7.5 + c
	assert.InDelta(t, want, res.Estimate(), 1e-6)
}

func TestCrossValidateExcludesTargetVertex(t *testing.T) {
	m, ids := unitSquareGrid(t)
	res, err := m.CrossValidate(ids[4])
	require.NoError(t, err)
	assert.Greater(t, res.N, 0)
}

// unitSquareGrid builds the 3x3 grid {0,5,10}x{0,5,10}, returning ids
// indexed the same way the nested x/y loop would produce (ids[4] is the
// (5,5) center), even though the points are fed to Insert in a different
// order — (0,0),(5,0),(0,5) first, non-collinear, to satisfy the builder's
// bootstrap contract — so downstream tests can keep indexing by grid
// position.
func unitSquareGrid(t *testing.T) (*tin.Mesh, []vertex.ID) {
	t.Helper()
	m, err := tin.NewMesh(1.0)
	require.NoError(t, err)

	xs := []float64{0, 5, 10}
	pts := make([][3]float64, 0, 9)
	for _, x := range xs {
		for _, y := range xs {
			pts = append(pts, [3]float64{x, y, 2*x + 3*y + 1})
		}
	}

	order := []int{0, 3, 1, 2, 4, 5, 6, 7, 8}
	ids := make([]vertex.ID, len(pts))
	for i, idx := range order {
		p := pts[idx]
		id, err := m.Insert(p[0], p[1], p[2])
		if i < 2 {
			require.NoError(t, err, "buffered bootstrap point")
		} else {
			require.NoError(t, err)
		}
		ids[idx] = id
	}
	return m, ids
}

func TestAddConstraintsEmbedsPolygonAndLabelsRegion(t *testing.T) {
	m, ids := unitSquareGrid(t)
	corners := []vertex.ID{ids[0], ids[6], ids[8], ids[2]} // (0,0),(10,0),(10,10),(0,10)

	err := m.AddConstraints([]tin.Constraint{
		{Kind: tin.Polygon, Vertices: corners, DefinesRegion: true, ID: 1},
	})
	require.NoError(t, err)
}

func TestCheckInvariantsOnFreshMesh(t *testing.T) {
	m, _ := unitSquareGrid(t)
	assert.NoError(t, m.CheckInvariants(true))
}
