package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotin/tin/build"
	"github.com/gotin/tin/nn"
	"github.com/gotin/tin/vertex"
)

// gridMesh builds a small 3x3 grid of points, each z = 2*x + 3*y + 1 (an
// exactly linear surface).
func gridMesh(t *testing.T) *build.Builder {
	t.Helper()
	b := build.New(1.0, build.WithRandomSeed(1))
	for _, x := range []float64{0, 10, 20} {
		for _, y := range []float64{0, 10, 20} {
			z := 2*x + 3*y + 1
			_, err := b.Insert(x, y, z)
			require.NoError(t, err)
		}
	}
	return b
}

func TestQueryInteriorPointWeightsSumToOne(t *testing.T) {
	b := gridMesh(t)
	q := vertex.New(8, 11, 0, vertex.Ghost)

	loc, err := b.Locate(q)
	require.NoError(t, err)

	res, err := nn.Query(b.Pool, b, b.Thresholds(), loc.Edge, q)
	require.NoError(t, err)
	require.NotEmpty(t, res.Weights)

	sum := 0.0
	for _, w := range res.Weights {
		sum += w.Value
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestQueryReproducesLinearFunction(t *testing.T) {
	b := gridMesh(t)
	q := vertex.New(7, 13, 0, vertex.Ghost)

	loc, err := b.Locate(q)
	require.NoError(t, err)

	res, err := nn.Query(b.Pool, b, b.Thresholds(), loc.Edge, q)
	require.NoError(t, err)

	z := res.InterpolateZ(b)
	want := 2*q.X + 3*q.Y + 1
	assert.InDelta(t, want, z, 1e-6)
	assert.InDelta(t, 0, res.BarycentricDeviation, 1e-6)
}

func TestQueryOutsideHull(t *testing.T) {
	b := gridMesh(t)
	q := vertex.New(500, 500, 0, vertex.Ghost)

	_, err := b.Locate(q)
	if err == nil {
		// Locate reports a point outside the hull as an Exterior result
		// without an error; a query from the seed hint must then fail.
		_, err = nn.Query(b.Pool, b, b.Thresholds(), b.HullHint(), q)
	}
	assert.Error(t, err)
}
