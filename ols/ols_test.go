package ols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotin/tin/build"
	"github.com/gotin/tin/ols"
	"github.com/gotin/tin/vertex"
)

func fitAt(t *testing.T, b *build.Builder, q vertex.Vertex, model ols.Model) ols.Result {
	t.Helper()
	loc, err := b.Locate(q)
	require.NoError(t, err)

	samples, err := ols.CollectSamples(b.Pool, b, b.Thresholds(), loc.Edge, q, ols.NaturalNeighborhood, vertex.Ghost)
	require.NoError(t, err)

	res, err := ols.Fit(samples, b, q, model, 0.95, false)
	require.NoError(t, err)
	return res
}

func TestPlanarFlatSurfaceIsZero(t *testing.T) {
	b := build.New(1.0)
	for _, p := range [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}} {
		_, err := b.Insert(p[0], p[1], p[2])
		require.NoError(t, err)
	}

	q := vertex.New(0.5, 0.5, 0, vertex.Ghost)
	res := fitAt(t, b, q, ols.Planar)

	assert.InDelta(t, 0, res.Estimate(), 1e-9)
	assert.InDelta(t, 0, res.Beta[1], 1e-9)
	assert.InDelta(t, 0, res.Beta[2], 1e-9)
}

func TestPlanarTiltedSurfaceRecoversExactValue(t *testing.T) {
	const a, bCoef, c = 2.0, -3.0, 5.0
	b := build.New(1.0)
	for _, p := range [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		z := a*p[0] + bCoef*p[1] + c
		_, err := b.Insert(p[0], p[1], z)
		require.NoError(t, err)
	}

	q := vertex.New(0.25, 0.75, 0, vertex.Ghost)
	res := fitAt(t, b, q, ols.Planar)

	want := a*q.X + bCoef*q.Y + c
	assert.InDelta(t, want, res.Estimate(), 1e-8)
	assert.InDelta(t, a, res.Beta[1], 1e-8)
	assert.InDelta(t, bCoef, res.Beta[2], 1e-8)
}

func TestQuadraticRecoversBowlSurface(t *testing.T) {
	b := build.New(0.3)
	for _, x := range []float64{-1, -0.66, -0.33, 0, 0.33, 0.66, 1} {
		for _, y := range []float64{-1, -0.66, -0.33, 0, 0.33, 0.66, 1} {
			z := x*x + y*y + 0.5
			_, err := b.Insert(x, y, z)
			require.NoError(t, err)
		}
	}

	q := vertex.New(0, 0, 0, vertex.Ghost)
	res := fitAt(t, b, q, ols.Quadratic)

	require.Equal(t, ols.Quadratic, res.Model)
	assert.InDelta(t, 0.5, res.Estimate(), 1e-6)
	assert.InDelta(t, 0, res.Beta[1], 1e-6)
	assert.InDelta(t, 0, res.Beta[2], 1e-6)
	assert.InDelta(t, 1, res.Beta[3], 1e-6)
	assert.InDelta(t, 1, res.Beta[4], 1e-6)
	assert.InDelta(t, 1, res.R2, 1e-6)
}

func TestFitDowngradesWhenSamplesAreSparse(t *testing.T) {
	b := build.New(1.0)
	for _, p := range [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0.4}} {
		_, err := b.Insert(p[0], p[1], p[2])
		require.NoError(t, err)
	}

	q := vertex.New(0.5, 0.5, 0, vertex.Ghost)
	loc, err := b.Locate(q)
	require.NoError(t, err)
	samples, err := ols.CollectSamples(b.Pool, b, b.Thresholds(), loc.Edge, q, ols.NaturalNeighborhood, vertex.Ghost)
	require.NoError(t, err)

	res, err := ols.Fit(samples, b, q, ols.CubicWithCrossTerms, 0.95, false)
	require.NoError(t, err)
	assert.NotEqual(t, ols.CubicWithCrossTerms, res.Model, "model should downgrade below sample support")
}

func TestCrossValidateExcludesQueryVertex(t *testing.T) {
	b := build.New(1.0)
	ids := make([]vertex.ID, 0, 9)
	for _, x := range []float64{0, 5, 10} {
		for _, y := range []float64{0, 5, 10} {
			id, err := b.Insert(x, y, 2*x+3*y+1)
			require.NoError(t, err)
			ids = append(ids, id)
		}
	}

	target := b.Vertex(ids[4]) // center point (5,5)
	samples, err := ols.CollectSamples(b.Pool, b, b.Thresholds(), b.HullHint(), target, ols.CoincidentVertex, target.Index)
	require.NoError(t, err)
	for _, id := range samples {
		assert.NotEqual(t, target.Index, id)
	}
}
