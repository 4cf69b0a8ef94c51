package predicates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotin/tin/predicates"
	"github.com/gotin/tin/vertex"
)

func th() vertex.Thresholds {
	return vertex.NewThresholds(1.0)
}

func TestOrient2DSigns(t *testing.T) {
	a := vertex.New(0, 0, 0, 0)
	b := vertex.New(1, 0, 0, 1)
	c := vertex.New(0, 1, 0, 2)

	assert.Equal(t, 1, predicates.Orient2D(a, b, c, th()), "ccw triangle")
	assert.Equal(t, -1, predicates.Orient2D(a, c, b, th()), "reversed is cw")

	colinear := vertex.New(2, 0, 0, 3)
	assert.Equal(t, 0, predicates.Orient2D(a, b, colinear, th()), "collinear points")
}

func TestInCircleUnitSquare(t *testing.T) {
	a := vertex.New(0, 0, 0, 0)
	b := vertex.New(1, 0, 0, 1)
	c := vertex.New(1, 1, 0, 2)
	d := vertex.New(0, 1, 0, 3)

	// d is cocircular with a,b,c (they share the unit-square circumcircle).
	assert.Equal(t, 0, predicates.InCircle(a, b, c, d, th()))

	inside := vertex.New(0.5, 0.5, 0, 4)
	assert.Equal(t, 1, predicates.InCircle(a, b, c, inside, th()))

	outside := vertex.New(5, 5, 0, 5)
	assert.Equal(t, -1, predicates.InCircle(a, b, c, outside, th()))
}

func TestCircumcenterUnitSquareTriangle(t *testing.T) {
	a := vertex.New(0, 0, 0, 0)
	b := vertex.New(1, 0, 0, 1)
	c := vertex.New(1, 1, 0, 2)

	cx, cy, ok := predicates.Circumcenter(a, b, c, th())
	require.True(t, ok)
	assert.InDelta(t, 0.5, cx, 1e-9)
	assert.InDelta(t, 0.5, cy, 1e-9)
}

func TestCircumcenterCollinearUndefined(t *testing.T) {
	a := vertex.New(0, 0, 0, 0)
	b := vertex.New(1, 0, 0, 1)
	c := vertex.New(2, 0, 0, 2)

	_, _, ok := predicates.Circumcenter(a, b, c, th())
	assert.False(t, ok)
}
