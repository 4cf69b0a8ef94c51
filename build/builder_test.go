package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotin/tin/build"
)

func TestInsertBuffersUntilSeeded(t *testing.T) {
	b := build.New(1.0)

	_, err := b.Insert(0, 0, 0)
	assert.NoError(t, err, "a buffered point is accepted without error")

	_, err = b.Insert(1, 0, 0)
	assert.NoError(t, err, "a buffered point is accepted without error")
	assert.Equal(t, 0, b.Pool.Count(), "no edges exist before the seed triangle")

	_, err = b.Insert(0, 1, 1)
	require.NoError(t, err, "third non-collinear point should seed the mesh")

	// 3 interior edges + 3 ghost-closure ties (2 pairs each) = 9 live edges.
	assert.Equal(t, 9, b.Pool.Count())
}

func TestInsertInteriorPointAfterSeed(t *testing.T) {
	b := build.New(1.0)
	mustInsert(t, b, 0, 0, 0)
	mustInsert(t, b, 10, 0, 0)
	mustInsert(t, b, 0, 10, 1)

	_, err := b.Insert(2, 2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 4, len(b.Vertices()))
}

func TestCoincidentInsertMerges(t *testing.T) {
	b := build.New(1.0, build.WithMergeRule(build.MergeMean))
	mustInsert(t, b, 0, 0, 0)
	mustInsert(t, b, 10, 0, 0)
	mustInsert(t, b, 0, 10, 2)

	id1, err := b.Insert(5, 5, 1)
	require.NoError(t, err)

	id2, err := b.Insert(5.0000001, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.InDelta(t, 2, b.Vertex(id1).Z, 1e-6)
}

func mustInsert(t *testing.T, b *build.Builder, x, y, z float64) {
	t.Helper()
	_, err := b.Insert(x, y, z)
	require.NoError(t, err)
}
