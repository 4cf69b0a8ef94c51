package hilbert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gotin/tin/hilbert"
	"github.com/gotin/tin/vertex"
)

func TestKeyMonotonicAlongBottomRow(t *testing.T) {
	var prev uint64
	for i := 0; i < 8; i++ {
		x := float64(i)
		k := hilbert.Key(x, 0, 0, 0, 7, 7, 3)
		if i > 0 {
			assert.Greater(t, k, prev)
		}
		prev = k
	}
}

func TestSortVerticesIsPermutation(t *testing.T) {
	vs := []vertex.Vertex{
		vertex.New(0, 0, 0, 0),
		vertex.New(9, 9, 0, 1),
		vertex.New(1, 8, 0, 2),
		vertex.New(5, 5, 0, 3),
	}
	order := hilbert.SortVertices(vs, 0)
	assert.Len(t, order, len(vs))

	seen := make(map[int]bool)
	for _, idx := range order {
		assert.False(t, seen[idx], "index repeated")
		seen[idx] = true
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(vs))
	}
}

func TestSortVerticesEmpty(t *testing.T) {
	assert.Nil(t, hilbert.SortVertices(nil, 0))
}
