package spatial

import (
	"testing"

	"github.com/gotin/tin/vertex"
)

func TestHashGridAddAndQuery(t *testing.T) {
	grid := NewHashGrid(1)
	grid.Add(0, 0, 0)
	grid.Add(1, 1.9, 0)

	result := grid.FindNear(0.1, 0.2, 0.5)
	if len(result) != 1 || result[0] != vertex.ID(0) {
		t.Fatalf("expected to find vertex 0, got %v", result)
	}

	result = grid.FindNear(1.9, 0, 0.2)
	if len(result) == 0 {
		t.Fatalf("expected non-empty result")
	}
}

func TestHashGridZeroRadius(t *testing.T) {
	grid := NewHashGrid(1)
	grid.Add(0, 0.1, 0.2)
	result := grid.FindNear(0.1, 0.2, 0)
	if len(result) != 1 || result[0] != vertex.ID(0) {
		t.Fatalf("expected match at same cell")
	}
}
