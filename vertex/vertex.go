// Package vertex defines the point/attribute record shared by every other
// package in this module, along with the ghost sentinel used to close the
// outer face of a triangulation's convex hull.
package vertex

import "math"

// ID is a stable integer index into a mesh's vertex array.
//
// ID values are assigned sequentially starting from 0 as vertices are
// accepted by the builder. They remain stable for the lifetime of the mesh;
// vertices are never reordered or reused by the builder (merged duplicates
// resolve to an existing ID rather than allocating a new one).
//
// The special value Ghost (-1) represents the sentinel exterior vertex that
// marks the outer side of a hull edge — it carries no coordinates.
type ID int

// Ghost is the sentinel vertex ID marking the exterior side of a hull edge.
const Ghost ID = -1

// IsGhost reports whether id is the ghost sentinel.
func (id ID) IsGhost() bool {
	return id == Ghost
}

// Vertex is a 2D point carrying a scalar attribute and a stable identity.
//
// Ownership: a Vertex is owned by the client that hands it to the builder;
// the mesh borrows it by stable reference (its ID) and never mutates X or Y.
type Vertex struct {
	X, Y  float64
	Z     float64 // scalar attribute interpolated over the mesh
	Index ID
	Tag   int32 // optional small auxiliary tag, meaning defined by the caller
}

// New constructs a Vertex with the given coordinates, attribute, and index.
func New(x, y, z float64, index ID) Vertex {
	return Vertex{X: x, Y: y, Z: z, Index: index}
}

// Distance returns the Euclidean distance between two vertices.
func Distance(a, b Vertex) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Distance2 returns the squared Euclidean distance, avoiding a sqrt when only
// relative comparisons are needed.
func Distance2(a, b Vertex) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// BoundingBox is the axis-aligned extent of a set of (non-ghost) vertices.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
	Empty                  bool
}

// ComputeBoundingBox returns the bounding box of the supplied vertices.
func ComputeBoundingBox(vs []Vertex) BoundingBox {
	if len(vs) == 0 {
		return BoundingBox{Empty: true}
	}
	bb := BoundingBox{MinX: vs[0].X, MaxX: vs[0].X, MinY: vs[0].Y, MaxY: vs[0].Y}
	for _, v := range vs[1:] {
		if v.X < bb.MinX {
			bb.MinX = v.X
		}
		if v.X > bb.MaxX {
			bb.MaxX = v.X
		}
		if v.Y < bb.MinY {
			bb.MinY = v.Y
		}
		if v.Y > bb.MaxY {
			bb.MaxY = v.Y
		}
	}
	return bb
}
