package spatial

import "github.com/gotin/tin/vertex"

// Index supports the two spatial queries the mesh needs: finding vertices
// near a point (the builder's merge-policy coincidence checks) and
// registering newly inserted vertices.
type Index interface {
	// FindNear returns candidate vertex ids near (x,y): every id within
	// radius, possibly with others farther away (HashGrid returns every id
	// in the cells the radius overlaps).
	FindNear(x, y, radius float64) []vertex.ID
	// Add registers a vertex at (x,y).
	Add(id vertex.ID, x, y float64)
}
