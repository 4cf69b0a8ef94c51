// Package nn implements Sibson C0 natural-neighbor interpolation over a
// constrained Delaunay mesh (spec.md §4.G): a Bowyer-Watson cavity is
// grown around the query point, and each neighbor's weight is the area
// "stolen" from its original Voronoi cell by the query point's new cell,
// computed entirely from circumcenters (no Voronoi diagram is ever built
// explicitly).
//
// The cavity-growth flood fill (testing InCircle against a live frontier,
// stopping at constrained or exterior edges) follows the same shape as the
// teacher's insertion-time cavity logic (cdt/insert_point.go's
// triangle-removal-and-relink pass), but here the cavity is discovered
// read-only — no vertex is actually inserted — and is used once to compute
// weights rather than to mutate the mesh.
package nn

import (
	"math"

	"github.com/pkg/errors"

	"github.com/gotin/tin/predicates"
	"github.com/gotin/tin/quadedge"
	"github.com/gotin/tin/vertex"
)

// ErrOutsideHull is returned when Query finds no cavity: q is not inside the
// circumcircle of startFace's triangle. Query has no hull test of its own,
// so a point outside the hull that lies inside that circumcircle is not
// reported with this error.
var ErrOutsideHull = errors.New("nn: query point is outside the triangulation hull")

// ErrOnConstrainedEdge is returned when the query point falls on a
// constrained edge: natural-neighbor weights are undefined there because
// the cavity cannot cross the constraint, per spec.md §4.G.
var ErrOnConstrainedEdge = errors.New("nn: query point lies on a constrained edge")

// ErrDegenerateCavity is returned when the cavity cannot be closed into a
// simple ring (fewer than 3 boundary vertices, or the boundary chain is
// broken) — indicates an inconsistent mesh or a numerically pathological
// query.
var ErrDegenerateCavity = errors.New("nn: failed to close natural-neighbor cavity")

// VertexLookup resolves a vertex.ID to coordinates.
type VertexLookup interface {
	Vertex(id vertex.ID) vertex.Vertex
}

// Weight pairs a neighboring vertex with its Sibson coordinate.
type Weight struct {
	Vertex vertex.ID
	Value  float64
}

// Result is the outcome of a natural-neighbor query: weights sum to 1 and
// are listed in the cavity's CCW ring order.
type Result struct {
	Weights []Weight

	// BarycentricDeviation is a diagnostic (spec.md supplemented feature):
	// the Euclidean distance between the weighted neighbor position
	// Σ wᵢ·pᵢ and the query point q, zero when the weights reproduce q
	// exactly.
	BarycentricDeviation float64
}

// Query computes natural-neighbor weights for point q, growing the
// Bowyer-Watson cavity from startFace's triangle (no locate walk is made);
// that triangle's circumcircle must contain q, as the triangle the locator
// returns for q does, or Query returns ErrOutsideHull.
func Query(pool *quadedge.Pool, vl VertexLookup, th vertex.Thresholds, startFace quadedge.EdgeIndex, q vertex.Vertex) (Result, error) {
	if id, ok := coincidentVertex(pool, vl, th, startFace, q); ok {
		return Result{Weights: []Weight{{Vertex: id, Value: 1}}}, nil
	}
	if onConstrainedEdge(pool, vl, th, startFace, q) {
		return Result{}, ErrOnConstrainedEdge
	}

	cavity, err := growCavity(pool, vl, th, startFace, q)
	if err != nil {
		return Result{}, err
	}

	ring, err := closeRing(pool, cavity)
	if err != nil {
		return Result{}, err
	}
	n := len(ring)
	if n < 3 {
		return Result{}, ErrDegenerateCavity
	}

	newCC := make([]vertex.Vertex, n)
	for i := 0; i < n; i++ {
		vi := vl.Vertex(pool.Origin(ring[i]))
		vj := vl.Vertex(pool.Destination(ring[i]))
		cx, cy, ok := predicates.Circumcenter(q, vi, vj, th)
		if !ok {
			return Result{}, errors.Wrap(ErrDegenerateCavity, "nn: degenerate new circumcenter")
		}
		newCC[i] = vertex.New(cx, cy, 0, 0)
	}

	weights := make([]Weight, n)
	total := 0.0
	for i := 0; i < n; i++ {
		vi := pool.Origin(ring[i])
		prev := (i - 1 + n) % n

		oldCCs := oldCircumcentersAround(pool, vl, th, ring[prev], ring[i])

		poly := make([]vertex.Vertex, 0, len(oldCCs)+2)
		poly = append(poly, newCC[i])
		poly = append(poly, oldCCs...)
		poly = append(poly, newCC[prev])

		area := polygonArea(poly)
		weights[i] = Weight{Vertex: vi, Value: area}
		total += area
	}

	if total <= 0 {
		return Result{}, ErrDegenerateCavity
	}
	for i := range weights {
		weights[i].Value /= total
	}

	rx, ry := 0.0, 0.0
	for _, w := range weights {
		p := vl.Vertex(w.Vertex)
		rx += w.Value * p.X
		ry += w.Value * p.Y
	}
	deviation := math.Sqrt((rx-q.X)*(rx-q.X) + (ry-q.Y)*(ry-q.Y))

	return Result{Weights: weights, BarycentricDeviation: deviation}, nil
}

// coincidentVertex reports whether q lies within vertex tolerance of one of
// startFace's two endpoints, short-circuiting cavity growth for an exact
// vertex hit (spec.md §4.G).
func coincidentVertex(pool *quadedge.Pool, vl VertexLookup, th vertex.Thresholds, startFace quadedge.EdgeIndex, q vertex.Vertex) (vertex.ID, bool) {
	for _, e := range [2]quadedge.EdgeIndex{startFace, startFace.Twin()} {
		id := pool.Origin(e)
		if id.IsGhost() {
			continue
		}
		if th.IsCoincident(vl.Vertex(id), q) {
			return id, true
		}
	}
	return vertex.Ghost, false
}

// onConstrainedEdge reports whether q lies on startFace or its twin and
// that edge is constrained: natural-neighbor weights are undefined there
// since the cavity cannot legally cross the constraint.
func onConstrainedEdge(pool *quadedge.Pool, vl VertexLookup, th vertex.Thresholds, startFace quadedge.EdgeIndex, q vertex.Vertex) bool {
	for _, e := range [2]quadedge.EdgeIndex{startFace, startFace.Twin()} {
		if !pool.IsConstrained(e) {
			continue
		}
		a := vl.Vertex(pool.Origin(e))
		b := vl.Vertex(pool.Destination(e))
		if predicates.Orient2D(a, b, q, th) != 0 {
			continue
		}
		if onSegment(a, b, q) {
			return true
		}
	}
	return false
}

// onSegment reports whether q, already known collinear with a and b, falls
// between them rather than on their outward extension.
func onSegment(a, b, q vertex.Vertex) bool {
	dot := (q.X-a.X)*(b.X-a.X) + (q.Y-a.Y)*(b.Y-a.Y)
	lenSq := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	return dot >= 0 && dot <= lenSq
}

// Ring computes the ordered boundary edges of the natural-neighbor cavity
// around q, without computing Sibson weights: this is spec.md §6's
// naturalNeighborPolygon operation, exposing the cavity itself rather than
// the interpolation built on top of it.
func Ring(pool *quadedge.Pool, vl VertexLookup, th vertex.Thresholds, startFace quadedge.EdgeIndex, q vertex.Vertex) ([]quadedge.EdgeIndex, error) {
	cavity, err := growCavity(pool, vl, th, startFace, q)
	if err != nil {
		return nil, err
	}
	ring, err := closeRing(pool, cavity)
	if err != nil {
		return nil, err
	}
	if len(ring) < 3 {
		return nil, ErrDegenerateCavity
	}
	return ring, nil
}

// growCavity flood-fills faces whose circumcircle strictly contains q,
// starting from startFace, and returns their canonical representative
// edges. Growth stops at constrained edges and at ghost (exterior) faces.
func growCavity(pool *quadedge.Pool, vl VertexLookup, th vertex.Thresholds, startFace quadedge.EdgeIndex, q vertex.Vertex) ([]quadedge.EdgeIndex, error) {
	visited := make(map[quadedge.EdgeIndex]bool)
	var cavity []quadedge.EdgeIndex

	var visit func(e quadedge.EdgeIndex) error
	visit = func(e quadedge.EdgeIndex) error {
		e1 := pool.FaceNext(e)
		e2 := pool.FaceNext(e1)
		key := faceKey(e, e1, e2)
		if visited[key] {
			return nil
		}

		a := pool.Origin(e)
		b := pool.Origin(e1)
		c := pool.Origin(e2)
		if a.IsGhost() || b.IsGhost() || c.IsGhost() {
			return nil
		}

		pa, pb, pc := vl.Vertex(a), vl.Vertex(b), vl.Vertex(c)
		o := predicates.Orient2D(pa, pb, pc, th)
		var in int
		switch {
		case o > 0:
			in = predicates.InCircle(pa, pb, pc, q, th)
		case o < 0:
			in = predicates.InCircle(pa, pc, pb, q, th)
		default:
			return nil
		}
		if in <= 0 {
			return nil
		}

		visited[key] = true
		cavity = append(cavity, e)

		for _, edge := range [3]quadedge.EdgeIndex{e, e1, e2} {
			if pool.IsConstrained(edge) {
				continue
			}
			if err := visit(edge.Twin()); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(startFace); err != nil {
		return nil, err
	}
	if len(cavity) == 0 {
		return nil, ErrOutsideHull
	}
	return cavity, nil
}

// closeRing collects the boundary directed edges of the cavity faces
// (edges whose twin's face is not itself in the cavity) and chains them
// into a single CCW ring by destination->origin matching.
func closeRing(pool *quadedge.Pool, cavity []quadedge.EdgeIndex) ([]quadedge.EdgeIndex, error) {
	visitedFaces := make(map[quadedge.EdgeIndex]bool, len(cavity))
	for _, rep := range cavity {
		e1 := pool.FaceNext(rep)
		e2 := pool.FaceNext(e1)
		visitedFaces[faceKey(rep, e1, e2)] = true
	}

	var boundary []quadedge.EdgeIndex
	for _, rep := range cavity {
		e1 := pool.FaceNext(rep)
		e2 := pool.FaceNext(e1)
		for _, edge := range [3]quadedge.EdgeIndex{rep, e1, e2} {
			tw := edge.Twin()
			t1 := pool.FaceNext(tw)
			t2 := pool.FaceNext(t1)
			if !visitedFaces[faceKey(tw, t1, t2)] {
				boundary = append(boundary, edge)
			}
		}
	}
	if len(boundary) < 3 {
		return nil, ErrDegenerateCavity
	}

	byOrigin := make(map[vertex.ID]quadedge.EdgeIndex, len(boundary))
	for _, e := range boundary {
		byOrigin[pool.Origin(e)] = e
	}

	start := boundary[0]
	ring := make([]quadedge.EdgeIndex, 0, len(boundary))
	cur := start
	for i := 0; i < len(boundary); i++ {
		ring = append(ring, cur)
		next, ok := byOrigin[pool.Destination(cur)]
		if !ok {
			return nil, ErrDegenerateCavity
		}
		cur = next
		if cur == start {
			if i == len(boundary)-1 {
				return ring, nil
			}
			return nil, ErrDegenerateCavity
		}
	}
	return nil, ErrDegenerateCavity
}

// oldCircumcentersAround walks the cavity faces incident to the ring
// vertex shared by eIn (boundary edge ending at that vertex) and eOut
// (boundary edge starting at that vertex), collecting each face's
// circumcenter in order from eOut around to (but excluding) eIn. These are
// the pre-insertion Voronoi vertices that the new query-point cell slices
// through.
func oldCircumcentersAround(pool *quadedge.Pool, vl VertexLookup, th vertex.Thresholds, eIn, eOut quadedge.EdgeIndex) []vertex.Vertex {
	stop := eIn.Twin()
	var out []vertex.Vertex

	cur := eOut
	for i := 0; i < 64; i++ { // generous bound: a vertex's degree is never this large in practice
		if cur == stop {
			break
		}
		n1 := pool.FaceNext(cur)
		n2 := pool.FaceNext(n1)
		a := vl.Vertex(pool.Origin(cur))
		b := vl.Vertex(pool.Origin(n1))
		c := vl.Vertex(pool.Origin(n2))
		if cx, cy, ok := predicates.Circumcenter(a, b, c, th); ok {
			out = append(out, vertex.New(cx, cy, 0, 0))
		}
		cur = pool.OriginNext(cur)
	}
	return out
}

func faceKey(a, b, c quadedge.EdgeIndex) quadedge.EdgeIndex {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func polygonArea(pts []vertex.Vertex) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
