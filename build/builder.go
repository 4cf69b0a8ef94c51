// Package build implements incremental construction of a constrained
// Delaunay triangulation over a quad-edge mesh (spec.md §4.E-F): buffering
// points until a non-degenerate seed triangle exists, locating and
// inserting each subsequent point, and restoring the Delaunay property
// with a flip stack after every insertion.
//
// The overall pipeline — normalize/seed, then per-point
// locate/insert/legalize — follows the teacher's cdt.Builder shape
// (cdt/builder.go); the seed and hull representation differ because this
// mesh closes its hull with ghost faces (spec.md's ghost-vertex
// convention) instead of a bounding supertriangle. IsIllegal's
// orientation-then-InCircle structure is adapted directly from
// cdt/legalize.go.
package build

import (
	"github.com/pkg/errors"

	"github.com/gotin/tin/hilbert"
	"github.com/gotin/tin/locate"
	"github.com/gotin/tin/predicates"
	"github.com/gotin/tin/quadedge"
	"github.com/gotin/tin/spatial"
	"github.com/gotin/tin/vertex"
)

// MergeRule selects how Insert resolves a new point that coincides (within
// tolerance) with an already-present vertex, per spec.md §4.F.
type MergeRule int

const (
	MergeFirstWins MergeRule = iota
	MergeLastWins
	MergeMean
	MergeMin
	MergeMax
)

// ErrDegenerateInput reports that the buffered bootstrap points are too few
// or all collinear, so no seed triangle can be formed yet. The builder uses
// it internally while seeding; Insert does not return it for a buffered
// point, which stays pending until a seed triangle can be formed.
var ErrDegenerateInput = errors.New("build: insufficient non-collinear points to seed triangulation")

// Option configures a Builder, following the teacher's functional-options
// convention (mesh.Option in mesh/options.go).
type Option func(*Builder)

// WithMergeRule sets the coincident-vertex merge policy (default
// MergeFirstWins).
func WithMergeRule(r MergeRule) Option {
	return func(b *Builder) { b.mergeRule = r }
}

// WithHilbertPresort enables (default) or disables Hilbert-curve
// presorting of buffered bootstrap points before insertion.
func WithHilbertPresort(enabled bool) Option {
	return func(b *Builder) { b.hilbertPresort = enabled }
}

// WithRandomSeed fixes the locator's stochastic walk seed, for
// reproducible builds — mirroring the teacher's BuildOptions.RandomSeed.
func WithRandomSeed(seed uint64) Option {
	return func(b *Builder) { b.seed = seed }
}

// Builder incrementally constructs a CDT mesh from a stream of (x,y,z)
// points.
type Builder struct {
	Pool *quadedge.Pool

	verts    []vertex.Vertex
	nextID   vertex.ID
	spatial  spatial.Index
	locator  *locate.Locator
	th       vertex.Thresholds
	h        float64

	mergeRule      MergeRule
	hilbertPresort bool
	seed           uint64

	pending  []vertex.Vertex // buffered until a seed triangle exists
	seeded   bool
	hullHint quadedge.EdgeIndex
}

// New creates a Builder whose predicate tolerances are derived from
// nominal point spacing h (spec.md §4.A).
func New(h float64, opts ...Option) *Builder {
	b := &Builder{
		Pool:           quadedge.NewPool(),
		spatial:        spatial.NewHashGrid(h),
		th:             vertex.NewThresholds(h),
		h:              h,
		hilbertPresort: true,
		hullHint:       quadedge.NilEdge,
	}
	for _, o := range opts {
		o(b)
	}
	b.locator = locate.New(b.Pool, b, b.th, b.seed)
	return b
}

// Vertex implements locate.VertexLookup and constraint.VertexLookup.
func (b *Builder) Vertex(id vertex.ID) vertex.Vertex {
	if id.IsGhost() || int(id) >= len(b.verts) {
		return vertex.Vertex{Index: vertex.Ghost}
	}
	return b.verts[id]
}

// HullHint returns a representative interior edge near the triangulation's
// seed triangle, usable as a starting point for hull traversal.
func (b *Builder) HullHint() quadedge.EdgeIndex {
	return b.hullHint
}

// Thresholds returns the predicate tolerance set derived from this
// builder's nominal point spacing, for callers (locate, nn, constraint)
// that need to run geometric predicates against this mesh directly.
func (b *Builder) Thresholds() vertex.Thresholds {
	return b.th
}

// Locate finds the face containing p, for callers that need a starting
// face hint (e.g. nn.Query) without performing an insertion.
func (b *Builder) Locate(p vertex.Vertex) (locate.Result, error) {
	return b.locator.Locate(p)
}

// LocateFrom locates p starting the walk at start, regardless of the
// builder's internal locator hint.
func (b *Builder) LocateFrom(p vertex.Vertex, start quadedge.EdgeIndex) (locate.Result, error) {
	return b.locator.LocateFrom(p, start)
}

// Vertices returns a snapshot of every vertex inserted so far, indexed by
// vertex.ID.
func (b *Builder) Vertices() []vertex.Vertex {
	out := make([]vertex.Vertex, len(b.verts))
	copy(out, b.verts)
	return out
}

// Insert adds a point to the triangulation, returning its assigned
// vertex.ID. Before a seed triangle exists, points are buffered; once
// three non-collinear points are available, Insert seeds the mesh (with
// Hilbert presorting if enabled) and inserts all buffered points plus the
// current one. A point that is only buffered is reported with a nil error.
func (b *Builder) Insert(x, y, z float64) (vertex.ID, error) {
	if existing, ok := b.findCoincident(x, y); ok {
		return b.merge(existing, x, y, z)
	}

	v := vertex.New(x, y, z, b.allocID())
	if !b.seeded {
		b.verts[v.Index] = v
		b.pending = append(b.pending, v)
		if err := b.trySeed(); err != nil && !errors.Is(err, ErrDegenerateInput) {
			return v.Index, err
		}
		return v.Index, nil
	}

	return b.insertSeeded(v)
}

func (b *Builder) allocID() vertex.ID {
	id := b.nextID
	b.nextID++
	b.verts = append(b.verts, vertex.Vertex{})
	return id
}

func (b *Builder) findCoincident(x, y float64) (vertex.ID, bool) {
	near := b.spatial.FindNear(x, y, b.th.VertexTol)
	for _, id := range near {
		v := b.verts[id]
		if b.th.IsCoincident(v, vertex.New(x, y, v.Z, id)) {
			return id, true
		}
	}
	return vertex.Ghost, false
}

func (b *Builder) merge(id vertex.ID, x, y, z float64) (vertex.ID, error) {
	old := b.verts[id]
	switch b.mergeRule {
	case MergeLastWins:
		old.Z = z
	case MergeMean:
		old.Z = (old.Z + z) / 2
	case MergeMin:
		if z < old.Z {
			old.Z = z
		}
	case MergeMax:
		if z > old.Z {
			old.Z = z
		}
	case MergeFirstWins:
		// keep old.Z
	}
	b.verts[id] = old
	return id, nil
}

func (b *Builder) trySeed() error {
	if len(b.pending) < 3 {
		return ErrDegenerateInput
	}
	a := b.pending[0]
	for i := 1; i < len(b.pending)-1; i++ {
		bb := b.pending[i]
		for j := i + 1; j < len(b.pending); j++ {
			c := b.pending[j]
			o := predicates.Orient2D(a, bb, c, b.th)
			if o == 0 {
				continue
			}
			if o < 0 {
				bb, c = c, bb
			}
			return b.seedFrom(a, bb, c)
		}
	}
	return ErrDegenerateInput
}

// seedFrom creates the initial CCW triangle (a,b,c) plus three ghost
// triangles closing the hull (each hull edge paired with vertex.Ghost),
// then inserts every other buffered point.
func (b *Builder) seedFrom(a, bv, c vertex.Vertex) error {
	b.setVertex(a)
	b.setVertex(bv)
	b.setVertex(c)

	e1 := b.Pool.Allocate(a.Index, bv.Index)
	e2 := b.Pool.Allocate(bv.Index, c.Index)
	e3 := b.Pool.Allocate(c.Index, a.Index)
	b.Pool.Link(e1, e2)
	b.Pool.Link(e2, e3)
	b.Pool.Link(e3, e1)

	b.closeHullGhost(e1)
	b.closeHullGhost(e2)
	b.closeHullGhost(e3)

	b.hullHint = e1
	b.seeded = true

	rest := make([]vertex.Vertex, 0, len(b.pending))
	for _, v := range b.pending {
		if v.Index == a.Index || v.Index == bv.Index || v.Index == c.Index {
			continue
		}
		rest = append(rest, v)
	}
	b.pending = nil

	if b.hilbertPresort && len(rest) > 1 {
		order := hilbert.SortVertices(rest, 0)
		sorted := make([]vertex.Vertex, len(rest))
		for i, idx := range order {
			sorted[i] = rest[idx]
		}
		rest = sorted
	}

	for _, v := range rest {
		if _, err := b.insertSeeded(v); err != nil {
			return err
		}
	}
	return nil
}

// closeHullGhost allocates a ghost triangle (origin(e.Twin()), Ghost) on
// the far side of boundary edge e, so every mesh edge has a face on both
// sides, per spec.md §4.B's ghost-vertex convention.
func (b *Builder) closeHullGhost(e quadedge.EdgeIndex) {
	et := e.Twin()
	src := b.Pool.Origin(et)
	dst := b.Pool.Destination(et)

	g1 := b.Pool.Allocate(dst, vertex.Ghost)
	g2 := b.Pool.Allocate(vertex.Ghost, src)
	b.Pool.Link(et, g1)
	b.Pool.Link(g1, g2)
	b.Pool.Link(g2, et)
}

func (b *Builder) setVertex(v vertex.Vertex) {
	for int(v.Index) >= len(b.verts) {
		b.verts = append(b.verts, vertex.Vertex{})
	}
	b.verts[v.Index] = v
	b.spatial.Add(v.Index, v.X, v.Y)
}

func (b *Builder) insertSeeded(v vertex.Vertex) (vertex.ID, error) {
	b.setVertex(v)

	res, err := b.locator.Locate(v)
	if err != nil {
		return v.Index, errors.Wrapf(err, "build: locating point for vertex %v", v.Index)
	}

	var toLegalize []quadedge.EdgeIndex
	switch {
	case res.Exterior:
		toLegalize = b.insertExterior(v, res.Edge)
	case res.OnEdge:
		if b.Pool.Origin(res.Edge).IsGhost() || b.Pool.Destination(res.Edge).IsGhost() {
			return v.Index, errors.New("build: point falls on a ghost (exterior) edge")
		}
		sr := b.Pool.SplitEdge(res.Edge, v.Index)
		toLegalize = []quadedge.EdgeIndex{
			b.Pool.FaceNext(sr.MC), b.Pool.FaceNext(sr.MB),
			b.Pool.FaceNext(sr.MD), b.Pool.FaceNext(sr.AM.Twin()),
		}
	default:
		boundary := b.Pool.SplitFace(res.Edge, v.Index)
		toLegalize = boundary[:]
	}

	b.legalize(toLegalize, v.Index)
	return v.Index, nil
}

// insertExterior attaches v outside the current hull (spec.md §4.E's
// exterior case): every hull edge visible from v — v lies in its outward
// half-plane — is fanned into a new real triangle with v as apex, and the
// hull ring is extended to wrap around v. start is one hull edge already
// known visible from the locator's walk.
func (b *Builder) insertExterior(v vertex.Vertex, start quadedge.EdgeIndex) []quadedge.EdgeIndex {
	lo := start
	for {
		prev := quadedge.PrevHullEdge(b.Pool, lo)
		if !b.hullEdgeVisible(prev, v) {
			break
		}
		lo = prev
	}
	hi := start
	for {
		next := quadedge.NextHullEdge(b.Pool, hi)
		if !b.hullEdgeVisible(next, v) {
			break
		}
		hi = next
	}

	visible := []quadedge.EdgeIndex{lo}
	for e := lo; e != hi; e = quadedge.NextHullEdge(b.Pool, e) {
		visible = append(visible, quadedge.NextHullEdge(b.Pool, e))
	}
	k := len(visible)

	// Boundary vertices v0..vk of the visible arc, in hull order.
	bverts := make([]vertex.ID, k+1)
	for i, e := range visible {
		bverts[i] = b.Pool.Origin(e)
	}
	bverts[k] = b.Pool.Destination(visible[k-1])

	// Capture each visible edge's existing ghost triangle before touching
	// any links, so relinking ets doesn't disturb the references we still
	// need to free them.
	ets := make([]quadedge.EdgeIndex, k)
	type ghostPair struct{ g1, g2 quadedge.EdgeIndex }
	ghosts := make([]ghostPair, k)
	for i, e := range visible {
		et := e.Twin()
		g1 := b.Pool.FaceNext(et)
		g2 := b.Pool.FaceNext(g1)
		ets[i] = et
		ghosts[i] = ghostPair{g1, g2}
	}

	// One spoke per boundary vertex, vi -> v; adjacent fan triangles share
	// a spoke's two half-edges, one per side, exactly like any other
	// interior edge.
	spokes := make([]quadedge.EdgeIndex, k+1)
	for i, vid := range bverts {
		spokes[i] = b.Pool.Allocate(vid, v.Index)
	}

	toLegalize := make([]quadedge.EdgeIndex, 0, k)
	for i := 0; i < k; i++ {
		et := ets[i]
		b.Pool.Link(et, spokes[i])
		b.Pool.Link(spokes[i], spokes[i+1].Twin())
		b.Pool.Link(spokes[i+1].Twin(), et)
		toLegalize = append(toLegalize, et)
	}

	for _, g := range ghosts {
		b.Pool.Free(g.g1)
		b.Pool.Free(g.g2)
	}

	// The two end spokes are the new hull edges wrapping around v; close
	// their outward sides the same way the original seed triangle's edges
	// were closed.
	b.closeHullGhost(spokes[0])
	b.closeHullGhost(spokes[k].Twin())

	return toLegalize
}

// hullEdgeVisible reports whether v lies in e's outward half-plane (e is
// visible from v).
func (b *Builder) hullEdgeVisible(e quadedge.EdgeIndex, v vertex.Vertex) bool {
	a := b.Vertex(b.Pool.Origin(e))
	bb := b.Vertex(b.Pool.Destination(e))
	return predicates.Orient2D(a, bb, v, b.th) <= 0
}

// legalize restores the Delaunay property around newly inserted vertex v
// by flipping any illegal (unconstrained, InCircle-violating) edge,
// following the teacher's IsIllegal test (cdt/legalize.go), re-expressed
// over quad-edge faces: an edge e is tested against the apex of its left
// face and the apex of its twin's left face.
func (b *Builder) legalize(stack []quadedge.EdgeIndex, v vertex.ID) {
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !b.Pool.Live(e) || b.Pool.IsConstrained(e) {
			continue
		}
		if b.isIllegal(e) {
			opp1 := b.Pool.FaceNext(e.Twin())
			opp2 := b.Pool.FaceNext(opp1)
			b.Pool.Flip(e)
			stack = append(stack, opp1, opp2)
		}
	}
}

func (b *Builder) isIllegal(e quadedge.EdgeIndex) bool {
	u := b.Pool.Origin(e)
	w := b.Pool.Destination(e)
	apex := b.Pool.Origin(b.Pool.FaceNext(e).Twin())
	opp := b.Pool.Origin(b.Pool.FaceNext(e.Twin()).Twin())

	if u.IsGhost() || w.IsGhost() || apex.IsGhost() || opp.IsGhost() {
		return false
	}

	pu, pw, papex, popp := b.Vertex(u), b.Vertex(w), b.Vertex(apex), b.Vertex(opp)

	o := predicates.Orient2D(papex, pu, pw, b.th)
	var in int
	switch {
	case o > 0:
		in = predicates.InCircle(papex, pu, pw, popp, b.th)
	case o < 0:
		in = predicates.InCircle(papex, pw, pu, popp, b.th)
	default:
		return false
	}
	return in > 0
}
