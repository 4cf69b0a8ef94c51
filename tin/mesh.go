// Package tin is the facade composing build, constraint, locate, nn, and
// ols behind the operation table spec.md §6 describes: a single Mesh type
// that accepts vertices and constraints and answers location and
// interpolation queries. It mirrors the teacher's mesh.Mesh constructor and
// functional-options shape (mesh/constructor.go, mesh/options.go),
// retargeted from a triangle-soup mesh to the quad-edge mesh the rest of
// this module builds.
package tin

import (
	"github.com/pkg/errors"

	"github.com/gotin/tin/build"
	"github.com/gotin/tin/locate"
	"github.com/gotin/tin/quadedge"
	"github.com/gotin/tin/vertex"
)

// Mesh is the top-level handle spec.md §6 describes: a constrained
// Delaunay triangulation plus the interpolators built on top of it.
type Mesh struct {
	cfg     config
	builder *build.Builder

	// payloads holds each constraint's application payload, keyed by its
	// ID (spec.md's Glossary "application payload"). The mesh's edges
	// only carry the int32 constraint id (quadedge.Pool's packed
	// per-edge word); arbitrary payload data lives here instead, at the
	// facade layer where interface{} naturally belongs.
	payloads map[int32]interface{}
}

// NewMesh creates an empty mesh whose predicate tolerances derive from the
// nominal point spacing h.
func NewMesh(h float64, opts ...Option) (*Mesh, error) {
	if h <= 0 {
		return nil, ErrInvalidSpacing
	}
	cfg := newDefaultConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	b := build.New(h,
		build.WithMergeRule(cfg.mergeRule),
		build.WithRandomSeed(cfg.randomSeed),
		build.WithHilbertPresort(true),
	)

	return &Mesh{cfg: cfg, builder: b, payloads: make(map[int32]interface{})}, nil
}

// Insert adds a point to the mesh, returning its assigned vertex.ID. Before
// three non-collinear points are available, Insert buffers the point and
// returns a nil error; the mesh is seeded, and the buffered points
// inserted, by the call that completes a non-collinear triple.
func (m *Mesh) Insert(x, y, z float64) (vertex.ID, error) {
	id, err := m.builder.Insert(x, y, z)
	if err == nil && m.cfg.debug.onVertex != nil {
		m.cfg.debug.onVertex(id, m.builder.Vertex(id))
	}
	return id, err
}

// Vertex resolves a vertex.ID to its stored coordinates.
func (m *Mesh) Vertex(id vertex.ID) vertex.Vertex {
	return m.builder.Vertex(id)
}

// Edges iterates the mesh's base half-edges (one representative per edge
// pair). When includeGhosts is false, edges touching the ghost sentinel
// vertex (hull-closure edges) are skipped.
func (m *Mesh) Edges(includeGhosts bool) []quadedge.EdgeIndex {
	pool := m.builder.Pool
	var out []quadedge.EdgeIndex
	pool.BaseEdges(func(e quadedge.EdgeIndex) {
		if !includeGhosts && (pool.Origin(e).IsGhost() || pool.Destination(e).IsGhost()) {
			return
		}
		out = append(out, e)
	})
	return out
}

// BoundingBox returns the axis-aligned extent of every inserted (non-ghost)
// vertex.
func (m *Mesh) BoundingBox() vertex.BoundingBox {
	return vertex.ComputeBoundingBox(m.builder.Vertices())
}

// Locate finds the half-edge of the triangle (or hull) enclosing (x, y),
// starting the walk from hint when it is a live edge, or from the mesh's
// internal hint otherwise.
func (m *Mesh) Locate(hint quadedge.EdgeIndex, x, y float64) (locate.Result, error) {
	q := vertex.New(x, y, 0, vertex.Ghost)
	if !hint.IsNil() && m.builder.Pool.Live(hint) {
		return m.builder.LocateFrom(q, hint)
	}
	return m.builder.Locate(q)
}

// Dispose releases the mesh's internal arenas. Not calling it is not
// catastrophic — the builder and its edge pool are ordinary
// garbage-collected values — but a disposed Mesh must not be used again.
func (m *Mesh) Dispose() {
	m.builder = nil
}

func (m *Mesh) requireBootstrapped() error {
	if m.builder == nil || m.builder.HullHint().IsNil() {
		return errors.Wrap(ErrNotBootstrapped, "tin: mesh has not accepted 3 non-collinear vertices yet")
	}
	return nil
}
