package tin

import (
	"github.com/pkg/errors"

	"github.com/gotin/tin/predicates"
	"github.com/gotin/tin/quadedge"
)

// ErrInvariantViolated is wrapped with a specific diagnostic message by
// CheckInvariants when a structural or geometric invariant does not hold.
var ErrInvariantViolated = errors.New("tin: mesh invariant violated")

// CheckInvariants self-checks the mesh's structural invariants (spec.md
// §8): next/prev/twin closure, and the Euler relation V-E+F=1 counted over
// real (non-ghost) elements. When checkDelaunay is true, it additionally
// verifies the Delaunay (empty-circumcircle) property over every
// non-constrained edge — an O(n) pass, so it is opt-in.
//
// This mirrors the teacher's cdt.ValidateTopology/IsDelaunay pair, adapted
// from a triangle-neighbor-array check to a quad-edge one.
func (m *Mesh) CheckInvariants(checkDelaunay bool) error {
	pool := m.builder.Pool

	var topologyErr error
	pool.BaseEdges(func(e quadedge.EdgeIndex) {
		if topologyErr != nil {
			return
		}
		for _, d := range [2]quadedge.EdgeIndex{e, e.Twin()} {
			if pool.Next(pool.Prev(d)) != d {
				topologyErr = errors.Wrapf(ErrInvariantViolated, "next(prev(%v)) != %v", d, d)
				return
			}
			if pool.Prev(pool.Next(d)) != d {
				topologyErr = errors.Wrapf(ErrInvariantViolated, "prev(next(%v)) != %v", d, d)
				return
			}
			if d.Twin().Twin() != d {
				topologyErr = errors.Wrapf(ErrInvariantViolated, "twin(twin(%v)) != %v", d, d)
				return
			}
			if pool.Origin(d.Twin()) != pool.Destination(d) {
				topologyErr = errors.Wrapf(ErrInvariantViolated, "origin(twin(%v)) != destination(%v)", d, d)
				return
			}
		}
	})
	if topologyErr != nil {
		return topologyErr
	}

	if err := m.checkEulerRelation(); err != nil {
		return err
	}

	if checkDelaunay {
		return m.checkDelaunayProperty()
	}
	return nil
}

// checkEulerRelation counts real (non-ghost) vertices, edges, and faces and
// verifies V-E+F=1 over the triangulated region (the planar graph bounded
// by the hull, not including the exterior ghost face).
func (m *Mesh) checkEulerRelation() error {
	pool := m.builder.Pool
	vertices := len(m.builder.Vertices())

	edgeSeen := make(map[quadedge.EdgeIndex]bool)
	edges := 0
	pool.BaseEdges(func(e quadedge.EdgeIndex) {
		if pool.Origin(e).IsGhost() || pool.Destination(e).IsGhost() {
			return
		}
		key := e
		if e.Twin() < key {
			key = e.Twin()
		}
		if edgeSeen[key] {
			return
		}
		edgeSeen[key] = true
		edges++
	})

	faceSeen := make(map[quadedge.EdgeIndex]bool)
	faces := 0
	pool.BaseEdges(func(e quadedge.EdgeIndex) {
		for _, d := range [2]quadedge.EdgeIndex{e, e.Twin()} {
			a := pool.Origin(d)
			e1 := pool.FaceNext(d)
			b := pool.Origin(e1)
			e2 := pool.FaceNext(e1)
			c := pool.Origin(e2)
			if a.IsGhost() || b.IsGhost() || c.IsGhost() {
				continue
			}
			key := d
			if e1 < key {
				key = e1
			}
			if e2 < key {
				key = e2
			}
			if faceSeen[key] {
				continue
			}
			faceSeen[key] = true
			faces++
		}
	})

	if vertices-edges+faces != 1 {
		return errors.Wrapf(ErrInvariantViolated, "Euler relation failed: V=%d E=%d F=%d (V-E+F=%d, want 1)",
			vertices, edges, faces, vertices-edges+faces)
	}
	return nil
}

func (m *Mesh) checkDelaunayProperty() error {
	pool := m.builder.Pool
	th := m.builder.Thresholds()

	var badEdge error
	pool.BaseEdges(func(e quadedge.EdgeIndex) {
		if badEdge != nil || pool.IsConstrained(e) {
			return
		}
		u := pool.Origin(e)
		w := pool.Destination(e)
		apex := pool.Origin(pool.FaceNext(e).Twin())
		opp := pool.Origin(pool.FaceNext(e.Twin()).Twin())
		if u.IsGhost() || w.IsGhost() || apex.IsGhost() || opp.IsGhost() {
			return
		}

		pu, pw, papex, popp := m.builder.Vertex(u), m.builder.Vertex(w), m.builder.Vertex(apex), m.builder.Vertex(opp)
		o := predicates.Orient2D(papex, pu, pw, th)
		var in int
		switch {
		case o > 0:
			in = predicates.InCircle(papex, pu, pw, popp, th)
		case o < 0:
			in = predicates.InCircle(papex, pw, pu, popp, th)
		default:
			return
		}
		if in > 0 {
			badEdge = errors.Wrapf(ErrInvariantViolated, "edge (%v,%v) violates the Delaunay property", u, w)
		}
	})
	return badEdge
}
