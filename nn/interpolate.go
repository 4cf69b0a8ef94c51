package nn

import (
	"math"

	"github.com/gotin/tin/vertex"
)

// InterpolateZ applies the result's weights to each neighbor's Z value,
// giving the Sibson natural-neighbor estimate at the query point.
func (r Result) InterpolateZ(vl VertexLookup) float64 {
	z := 0.0
	for _, w := range r.Weights {
		z += w.Value * vl.Vertex(w.Vertex).Z
	}
	return z
}

// Normal estimates the surface normal at the query point (a supplemented
// feature beyond plain Z interpolation) as the weighted average of the
// neighbors' local surface gradient, approximated by differencing each
// neighbor's Z against the interpolated value over its offset from the
// query point. Degenerate (near-coincident) offsets are skipped.
func (r Result) Normal(vl VertexLookup, q vertex.Vertex) (nx, ny, nz float64) {
	z0 := r.InterpolateZ(vl)
	var gx, gy, wsum float64
	for _, w := range r.Weights {
		p := vl.Vertex(w.Vertex)
		dx := p.X - q.X
		dy := p.Y - q.Y
		d2 := dx*dx + dy*dy
		if d2 < 1e-18 {
			continue
		}
		dz := p.Z - z0
		gx += w.Value * dz * dx / d2
		gy += w.Value * dz * dy / d2
		wsum += w.Value
	}
	if wsum > 0 {
		gx /= wsum
		gy /= wsum
	}
	// Surface z = z0 + gx*dx + gy*dy locally; normal is (-gx,-gy,1),
	// normalized.
	norm := math.Sqrt(gx*gx + gy*gy + 1)
	return -gx / norm, -gy / norm, 1 / norm
}
