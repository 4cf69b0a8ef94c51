package vertex

import "math"

// Thresholds holds the tolerance values derived from a nominal point spacing,
// per spec.md §4.A. They govern vertex merging and adaptive-precision
// fallback thresholds for the predicates package.
type Thresholds struct {
	NominalSpacing   float64
	VertexTol        float64 // vertexTolerance = h * 1e-5
	VertexTol2       float64 // VertexTol squared
	InCircleTol      float64 // ~ h^4 * eps
	HalfPlaneTol     float64 // ~ h^2 * eps
}

// machineEpsilon is the double-precision machine epsilon used to scale the
// adaptive-precision fallback thresholds.
const machineEpsilon = 2.220446049250313e-16

// NewThresholds derives the full threshold set from a nominal point spacing h.
// h must be strictly positive; a non-positive h is a precondition violation
// that callers are expected to validate before calling (see tin.NewMesh).
func NewThresholds(h float64) Thresholds {
	vt := h * 1e-5
	return Thresholds{
		NominalSpacing: h,
		VertexTol:      vt,
		VertexTol2:     vt * vt,
		InCircleTol:    math.Pow(h, 4) * machineEpsilon * 1e4,
		HalfPlaneTol:   h * h * machineEpsilon * 1e4,
	}
}

// IsCoincident reports whether a and b lie within vertex-merge tolerance.
func (t Thresholds) IsCoincident(a, b Vertex) bool {
	return Distance2(a, b) <= t.VertexTol2
}
