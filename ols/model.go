// Package ols implements the ordinary-least-squares surface interpolator
// (spec.md §4.H): a local neighborhood of samples is gathered around a
// query point, reframed into query-centered coordinates, and fit against
// one of a fixed family of polynomial surface models by solving the normal
// equations through linalg's Householder QR.
package ols

// Model selects the polynomial surface fit against the local neighborhood.
// Term enumeration is canonical (spec.md §4.H table); the cubic-with-
// cross-terms model here is the corrected 10-term enumeration, not the
// off-by-one variant a prior implementation of this system was found to
// have.
type Model int

const (
	Planar Model = iota
	PlanarWithCrossTerms
	Quadratic
	QuadraticWithCrossTerms
	Cubic
	CubicWithCrossTerms
)

// TermCount returns the number of coefficients (including the constant
// term) a model requires.
func TermCount(m Model) int {
	switch m {
	case Planar:
		return 3
	case PlanarWithCrossTerms:
		return 4
	case Quadratic:
		return 5
	case QuadraticWithCrossTerms:
		return 6
	case Cubic:
		return 7
	case CubicWithCrossTerms:
		return 10
	default:
		return 3
	}
}

// basis evaluates the model's fixed term enumeration at offset (dx, dy)
// from the query point. Term order matches TermCount: the constant comes
// first so β₀ is the query-centered estimate, then the linear terms so β₁,
// β₂ are the estimated partials, with higher-order terms carrying
// curvature.
func basis(m Model, dx, dy float64) []float64 {
	x2, y2 := dx*dx, dy*dy
	xy := dx * dy

	switch m {
	case Planar:
		return []float64{1, dx, dy}
	case PlanarWithCrossTerms:
		return []float64{1, dx, dy, xy}
	case Quadratic:
		return []float64{1, dx, dy, x2, y2}
	case QuadraticWithCrossTerms:
		return []float64{1, dx, dy, x2, y2, xy}
	case Cubic:
		return []float64{1, dx, dy, x2, y2, dx * x2, dy * y2}
	case CubicWithCrossTerms:
		return []float64{1, dx, dy, x2, y2, xy, dx * x2, dy * y2, x2 * dy, dx * y2}
	default:
		return []float64{1, dx, dy}
	}
}

// downgrade returns the next smaller model in the fallback chain used when
// a query neighborhood has too few samples to support the requested model
// (spec.md §4.H's fallback-to-Planar policy). Planar has no further
// fallback.
func downgrade(m Model) (Model, bool) {
	switch m {
	case CubicWithCrossTerms:
		return Cubic, true
	case Cubic:
		return QuadraticWithCrossTerms, true
	case QuadraticWithCrossTerms:
		return Quadratic, true
	case Quadratic:
		return PlanarWithCrossTerms, true
	case PlanarWithCrossTerms:
		return Planar, true
	default:
		return Planar, false
	}
}
