// Package predicates implements the geometry kernel (spec.md §4.A): robust
// orientation and in-circle tests with adaptive-precision fallback, and the
// circumcenter computation the natural-neighbor interpolator needs.
//
// The two-tier design (fast float64 evaluation, falling back to extended
// precision only when the fast result is too close to zero to trust) follows
// the teacher's algorithm/robust/predicates.go almost directly; the
// difference is that thresholds here come from a caller-supplied
// vertex.Thresholds derived from nominal point spacing, rather than a fixed
// constant, per spec.md §4.A.
package predicates

import (
	"math"
	"math/big"

	"github.com/gotin/tin/vertex"
)

// Orient2D returns the sign of the signed area of triangle (a,b,c):
//
//	+1 counter-clockwise, -1 clockwise, 0 (near-)collinear.
//
// When the fast float64 result is too close to zero relative to the
// supplied half-plane threshold, the computation is redone in extended
// (big.Float) precision.
func Orient2D(a, b, c vertex.Vertex, th vertex.Thresholds) int {
	ax := b.X - a.X
	ay := b.Y - a.Y
	bx := c.X - a.X
	by := c.Y - a.Y
	det := ax*by - ay*bx

	eps := th.HalfPlaneTol
	if eps <= 0 {
		eps = 1e-15
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return orient2DExact(a, b, c)
	}
}

func orient2DExact(a, b, c vertex.Vertex) int {
	ax := bigFloat(b.X)
	ax.Sub(ax, bigFloat(a.X))
	ay := bigFloat(b.Y)
	ay.Sub(ay, bigFloat(a.Y))

	bx := bigFloat(c.X)
	bx.Sub(bx, bigFloat(a.X))
	by := bigFloat(c.Y)
	by.Sub(by, bigFloat(a.Y))

	det := det2(ax, ay, bx, by)
	return det.Sign()
}

// InCircle tests whether d lies inside, on, or outside the circumcircle of
// triangle (a,b,c) assumed CCW. Returns +1 inside, -1 outside, 0 cocircular.
func InCircle(a, b, c, d vertex.Vertex, th vertex.Thresholds) int {
	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	ad2 := adx*adx + ady*ady
	bd2 := bdx*bdx + bdy*bdy
	cd2 := cdx*cdx + cdy*cdy

	det := ad2*(bdx*cdy-bdy*cdx) -
		bd2*(adx*cdy-ady*cdx) +
		cd2*(adx*bdy-ady*bdx)

	eps := th.InCircleTol
	if eps <= 0 {
		eps = 1e-15
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return inCircleExact(a, b, c, d)
	}
}

func inCircleExact(a, b, c, d vertex.Vertex) int {
	ax := bigFloat(a.X - d.X)
	ay := bigFloat(a.Y - d.Y)
	bx := bigFloat(b.X - d.X)
	by := bigFloat(b.Y - d.Y)
	cx := bigFloat(c.X - d.X)
	cy := bigFloat(c.Y - d.Y)

	ad2 := bigFloat(0)
	ad2.Mul(ax, ax)
	tmp := bigFloat(0)
	tmp.Mul(ay, ay)
	ad2.Add(ad2, tmp)

	bd2 := bigFloat(0)
	bd2.Mul(bx, bx)
	tmp.Mul(by, by)
	bd2.Add(bd2, tmp)

	cd2 := bigFloat(0)
	cd2.Mul(cx, cx)
	tmp.Mul(cy, cy)
	cd2.Add(cd2, tmp)

	term1 := bigFloat(0)
	term1.Mul(ad2, det2(bx, by, cx, cy))

	term2 := bigFloat(0)
	term2.Mul(bd2, det2(ax, ay, cx, cy))

	term3 := bigFloat(0)
	term3.Mul(cd2, det2(ax, ay, bx, by))

	det := bigFloat(0)
	det.Add(term1, term3)
	det.Sub(det, term2)
	return det.Sign()
}

// Circumcenter returns the center of the circumcircle of triangle (a,b,c).
// The result is undefined (ok=false) if the three points are collinear.
func Circumcenter(a, b, c vertex.Vertex, th vertex.Thresholds) (cx, cy float64, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	eps := th.HalfPlaneTol
	if eps <= 0 {
		eps = 1e-15
	}
	if math.Abs(d) <= eps {
		return 0, 0, false
	}

	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y

	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	return ux, uy, true
}

func det2(ax, ay, bx, by *big.Float) *big.Float {
	out := bigFloat(0)
	tmp := bigFloat(0)
	out.Mul(ax, by)
	tmp.Mul(ay, bx)
	out.Sub(out, tmp)
	return out
}

func bigFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(256).SetFloat64(v)
}
