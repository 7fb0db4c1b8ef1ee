package bezier

import (
	"math"
	"math/big"

	"github.com/paulmach/orb"
)

// LineString flattens the curve into a polyline of n segments with uniformly
// spaced parameters.
func (c *Curve) LineString(n int) orb.LineString {
	if n < 1 {
		n = 1
	}
	ls := make(orb.LineString, n+1)
	for i := 0; i <= n; i++ {
		x, y := c.Approx(float64(i) / float64(n))
		ls[i] = orb.Point{x, y}
	}
	return ls
}

// Bound returns a bound containing the curve, from the convex hull property of
// the control polygon.
func (c *Curve) Bound() orb.Bound {
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, pt := range c.Points() {
		x, _ := pt.X.Float64()
		y, _ := pt.Y.Float64()
		x0, x1 = math.Min(x0, x), math.Max(x1, x)
		y0, y1 = math.Min(y0, y), math.Max(y1, y)
	}
	return orb.Bound{Min: orb.Point{x0, y0}, Max: orb.Point{x1, y1}}
}

// LineString flattens the arc into a polyline of n segments with uniformly
// spaced parameters, from the source towards the target.
func (a *Arc) LineString(n int) orb.LineString {
	if n < 1 {
		n = 1
	}
	t0, t1 := a.ps.Float(), a.pt.Float()
	ls := make(orb.LineString, n+1)
	for i := 0; i <= n; i++ {
		x, y := a.curve.Approx(t0 + (t1-t0)*float64(i)/float64(n))
		ls[i] = orb.Point{x, y}
	}
	return ls
}

// Bound returns the bounding box as an orb bound.
func (b BBox) Bound() orb.Bound {
	x0, _ := b.X.Lo.Float64()
	x1, _ := b.X.Hi.Float64()
	y0, _ := b.Y.Lo.Float64()
	y1, _ := b.Y.Hi.Float64()
	return orb.Bound{Min: orb.Point{x0, y0}, Max: orb.Point{x1, y1}}
}

// FromLineString converts a polyline into consecutive linear curves with exact
// coordinates. Degenerate segments between repeated points are skipped.
func FromLineString(ls orb.LineString) []*Curve {
	curves := make([]*Curve, 0, len(ls))
	for i := 1; i < len(ls); i++ {
		p0, p1 := ratPoint(ls[i-1]), ratPoint(ls[i])
		if p0.X.Cmp(p1.X) == 0 && p0.Y.Cmp(p1.Y) == 0 {
			continue
		}
		curves = append(curves, NewCurve([]ControlPoint{p0, p1}))
	}
	return curves
}

func ratPoint(p orb.Point) ControlPoint {
	x := new(big.Rat).SetFloat64(p[0])
	y := new(big.Rat).SetFloat64(p[1])
	if x == nil || y == nil {
		panic("bezier: point coordinate is not finite")
	}
	return ControlPoint{x, y}
}
