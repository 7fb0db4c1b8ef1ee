package bezier

import (
	"math/big"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/tdewolff/bezier/algebra"
)

var curveID atomic.Uint64

// ControlPoint is a Bezier control point with exact rational coordinates.
type ControlPoint struct {
	X, Y *big.Rat
}

// CP returns a control point from two rationals given as numerator/denominator
// free strings such as "1", "-3/4" or "0.25".
func CP(x, y string) ControlPoint {
	xr, ok := new(big.Rat).SetString(x)
	if !ok {
		panic("bezier: invalid rational " + x)
	}
	yr, ok := new(big.Rat).SetString(y)
	if !ok {
		panic("bezier: invalid rational " + y)
	}
	return ControlPoint{xr, yr}
}

// Curve is an immutable planar Bezier curve of arbitrary degree given by
// rational control points, identified by a unique id that orders the caches.
// The coordinate polynomials X(t) and Y(t) with their integer normalization
// denominators are derived from the control points on first use.
type Curve struct {
	id  uint64
	pts []ControlPoint

	derived      bool
	xPoly, yPoly algebra.Poly
	xNorm, yNorm *big.Int
}

// NewCurve returns a curve over the given control points. The control-point
// sequence must be non-empty and fully specified.
func NewCurve(pts []ControlPoint) *Curve {
	if len(pts) == 0 {
		panic("bezier: curve needs at least one control point")
	}
	for _, p := range pts {
		if p.X == nil || p.Y == nil {
			panic("bezier: control point with missing coordinate")
		}
	}
	c := &Curve{id: curveID.Add(1)}
	c.pts = make([]ControlPoint, len(pts))
	copy(c.pts, pts)
	return c
}

// ID returns the stable unique identifier of the curve.
func (c *Curve) ID() uint64 {
	return c.id
}

// Degree returns the degree of the curve, one less than its control-point count.
func (c *Curve) Degree() int {
	return len(c.pts) - 1
}

// Points returns a copy of the control points.
func (c *Curve) Points() []ControlPoint {
	pts := make([]ControlPoint, len(c.pts))
	copy(pts, c.pts)
	return pts
}

// SamePoints returns true when both curves have identical control points and
// hence identical traces and parameterizations, even when their ids differ.
func (c *Curve) SamePoints(o *Curve) bool {
	if len(c.pts) != len(o.pts) {
		return false
	}
	for i := range c.pts {
		if c.pts[i].X.Cmp(o.pts[i].X) != 0 || c.pts[i].Y.Cmp(o.pts[i].Y) != 0 {
			return false
		}
	}
	return true
}

// derive converts the control points from the Bernstein basis to the power
// basis: coefficient k of t^k is C(n,k) * sum_{i<=k} (-1)^(k-i) C(k,i) P_i,
// then clears denominators into integer polynomials.
func (c *Curve) derive() {
	if c.derived {
		return
	}
	n := c.Degree()
	binN := binomialRow(n)
	xs := make([]*big.Rat, n+1)
	ys := make([]*big.Rat, n+1)
	for k := 0; k <= n; k++ {
		binK := binomialRow(k)
		xk, yk := new(big.Rat), new(big.Rat)
		term := new(big.Rat)
		for i := 0; i <= k; i++ {
			term.SetInt(binK[i])
			if (k-i)%2 == 1 {
				term.Neg(term)
			}
			xk.Add(xk, new(big.Rat).Mul(term, c.pts[i].X))
			yk.Add(yk, new(big.Rat).Mul(term, c.pts[i].Y))
		}
		f := new(big.Rat).SetInt(binN[k])
		xs[k] = xk.Mul(xk, f)
		ys[k] = yk.Mul(yk, f)
	}
	c.xPoly, c.xNorm = algebra.FromRats(xs)
	c.yPoly, c.yNorm = algebra.FromRats(ys)
	c.derived = true
}

// XPoly returns the integer x-coordinate polynomial and its positive
// normalization denominator: the x-coordinate at t is X(t)/norm.
func (c *Curve) XPoly() (algebra.Poly, *big.Int) {
	c.derive()
	return c.xPoly, c.xNorm
}

// YPoly returns the integer y-coordinate polynomial and its positive
// normalization denominator.
func (c *Curve) YPoly() (algebra.Poly, *big.Int) {
	c.derive()
	return c.yPoly, c.yNorm
}

// ParamCurve returns the curve's coordinate polynomials bundled for the exact
// kernel.
func (c *Curve) ParamCurve() algebra.ParamCurve {
	c.derive()
	return algebra.ParamCurve{X: c.xPoly, Y: c.yPoly, NormX: c.xNorm, NormY: c.yNorm}
}

// Eval returns the exact point of the curve at the rational parameter t.
func (c *Curve) Eval(t *big.Rat) (*big.Rat, *big.Rat) {
	c.derive()
	x := c.xPoly.Eval(t)
	x.Quo(x, new(big.Rat).SetInt(c.xNorm))
	y := c.yPoly.Eval(t)
	y.Quo(y, new(big.Rat).SetInt(c.yNorm))
	return x, y
}

// Approx returns a float64 approximation of the curve at parameter t using de
// Casteljau on rounded control points, for display purposes.
func (c *Curve) Approx(t float64) (float64, float64) {
	xs := make([]float64, len(c.pts))
	ys := make([]float64, len(c.pts))
	for i, p := range c.pts {
		xs[i], _ = p.X.Float64()
		ys[i], _ = p.Y.Float64()
	}
	for m := len(xs) - 1; 0 < m; m-- {
		for i := 0; i < m; i++ {
			xs[i] += t * (xs[i+1] - xs[i])
			ys[i] += t * (ys[i+1] - ys[i])
		}
	}
	return xs[0], ys[0]
}

// String writes the curve in the data format accepted by ParseCurve: the
// number of control points followed by their rational coordinates.
func (c *Curve) String() string {
	sb := strings.Builder{}
	sb.WriteString(strconv.Itoa(len(c.pts)))
	for _, p := range c.pts {
		sb.WriteString("  ")
		sb.WriteString(p.X.RatString())
		sb.WriteString(" ")
		sb.WriteString(p.Y.RatString())
	}
	return sb.String()
}

// binomialRow returns binomial coefficients C(n,0)..C(n,n).
func binomialRow(n int) []*big.Int {
	row := make([]*big.Int, n+1)
	row[0] = big.NewInt(1)
	for k := 1; k <= n; k++ {
		row[k] = new(big.Int).Mul(row[k-1], big.NewInt(int64(n-k+1)))
		row[k].Quo(row[k], big.NewInt(int64(k)))
	}
	return row
}
