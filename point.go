package bezier

import (
	"fmt"
	"math/big"

	"github.com/tdewolff/bezier/algebra"
)

// BBox is an axis-aligned bounding box with exact rational bounds.
type BBox struct {
	X, Y algebra.Interval
}

func (b BBox) String() string {
	return fmt.Sprintf("%vx%v", b.X, b.Y)
}

// Originator describes a point as seen from one curve: a parameter range on
// that curve known to contain the point's exact parameter, collapsed to the
// algebraic parameter value once the exact kernel has been consulted.
type Originator struct {
	curve *Curve
	iv    algebra.Interval
	root  *algebra.Root
}

// Curve returns the originating curve.
func (o *Originator) Curve() *Curve {
	return o.curve
}

// Interval returns the current parameter enclosure.
func (o *Originator) Interval() algebra.Interval {
	if o.root != nil {
		return o.root.Interval()
	}
	return o.iv
}

// tangencyRoot isolates the single tangency parameter inside a candidate
// interval: the root of dX/dt strictly inside it. The interval endpoints
// usually bracket the root by sign, isolation from scratch is the exception.
func tangencyRoot(c *Curve, iv algebra.Interval) *algebra.Root {
	x, _ := c.XPoly()
	dx := x.Derive()
	if sLo := dx.Sign(iv.Lo); sLo != 0 && sLo != dx.Sign(iv.Hi) {
		return algebra.RootInInterval(dx, iv)
	}
	var found *algebra.Root
	for _, r := range dx.RootsIn(iv) {
		if r.CmpRat(iv.Lo) == 0 || r.CmpRat(iv.Hi) == 0 {
			continue
		}
		if found != nil {
			panic("bezier: originator interval does not isolate a tangency parameter")
		}
		found = r
	}
	if found == nil {
		panic("bezier: originator interval does not isolate a tangency parameter")
	}
	return found
}

// coordMatchPoly returns the polynomial whose roots are the parameters at
// which coord/norm attains the value v.
func coordMatchPoly(coord algebra.Poly, norm *big.Int, v *algebra.Root) algebra.Poly {
	if v.IsRational() {
		r := v.Rational()
		return coord.MulScalar(r.Denom()).Sub(algebra.Const(new(big.Int).Mul(r.Num(), norm)))
	}
	return algebra.ComposeScaled(v.Defining(), coord, norm)
}

type pointKind int

const (
	exactPoint pointKind = iota
	boundedPoint
)

// Point is a point of the arrangement: a curve endpoint, a subdivision point
// at a vertical tangency, or an intersection point. It is either exact with
// rational coordinates, or bounded: located only up to a bounding box, pinned
// down by originators that are refined on demand. The first originator of a
// bounded point always determines it, either by a resolved parameter or by a
// tangency candidate interval; later originators are pinned by the point's
// coordinates when resolved. Refinement narrows bounds monotonically and
// never widens them, so repeated comparisons stay consistent; a bounded point
// whose coordinates collapse to rationals is promoted to exact.
type Point struct {
	kind   pointKind
	x, y   *big.Rat // exact coordinates
	orig   []*Originator
	bbox   BBox
	xr, yr *algebra.Root // isolated coordinates of a bounded point
}

// NewPointXY returns an exact point from rational coordinates.
func NewPointXY(x, y *big.Rat) *Point {
	return &Point{
		kind: exactPoint,
		x:    x,
		y:    y,
		bbox: BBox{algebra.PointInterval(x), algebra.PointInterval(y)},
	}
}

// NewPointAt returns the exact point of a curve at a rational parameter,
// carrying the curve as originator.
func NewPointAt(c *Curve, t *big.Rat) *Point {
	x, y := c.Eval(t)
	p := NewPointXY(x, y)
	p.orig = []*Originator{{curve: c, iv: algebra.PointInterval(t), root: algebra.NewRationalRoot(t)}}
	return p
}

// newTangencyPoint returns a bounded point for a vertical-tangency candidate
// interval proposed by the bounding collaborator.
func newTangencyPoint(c *Curve, iv algebra.Interval, box BBox) *Point {
	return &Point{
		kind: boundedPoint,
		orig: []*Originator{{curve: c, iv: iv}},
		bbox: box,
	}
}

// newRootPoint returns the point of a curve at an isolated algebraic
// parameter, exact when the parameter is rational.
func newRootPoint(c *Curve, r *algebra.Root) *Point {
	if r.IsRational() {
		p := NewPointAt(c, r.Rational())
		p.orig[0].root = r
		return p
	}
	p := &Point{
		kind: boundedPoint,
		orig: []*Originator{{curve: c, iv: r.Interval(), root: r}},
	}
	p.bbox = enclosureBox(c, r)
	return p
}

// enclosureBox evaluates the curve's coordinate polynomials over the
// parameter enclosure.
func enclosureBox(c *Curve, r *algebra.Root) BBox {
	x, nx := c.XPoly()
	y, ny := c.YPoly()
	return BBox{
		X: x.EvalInterval(r.Interval()).DivScalar(nx),
		Y: y.EvalInterval(r.Interval()).DivScalar(ny),
	}
}

// IsExact returns true for points with exact rational coordinates.
func (p *Point) IsExact() bool {
	return p.kind == exactPoint
}

// Coords returns the exact coordinates, with ok false for bounded points.
func (p *Point) Coords() (*big.Rat, *big.Rat, bool) {
	if p.kind != exactPoint {
		return nil, nil, false
	}
	return p.x, p.y, true
}

// BBox returns the current bounding box. For exact points it is degenerate.
func (p *Point) BBox() BBox {
	return p.bbox
}

// SetBBox replaces the bounding box, as provided by the bounding collaborator.
func (p *Point) SetBBox(box BBox) {
	p.bbox = box
}

// Originators returns the point's originators.
func (p *Point) Originators() []*Originator {
	return p.orig
}

// AddOriginator records that the point also lies on the given curve, within
// the given parameter bound. The bound may be a point interval for an exact
// parameter.
func (p *Point) AddOriginator(c *Curve, iv algebra.Interval) {
	p.orig = append(p.orig, &Originator{curve: c, iv: iv})
}

func (p *Point) addOriginatorRoot(c *Curve, r *algebra.Root) {
	p.orig = append(p.orig, &Originator{curve: c, iv: r.Interval(), root: r})
}

// originatorOn returns the originator for the given curve, or nil.
func (p *Point) originatorOn(c *Curve) *Originator {
	for _, o := range p.orig {
		if o.curve.ID() == c.ID() {
			return o
		}
	}
	return nil
}

// ParamOn returns the parameter of the point on an originating curve, with ok
// false when the curve is no originator of the point.
func (p *Point) ParamOn(c *Curve) (*algebra.Root, bool) {
	o := p.originatorOn(c)
	if o == nil {
		return nil, false
	}
	return p.resolve(o), true
}

// resolve collapses an originator to its algebraic parameter. The first
// originator of a bounded point is a tangency candidate; any other is pinned
// by the point's coordinates.
func (p *Point) resolve(o *Originator) *algebra.Root {
	if o.root != nil {
		return o.root
	}
	if o.iv.IsPoint() {
		o.root = algebra.NewRationalRoot(o.iv.Lo)
		return o.root
	}
	if p.kind == boundedPoint && o == p.orig[0] {
		o.root = tangencyRoot(o.curve, o.iv)
		return o.root
	}
	x, nx := o.curve.XPoly()
	y, ny := o.curve.YPoly()
	xv, yv := p.xRoot(), p.yRoot()
	q := coordMatchPoly(x, nx, xv)
	if q.IsZero() {
		q = coordMatchPoly(y, ny, yv)
	}
	for _, cand := range q.RootsIn(o.iv) {
		if algebra.CoordRoot(cand, x, nx).Cmp(xv) == 0 && algebra.CoordRoot(cand, y, ny).Cmp(yv) == 0 {
			o.root = cand
			return cand
		}
	}
	panic("bezier: originator interval does not contain the point")
}

// xRoot isolates the x-coordinate as an algebraic number.
func (p *Point) xRoot() *algebra.Root {
	if p.xr == nil {
		if p.kind == exactPoint {
			p.xr = algebra.NewRationalRoot(p.x)
		} else {
			o := p.orig[0]
			x, nx := o.curve.XPoly()
			p.xr = algebra.CoordRoot(p.resolve(o), x, nx)
		}
	}
	return p.xr
}

// yRoot isolates the y-coordinate as an algebraic number.
func (p *Point) yRoot() *algebra.Root {
	if p.yr == nil {
		if p.kind == exactPoint {
			p.yr = algebra.NewRationalRoot(p.y)
		} else {
			o := p.orig[0]
			y, ny := o.curve.YPoly()
			p.yr = algebra.CoordRoot(p.resolve(o), y, ny)
		}
	}
	return p.yr
}

// tighten intersects the bounding box with the isolated coordinate enclosures,
// narrowing it monotonically, and promotes the point to exact when both
// coordinates have collapsed to rationals.
func (p *Point) tighten() {
	if p.kind == exactPoint {
		return
	}
	if p.xr != nil {
		if iv, ok := p.bbox.X.Intersect(p.xr.Interval()); ok {
			p.bbox.X = iv
		} else {
			p.bbox.X = p.xr.Interval()
		}
	}
	if p.yr != nil {
		if iv, ok := p.bbox.Y.Intersect(p.yr.Interval()); ok {
			p.bbox.Y = iv
		} else {
			p.bbox.Y = p.yr.Interval()
		}
	}
	if p.xr != nil && p.yr != nil && p.xr.IsRational() && p.yr.IsRational() {
		p.kind = exactPoint
		p.x, p.y = p.xr.Rational(), p.yr.Rational()
		p.bbox = BBox{algebra.PointInterval(p.x), algebra.PointInterval(p.y)}
	}
}

// Refine narrows the point's bounds one step: every resolved parameter and
// isolated coordinate is refined and the bounding box is tightened. The point
// is promoted to exact when its coordinates collapse to rationals.
func (p *Point) Refine() {
	if p.kind == exactPoint {
		return
	}
	for _, o := range p.orig {
		p.resolve(o).Refine()
	}
	p.xRoot().Refine()
	p.yRoot().Refine()
	p.tighten()
}

// CompareX orders two points by x-coordinate. Disjoint bounding boxes decide
// without exact arithmetic; otherwise the exact kernel isolates and compares
// the coordinates, narrowing the points' bounds as a side effect.
func (p *Point) CompareX(q *Point) int {
	if p == q {
		return 0
	}
	if p.kind == exactPoint && q.kind == exactPoint {
		return p.x.Cmp(q.x)
	}
	if p.bbox.X.Before(q.bbox.X) {
		return -1
	} else if q.bbox.X.Before(p.bbox.X) {
		return 1
	}
	c := p.xRoot().Cmp(q.xRoot())
	p.tighten()
	q.tighten()
	return c
}

// CompareXY orders two points lexicographically by x, then y.
func (p *Point) CompareXY(q *Point) int {
	if p == q {
		return 0
	}
	if c := p.CompareX(q); c != 0 {
		return c
	}
	if p.kind == exactPoint && q.kind == exactPoint {
		return p.y.Cmp(q.y)
	}
	if p.bbox.Y.Before(q.bbox.Y) {
		return -1
	} else if q.bbox.Y.Before(p.bbox.Y) {
		return 1
	}
	c := p.yRoot().Cmp(q.yRoot())
	p.tighten()
	q.tighten()
	return c
}

// Equals returns true when both points are the same geometric point. A shared
// originator curve with equal parameters answers immediately; otherwise the
// coordinates are compared exactly.
func (p *Point) Equals(q *Point) bool {
	if p == q {
		return true
	}
	for _, po := range p.orig {
		for _, qo := range q.orig {
			if po.curve.ID() == qo.curve.ID() && p.resolve(po).Cmp(q.resolve(qo)) == 0 {
				return true
			}
		}
	}
	return p.CompareXY(q) == 0
}

// Approx returns a float64 approximation of the point.
func (p *Point) Approx() (float64, float64) {
	if p.kind == exactPoint {
		x, _ := p.x.Float64()
		y, _ := p.y.Float64()
		return x, y
	}
	return p.xRoot().Float(), p.yRoot().Float()
}

func (p *Point) String() string {
	if p.kind == exactPoint {
		return fmt.Sprintf("(%s,%s)", p.x.RatString(), p.y.RatString())
	}
	return "~" + p.bbox.String()
}
