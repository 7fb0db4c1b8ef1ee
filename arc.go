package bezier

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/tdewolff/bezier/algebra"
)

// ErrCoincident is returned when two curves with distinct ids trace a common
// component, which the exact kernel cannot decompose into isolated points.
var ErrCoincident = algebra.ErrCoincident

var errNotOnArc = errors.New("bezier: point not on arc")

// Arc is an x-monotone piece of a supporting Bezier curve between two
// parameters, directed from source to target, or a y-monotone segment of a
// vertical curve. The open parameter range contains no vertical tangency;
// construction through MakeXMonotone, Split and Merge preserves this.
type Arc struct {
	curve          *Curve
	source, target *Point
	ps, pt         *algebra.Root // parameters at source and target
	dirRight       bool
	vertical       bool
}

func newArc(c *Curve, source, target *Point, ps, pt *algebra.Root) *Arc {
	if ps.Cmp(pt) == 0 {
		panic("bezier: arc endpoints coincide")
	}
	x, _ := c.XPoly()
	a := &Arc{
		curve:    c,
		source:   source,
		target:   target,
		ps:       ps,
		pt:       pt,
		vertical: x.IsConst(),
	}
	a.dirRight = source.CompareXY(target) < 0
	return a
}

// SupportingCurve returns the curve the arc is a piece of.
func (a *Arc) SupportingCurve() *Curve {
	return a.curve
}

// Source returns the endpoint the arc is directed from.
func (a *Arc) Source() *Point {
	return a.source
}

// Target returns the endpoint the arc is directed to.
func (a *Arc) Target() *Point {
	return a.target
}

// SourceParam returns the curve parameter at the source.
func (a *Arc) SourceParam() *algebra.Root {
	return a.ps
}

// TargetParam returns the curve parameter at the target.
func (a *Arc) TargetParam() *algebra.Root {
	return a.pt
}

// IsVertical returns true for arcs of a curve with constant x-coordinate.
func (a *Arc) IsVertical() bool {
	return a.vertical
}

// IsDirectedRight returns true when the source precedes the target
// lexicographically by x then y, so vertical arcs count as directed right when
// directed upward.
func (a *Arc) IsDirectedRight() bool {
	return a.dirRight
}

// Left returns the lexicographically smaller endpoint.
func (a *Arc) Left() *Point {
	if a.dirRight {
		return a.source
	}
	return a.target
}

// Right returns the lexicographically larger endpoint.
func (a *Arc) Right() *Point {
	if a.dirRight {
		return a.target
	}
	return a.source
}

// Flip returns the same arc directed oppositely.
func (a *Arc) Flip() *Arc {
	return newArc(a.curve, a.target, a.source, a.pt, a.ps)
}

// Equal returns true when both arcs cover the same piece of the same
// supporting curve, regardless of direction.
func (a *Arc) Equal(b *Arc) bool {
	if !a.sameSupport(b) {
		return false
	}
	alo, ahi := a.sortedParams()
	blo, bhi := b.sortedParams()
	return alo.Cmp(blo) == 0 && ahi.Cmp(bhi) == 0
}

func (a *Arc) String() string {
	return fmt.Sprintf("curve %d %v-%v", a.curve.ID(), a.ps.Interval(), a.pt.Interval())
}

// sameSupport returns true when both arcs lie on the same supporting curve, by
// id or by identical control points, so that their parameters are comparable.
func (a *Arc) sameSupport(b *Arc) bool {
	return a.curve.ID() == b.curve.ID() || a.curve.SamePoints(b.curve)
}

// sortedParams returns the parameter range endpoints in ascending order.
func (a *Arc) sortedParams() (*algebra.Root, *algebra.Root) {
	if a.ps.Cmp(a.pt) <= 0 {
		return a.ps, a.pt
	}
	return a.pt, a.ps
}

// endpointAt returns the endpoint at the given parameter, or nil.
func (a *Arc) endpointAt(t *algebra.Root) *Point {
	if a.ps.Cmp(t) == 0 {
		return a.source
	} else if a.pt.Cmp(t) == 0 {
		return a.target
	}
	return nil
}

// verticalX returns the constant x-coordinate of a vertical arc.
func (a *Arc) verticalX() *big.Rat {
	x, nx := a.curve.XPoly()
	if x.IsZero() {
		return new(big.Rat)
	}
	return new(big.Rat).SetFrac(x[0], nx)
}

// paramAt returns the parameter within the arc's range at which the given
// coordinate polynomial attains the value v, or nil when it is not attained.
// The coordinate must be strictly monotone over the range.
func (a *Arc) paramAt(coord algebra.Poly, norm *big.Int, v *algebra.Root) *algebra.Root {
	plo, phi := a.sortedParams()
	hull := algebra.Interval{Lo: plo.Interval().Lo, Hi: phi.Interval().Hi}
	q := coordMatchPoly(coord, norm, v)
	if q.IsZero() {
		panic("bezier: coordinate is constant along the arc")
	}
	for _, cand := range q.RootsIn(hull) {
		if cand.Cmp(plo) < 0 || 0 < cand.Cmp(phi) {
			continue
		}
		if algebra.CoordRoot(cand, coord, norm).Cmp(v) == 0 {
			return cand
		}
	}
	return nil
}

// paramOf returns the arc parameter of a point lying on the arc, preferring
// the point's own originator over isolating the parameter from scratch.
func (a *Arc) paramOf(p *Point) (*algebra.Root, error) {
	if t, ok := p.ParamOn(a.curve); ok {
		plo, phi := a.sortedParams()
		if t.Cmp(plo) < 0 || 0 < t.Cmp(phi) {
			return nil, errNotOnArc
		}
		return t, nil
	}
	if a.vertical {
		if p.xRoot().CmpRat(a.verticalX()) != 0 {
			return nil, errNotOnArc
		}
		y, ny := a.curve.YPoly()
		t0 := a.paramAt(y, ny, p.yRoot())
		if t0 == nil {
			return nil, errNotOnArc
		}
		return t0, nil
	}
	x, nx := a.curve.XPoly()
	t0 := a.paramAt(x, nx, p.xRoot())
	if t0 == nil {
		return nil, errNotOnArc
	}
	y, ny := a.curve.YPoly()
	if p.yRoot().Cmp(algebra.CoordRoot(t0, y, ny)) != 0 {
		return nil, errNotOnArc
	}
	return t0, nil
}

// ensureOriginator attaches the arc's supporting curve to the point as an
// originator when missing, and returns the parameter.
func (a *Arc) ensureOriginator(p *Point) *algebra.Root {
	if t, ok := p.ParamOn(a.curve); ok {
		return t
	}
	var t0 *algebra.Root
	if a.vertical {
		y, ny := a.curve.YPoly()
		t0 = a.paramAt(y, ny, p.yRoot())
	} else {
		x, nx := a.curve.XPoly()
		t0 = a.paramAt(x, nx, p.xRoot())
	}
	if t0 == nil {
		panic("bezier: point not on arc")
	}
	p.addOriginatorRoot(a.curve, t0)
	return t0
}

// PointPosition returns the vertical position of a point relative to the arc:
// -1 below, 0 on, 1 above. The point's x-coordinate must lie in the arc's
// x-range; for a vertical arc the point must lie on its line.
func (a *Arc) PointPosition(p *Point) int {
	if a.vertical {
		if p.xRoot().CmpRat(a.verticalX()) != 0 {
			panic("bezier: point not on the line of the vertical arc")
		}
		if p.yRoot().Cmp(a.Left().yRoot()) < 0 {
			return -1
		} else if 0 < p.yRoot().Cmp(a.Right().yRoot()) {
			return 1
		}
		return 0
	}
	if t, ok := p.ParamOn(a.curve); ok {
		plo, phi := a.sortedParams()
		if 0 <= t.Cmp(plo) && t.Cmp(phi) <= 0 {
			return 0
		}
	}
	x, nx := a.curve.XPoly()
	t0 := a.paramAt(x, nx, p.xRoot())
	if t0 == nil {
		panic("bezier: point not in the x-range of the arc")
	}
	y, ny := a.curve.YPoly()
	return p.yRoot().Cmp(algebra.CoordRoot(t0, y, ny))
}

// yAt returns the y-coordinate of the arc at a rational abscissa within its
// x-range.
func (a *Arc) yAt(x0 *big.Rat) *algebra.Root {
	x, nx := a.curve.XPoly()
	t0 := a.paramAt(x, nx, algebra.NewRationalRoot(x0))
	if t0 == nil {
		panic("bezier: abscissa not in the x-range of the arc")
	}
	y, ny := a.curve.YPoly()
	return algebra.CoordRoot(t0, y, ny)
}

// CompareToRight orders the arc against another immediately to the right of
// the point p, through which both arcs pass and beyond which both extend:
// -1 when this arc is below the other there. Neither arc may be vertical.
func (a *Arc) CompareToRight(b *Arc, p *Point, cache *Cache) int {
	if a.vertical || b.vertical {
		panic("bezier: vertical arc is not defined to the right of a point")
	}
	return a.compareToSide(b, p, cache, true)
}

// CompareToLeft orders the arc against another immediately to the left of the
// point p, through which both arcs pass and beyond which both extend: -1 when
// this arc is below the other there. Neither arc may be vertical.
func (a *Arc) CompareToLeft(b *Arc, p *Point, cache *Cache) int {
	if a.vertical || b.vertical {
		panic("bezier: vertical arc is not defined to the left of a point")
	}
	return a.compareToSide(b, p, cache, false)
}

// compareToSide compares the y-order of two arcs through p just beside it, by
// sampling both at an exact rational abscissa strictly between p and the
// nearest endpoint or intersection on that side. Arcs on a common supporting
// curve continue identically beside a shared point.
func (a *Arc) compareToSide(b *Arc, p *Point, cache *Cache, right bool) int {
	if a.sameSupport(b) {
		return 0
	}
	xp := p.xRoot()
	var bound *algebra.Root
	closer := func(x *algebra.Root) {
		c := x.Cmp(xp)
		if !right {
			c = -c
		}
		if c <= 0 {
			return
		}
		if bound == nil {
			bound = x
			return
		}
		c = x.Cmp(bound)
		if !right {
			c = -c
		}
		if c < 0 {
			bound = x
		}
	}
	if right {
		closer(a.Right().xRoot())
		closer(b.Right().xRoot())
	} else {
		closer(a.Left().xRoot())
		closer(b.Left().xRoot())
	}
	pairs, err := cache.Intersections(a.curve, b.curve)
	if err != nil {
		panic("bezier: supporting curves share a component")
	}
	lo := a.curve
	if b.curve.ID() < lo.ID() {
		lo = b.curve
	}
	xlo, nxlo := lo.XPoly()
	for _, pr := range pairs {
		closer(algebra.CoordRoot(pr.S, xlo, nxlo))
	}
	if bound == nil {
		panic("bezier: point is an arc endpoint on the compared side")
	}
	var x0 *big.Rat
	for {
		pi, bi := xp.Interval(), bound.Interval()
		if right && pi.Hi.Cmp(bi.Lo) < 0 {
			x0 = new(big.Rat).Add(pi.Hi, bi.Lo)
			break
		} else if !right && bi.Hi.Cmp(pi.Lo) < 0 {
			x0 = new(big.Rat).Add(bi.Hi, pi.Lo)
			break
		}
		xp.Refine()
		bound.Refine()
	}
	x0.Mul(x0, ratHalf)
	return a.yAt(x0).Cmp(b.yAt(x0))
}

// Split cuts the arc at an interior point into two sub-arcs that keep the
// arc's direction, the first ending at p and the second starting there. It
// panics when p does not lie in the arc's interior.
func (a *Arc) Split(p *Point) (*Arc, *Arc) {
	first, second, err := a.TrySplit(p)
	if err != nil {
		panic(err.Error())
	}
	return first, second
}

// TrySplit cuts the arc at an interior point like Split, reporting failed
// preconditions as an error instead of panicking.
func (a *Arc) TrySplit(p *Point) (*Arc, *Arc, error) {
	t0, err := a.paramOf(p)
	if err != nil {
		return nil, nil, err
	}
	if t0.Cmp(a.ps) == 0 || t0.Cmp(a.pt) == 0 {
		return nil, nil, errors.New("bezier: split point is an arc endpoint")
	}
	if p.originatorOn(a.curve) == nil {
		p.addOriginatorRoot(a.curve, t0)
	}
	return newArc(a.curve, a.source, p, a.ps, t0), newArc(a.curve, p, a.target, t0, a.pt), nil
}

// CanMergeWith returns true when both arcs are adjacent pieces of the same
// supporting curve whose union is again x-monotone: they meet at exactly one
// shared parameter and run through it in the same lexicographic direction, so
// the junction is no vertical tangency.
func (a *Arc) CanMergeWith(b *Arc) bool {
	if !a.sameSupport(b) || a.vertical != b.vertical {
		return false
	}
	alo, ahi := a.sortedParams()
	blo, bhi := b.sortedParams()
	if ahi.Cmp(blo) != 0 && bhi.Cmp(alo) != 0 {
		return false
	}
	return a.paramAscendsLex() == b.paramAscendsLex()
}

// paramAscendsLex returns true when increasing parameters move toward the
// lexicographically larger endpoint.
func (a *Arc) paramAscendsLex() bool {
	if a.ps.Cmp(a.pt) < 0 {
		return a.dirRight
	}
	return !a.dirRight
}

// Merge joins two mergeable arcs into one spanning both parameter ranges,
// directed like the receiver. It panics when CanMergeWith does not hold.
func (a *Arc) Merge(b *Arc) *Arc {
	if !a.CanMergeWith(b) {
		panic("bezier: arcs are not mergeable")
	}
	alo, ahi := a.sortedParams()
	blo, bhi := b.sortedParams()
	lo, pLo := alo, a.endpointAt(alo)
	if blo.Cmp(alo) < 0 {
		lo, pLo = blo, b.endpointAt(blo)
	}
	hi, pHi := ahi, a.endpointAt(ahi)
	if ahi.Cmp(bhi) < 0 {
		hi, pHi = bhi, b.endpointAt(bhi)
	}
	if a.ps.Cmp(a.pt) < 0 {
		return newArc(a.curve, pLo, pHi, lo, hi)
	}
	return newArc(a.curve, pHi, pLo, hi, lo)
}

// Intersection is one element of an arc-arc intersection: an intersection
// point with its multiplicity, or an overlap sub-arc. Multiplicity zero means
// it was not determined.
type Intersection struct {
	P    *Point
	Arc  *Arc
	Mult uint
}

// IntersectMap caches the constructed intersection points per unordered
// supporting-curve pair, so that arcs of the same two curves share identical
// point objects across queries and sweeps recognize shared events.
type IntersectMap map[curvePair][]*Point

// NewIntersectMap returns an empty intersection map.
func NewIntersectMap() IntersectMap {
	return IntersectMap{}
}

// Intersect returns the intersections of two arcs, ordered by parameter on the
// receiver: isolated points, a touching endpoint, or an overlap sub-arc for
// arcs on a common supporting curve or collinear vertical arcs. The map and
// cache memoize per curve pair, so repeated queries return shared points.
func (a *Arc) Intersect(b *Arc, imap IntersectMap, cache *Cache) []Intersection {
	if a.sameSupport(b) {
		return a.overlap(b)
	}
	if a.vertical && b.vertical {
		if a.verticalX().Cmp(b.verticalX()) != 0 {
			return nil
		}
		return a.verticalOverlap(b)
	}
	key := pairOf(a.curve, b.curve)
	pts, ok := imap[key]
	if !ok {
		pairs, err := cache.Intersections(a.curve, b.curve)
		if err != nil {
			panic("bezier: supporting curves share a component")
		}
		lo, hi := a.curve, b.curve
		if hi.ID() < lo.ID() {
			lo, hi = hi, lo
		}
		for _, pr := range pairs {
			p := newRootPoint(lo, pr.S)
			p.addOriginatorRoot(hi, pr.T)
			pts = append(pts, p)
		}
		imap[key] = pts
	}
	alo, ahi := a.sortedParams()
	blo, bhi := b.sortedParams()
	var is []Intersection
	for _, p := range pts {
		ta, _ := p.ParamOn(a.curve)
		tb, _ := p.ParamOn(b.curve)
		if ta.Cmp(alo) < 0 || 0 < ta.Cmp(ahi) || tb.Cmp(blo) < 0 || 0 < tb.Cmp(bhi) {
			continue
		}
		is = append(is, Intersection{P: p})
	}
	sort.Slice(is, func(i, j int) bool {
		ti, _ := is[i].P.ParamOn(a.curve)
		tj, _ := is[j].P.ParamOn(a.curve)
		return ti.Cmp(tj) < 0
	})
	return is
}

// overlap intersects two arcs on the same supporting curve by their parameter
// ranges.
func (a *Arc) overlap(b *Arc) []Intersection {
	alo, ahi := a.sortedParams()
	blo, bhi := b.sortedParams()
	lo := alo
	if lo.Cmp(blo) < 0 {
		lo = blo
	}
	hi := ahi
	if bhi.Cmp(hi) < 0 {
		hi = bhi
	}
	switch c := lo.Cmp(hi); {
	case 0 < c:
		return nil
	case c == 0:
		p := a.endpointAt(lo)
		if p == nil {
			p = b.endpointAt(lo)
		}
		if p.originatorOn(a.curve) == nil {
			p.addOriginatorRoot(a.curve, lo)
		}
		if p.originatorOn(b.curve) == nil {
			p.addOriginatorRoot(b.curve, lo)
		}
		return []Intersection{{P: p}}
	default:
		pLo := a.endpointAt(lo)
		if pLo == nil {
			pLo = b.endpointAt(lo)
		}
		pHi := a.endpointAt(hi)
		if pHi == nil {
			pHi = b.endpointAt(hi)
		}
		if pLo.originatorOn(a.curve) == nil {
			pLo.addOriginatorRoot(a.curve, lo)
		}
		if pHi.originatorOn(a.curve) == nil {
			pHi.addOriginatorRoot(a.curve, hi)
		}
		return []Intersection{{Arc: newArc(a.curve, pLo, pHi, lo, hi)}}
	}
}

// verticalOverlap intersects two collinear vertical arcs of distinct
// supporting curves by their y-ranges.
func (a *Arc) verticalOverlap(b *Arc) []Intersection {
	pLo := a.Left()
	if pLo.yRoot().Cmp(b.Left().yRoot()) < 0 {
		pLo = b.Left()
	}
	pHi := a.Right()
	if b.Right().yRoot().Cmp(pHi.yRoot()) < 0 {
		pHi = b.Right()
	}
	switch c := pLo.yRoot().Cmp(pHi.yRoot()); {
	case 0 < c:
		return nil
	case c == 0:
		a.ensureOriginator(pLo)
		b.ensureOriginator(pLo)
		return []Intersection{{P: pLo}}
	default:
		t1 := a.ensureOriginator(pLo)
		t2 := a.ensureOriginator(pHi)
		b.ensureOriginator(pLo)
		b.ensureOriginator(pHi)
		return []Intersection{{Arc: newArc(a.curve, pLo, pHi, t1, t2)}}
	}
}
