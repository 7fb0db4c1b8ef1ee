package bezier

import (
	"sort"

	"github.com/tdewolff/bezier/algebra"
)

// TraitsOptions configures the traits.
type TraitsOptions struct {
	Bounder Bounder // proposes tangency candidates before the exact kernel is consulted
}

// DefaultTraitsOptions returns the default configuration, using the
// subdivision bounder with its default limits.
func DefaultTraitsOptions() *TraitsOptions {
	return &TraitsOptions{
		Bounder: NewSubdivisionBounder(nil),
	}
}

// Traits bundles the predicates and constructions a sweep or arrangement
// algorithm needs over Bezier curves, bound to a shared cache of exact
// results. All methods answer exactly; approximate bounds only short-circuit
// decisions they can make safely. Copies share the same cache.
type Traits struct {
	opts  TraitsOptions
	cache *Cache
	imap  IntersectMap
}

// NewTraits returns traits with the given options, or the defaults when nil.
func NewTraits(opts *TraitsOptions) *Traits {
	o := DefaultTraitsOptions()
	if opts != nil {
		o = opts
	}
	tr := &Traits{opts: *o, cache: NewCache(), imap: NewIntersectMap()}
	if tr.opts.Bounder == nil {
		tr.opts.Bounder = NewSubdivisionBounder(nil)
	}
	return tr
}

// Cache returns the shared exact-result cache.
func (tr *Traits) Cache() *Cache {
	return tr.cache
}

// MakeXMonotone subdivides a curve into x-monotone arcs covering it, cut at
// the interior vertical tangencies, with consecutive arcs sharing their
// endpoint objects. A vertical curve is cut at the tangencies of y instead.
// Tangency points come from the bounder when it can isolate all of them, in
// ascending parameter order; otherwise all candidates are discarded and the
// exact kernel isolates the tangencies through the cache.
func (tr *Traits) MakeXMonotone(c *Curve) []*Arc {
	x, _ := c.XPoly()
	y, _ := c.YPoly()
	if x.IsConst() && y.IsConst() {
		panic("bezier: curve is a single point")
	}
	var cut []*Point
	if x.IsConst() {
		for _, r := range y.Derive().RootsIn(algebra.UnitInterval()) {
			if r.CmpRat(ratZero) == 0 || r.CmpRat(ratOne) == 0 {
				continue
			}
			cut = append(cut, newRootPoint(c, r))
		}
	} else if cands, ok := tr.opts.Bounder.VerticalTangencies(c.Points()); ok {
		sort.SliceStable(cands, func(i, j int) bool {
			return cands[i].IV.Lo.Cmp(cands[j].IV.Lo) < 0
		})
		for _, cand := range cands {
			if cand.Exact != nil {
				cut = append(cut, NewPointAt(c, cand.Exact))
			} else {
				cut = append(cut, newTangencyPoint(c, cand.IV, cand.Box))
			}
		}
	} else {
		for _, r := range tr.cache.VerticalTangencies(c) {
			cut = append(cut, newRootPoint(c, r))
		}
	}
	arcs := make([]*Arc, 0, len(cut)+1)
	prev := NewPointAt(c, ratZero)
	prevT, _ := prev.ParamOn(c)
	for _, p := range cut {
		t, _ := p.ParamOn(c)
		arcs = append(arcs, newArc(c, prev, p, prevT, t))
		prev, prevT = p, t
	}
	end := NewPointAt(c, ratOne)
	endT, _ := end.ParamOn(c)
	return append(arcs, newArc(c, prev, end, prevT, endT))
}

// CompareX orders two event points by x-coordinate.
func (tr *Traits) CompareX(p, q *Point) int {
	return p.CompareX(q)
}

// CompareXY orders two event points lexicographically by x, then y.
func (tr *Traits) CompareXY(p, q *Point) int {
	return p.CompareXY(q)
}

// Equal reports whether two event points coincide.
func (tr *Traits) Equal(p, q *Point) bool {
	return p.Equals(q)
}

// IsVertical reports whether the arc is a vertical segment.
func (tr *Traits) IsVertical(a *Arc) bool {
	return a.IsVertical()
}

// PointPosition returns the vertical position of a point relative to an arc.
func (tr *Traits) PointPosition(a *Arc, p *Point) int {
	return a.PointPosition(p)
}

// CompareToLeft orders two arcs immediately left of a shared point.
func (tr *Traits) CompareToLeft(a, b *Arc, p *Point) int {
	return a.CompareToLeft(b, p, tr.cache)
}

// CompareToRight orders two arcs immediately right of a shared point.
func (tr *Traits) CompareToRight(a, b *Arc, p *Point) int {
	return a.CompareToRight(b, p, tr.cache)
}

// Split cuts an arc at an interior point.
func (tr *Traits) Split(a *Arc, p *Point) (*Arc, *Arc) {
	return a.Split(p)
}

// Intersect returns the intersections of two arcs, sharing point objects
// across queries on the same supporting-curve pair.
func (tr *Traits) Intersect(a, b *Arc) []Intersection {
	return a.Intersect(b, tr.imap, tr.cache)
}

// CanMerge reports whether two arcs are adjacent pieces with an x-monotone
// union.
func (tr *Traits) CanMerge(a, b *Arc) bool {
	return a.CanMergeWith(b)
}

// Merge joins two mergeable arcs.
func (tr *Traits) Merge(a, b *Arc) *Arc {
	return a.Merge(b)
}

// PointComparer orders event points.
type PointComparer interface {
	CompareX(p, q *Point) int
	CompareXY(p, q *Point) int
	Equal(p, q *Point) bool
}

// ArcSubdivider decomposes curves into x-monotone arcs and splits them at
// event points.
type ArcSubdivider interface {
	MakeXMonotone(c *Curve) []*Arc
	Split(a *Arc, p *Point) (*Arc, *Arc)
}

// ArcComparer locates points against arcs and orders arcs around a shared
// point.
type ArcComparer interface {
	IsVertical(a *Arc) bool
	PointPosition(a *Arc, p *Point) int
	CompareToLeft(a, b *Arc, p *Point) int
	CompareToRight(a, b *Arc, p *Point) int
}

// ArcIntersecter intersects pairs of arcs.
type ArcIntersecter interface {
	Intersect(a, b *Arc) []Intersection
}

// ArcMerger merges adjacent arcs.
type ArcMerger interface {
	CanMerge(a, b *Arc) bool
	Merge(a, b *Arc) *Arc
}

var (
	_ PointComparer  = (*Traits)(nil)
	_ ArcSubdivider  = (*Traits)(nil)
	_ ArcComparer    = (*Traits)(nil)
	_ ArcIntersecter = (*Traits)(nil)
	_ ArcMerger      = (*Traits)(nil)
	_ ArcComparer    = (*ValidatingTraits)(nil)
)

// ValidatingTraits verifies the documented preconditions of the queries that
// do not check them on their own, panicking early with a descriptive message.
// Split, Merge and Intersect validate in the base traits already.
type ValidatingTraits struct {
	*Traits
}

// Validating returns a precondition-checking wrapper sharing the traits'
// cache, for debugging an algorithm that may feed invalid queries.
func (tr *Traits) Validating() *ValidatingTraits {
	return &ValidatingTraits{tr}
}

// PointPosition checks that the point lies in the arc's x-range before
// delegating.
func (vt *ValidatingTraits) PointPosition(a *Arc, p *Point) int {
	if !a.IsVertical() {
		if p.xRoot().Cmp(a.Left().xRoot()) < 0 || 0 < p.xRoot().Cmp(a.Right().xRoot()) {
			panic("bezier: point not in the x-range of the arc")
		}
	}
	return vt.Traits.PointPosition(a, p)
}

// CompareToLeft checks that both arcs pass through the point and extend to
// its left before delegating.
func (vt *ValidatingTraits) CompareToLeft(a, b *Arc, p *Point) int {
	vt.checkSide(a, p, false)
	vt.checkSide(b, p, false)
	return vt.Traits.CompareToLeft(a, b, p)
}

// CompareToRight checks that both arcs pass through the point and extend to
// its right before delegating.
func (vt *ValidatingTraits) CompareToRight(a, b *Arc, p *Point) int {
	vt.checkSide(a, p, true)
	vt.checkSide(b, p, true)
	return vt.Traits.CompareToRight(a, b, p)
}

func (vt *ValidatingTraits) checkSide(a *Arc, p *Point, right bool) {
	if a.IsVertical() {
		panic("bezier: vertical arc is not defined beside a point")
	}
	if a.PointPosition(p) != 0 {
		panic("bezier: point not on arc")
	}
	end := a.Left()
	if right {
		end = a.Right()
	}
	if p.Equals(end) {
		panic("bezier: arc does not extend beyond the point")
	}
}
