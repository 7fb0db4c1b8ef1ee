package bezier

import (
	"math/big"

	"github.com/tdewolff/bezier/algebra"
)

var (
	ratZero = big.NewRat(0, 1)
	ratHalf = big.NewRat(1, 2)
	ratOne  = big.NewRat(1, 1)
)

// curvePair keys tables by unordered curve ids.
type curvePair struct {
	lo, hi uint64
}

func pairOf(a, b *Curve) curvePair {
	if b.ID() < a.ID() {
		a, b = b, a
	}
	return curvePair{a.ID(), b.ID()}
}

type interEntry struct {
	pairs []algebra.Pair
	err   error
}

// Cache memoizes the expensive exact computations of the curve traits:
// vertical-tangency parameters per curve and intersection parameter pairs per
// curve pair. Entries are computed once and never invalidated or mutated, so
// repeated queries return the identical slice and results may be shared freely.
type Cache struct {
	tangencies    map[uint64][]*algebra.Root
	intersections map[curvePair]interEntry
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		tangencies:    map[uint64][]*algebra.Root{},
		intersections: map[curvePair]interEntry{},
	}
}

// VerticalTangencies returns the parameters strictly inside (0,1) at which the
// curve's x-derivative vanishes, in ascending order. The first query per curve
// isolates the roots exactly; later queries return the cached slice. A curve
// with constant x-polynomial is vertical as a whole and has no tangencies.
func (c *Cache) VerticalTangencies(crv *Curve) []*algebra.Root {
	if roots, ok := c.tangencies[crv.ID()]; ok {
		return roots
	}
	x, _ := crv.XPoly()
	dx := x.Derive()
	var roots []*algebra.Root
	if !dx.IsZero() {
		for _, r := range dx.RootsIn(algebra.UnitInterval()) {
			if r.CmpRat(ratZero) == 0 || r.CmpRat(ratOne) == 0 {
				continue
			}
			roots = append(roots, r)
		}
	}
	c.tangencies[crv.ID()] = roots
	return roots
}

// Intersections returns the intersection parameter pairs of two distinct
// supporting curves, S on the curve with the lower id and T on the other. The
// first query per pair solves the polynomial system exactly; later queries in
// either argument order return the cached slice. Curves sharing a component
// yield ErrCoincident, also cached.
func (c *Cache) Intersections(a, b *Curve) ([]algebra.Pair, error) {
	lo, hi := a, b
	if hi.ID() < lo.ID() {
		lo, hi = hi, lo
	}
	key := curvePair{lo.ID(), hi.ID()}
	if e, ok := c.intersections[key]; ok {
		return e.pairs, e.err
	}
	pairs, err := algebra.SolveSystem(lo.ParamCurve(), hi.ParamCurve())
	c.intersections[key] = interEntry{pairs, err}
	return pairs, err
}
