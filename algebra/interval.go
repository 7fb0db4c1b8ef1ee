package algebra

import (
	"fmt"
	"math/big"
)

var (
	ratZero = big.NewRat(0, 1)
	ratHalf = big.NewRat(1, 2)
	ratOne  = big.NewRat(1, 1)
)

// Interval is a closed interval [Lo,Hi] with rational endpoints, Lo <= Hi.
// Endpoints are treated as immutable.
type Interval struct {
	Lo, Hi *big.Rat
}

// NewInterval returns the closed interval [lo,hi].
func NewInterval(lo, hi *big.Rat) Interval {
	if 0 < lo.Cmp(hi) {
		panic("algebra: interval endpoints out of order")
	}
	return Interval{lo, hi}
}

// PointInterval returns the degenerate interval [x,x].
func PointInterval(x *big.Rat) Interval {
	return Interval{x, x}
}

// UnitInterval returns [0,1], the parameter range of a Bezier curve.
func UnitInterval() Interval {
	return Interval{ratZero, ratOne}
}

// IsPoint returns true when the interval holds a single value.
func (iv Interval) IsPoint() bool {
	return iv.Lo.Cmp(iv.Hi) == 0
}

// Mid returns the midpoint of the interval.
func (iv Interval) Mid() *big.Rat {
	m := new(big.Rat).Add(iv.Lo, iv.Hi)
	return m.Mul(m, ratHalf)
}

// Width returns Hi-Lo.
func (iv Interval) Width() *big.Rat {
	return new(big.Rat).Sub(iv.Hi, iv.Lo)
}

// Contains returns true when x lies in the closed interval.
func (iv Interval) Contains(x *big.Rat) bool {
	return iv.Lo.Cmp(x) <= 0 && x.Cmp(iv.Hi) <= 0
}

// ContainsInterval returns true when jv lies entirely within iv.
func (iv Interval) ContainsInterval(jv Interval) bool {
	return iv.Lo.Cmp(jv.Lo) <= 0 && jv.Hi.Cmp(iv.Hi) <= 0
}

// Overlaps returns true when the closed intervals share at least one value.
func (iv Interval) Overlaps(jv Interval) bool {
	return iv.Lo.Cmp(jv.Hi) <= 0 && jv.Lo.Cmp(iv.Hi) <= 0
}

// Intersect returns the common sub-interval and whether it is non-empty.
func (iv Interval) Intersect(jv Interval) (Interval, bool) {
	lo, hi := iv.Lo, iv.Hi
	if lo.Cmp(jv.Lo) < 0 {
		lo = jv.Lo
	}
	if 0 < hi.Cmp(jv.Hi) {
		hi = jv.Hi
	}
	if 0 < lo.Cmp(hi) {
		return Interval{}, false
	}
	return Interval{lo, hi}, true
}

// Before returns true when iv lies strictly left of jv with no shared value.
func (iv Interval) Before(jv Interval) bool {
	return iv.Hi.Cmp(jv.Lo) < 0
}

func (iv Interval) Add(jv Interval) Interval {
	return Interval{new(big.Rat).Add(iv.Lo, jv.Lo), new(big.Rat).Add(iv.Hi, jv.Hi)}
}

func (iv Interval) Sub(jv Interval) Interval {
	return Interval{new(big.Rat).Sub(iv.Lo, jv.Hi), new(big.Rat).Sub(iv.Hi, jv.Lo)}
}

// Mul multiplies two intervals, taking the extremes over all endpoint products.
func (iv Interval) Mul(jv Interval) Interval {
	ll := new(big.Rat).Mul(iv.Lo, jv.Lo)
	lh := new(big.Rat).Mul(iv.Lo, jv.Hi)
	hl := new(big.Rat).Mul(iv.Hi, jv.Lo)
	hh := new(big.Rat).Mul(iv.Hi, jv.Hi)
	lo, hi := ll, ll
	for _, v := range []*big.Rat{lh, hl, hh} {
		if v.Cmp(lo) < 0 {
			lo = v
		} else if 0 < v.Cmp(hi) {
			hi = v
		}
	}
	return Interval{lo, hi}
}

// DivScalar divides both endpoints by the positive integer d.
func (iv Interval) DivScalar(d *big.Int) Interval {
	if d.Sign() <= 0 {
		panic("algebra: interval division by non-positive scalar")
	}
	inv := new(big.Rat).SetFrac(intOne, d)
	return Interval{new(big.Rat).Mul(iv.Lo, inv), new(big.Rat).Mul(iv.Hi, inv)}
}

func (iv Interval) String() string {
	if iv.IsPoint() {
		return fmt.Sprintf("[%s]", iv.Lo.RatString())
	}
	return fmt.Sprintf("[%s,%s]", iv.Lo.RatString(), iv.Hi.RatString())
}

// EvalInterval evaluates p over the interval iv with interval Horner, returning
// an interval guaranteed to contain p(x) for every x in iv.
func (p Poly) EvalInterval(iv Interval) Interval {
	r := PointInterval(ratZero)
	for i := len(p) - 1; 0 <= i; i-- {
		c := PointInterval(new(big.Rat).SetInt(p[i]))
		r = r.Mul(iv).Add(c)
	}
	return r
}
