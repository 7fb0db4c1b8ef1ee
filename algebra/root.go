package algebra

import (
	"math/big"
)

// Root is a real algebraic number: the single simple root of an integer
// polynomial inside an isolating interval. Refinement narrows the interval
// monotonically and never widens it, so comparisons against a Root stay
// consistent over time. A Root whose interval has collapsed to a single value
// is exact rational; plain rationals carry no polynomial at all.
type Root struct {
	poly   Poly     // defining polynomial, nil for plain rationals
	iv     Interval // isolating enclosure, a point interval for exact values
	signLo int      // sign of poly at iv.Lo, zero once exact
}

// NewRationalRoot returns the exact rational value x as a Root.
func NewRationalRoot(x *big.Rat) *Root {
	return &Root{iv: PointInterval(x)}
}

func newRationalRootOf(p Poly, x *big.Rat) *Root {
	return &Root{poly: p, iv: PointInterval(x)}
}

// RootInInterval returns the root of p bracketed by the interval, which must
// contain exactly one root of p, strictly inside and simple, so that p has
// opposite nonzero signs at the endpoints.
func RootInInterval(p Poly, iv Interval) *Root {
	sLo := p.Sign(iv.Lo)
	if sLo == 0 || sLo == p.Sign(iv.Hi) {
		panic("algebra: interval does not bracket a root")
	}
	return &Root{poly: p, iv: iv, signLo: sLo}
}

// IsRational returns true when the root has an exact rational value.
func (r *Root) IsRational() bool {
	return r.iv.IsPoint()
}

// Rational returns the exact value of a rational root, and panics otherwise.
func (r *Root) Rational() *big.Rat {
	if !r.IsRational() {
		panic("algebra: root is not rational")
	}
	return r.iv.Lo
}

// Interval returns the current isolating enclosure of the root.
func (r *Root) Interval() Interval {
	return r.iv
}

// Defining returns the defining polynomial, which is nil for plain rationals.
func (r *Root) Defining() Poly {
	return r.poly
}

// Refine halves the isolating interval. When the midpoint hits the root exactly
// the interval collapses and the root becomes rational.
func (r *Root) Refine() {
	if r.IsRational() {
		return
	}
	m := r.iv.Mid()
	switch s := r.poly.Sign(m); {
	case s == 0:
		r.iv = PointInterval(m)
		r.signLo = 0
	case s == r.signLo:
		r.iv = Interval{m, r.iv.Hi}
	default:
		r.iv = Interval{r.iv.Lo, m}
	}
}

// RefineTo refines until the isolating interval is narrower than width or the
// root collapses to an exact value.
func (r *Root) RefineTo(width *big.Rat) {
	for !r.IsRational() && 0 <= r.iv.Width().Cmp(width) {
		r.Refine()
	}
}

// CmpRat exactly compares the root against a rational value.
func (r *Root) CmpRat(x *big.Rat) int {
	if r.IsRational() {
		return r.iv.Lo.Cmp(x)
	}
	if x.Cmp(r.iv.Lo) <= 0 {
		return 1
	} else if 0 <= x.Cmp(r.iv.Hi) {
		return -1
	}
	s := r.poly.Sign(x)
	if s == 0 {
		// x lies in the isolating interval and is a root, so it is the root
		r.iv = PointInterval(x)
		r.signLo = 0
		return 0
	} else if s == r.signLo {
		return 1
	}
	return -1
}

// Cmp exactly compares two roots. Equal algebraic values are detected through a
// common root of the defining polynomials inside the interval overlap; unequal
// values separate after finitely many refinements.
func (r *Root) Cmp(o *Root) int {
	if r == o {
		return 0
	}
	if o.IsRational() {
		return r.CmpRat(o.iv.Lo)
	} else if r.IsRational() {
		return -o.CmpRat(r.iv.Lo)
	}
	if r.iv.Before(o.iv) {
		return -1
	} else if o.iv.Before(r.iv) {
		return 1
	}
	// Any root of gcd(p,q) in the overlap lies in both isolating intervals and
	// thus is both roots at once, proving equality.
	if g := GCD(r.poly, o.poly); !g.IsConst() {
		if ov, ok := r.iv.Intersect(o.iv); ok && 0 < g.CountRoots(ov) {
			return 0
		}
	}
	for {
		r.Refine()
		o.Refine()
		if r.IsRational() || o.IsRational() {
			return r.Cmp(o)
		}
		if r.iv.Before(o.iv) {
			return -1
		} else if o.iv.Before(r.iv) {
			return 1
		}
	}
}

// Equal returns true when both roots are the same real value.
func (r *Root) Equal(o *Root) bool {
	return r.Cmp(o) == 0
}

var floatWidth = new(big.Rat).SetFrac(intOne, new(big.Int).Lsh(intOne, 60))

// Float returns a float64 approximation of the root.
func (r *Root) Float() float64 {
	if !r.IsRational() {
		r.RefineTo(floatWidth)
	}
	f, _ := r.iv.Mid().Float64()
	return f
}

func (r *Root) String() string {
	if r.IsRational() {
		return r.iv.Lo.RatString()
	}
	return r.iv.String()
}

// CoordRoot returns coord(r)/norm as an algebraic number, for a curve parameter
// r and a coordinate polynomial coord with positive normalization factor norm.
// The parameter's interval is refined until the coordinate interval isolates a
// single root of the eliminated coordinate polynomial.
func CoordRoot(r *Root, coord Poly, norm *big.Int) *Root {
	if r.IsRational() {
		x := coord.Eval(r.iv.Lo)
		return NewRationalRoot(x.Quo(x, new(big.Rat).SetInt(norm)))
	}
	cp := elimCoord(r.poly, coord, norm).Squarefree()
	if cp.IsConst() {
		panic("algebra: degenerate coordinate polynomial")
	}
	for {
		iv := coord.EvalInterval(r.iv).DivScalar(norm)
		if cp.CountRoots(iv) == 1 {
			if cp.Sign(iv.Lo) == 0 {
				return newRationalRootOf(cp, iv.Lo)
			} else if cp.Sign(iv.Hi) == 0 {
				return newRationalRootOf(cp, iv.Hi)
			}
			return &Root{poly: cp, iv: iv, signLo: cp.Sign(iv.Lo)}
		}
		r.Refine()
		if r.IsRational() {
			return CoordRoot(r, coord, norm)
		}
	}
}
