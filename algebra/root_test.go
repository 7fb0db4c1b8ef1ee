package algebra

import (
	"math/big"
	"testing"

	"github.com/tdewolff/test"
)

func sqrt2(t *testing.T) *Root {
	roots := NewPoly(-2, 0, 1).RootsIn(NewInterval(rat("0"), rat("2")))
	test.T(t, len(roots), 1)
	return roots[0]
}

func TestRootRational(t *testing.T) {
	r := NewRationalRoot(rat("3/7"))
	test.That(t, r.IsRational())
	test.String(t, r.Rational().RatString(), "3/7")
	test.T(t, r.CmpRat(rat("1/2")), -1)
	test.T(t, r.CmpRat(rat("3/7")), 0)
	test.T(t, r.CmpRat(rat("1/3")), 1)
	r.Refine() // no-op
	test.That(t, r.IsRational())
	test.String(t, r.String(), "3/7")
}

func TestRootRefine(t *testing.T) {
	r := sqrt2(t)
	w := r.Interval().Width()
	r.Refine()
	test.That(t, r.Interval().Width().Cmp(w) < 0)

	r.RefineTo(rat("1/1000"))
	test.That(t, r.Interval().Width().Cmp(rat("1/1000")) < 0)
	test.That(t, !r.IsRational())

	// refining hits roots that are dyadic rationals exactly
	q := NewPoly(-1, 0, 4).RootsIn(UnitInterval()) // 4t^2-1
	test.T(t, len(q), 1)
	q[0].RefineTo(rat("1/1024"))
	test.That(t, q[0].IsRational())
	test.String(t, q[0].Rational().RatString(), "1/2")
}

func TestRootCmp(t *testing.T) {
	r := sqrt2(t)
	test.T(t, r.Cmp(NewRationalRoot(rat("1"))), 1)
	test.T(t, r.Cmp(NewRationalRoot(rat("2"))), -1)
	test.T(t, r.Cmp(r), 0)

	// the same value from two different defining polynomials
	s := sqrt2(t)
	quartic := NewPoly(-4, 0, 0, 0, 1).RootsIn(NewInterval(rat("0"), rat("2"))) // t^4-4
	test.T(t, len(quartic), 1)
	test.T(t, s.Cmp(quartic[0]), 0)
	test.T(t, quartic[0].Cmp(s), 0)

	// distinct roots of one polynomial separate
	pm := NewPoly(-2, 0, 1).RootsIn(NewInterval(rat("-2"), rat("2")))
	test.T(t, len(pm), 2)
	test.T(t, pm[0].Cmp(pm[1]), -1)
	test.T(t, pm[1].Cmp(pm[0]), 1)

	// nearby but unequal algebraic numbers
	a := NewPoly(-2, 0, 1).RootsIn(NewInterval(rat("1"), rat("2")))[0]
	b := NewPoly(-20000002, 0, 10000000).RootsIn(NewInterval(rat("1"), rat("2")))[0]
	test.T(t, a.Cmp(b), -1)
}

func TestRootEqual(t *testing.T) {
	r, s := sqrt2(t), sqrt2(t)
	test.That(t, r.Equal(s))
	test.That(t, !r.Equal(NewRationalRoot(rat("7/5"))))
}

func TestRootFloat(t *testing.T) {
	test.Float(t, NewRationalRoot(rat("1/4")).Float(), 0.25)
	test.Float(t, sqrt2(t).Float(), 1.4142135623730951)
}

func TestCoordRoot(t *testing.T) {
	// rational parameter: exact coordinate
	x := CoordRoot(NewRationalRoot(rat("1/2")), NewPoly(0, 0, 4), big.NewInt(2)) // 4t^2/2
	test.That(t, x.IsRational())
	test.String(t, x.Rational().RatString(), "1/2")

	// the x-coordinate 2t^2 at the parameter sqrt(1/2), a root of 2t^2-1, is
	// exactly 1
	p := NewPoly(-1, 0, 2)
	params := p.RootsIn(UnitInterval())
	test.T(t, len(params), 1)
	x = CoordRoot(params[0], NewPoly(0, 0, 2), big.NewInt(1))
	test.T(t, x.CmpRat(rat("1")), 0)

	// the coordinate t^2 at sqrt 2 is algebraic: 2
	x = CoordRoot(sqrt2(t), NewPoly(0, 0, 1), big.NewInt(1))
	test.T(t, x.CmpRat(rat("2")), 0)

	// an irrational coordinate stays bracketed but compares exactly
	y := CoordRoot(sqrt2(t), NewPoly(0, 1), big.NewInt(2)) // t/2 at sqrt 2
	test.T(t, y.CmpRat(rat("7/10")), 1)                    // sqrt(2)/2 = 0.7071...
	test.T(t, y.CmpRat(rat("3/4")), -1)
	z := NewPoly(-1, 0, 2).RootsIn(UnitInterval())[0] // sqrt(1/2)
	test.T(t, y.Cmp(z), 0)
}
