package algebra

import (
	"math/big"
	"testing"

	"github.com/tdewolff/test"
)

func TestResultantLinear(t *testing.T) {
	// f = s-t, g = s+t-3 share a root at s=t=3/2: the resultant in t vanishes there
	f := BiPoly{NewPoly(0, -1), NewPoly(1)} // s - t
	g := BiPoly{NewPoly(-3, 1), NewPoly(1)} // s + t - 3
	r := Resultant(f, g)
	test.T(t, r.Degree(), 1)
	test.T(t, r.Sign(rat("3/2")), 0)
	test.That(t, r.Sign(rat("1")) != 0)
}

func TestResultantQuadratic(t *testing.T) {
	// res_s(s^2-t, s-2) = 4-t
	f := BiPoly{NewPoly(0, -1), Poly{}, NewPoly(1)}
	g := BiPoly{NewPoly(-2), NewPoly(1)}
	r := Resultant(f, g)
	test.T(t, r.String(), "-t + 4")
}

func TestResultantShared(t *testing.T) {
	// f and g both divisible by s-t: the resultant vanishes identically
	f := BiPoly{NewPoly(0, -1), NewPoly(1)}         // s - t
	g := BiPoly{Poly{}, NewPoly(0, -1), NewPoly(1)} // s^2 - st = s(s-t)
	test.That(t, Resultant(f, g).IsZero())
}

func TestResultantConst(t *testing.T) {
	// degree zero in the primary variable: res(c, g) = c^deg(g)
	f := BiPoly{NewPoly(0, 1)} // constant in s, the polynomial t in t
	g := BiPoly{NewPoly(0, -1), Poly{}, NewPoly(1)}
	test.T(t, Resultant(f, g).String(), "t^2")
	test.T(t, Resultant(BiPoly{NewPoly(2)}, BiPoly{NewPoly(5)}).String(), "1")
	test.That(t, Resultant(BiPoly{}, g).IsZero())
}

func TestPolyDet(t *testing.T) {
	// 2x2 and 3x3 integer determinants through the polynomial path
	m := [][]Poly{
		{NewPoly(1), NewPoly(2)},
		{NewPoly(3), NewPoly(4)},
	}
	test.T(t, polyDet(m).String(), "-2")

	m = [][]Poly{
		{NewPoly(2), NewPoly(0), NewPoly(1)},
		{NewPoly(1), NewPoly(1), NewPoly(0)},
		{NewPoly(0), NewPoly(3), NewPoly(1)},
	}
	test.T(t, polyDet(m).String(), "5")

	// a zero pivot forces a row swap
	m = [][]Poly{
		{Poly{}, NewPoly(1)},
		{NewPoly(1), Poly{}},
	}
	test.T(t, polyDet(m).String(), "-1")

	// singular matrix
	m = [][]Poly{
		{Poly{}, Poly{}},
		{NewPoly(1), NewPoly(1)},
	}
	test.That(t, polyDet(m).IsZero())
}

func TestElimCoord(t *testing.T) {
	// parameter on 2t^2-1, coordinate 2t^2 with norm 1: x = 1 at both parameters
	cp := elimCoord(NewPoly(-1, 0, 2), NewPoly(0, 0, 2), big.NewInt(1))
	sf := cp.Squarefree()
	test.T(t, sf.CountRoots(NewInterval(rat("0"), rat("2"))), 1)
	test.T(t, sf.Sign(rat("1")), 0)

	// constant coordinate: single root at c/norm
	cp = elimCoord(NewPoly(-1, 0, 2), NewPoly(3), big.NewInt(2))
	sf = cp.Squarefree()
	test.T(t, sf.Sign(rat("3/2")), 0)
	test.T(t, sf.Degree(), 1)
}
