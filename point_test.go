package bezier

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/bezier/algebra"
	"github.com/tdewolff/test"
)

func TestPointExact(t *testing.T) {
	p := NewPointXY(rat("1/2"), rat("-3"))
	test.That(t, p.IsExact())
	x, y, ok := p.Coords()
	test.That(t, ok)
	test.String(t, x.RatString(), "1/2")
	test.String(t, y.RatString(), "-3")
	test.String(t, p.String(), "(1/2,-3)")
	test.That(t, p.BBox().X.IsPoint())

	ax, ay := p.Approx()
	test.Float(t, ax, 0.5)
	test.Float(t, ay, -3.0)
}

func TestPointCompare(t *testing.T) {
	var tts = []struct {
		px, py, qx, qy string
		cmpX, cmp      int
	}{
		{"0", "0", "1", "0", -1, -1},
		{"0", "1", "0", "0", 0, 1},
		{"1", "2", "1", "2", 0, 0},
		{"2", "0", "1", "5", 1, 1},
		{"1/2", "-1", "1/2", "1", 0, -1},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p := NewPointXY(rat(tt.px), rat(tt.py))
			q := NewPointXY(rat(tt.qx), rat(tt.qy))
			test.T(t, p.CompareX(q), tt.cmpX)
			test.T(t, p.CompareXY(q), tt.cmp)
			test.T(t, q.CompareXY(p), -tt.cmp)
			test.T(t, p.Equals(q), tt.cmp == 0)
		})
	}
}

func TestPointAt(t *testing.T) {
	c := MustParseCurve("3  0 0  1 1  2 0")
	p := NewPointAt(c, rat("1/2"))
	test.That(t, p.IsExact())
	x, y, _ := p.Coords()
	test.String(t, x.RatString(), "1")
	test.String(t, y.RatString(), "1/2")

	r, ok := p.ParamOn(c)
	test.That(t, ok)
	test.That(t, r.IsRational())
	test.String(t, r.Rational().RatString(), "1/2")

	_, ok = p.ParamOn(MustParseCurve("2  0 0  1 1"))
	test.That(t, !ok)
}

func TestPointBounded(t *testing.T) {
	// x reverses direction at t = (3-sqrt(3))/6 and t = (3+sqrt(3))/6
	c := MustParseCurve("4  0 0  1 1  -1 2  0 3")
	box := BBox{algebra.NewInterval(rat("-1"), rat("1")), algebra.NewInterval(rat("0"), rat("3"))}
	p := newTangencyPoint(c, algebra.NewInterval(rat("1/8"), rat("3/8")), box)
	test.That(t, !p.IsExact())
	_, _, ok := p.Coords()
	test.That(t, !ok)

	// the first tangency point is (sqrt(3)/6, (3-sqrt(3))/2)
	ax, ay := p.Approx()
	test.That(t, math.Abs(ax-math.Sqrt(3)/6.0) < 1e-12)
	test.That(t, math.Abs(ay-(3.0-math.Sqrt(3))/2.0) < 1e-12)

	test.T(t, p.CompareX(NewPointXY(rat("2"), rat("0"))), -1)
	test.T(t, p.CompareX(NewPointXY(rat("0"), rat("0"))), 1)
	test.T(t, p.CompareXY(NewPointXY(rat("1/4"), rat("-5"))), 1)

	for i := 0; i < 4; i++ {
		w0 := p.BBox().X.Width()
		p.Refine()
		test.That(t, p.BBox().X.Width().Cmp(w0) <= 0)
	}

	q := newTangencyPoint(c, algebra.NewInterval(rat("1/5"), rat("2/5")), box)
	test.That(t, p.Equals(q))
	test.T(t, p.CompareXY(q), 0)
}

func TestPointPromotion(t *testing.T) {
	// the single tangency sits exactly at t = 1/2
	c := MustParseCurve("4  0 0  1 1  1 2  0 3")
	box := BBox{algebra.NewInterval(rat("0"), rat("1")), algebra.NewInterval(rat("0"), rat("3"))}
	p := newTangencyPoint(c, algebra.NewInterval(rat("1/4"), rat("3/4")), box)
	test.That(t, !p.IsExact())
	p.Refine()
	test.That(t, p.IsExact())
	x, y, ok := p.Coords()
	test.That(t, ok)
	test.String(t, x.RatString(), "3/4")
	test.String(t, y.RatString(), "3/2")
	test.That(t, p.BBox().X.IsPoint())
}

func TestPointAddOriginator(t *testing.T) {
	c1 := MustParseCurve("2  0 0  2 2")
	c2 := MustParseCurve("2  0 2  2 0")
	p := NewPointAt(c1, rat("1/2"))
	p.AddOriginator(c2, algebra.UnitInterval())
	test.T(t, len(p.Originators()), 2)

	r, ok := p.ParamOn(c2)
	test.That(t, ok)
	test.That(t, r.IsRational())
	test.String(t, r.Rational().RatString(), "1/2")
}
