package bezier

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/tdewolff/test"
)

func rat(s string) *big.Rat {
	x, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational: " + s)
	}
	return x
}

func TestCurveNew(t *testing.T) {
	c1 := MustParseCurve("2  0 0  2 2")
	c2 := MustParseCurve("2  0 0  2 2")
	test.That(t, c1.ID() != c2.ID())
	test.That(t, c1.ID() == c1.ID())
	test.T(t, c1.Degree(), 1)
	test.T(t, MustParseCurve("4  0 0  1 1  -1 2  0 3").Degree(), 3)

	test.That(t, c1.SamePoints(c2))
	test.That(t, !c1.SamePoints(MustParseCurve("2  0 0  2 1")))
	test.That(t, !c1.SamePoints(MustParseCurve("3  0 0  1 1  2 2")))

	pts := c1.Points()
	pts[0] = CP("9", "9")
	test.String(t, c1.Points()[0].X.RatString(), "0")
}

func TestCurvePolys(t *testing.T) {
	var tts = []struct {
		c      string
		x, y   string
		nx, ny string
	}{
		{"2  0 0  2 2", "2t", "2t", "1", "1"},
		{"3  0 0  1 1  2 0", "2t", "-2t^2 + 2t", "1", "1"},
		{"2  1/2 0  1 1/3", "t + 1", "t", "2", "3"},
		{"1  3 4", "3", "4", "1", "1"},
		{"4  0 0  1 1  1 2  0 3", "-3t^2 + 3t", "3t", "1", "1"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			c := MustParseCurve(tt.c)
			x, nx := c.XPoly()
			y, ny := c.YPoly()
			test.String(t, x.String(), tt.x)
			test.String(t, y.String(), tt.y)
			test.String(t, nx.String(), tt.nx)
			test.String(t, ny.String(), tt.ny)
		})
	}
}

func TestCurveEval(t *testing.T) {
	c := MustParseCurve("3  0 0  1 1  2 0")
	x, y := c.Eval(rat("0"))
	test.String(t, x.RatString(), "0")
	test.String(t, y.RatString(), "0")
	x, y = c.Eval(rat("1"))
	test.String(t, x.RatString(), "2")
	test.String(t, y.RatString(), "0")
	x, y = c.Eval(rat("1/2"))
	test.String(t, x.RatString(), "1")
	test.String(t, y.RatString(), "1/2")
}

func TestCurveApprox(t *testing.T) {
	c := MustParseCurve("4  0 0  1 1  -1 2  0 3")
	for _, s := range []string{"0", "1/4", "1/2", "3/4", "1"} {
		r := rat(s)
		x, y := c.Eval(r)
		xf, _ := x.Float64()
		yf, _ := y.Float64()
		tf, _ := r.Float64()
		ax, ay := c.Approx(tf)
		test.Float(t, ax, xf)
		test.Float(t, ay, yf)
	}
}

func TestCurveString(t *testing.T) {
	test.String(t, MustParseCurve("2, 1/2 0, 1 1/3").String(), "2  1/2 0  1 1/3")
	c := MustParseCurve("3  0 0  1 1  2 0")
	r, err := ParseCurve([]byte(c.String()))
	test.Error(t, err)
	test.That(t, c.SamePoints(r))
}
