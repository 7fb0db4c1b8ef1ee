package bezier

import (
	"math/big"
	"testing"

	"github.com/tdewolff/test"
)

func TestMakeXMonotone(t *testing.T) {
	tr := NewTraits(nil)
	// x reverses direction at t = (3-sqrt(3))/6 and t = (3+sqrt(3))/6
	c := MustParseCurve("4  0 0  1 1  -1 2  0 3")
	arcs := tr.MakeXMonotone(c)
	test.T(t, len(arcs), 3)

	// consecutive arcs share their endpoint objects
	test.That(t, arcs[0].Target() == arcs[1].Source())
	test.That(t, arcs[1].Target() == arcs[2].Source())

	// the pieces cover the curve from t=0 to t=1 in ascending order
	test.String(t, arcs[0].SourceParam().Rational().RatString(), "0")
	test.String(t, arcs[2].TargetParam().Rational().RatString(), "1")
	r1, ok := arcs[0].Target().ParamOn(c)
	test.That(t, ok)
	r2, ok := arcs[1].Target().ParamOn(c)
	test.That(t, ok)
	test.T(t, r1.Cmp(r2), -1)

	// direction alternates around the tangencies
	test.That(t, arcs[0].IsDirectedRight())
	test.That(t, !arcs[1].IsDirectedRight())
	test.That(t, arcs[2].IsDirectedRight())
}

func TestMakeXMonotoneQuadratic(t *testing.T) {
	tr := NewTraits(nil)
	arcs := tr.MakeXMonotone(MustParseCurve("3  0 0  1 2  2 0"))
	test.T(t, len(arcs), 1)

	// subdividing at t=1/2 hits the tangency exactly
	arcs = tr.MakeXMonotone(MustParseCurve("3  0 0  2 1  0 2"))
	test.T(t, len(arcs), 2)
	test.That(t, arcs[0].Target().IsExact())
	x, y, _ := arcs[0].Target().Coords()
	test.String(t, x.RatString(), "1")
	test.String(t, y.RatString(), "1")
}

func TestMakeXMonotoneVertical(t *testing.T) {
	tr := NewTraits(nil)
	// x constant, y reverses at t=2/3
	arcs := tr.MakeXMonotone(MustParseCurve("3  1 0  1 2  1 1"))
	test.T(t, len(arcs), 2)
	test.That(t, arcs[0].IsVertical())
	test.That(t, arcs[1].IsVertical())
	test.That(t, arcs[0].Target() == arcs[1].Source())
	x, y, _ := arcs[0].Target().Coords()
	test.String(t, x.RatString(), "1")
	test.String(t, y.RatString(), "4/3")

	arcs = tr.MakeXMonotone(MustParseCurve("2  1 0  1 4"))
	test.T(t, len(arcs), 1)
}

func TestMakeXMonotoneFallback(t *testing.T) {
	// a depth-starved bounder abandons the curve and the exact kernel takes
	// over, cutting at the same points
	tr1 := NewTraits(nil)
	tr2 := NewTraits(&TraitsOptions{
		Bounder: NewSubdivisionBounder(&SubdivisionOptions{MaxDepth: 2, Width: big.NewRat(1, 1024)}),
	})
	c := MustParseCurve("4  0 0  1 1  -1 2  0 3")
	fast := tr1.MakeXMonotone(c)
	exact := tr2.MakeXMonotone(c)
	test.T(t, len(exact), len(fast))
	for i := range fast {
		test.That(t, fast[i].Source().Equals(exact[i].Source()))
		test.That(t, fast[i].Target().Equals(exact[i].Target()))
	}
}

func TestTraitsForwarders(t *testing.T) {
	tr := NewTraits(&TraitsOptions{})
	c := MustParseCurve("2  0 0  2 2")
	a := tr.MakeXMonotone(c)[0]
	p := NewPointXY(rat("1"), rat("1"))
	q := NewPointXY(rat("1"), rat("1"))
	test.T(t, tr.CompareX(p, q), 0)
	test.T(t, tr.CompareXY(p, q), 0)
	test.That(t, tr.Equal(p, q))
	test.That(t, !tr.IsVertical(a))
	test.T(t, tr.PointPosition(a, p), 0)

	first, second := tr.Split(a, NewPointAt(c, rat("1/2")))
	test.That(t, tr.CanMerge(first, second))
	test.That(t, tr.Merge(first, second).Equal(a))
}

func TestTraitsSharedCache(t *testing.T) {
	tr := NewTraits(nil)
	vt := tr.Validating()
	test.That(t, tr.Cache() == vt.Cache())

	c := MustParseCurve("4  0 0  1 1  -1 2  0 3")
	r1 := tr.Cache().VerticalTangencies(c)
	r2 := vt.Cache().VerticalTangencies(c)
	test.That(t, r1[0] == r2[0])
}

func TestTraitsValidating(t *testing.T) {
	tr := NewTraits(nil)
	vt := tr.Validating()
	c1 := MustParseCurve("2  0 0  2 2")
	c2 := MustParseCurve("2  0 2  2 0")
	a1 := tr.MakeXMonotone(c1)[0]
	a2 := tr.MakeXMonotone(c2)[0]
	p := tr.Intersect(a1, a2)[0].P

	// valid queries pass through
	test.T(t, vt.CompareToRight(a1, a2, p), 1)
	test.T(t, vt.PointPosition(a1, NewPointXY(rat("1"), rat("0"))), -1)

	// beyond the x-range of the arc
	func() {
		defer func() { test.That(t, recover() != nil) }()
		vt.PointPosition(a1, NewPointXY(rat("3"), rat("0")))
	}()

	// point not on both arcs
	func() {
		defer func() { test.That(t, recover() != nil) }()
		vt.CompareToRight(a1, a2, NewPointXY(rat("1"), rat("0")))
	}()

	// nothing extends right of the right endpoint
	func() {
		defer func() { test.That(t, recover() != nil) }()
		vt.CompareToRight(a1, a1, a1.Right())
	}()
}
