package algebra

import (
	"errors"
	"math/big"
)

// ErrCoincident is returned when two parametric curves share an algebraic
// component, so that their intersection is not a finite set of parameter pairs.
var ErrCoincident = errors.New("algebra: curves share a component")

// ParamCurve is a parametric curve over the unit interval with integer
// coordinate polynomials and positive normalization denominators: the point at
// parameter t is (X(t)/NormX, Y(t)/NormY).
type ParamCurve struct {
	X, Y         Poly
	NormX, NormY *big.Int
}

// Pair is one solution of the intersection system: the parameter on the first
// curve and the parameter on the second.
type Pair struct {
	S, T *Root
}

// solveWidth is the coordinate enclosure width below which a candidate pair
// that still overlaps in both coordinates is accepted as a true intersection.
var solveWidth = new(big.Rat).SetFrac(intOne, new(big.Int).Lsh(intOne, 120))

// SolveSystem returns all parameter pairs (s,t) in the unit square where curve
// a at s and curve b at t coincide, in ascending (s,t) order. The system
// {Xa(s)/NormXa = Xb(t)/NormXb, Ya(s)/NormYa = Yb(t)/NormYb} is eliminated by
// resultants in both directions; the roots of the two eliminants are isolated
// and candidate pairs are kept or discarded by refining the coordinate
// enclosures of both sides until they separate or match.
func SolveSystem(a, b ParamCurve) ([]Pair, error) {
	fs, ft := diffBi(a.X, a.NormX, b.X, b.NormX)
	gs, gt := diffBi(a.Y, a.NormY, b.Y, b.NormY)

	inT := Resultant(fs, gs)
	inS := Resultant(ft, gt)
	if inT.IsZero() || inS.IsZero() {
		return nil, ErrCoincident
	}

	sRoots := inS.RootsIn(UnitInterval())
	tRoots := inT.RootsIn(UnitInterval())

	var pairs []Pair
	for _, s := range sRoots {
		for _, t := range tRoots {
			if matches(a, b, s, t) {
				pairs = append(pairs, Pair{s, t})
			}
		}
	}
	return pairs, nil
}

// matches reports whether curve a at s and curve b at t are the same point.
func matches(a, b ParamCurve, s, t *Root) bool {
	for {
		if s.IsRational() && t.IsRational() {
			sv, tv := s.Rational(), t.Rational()
			return ratCoordEqual(a.X, a.NormX, sv, b.X, b.NormX, tv) &&
				ratCoordEqual(a.Y, a.NormY, sv, b.Y, b.NormY, tv)
		}
		xa := a.X.EvalInterval(s.Interval()).DivScalar(a.NormX)
		xb := b.X.EvalInterval(t.Interval()).DivScalar(b.NormX)
		if !xa.Overlaps(xb) {
			return false
		}
		ya := a.Y.EvalInterval(s.Interval()).DivScalar(a.NormY)
		yb := b.Y.EvalInterval(t.Interval()).DivScalar(b.NormY)
		if !ya.Overlaps(yb) {
			return false
		}
		if belowWidth(xa, xb, ya, yb) {
			return true
		}
		s.Refine()
		t.Refine()
	}
}

func ratCoordEqual(p Poly, np *big.Int, s *big.Rat, q Poly, nq *big.Int, t *big.Rat) bool {
	pv := p.Eval(s)
	pv.Quo(pv, new(big.Rat).SetInt(np))
	qv := q.Eval(t)
	qv.Quo(qv, new(big.Rat).SetInt(nq))
	return pv.Cmp(qv) == 0
}

func belowWidth(ivs ...Interval) bool {
	for _, iv := range ivs {
		if 0 <= iv.Width().Cmp(solveWidth) {
			return false
		}
	}
	return true
}

// diffBi builds nq*p(s) - np*q(t) in both orientations: first with s as the
// primary variable and coefficients in t, then with t primary and coefficients
// in s.
func diffBi(p Poly, np *big.Int, q Poly, nq *big.Int) (BiPoly, BiPoly) {
	ps := p.MulScalar(nq)
	qt := q.MulScalar(np)

	bs := make(BiPoly, len(ps))
	for i, c := range ps {
		bs[i] = Poly{new(big.Int).Set(c)}.trim()
	}
	if len(bs) == 0 {
		bs = BiPoly{Poly{}}
	}
	bs[0] = bs[0].Sub(qt)

	bt := make(BiPoly, len(qt))
	for i, c := range qt {
		bt[i] = Poly{new(big.Int).Neg(c)}.trim()
	}
	if len(bt) == 0 {
		bt = BiPoly{Poly{}}
	}
	bt[0] = bt[0].Add(ps)
	return bs.trim(), bt.trim()
}
