package bezier

import (
	"math/big"

	"github.com/tdewolff/bezier/algebra"
)

// Candidate is one proposed vertical-tangency location on a curve: a parameter
// interval containing exactly one tangency strictly inside, with a bounding
// box of the tangency point. Exact is set instead when the tangency parameter
// is known as an exact rational.
type Candidate struct {
	IV    algebra.Interval
	Box   BBox
	Exact *big.Rat
}

// Bounder proposes vertical-tangency candidates for a curve from its control
// points alone, using geometry cheaper than exact root isolation. The
// candidates are pairwise disjoint and each contains exactly one tangency. A
// false report abandons the whole curve: the caller falls back to the exact
// kernel and discards all candidates.
type Bounder interface {
	VerticalTangencies(pts []ControlPoint) ([]Candidate, bool)
}

// SubdivisionOptions control how far SubdivisionBounder subdivides.
type SubdivisionOptions struct {
	MaxDepth int      // subdivision levels before abandoning the curve
	Width    *big.Rat // parameter width at which a candidate is emitted
}

// DefaultSubdivisionOptions returns the default subdivision limits.
func DefaultSubdivisionOptions() *SubdivisionOptions {
	return &SubdivisionOptions{
		MaxDepth: 24,
		Width:    big.NewRat(1, 1024),
	}
}

// SubdivisionBounder isolates vertical tangencies by recursive exact de
// Casteljau subdivision. The x-differences of a control polygon are the
// Bernstein coefficients of dX/dt up to positive factors: no sign change rules
// a sub-curve out, a single change over a narrow parameter range is a
// candidate, and clusters that never separate within the depth limit abandon
// the curve. Subdividing exactly at a tangency is detected from the zero
// trailing difference and reported as an exact rational candidate.
type SubdivisionBounder struct {
	opts SubdivisionOptions
}

// NewSubdivisionBounder returns a bounder with the given options, or the
// defaults when nil.
func NewSubdivisionBounder(opts *SubdivisionOptions) *SubdivisionBounder {
	if opts == nil {
		opts = DefaultSubdivisionOptions()
	}
	return &SubdivisionBounder{opts: *opts}
}

// VerticalTangencies implements the Bounder interface.
func (sb *SubdivisionBounder) VerticalTangencies(pts []ControlPoint) ([]Candidate, bool) {
	if len(pts) < 3 {
		return nil, true
	}
	return sb.subdivide(pts, algebra.UnitInterval(), sb.opts.MaxDepth)
}

func (sb *SubdivisionBounder) subdivide(pts []ControlPoint, iv algebra.Interval, depth int) ([]Candidate, bool) {
	sc := xSignChanges(pts)
	if sc == 0 {
		return nil, true
	}
	if sc == 1 && iv.Width().Cmp(sb.opts.Width) <= 0 {
		return []Candidate{{IV: iv, Box: polygonBox(pts)}}, true
	}
	if depth <= 0 {
		return nil, false
	}
	left, right := deCasteljau(pts, ratHalf)
	m := iv.Mid()
	cands, ok := sb.subdivide(left, algebra.Interval{Lo: iv.Lo, Hi: m}, depth-1)
	if !ok {
		return nil, false
	}
	if last := len(left) - 1; left[last].X.Cmp(left[last-1].X) == 0 {
		// dX/dt vanishes exactly at the split parameter
		cands = append(cands, Candidate{
			IV:    algebra.PointInterval(m),
			Box:   BBox{algebra.PointInterval(left[last].X), algebra.PointInterval(left[last].Y)},
			Exact: m,
		})
	}
	rights, ok := sb.subdivide(right, algebra.Interval{Lo: m, Hi: iv.Hi}, depth-1)
	if !ok {
		return nil, false
	}
	return append(cands, rights...), true
}

// xSignChanges counts the sign changes over the consecutive control-point
// x-differences, skipping zeros. By the variation-diminishing property the
// number of interior vertical tangencies is at most this count and has the
// same parity.
func xSignChanges(pts []ControlPoint) int {
	n, last := 0, 0
	for i := 1; i < len(pts); i++ {
		s := pts[i].X.Cmp(pts[i-1].X)
		if s == 0 {
			continue
		}
		if last != 0 && s != last {
			n++
		}
		last = s
	}
	return n
}

// deCasteljau splits a control polygon at the parameter m into the control
// polygons of the two sub-curves, exactly.
func deCasteljau(pts []ControlPoint, m *big.Rat) ([]ControlPoint, []ControlPoint) {
	n := len(pts)
	om := new(big.Rat).Sub(ratOne, m)
	work := make([]ControlPoint, n)
	for i, p := range pts {
		work[i] = ControlPoint{new(big.Rat).Set(p.X), new(big.Rat).Set(p.Y)}
	}
	left := make([]ControlPoint, n)
	right := make([]ControlPoint, n)
	left[0] = copyPoint(work[0])
	right[n-1] = copyPoint(work[n-1])
	tmp := new(big.Rat)
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			work[i].X.Mul(work[i].X, om)
			work[i].X.Add(work[i].X, tmp.Mul(m, work[i+1].X))
			work[i].Y.Mul(work[i].Y, om)
			work[i].Y.Add(work[i].Y, tmp.Mul(m, work[i+1].Y))
		}
		left[k] = copyPoint(work[0])
		right[n-1-k] = copyPoint(work[n-1-k])
	}
	return left, right
}

func copyPoint(p ControlPoint) ControlPoint {
	return ControlPoint{new(big.Rat).Set(p.X), new(big.Rat).Set(p.Y)}
}

// polygonBox returns the bounding box of the control points, which contains
// the sub-curve by the convex-hull property.
func polygonBox(pts []ControlPoint) BBox {
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.X.Cmp(minX) < 0 {
			minX = p.X
		} else if 0 < p.X.Cmp(maxX) {
			maxX = p.X
		}
		if p.Y.Cmp(minY) < 0 {
			minY = p.Y
		} else if 0 < p.Y.Cmp(maxY) {
			maxY = p.Y
		}
	}
	return BBox{
		X: algebra.Interval{Lo: new(big.Rat).Set(minX), Hi: new(big.Rat).Set(maxX)},
		Y: algebra.Interval{Lo: new(big.Rat).Set(minY), Hi: new(big.Rat).Set(maxY)},
	}
}
