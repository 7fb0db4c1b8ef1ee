package algebra

import "math/big"

// sturm is a Sturm sequence: the polynomial, its derivative, and then the
// negated pseudo-remainders down to a constant. Each element is scaled by a
// positive factor only, so the sign variations of the original sequence are
// preserved.
type sturm []Poly

func newSturm(p Poly) sturm {
	ch := sturm{p.reduce(), p.Derive().reduce()}
	for {
		last := ch[len(ch)-1]
		if last.IsZero() || last.IsConst() {
			break
		}
		next := ch[len(ch)-2].srem(last).Neg().reduce()
		if next.IsZero() {
			break
		}
		ch = append(ch, next)
	}
	return ch
}

// variations counts the sign changes along the sequence evaluated at x,
// ignoring zeros.
func (ch sturm) variations(x *big.Rat) int {
	n, prev := 0, 0
	for _, p := range ch {
		if s := p.Sign(x); s != 0 {
			if prev != 0 && s != prev {
				n++
			}
			prev = s
		}
	}
	return n
}

// countRight returns the number of distinct roots in the half-open interval
// (lo,hi]. The underlying polynomial must be square-free.
func (ch sturm) countRight(lo, hi *big.Rat) int {
	return ch.variations(lo) - ch.variations(hi)
}

// CountRoots returns the number of distinct real roots of p in the closed
// interval iv.
func (p Poly) CountRoots(iv Interval) int {
	sf := p.Squarefree()
	if sf.IsConst() {
		return 0
	}
	n := 0
	if sf.Sign(iv.Lo) == 0 {
		n++
	}
	if !iv.IsPoint() {
		n += newSturm(sf).countRight(iv.Lo, iv.Hi)
	}
	return n
}

// RootsIn isolates the distinct real roots of p inside the closed interval iv
// and returns them in ascending order. Roots that land on a tested rational are
// returned exact; all others carry an isolating interval within iv whose
// endpoints are not roots. The zero polynomial yields no roots.
func (p Poly) RootsIn(iv Interval) []*Root {
	sf := p.Squarefree()
	if sf.IsConst() {
		return nil
	}
	var roots []*Root
	if sf.Sign(iv.Lo) == 0 {
		roots = append(roots, newRationalRootOf(sf, iv.Lo))
	}
	if !iv.IsPoint() {
		ch := newSturm(sf)
		roots = ch.isolate(sf, iv.Lo, iv.Hi, roots)
	}
	return roots
}

// isolate appends the roots of sf in (lo,hi] to out in ascending order, sf
// being square-free. A root at lo itself is excluded by the half-open count.
func (ch sturm) isolate(sf Poly, lo, hi *big.Rat, out []*Root) []*Root {
	n := ch.countRight(lo, hi)
	if n == 0 {
		return out
	}
	if n == 1 {
		if sf.Sign(hi) == 0 {
			return append(out, newRationalRootOf(sf, hi))
		}
		if sLo := sf.Sign(lo); sLo != 0 {
			// one root strictly inside and square-free: the endpoint signs are opposite
			return append(out, &Root{poly: sf, iv: Interval{lo, hi}, signLo: sLo})
		}
		// lo is a root itself: bisect on until the bracket separates from it
	}

	// bisect at a non-root: nudge towards hi while the candidate is a root itself
	m := Interval{lo, hi}.Mid()
	for sf.Sign(m) == 0 {
		m = Interval{m, hi}.Mid()
	}
	out = ch.isolate(sf, lo, m, out)
	return ch.isolate(sf, m, hi, out)
}
