package algebra

import (
	"fmt"
	"math/big"
	"strings"
)

var (
	intZero = big.NewInt(0)
	intOne  = big.NewInt(1)
)

// Poly is a univariate polynomial with arbitrary-precision integer coefficients.
// Index i holds the coefficient of t^i. The zero polynomial has length zero, any
// other polynomial has a non-zero last coefficient. Coefficients are never
// mutated after construction, so polynomials can be shared freely.
type Poly []*big.Int

// NewPoly returns the polynomial with the given coefficients, the first being
// the constant term.
func NewPoly(coefs ...int64) Poly {
	p := make(Poly, len(coefs))
	for i, c := range coefs {
		p[i] = big.NewInt(c)
	}
	return p.trim()
}

// FromRats builds an integer polynomial from rational coefficients by clearing
// denominators. It returns the polynomial and the common positive denominator d,
// so that the original polynomial equals the returned one divided by d.
func FromRats(coefs []*big.Rat) (Poly, *big.Int) {
	d := new(big.Int).Set(intOne)
	for _, c := range coefs {
		gcd := new(big.Int).GCD(nil, nil, d, c.Denom())
		d.Div(new(big.Int).Mul(d, c.Denom()), gcd)
	}
	p := make(Poly, len(coefs))
	for i, c := range coefs {
		f := new(big.Int).Div(d, c.Denom())
		p[i] = f.Mul(f, c.Num())
	}
	return p.trim(), d
}

// Const returns the constant polynomial c.
func Const(c *big.Int) Poly {
	if c.Sign() == 0 {
		return Poly{}
	}
	return Poly{new(big.Int).Set(c)}
}

func (p Poly) trim() Poly {
	n := len(p)
	for 0 < n && p[n-1].Sign() == 0 {
		n--
	}
	return p[:n]
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return len(p) - 1
}

func (p Poly) IsZero() bool {
	return len(p) == 0
}

// IsConst returns true for constant polynomials, including the zero polynomial.
func (p Poly) IsConst() bool {
	return len(p) <= 1
}

func (p Poly) lead() *big.Int {
	return p[len(p)-1]
}

func (p Poly) Clone() Poly {
	q := make(Poly, len(p))
	for i, c := range p {
		q[i] = new(big.Int).Set(c)
	}
	return q
}

// Equals returns true when both polynomials have identical coefficients.
func (p Poly) Equals(q Poly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].Cmp(q[i]) != 0 {
			return false
		}
	}
	return true
}

func (p Poly) Add(q Poly) Poly {
	if len(p) < len(q) {
		p, q = q, p
	}
	r := make(Poly, len(p))
	for i, c := range p {
		if i < len(q) {
			r[i] = new(big.Int).Add(c, q[i])
		} else {
			r[i] = new(big.Int).Set(c)
		}
	}
	return r.trim()
}

func (p Poly) Sub(q Poly) Poly {
	n := len(p)
	if n < len(q) {
		n = len(q)
	}
	r := make(Poly, n)
	for i := 0; i < n; i++ {
		r[i] = new(big.Int)
		if i < len(p) {
			r[i].Set(p[i])
		}
		if i < len(q) {
			r[i].Sub(r[i], q[i])
		}
	}
	return r.trim()
}

func (p Poly) Neg() Poly {
	r := make(Poly, len(p))
	for i, c := range p {
		r[i] = new(big.Int).Neg(c)
	}
	return r
}

func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	r := make(Poly, len(p)+len(q)-1)
	for i := range r {
		r[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, a := range p {
		for j, b := range q {
			r[i+j].Add(r[i+j], tmp.Mul(a, b))
		}
	}
	return r.trim()
}

// MulScalar multiplies all coefficients by c.
func (p Poly) MulScalar(c *big.Int) Poly {
	if c.Sign() == 0 {
		return Poly{}
	}
	r := make(Poly, len(p))
	for i, a := range p {
		r[i] = new(big.Int).Mul(a, c)
	}
	return r
}

// shift multiplies p by t^k.
func (p Poly) shift(k int) Poly {
	if p.IsZero() {
		return p
	}
	r := make(Poly, len(p)+k)
	for i := 0; i < k; i++ {
		r[i] = new(big.Int)
	}
	copy(r[k:], p)
	return r
}

// ComposeScaled substitutes q/norm for the variable of p and clears the
// denominators, returning norm^deg(p) * p(q(t)/norm). Its roots are the t at
// which q(t)/norm hits a root of p.
func ComposeScaled(p, q Poly, norm *big.Int) Poly {
	if p.IsZero() {
		return Poly{}
	}
	r := Poly{new(big.Int).Set(p[len(p)-1])}
	npow := new(big.Int).Set(intOne)
	for i := len(p) - 2; 0 <= i; i-- {
		npow.Mul(npow, norm)
		r = r.Mul(q).Add(Const(new(big.Int).Mul(p[i], npow)))
	}
	return r
}

// Derive returns the derivative dp/dt.
func (p Poly) Derive() Poly {
	if len(p) <= 1 {
		return Poly{}
	}
	r := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		r[i-1] = new(big.Int).Mul(p[i], big.NewInt(int64(i)))
	}
	return r.trim()
}

// Eval evaluates p at the rational x exactly.
func (p Poly) Eval(x *big.Rat) *big.Rat {
	r := new(big.Rat)
	for i := len(p) - 1; 0 <= i; i-- {
		r.Mul(r, x)
		r.Add(r, new(big.Rat).SetInt(p[i]))
	}
	return r
}

// Sign returns the sign of p(x) without constructing the full rational value,
// evaluating the homogenized polynomial sum c_i*a^i*b^(n-i) for x = a/b.
func (p Poly) Sign(x *big.Rat) int {
	return p.signAt(x.Num(), x.Denom())
}

func (p Poly) signAt(a, b *big.Int) int {
	if p.IsZero() {
		return 0
	}
	acc := new(big.Int).Set(p[len(p)-1])
	pow := new(big.Int).Set(intOne)
	tmp := new(big.Int)
	for i := len(p) - 2; 0 <= i; i-- {
		pow.Mul(pow, b)
		acc.Mul(acc, a)
		acc.Add(acc, tmp.Mul(p[i], pow))
	}
	return acc.Sign()
}

////////////////////////////////////////////////////////////////

// content returns the positive gcd of all coefficients, or one for the zero polynomial.
func (p Poly) content() *big.Int {
	c := new(big.Int)
	for _, a := range p {
		c.GCD(nil, nil, c, new(big.Int).Abs(a))
		if c.Cmp(intOne) == 0 {
			break
		}
	}
	if c.Sign() == 0 {
		c.Set(intOne)
	}
	return c
}

// reduce divides out the content while keeping the sign of all coefficients, a
// positive scaling that leaves Sturm sequence signs intact.
func (p Poly) reduce() Poly {
	if p.IsZero() {
		return p
	}
	c := p.content()
	if c.Cmp(intOne) == 0 {
		return p
	}
	r := make(Poly, len(p))
	for i, a := range p {
		r[i] = new(big.Int).Quo(a, c)
	}
	return r
}

// primitive divides out the content and normalizes the leading coefficient to be
// positive. Roots are unaffected.
func (p Poly) primitive() Poly {
	if p.IsZero() {
		return p
	}
	c := p.content()
	if p.lead().Sign() < 0 {
		c.Neg(c)
	}
	r := make(Poly, len(p))
	for i, a := range p {
		r[i] = new(big.Int).Quo(a, c)
	}
	return r
}

// srem is a pseudo-remainder of p modulo q with a guaranteed positive scaling
// factor: it returns c*(p mod q) for some c > 0, which keeps signs usable in
// Sturm sequences. q must not be zero.
func (p Poly) srem(q Poly) Poly {
	if q.IsZero() {
		panic("algebra: pseudo-remainder by zero polynomial")
	}
	r := p.Clone()
	lcqAbs := new(big.Int).Abs(q.lead())
	neg := q.lead().Sign() < 0
	for !r.IsZero() && q.Degree() <= r.Degree() {
		k := r.Degree() - q.Degree()
		lcr := new(big.Int).Set(r.lead())
		if neg {
			lcr.Neg(lcr)
		}
		r = r.MulScalar(lcqAbs).Sub(q.shift(k).MulScalar(lcr))
	}
	return r
}

// exactDiv returns p/q and panics when the division leaves a remainder; it is
// used where divisibility is guaranteed, as for square-free parts and the
// Bareiss elimination pivots.
func (p Poly) exactDiv(q Poly) Poly {
	if q.IsZero() {
		panic("algebra: division by zero polynomial")
	}
	if p.IsZero() {
		return Poly{}
	}
	if p.Degree() < q.Degree() {
		panic("algebra: inexact polynomial division")
	}
	out := make(Poly, p.Degree()-q.Degree()+1)
	for i := range out {
		out[i] = new(big.Int)
	}
	r := p.Clone()
	tmp := new(big.Int)
	for !r.IsZero() && q.Degree() <= r.Degree() {
		k := r.Degree() - q.Degree()
		c, m := new(big.Int).QuoRem(r.lead(), q.lead(), tmp)
		if m.Sign() != 0 {
			panic("algebra: inexact polynomial division")
		}
		out[k].Set(c)
		r = r.Sub(q.shift(k).MulScalar(c))
	}
	if !r.IsZero() {
		panic("algebra: inexact polynomial division")
	}
	return out.trim()
}

// GCD returns the greatest common divisor of p and q as a primitive polynomial
// with positive leading coefficient, using a primitive pseudo-remainder sequence.
func GCD(p, q Poly) Poly {
	a, b := p.primitive(), q.primitive()
	if a.Degree() < b.Degree() {
		a, b = b, a
	}
	for !b.IsZero() {
		r := a.srem(b)
		a, b = b, r.primitive()
	}
	return a
}

// Squarefree returns a polynomial with the same roots as p but all of
// multiplicity one, computed as p/gcd(p,p').
func (p Poly) Squarefree() Poly {
	if p.Degree() < 2 {
		return p.primitive()
	}
	g := GCD(p, p.Derive())
	if g.IsConst() {
		return p.primitive()
	}
	return p.primitive().exactDiv(g).primitive()
}

func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	sb := strings.Builder{}
	for i := len(p) - 1; 0 <= i; i-- {
		c := p[i]
		if c.Sign() == 0 {
			continue
		}
		if sb.Len() != 0 {
			if c.Sign() < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
		} else if c.Sign() < 0 {
			sb.WriteString("-")
		}
		abs := new(big.Int).Abs(c)
		if i == 0 || abs.Cmp(intOne) != 0 {
			sb.WriteString(abs.String())
		}
		if 0 < i {
			sb.WriteString("t")
			if 1 < i {
				fmt.Fprintf(&sb, "^%d", i)
			}
		}
	}
	return sb.String()
}
