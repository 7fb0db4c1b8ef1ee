package algebra

import "math/big"

// BiPoly is a polynomial in two variables, stored by powers of the primary
// variable with coefficients that are polynomials in the secondary variable.
// The resultant below eliminates the primary variable.
type BiPoly []Poly

func (f BiPoly) trim() BiPoly {
	n := len(f)
	for 0 < n && f[n-1].IsZero() {
		n--
	}
	return f[:n]
}

// Degree returns the degree in the primary variable, or -1 for zero.
func (f BiPoly) Degree() int {
	return len(f) - 1
}

// Resultant returns the resultant of f and g with respect to the primary
// variable, a polynomial in the secondary variable that vanishes exactly where
// f and g have a common root in the primary variable. The zero polynomial is
// returned when f and g share a factor.
func Resultant(f, g BiPoly) Poly {
	f, g = f.trim(), g.trim()
	m, n := f.Degree(), g.Degree()
	if m < 0 || n < 0 {
		return Poly{}
	}
	if m == 0 && n == 0 {
		return Poly{new(big.Int).Set(intOne)}
	}
	if m == 0 {
		return f[0].pow(n)
	}
	if n == 0 {
		return g[0].pow(m)
	}

	// Sylvester matrix: n shifted rows of f's coefficients over m shifted rows of g's
	size := m + n
	mat := make([][]Poly, size)
	for i := 0; i < n; i++ {
		row := make([]Poly, size)
		for j := range row {
			row[j] = Poly{}
		}
		for j := 0; j <= m; j++ {
			row[i+j] = f[m-j]
		}
		mat[i] = row
	}
	for i := 0; i < m; i++ {
		row := make([]Poly, size)
		for j := range row {
			row[j] = Poly{}
		}
		for j := 0; j <= n; j++ {
			row[i+j] = g[n-j]
		}
		mat[n+i] = row
	}
	return polyDet(mat)
}

func (p Poly) pow(n int) Poly {
	r := Poly{new(big.Int).Set(intOne)}
	for i := 0; i < n; i++ {
		r = r.Mul(p)
	}
	return r
}

// polyDet computes the determinant of a square matrix of polynomials using
// fraction-free Bareiss elimination; every division along the way is exact.
// The matrix is consumed.
func polyDet(mat [][]Poly) Poly {
	n := len(mat)
	sign := 1
	prev := Poly{new(big.Int).Set(intOne)}
	for k := 0; k < n-1; k++ {
		if mat[k][k].IsZero() {
			swapped := false
			for i := k + 1; i < n; i++ {
				if !mat[i][k].IsZero() {
					mat[k], mat[i] = mat[i], mat[k]
					sign = -sign
					swapped = true
					break
				}
			}
			if !swapped {
				return Poly{}
			}
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				d := mat[k][k].Mul(mat[i][j]).Sub(mat[i][k].Mul(mat[k][j]))
				mat[i][j] = d.exactDiv(prev)
			}
			mat[i][k] = Poly{}
		}
		prev = mat[k][k]
	}
	det := mat[n-1][n-1]
	if sign < 0 {
		det = det.Neg()
	}
	return det
}

// constBi lifts a univariate polynomial in the primary variable to a BiPoly
// whose coefficients are constant in the secondary variable.
func constBi(p Poly) BiPoly {
	f := make(BiPoly, len(p))
	for i, c := range p {
		f[i] = Poly{new(big.Int).Set(c)}.trim()
	}
	return f.trim()
}

// elimCoord eliminates the parameter from {defining(t) = 0, norm*x = coord(t)},
// returning an integer polynomial in x that vanishes at coord(t*)/norm for
// every root t* of defining.
func elimCoord(defining, coord Poly, norm *big.Int) Poly {
	// norm*x - coord(t) with t primary: the constant term in t is linear in x
	g := make(BiPoly, len(coord))
	for i, c := range coord {
		g[i] = Poly{new(big.Int).Neg(c)}.trim()
	}
	if len(g) == 0 {
		g = BiPoly{Poly{}}
	}
	g[0] = g[0].Add(Poly{new(big.Int), new(big.Int).Set(norm)})
	return Resultant(constBi(defining), g.trim())
}
