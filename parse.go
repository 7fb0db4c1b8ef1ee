package bezier

import (
	"errors"
	"math/big"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

// parseRat reads one exact coordinate: an integer, a decimal with optional
// exponent, or a rational a/b. It returns the value and the bytes consumed.
func parseRat(b []byte) (*big.Rat, int, error) {
	i := skipCommaWhitespace(b)
	j := i
	for j < len(b) && (b[j] == '+' || b[j] == '-' || b[j] == '.' || b[j] == '/' || b[j] == 'e' || b[j] == 'E' || '0' <= b[j] && b[j] <= '9') {
		j++
	}
	if i == j {
		return nil, i, errors.New("bezier: expected coordinate")
	}
	r, ok := new(big.Rat).SetString(string(b[i:j]))
	if !ok {
		return nil, i, errors.New("bezier: invalid coordinate " + string(b[i:j]))
	}
	return r, j, nil
}

func parseCurve(b []byte) (*Curve, int, error) {
	i := skipCommaWhitespace(b)
	num, n := strconv.ParseUint(b[i:])
	if n == 0 {
		return nil, i, errors.New("bezier: expected control point count")
	}
	i += n
	if num == 0 {
		return nil, i, errors.New("bezier: curve needs at least one control point")
	}
	pts := make([]ControlPoint, num)
	for k := range pts {
		x, n, err := parseRat(b[i:])
		if err != nil {
			return nil, i, err
		}
		i += n
		y, n, err := parseRat(b[i:])
		if err != nil {
			return nil, i, err
		}
		i += n
		pts[k] = ControlPoint{x, y}
	}
	return NewCurve(pts), i, nil
}

// ParseCurve reads a single curve in the curve data format: the number of
// control points followed by their coordinate pairs, each coordinate an
// integer, a decimal, or a rational a/b.
func ParseCurve(data []byte) (*Curve, error) {
	c, n, err := parseCurve(data)
	if err != nil {
		return nil, err
	}
	if n += skipCommaWhitespace(data[n:]); n < len(data) {
		return nil, errors.New("bezier: unexpected data after curve")
	}
	return c, nil
}

// MustParseCurve parses a curve from a string and panics on failure.
func MustParseCurve(s string) *Curve {
	c, err := ParseCurve([]byte(s))
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCurves reads a curve data file: the number of curves followed by that
// many curves.
func ParseCurves(data []byte) ([]*Curve, error) {
	i := skipCommaWhitespace(data)
	num, n := strconv.ParseUint(data[i:])
	if n == 0 {
		return nil, errors.New("bezier: expected curve count")
	}
	i += n
	curves := make([]*Curve, 0, num)
	for k := uint64(0); k < num; k++ {
		c, n, err := parseCurve(data[i:])
		if err != nil {
			return nil, err
		}
		i += n
		curves = append(curves, c)
	}
	if i += skipCommaWhitespace(data[i:]); i < len(data) {
		return nil, errors.New("bezier: unexpected data after curves")
	}
	return curves, nil
}
