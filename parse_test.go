package bezier

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParseCurve(t *testing.T) {
	var tts = []struct {
		data string
		s    string
	}{
		{"2  0 0  2 2", "2  0 0  2 2"},
		{"2,0,0,2,2", "2  0 0  2 2"},
		{"2\n 0.5 -1\n 3/4 2", "2  1/2 -1  3/4 2"},
		{"3 1e1 0 -2.5e-1 1 0 0", "3  10 0  -1/4 1  0 0"},
		{"1 3 4", "1  3 4"},
	}
	for _, tt := range tts {
		t.Run(tt.data, func(t *testing.T) {
			c, err := ParseCurve([]byte(tt.data))
			test.Error(t, err)
			test.String(t, c.String(), tt.s)
		})
	}
}

func TestParseCurveError(t *testing.T) {
	var tts = []struct {
		data string
		err  string
	}{
		{"", "bezier: expected control point count"},
		{"x", "bezier: expected control point count"},
		{"0", "bezier: curve needs at least one control point"},
		{"2 0 0", "bezier: expected coordinate"},
		{"2 0 0 1", "bezier: expected coordinate"},
		{"1 1/0 0", "bezier: invalid coordinate 1/0"},
		{"1 0 0 junk", "bezier: unexpected data after curve"},
		{"2 0 0 1 1 2", "bezier: unexpected data after curve"},
	}
	for _, tt := range tts {
		t.Run(tt.data, func(t *testing.T) {
			_, err := ParseCurve([]byte(tt.data))
			test.That(t, err != nil)
			test.String(t, err.Error(), tt.err)
		})
	}
}

func TestParseCurves(t *testing.T) {
	curves, err := ParseCurves([]byte("2  2 0 0 1 1  3 0 0 1 1 2 0"))
	test.Error(t, err)
	test.T(t, len(curves), 2)
	test.String(t, curves[0].String(), "2  0 0  1 1")
	test.String(t, curves[1].String(), "3  0 0  1 1  2 0")

	curves, err = ParseCurves([]byte("0"))
	test.Error(t, err)
	test.T(t, len(curves), 0)

	_, err = ParseCurves([]byte(""))
	test.That(t, err != nil)
	test.String(t, err.Error(), "bezier: expected curve count")

	_, err = ParseCurves([]byte("1  2 0 0 1 1  junk"))
	test.That(t, err != nil)
	test.String(t, err.Error(), "bezier: unexpected data after curves")

	_, err = ParseCurves([]byte("2  2 0 0 1 1"))
	test.That(t, err != nil)
	test.String(t, err.Error(), "bezier: expected control point count")
}
