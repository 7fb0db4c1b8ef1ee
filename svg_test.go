package bezier

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestWriteSVG(t *testing.T) {
	sb := strings.Builder{}
	opts := DefaultSVGOptions
	opts.Margin = 1.0
	opts.Samples = 1
	opts.StrokeWidth = 1.0
	err := WriteSVG(&sb, []*Curve{MustParseCurve("2  0 0  2 2")}, &opts)
	test.Error(t, err)
	test.String(t, sb.String(), `<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4" viewBox="-1 -1 4 4"><path fill="none" stroke="#000" stroke-width="1" d="M0 2L2 0"/></svg>`)
}

func TestWriteSVGMarks(t *testing.T) {
	sb := strings.Builder{}
	opts := DefaultSVGOptions
	opts.Controls = true
	opts.Marks = []*Point{NewPointXY(rat("1"), rat("1"))}
	err := WriteSVG(&sb, []*Curve{MustParseCurve("3  0 0  1 2  2 0")}, &opts)
	test.Error(t, err)
	s := sb.String()
	test.That(t, strings.HasPrefix(s, "<svg "))
	test.That(t, strings.HasSuffix(s, "</svg>"))
	test.That(t, strings.Contains(s, "<circle"))
	test.That(t, strings.Contains(s, "stroke-dasharray"))
}

func TestWriteSVGEmpty(t *testing.T) {
	sb := strings.Builder{}
	err := WriteSVG(&sb, nil, nil)
	test.Error(t, err)
	test.That(t, strings.HasPrefix(sb.String(), "<svg "))
}
