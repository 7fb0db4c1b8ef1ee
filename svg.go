package bezier

import (
	"fmt"
	"io"
	"math"
)

// SVGOptions are the options for writing curves as an SVG image.
type SVGOptions struct {
	Width       float64 // image width in pixels, the view box width when zero
	Margin      float64 // margin around the curves in curve units
	Samples     int     // number of line segments per curve
	Stroke      string
	StrokeWidth float64 // in curve units, fitted to the view box when zero
	Controls    bool    // draw control polygons
	Marks       []*Point
}

// DefaultSVGOptions is the default SVG output configuration.
var DefaultSVGOptions = SVGOptions{
	Margin:  10.0,
	Samples: 64,
	Stroke:  "#000",
}

// WriteSVG writes the curves as an SVG image, flattening each curve into a
// polyline of opts.Samples segments. Marked points are drawn as circles.
func WriteSVG(w io.Writer, curves []*Curve, opts *SVGOptions) error {
	if opts == nil {
		defaultOpts := DefaultSVGOptions
		opts = &defaultOpts
	}
	samples := opts.Samples
	if samples < 1 {
		samples = DefaultSVGOptions.Samples
	}

	x0, y0, x1, y1 := svgBounds(curves, opts.Marks)
	x0 -= opts.Margin
	y0 -= opts.Margin
	x1 += opts.Margin
	y1 += opts.Margin
	width, height := x1-x0, y1-y0
	imgWidth := opts.Width
	if imgWidth == 0.0 {
		imgWidth = width
	}
	imgHeight := imgWidth * height / width
	strokeWidth := opts.StrokeWidth
	if strokeWidth == 0.0 {
		strokeWidth = math.Max(width, height) / 256.0
	}

	// flip y so that the mathematical y axis points up
	fy := func(y float64) float64 { return y0 + y1 - y }

	if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%v" height="%v" viewBox="%v %v %v %v">`, num(imgWidth), num(imgHeight), num(x0), num(y0), num(width), num(height)); err != nil {
		return err
	}
	if opts.Controls {
		for _, c := range curves {
			fmt.Fprintf(w, `<path fill="none" stroke="#bbb" stroke-width="%v" stroke-dasharray="%v" d="`, num(strokeWidth/2.0), num(2.0*strokeWidth))
			for i, pt := range c.Points() {
				cmd := byte('L')
				if i == 0 {
					cmd = 'M'
				}
				x, _ := pt.X.Float64()
				y, _ := pt.Y.Float64()
				fmt.Fprintf(w, "%c%v %v", cmd, num(x), num(fy(y)))
			}
			fmt.Fprintf(w, `"/>`)
		}
	}
	for _, c := range curves {
		fmt.Fprintf(w, `<path fill="none" stroke="%s" stroke-width="%v" d="`, opts.Stroke, num(strokeWidth))
		for i := 0; i <= samples; i++ {
			cmd := byte('L')
			if i == 0 {
				cmd = 'M'
			}
			x, y := c.Approx(float64(i) / float64(samples))
			fmt.Fprintf(w, "%c%v %v", cmd, num(x), num(fy(y)))
		}
		fmt.Fprintf(w, `"/>`)
	}
	for _, p := range opts.Marks {
		x, y := p.Approx()
		fmt.Fprintf(w, `<circle cx="%v" cy="%v" r="%v" fill="red"/>`, num(x), num(fy(y)), num(1.5*strokeWidth))
	}
	_, err := fmt.Fprintf(w, `</svg>`)
	return err
}

func svgBounds(curves []*Curve, marks []*Point) (float64, float64, float64, float64) {
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, c := range curves {
		for _, pt := range c.Points() {
			x, _ := pt.X.Float64()
			y, _ := pt.Y.Float64()
			x0, x1 = math.Min(x0, x), math.Max(x1, x)
			y0, y1 = math.Min(y0, y), math.Max(y1, y)
		}
	}
	for _, p := range marks {
		x, y := p.Approx()
		x0, x1 = math.Min(x0, x), math.Max(x1, x)
		y0, y1 = math.Min(y0, y), math.Max(y1, y)
	}
	if x1 < x0 {
		x0, y0, x1, y1 = 0.0, 0.0, 1.0, 1.0
	} else {
		if x1 == x0 {
			x1 = x0 + 1.0
		}
		if y1 == y0 {
			y1 = y0 + 1.0
		}
	}
	return x0, y0, x1, y1
}
