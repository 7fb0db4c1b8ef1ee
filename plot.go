package bezier

import (
	"gonum.org/v1/plot/plotter"
)

// XYs samples the curve into plot data with n uniformly spaced parameters.
func (c *Curve) XYs(n int) plotter.XYs {
	if n < 1 {
		n = 1
	}
	xys := make(plotter.XYs, n+1)
	for i := 0; i <= n; i++ {
		x, y := c.Approx(float64(i) / float64(n))
		xys[i] = plotter.XY{X: x, Y: y}
	}
	return xys
}

// ControlXYs returns the control points as plot data.
func (c *Curve) ControlXYs() plotter.XYs {
	pts := c.Points()
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		x, _ := pt.X.Float64()
		y, _ := pt.Y.Float64()
		xys[i] = plotter.XY{X: x, Y: y}
	}
	return xys
}

// Line returns a line plotter tracing the curve with n segments.
func (c *Curve) Line(n int) (*plotter.Line, error) {
	return plotter.NewLine(c.XYs(n))
}

// XYs samples the arc into plot data with n uniformly spaced parameters, from
// the source towards the target.
func (a *Arc) XYs(n int) plotter.XYs {
	if n < 1 {
		n = 1
	}
	t0, t1 := a.ps.Float(), a.pt.Float()
	xys := make(plotter.XYs, n+1)
	for i := 0; i <= n; i++ {
		x, y := a.curve.Approx(t0 + (t1-t0)*float64(i)/float64(n))
		xys[i] = plotter.XY{X: x, Y: y}
	}
	return xys
}

// Line returns a line plotter tracing the arc with n segments.
func (a *Arc) Line(n int) (*plotter.Line, error) {
	return plotter.NewLine(a.XYs(n))
}
