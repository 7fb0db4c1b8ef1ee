package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/bezier"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type Info struct {
	Verbose bool   `short:"v" desc:"Print tangency parameters and arcs"`
	Input   string `index:"0" desc:"Curve data file"`
}

type Intersect struct {
	Input string `index:"0" desc:"Curve data file"`
}

type SVG struct {
	Output   string  `short:"o" default:"out.svg" desc:"Output file"`
	Samples  int     `default:"64" desc:"Line segments per curve"`
	Width    float64 `short:"w" desc:"Image width in pixels"`
	Controls bool    `short:"c" desc:"Draw control polygons"`
	Marks    bool    `short:"m" desc:"Mark tangency and intersection points"`
	View     bool    `desc:"Open the result in a browser"`
	Input    string  `index:"0" desc:"Curve data file"`
}

type Plot struct {
	Output  string `short:"o" default:"out.png" desc:"Output file"`
	Samples int    `default:"64" desc:"Line segments per curve"`
	Input   string `index:"0" desc:"Curve data file"`
}

func main() {
	root := argp.NewCmd(&Info{}, "Exact inspection toolkit for rational Bezier curves by Taco de Wolff")
	root.AddCmd(&Intersect{}, "intersect", "List pairwise intersections")
	root.AddCmd(&SVG{}, "svg", "Render the curves as an SVG image")
	root.AddCmd(&Plot{}, "plot", "Plot the curves with their control points")
	root.Parse()
	root.PrintHelp()
}

func readCurves(input string) ([]*bezier.Curve, error) {
	b, err := os.ReadFile(input)
	if err != nil {
		return nil, err
	}
	return bezier.ParseCurves(b)
}

// intersectable returns false for distinct curves that trace a common
// component, which have no isolated intersections.
func intersectable(tr *bezier.Traits, a, b *bezier.Curve) bool {
	if a.SamePoints(b) {
		return true
	}
	xa, _ := a.XPoly()
	xb, _ := b.XPoly()
	if xa.IsConst() && xb.IsConst() {
		return true
	}
	_, err := tr.Cache().Intersections(a, b)
	return err == nil
}

func (cmd *Info) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	curves, err := readCurves(cmd.Input)
	if err != nil {
		return err
	}
	tr := bezier.NewTraits(nil)
	for _, c := range curves {
		arcs := tr.MakeXMonotone(c)
		fmt.Printf("curve %d: degree %d, %d x-monotone arcs\n", c.ID(), c.Degree(), len(arcs))
		if cmd.Verbose {
			for _, r := range tr.Cache().VerticalTangencies(c) {
				fmt.Println("  vertical tangency at t =", r)
			}
			for i, a := range arcs {
				dir := "right"
				if a.IsVertical() {
					dir = "vertical"
				} else if !a.IsDirectedRight() {
					dir = "left"
				}
				sx, sy := a.Source().Approx()
				tx, ty := a.Target().Approx()
				fmt.Printf("  arc %d: (%g, %g) to (%g, %g) directed %s\n", i, sx, sy, tx, ty, dir)
			}
		}
	}
	return nil
}

func (cmd *Intersect) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	curves, err := readCurves(cmd.Input)
	if err != nil {
		return err
	}
	tr := bezier.NewTraits(nil)
	arcs := make([][]*bezier.Arc, len(curves))
	for i, c := range curves {
		arcs[i] = tr.MakeXMonotone(c)
	}
	seen := map[*bezier.Point]bool{}
	for i := range curves {
		for j := i + 1; j < len(curves); j++ {
			if !intersectable(tr, curves[i], curves[j]) {
				fmt.Printf("curves %d and %d coincide\n", curves[i].ID(), curves[j].ID())
				continue
			}
			for _, ai := range arcs[i] {
				for _, aj := range arcs[j] {
					for _, is := range tr.Intersect(ai, aj) {
						if is.P != nil {
							if seen[is.P] {
								continue
							}
							seen[is.P] = true
							x, y := is.P.Approx()
							fmt.Printf("curves %d and %d intersect at (%g, %g)\n", curves[i].ID(), curves[j].ID(), x, y)
						} else {
							sx, sy := is.Arc.Source().Approx()
							tx, ty := is.Arc.Target().Approx()
							fmt.Printf("curves %d and %d overlap from (%g, %g) to (%g, %g)\n", curves[i].ID(), curves[j].ID(), sx, sy, tx, ty)
						}
					}
				}
			}
		}
	}
	return nil
}

// eventPoints collects the tangency points and pairwise intersection points of
// the curves.
func eventPoints(tr *bezier.Traits, curves []*bezier.Curve) []*bezier.Point {
	var pts []*bezier.Point
	arcs := make([][]*bezier.Arc, len(curves))
	for i, c := range curves {
		arcs[i] = tr.MakeXMonotone(c)
		for _, a := range arcs[i][:len(arcs[i])-1] {
			pts = append(pts, a.Target())
		}
	}
	seen := map[*bezier.Point]bool{}
	for i := range curves {
		for j := i + 1; j < len(curves); j++ {
			if !intersectable(tr, curves[i], curves[j]) {
				continue
			}
			for _, ai := range arcs[i] {
				for _, aj := range arcs[j] {
					for _, is := range tr.Intersect(ai, aj) {
						if is.P != nil && !seen[is.P] {
							seen[is.P] = true
							pts = append(pts, is.P)
						}
					}
				}
			}
		}
	}
	return pts
}

func (cmd *SVG) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	curves, err := readCurves(cmd.Input)
	if err != nil {
		return err
	}
	opts := bezier.DefaultSVGOptions
	opts.Width = cmd.Width
	opts.Samples = cmd.Samples
	opts.Controls = cmd.Controls
	if cmd.Marks {
		opts.Marks = eventPoints(bezier.NewTraits(nil), curves)
	}
	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := bezier.WriteSVG(f, curves, &opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if cmd.View {
		path, err := filepath.Abs(cmd.Output)
		if err != nil {
			return err
		}
		return browser.OpenURL("file://" + path)
	}
	return nil
}

func (cmd *Plot) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	curves, err := readCurves(cmd.Input)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = filepath.Base(cmd.Input)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	for _, c := range curves {
		line, err := c.Line(cmd.Samples)
		if err != nil {
			return err
		}
		p.Add(line)
		scatter, err := plotter.NewScatter(c.ControlXYs())
		if err != nil {
			return err
		}
		p.Add(scatter)
	}
	return p.Save(15*vg.Centimeter, 15*vg.Centimeter, cmd.Output)
}
