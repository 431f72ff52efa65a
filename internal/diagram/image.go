package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gosteel/internal/section"
)

var seriesColors = []color.Color{
	color.RGBA{R: 0, G: 0, B: 139, A: 255},
	color.RGBA{R: 200, G: 30, B: 30, A: 255},
	color.RGBA{R: 34, G: 139, B: 34, A: 255},
}

// ExportCurve exports a capacity curve to an image file. The format follows
// the extension (.png, .svg, .pdf); anything else is saved as PNG.
func ExportCurve(c Curve, filename string) error {
	if c.Empty() {
		return fmt.Errorf("curve %q has no points", c.Title)
	}
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	for i, s := range c.Series {
		if len(s.X) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.X))
		for j := range s.X {
			xys[j] = plotter.XY{X: s.X[j], Y: s.Y[j]}
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return err
		}
		col := seriesColors[i%len(seriesColors)]
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = col
		if i > 0 {
			line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		}
		points.GlyphStyle.Color = col
		points.GlyphStyle.Radius = vg.Points(2)
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(s.Name, line)
	}
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportSectionOutline exports the outline of a section to an image file
func ExportSectionOutline(sec section.Section, filename string) error {
	rings, err := Outline(sec)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Section %s", sec.Name())
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"

	xyers := make([]plotter.XYer, len(rings))
	for i, ring := range rings {
		xys := make(plotter.XYs, len(ring))
		for j, pt := range ring {
			xys[j] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		xyers[i] = xys
	}
	poly, err := plotter.NewPolygon(xyers...)
	if err != nil {
		return err
	}
	poly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	poly.LineStyle.Color = color.Black
	poly.LineStyle.Width = vg.Points(2)
	p.Add(poly)

	// Roughly keep the aspect ratio of the section
	ratio := max(0.5, min(sec.Depth()/width(rings), 2))
	return save(p, 6*vg.Inch, 6*vg.Inch*vg.Length(ratio), filename)
}

func width(rings [][]Point) float64 {
	if len(rings) == 0 || len(rings[0]) == 0 {
		return 1
	}
	lo, hi := rings[0][0].X, rings[0][0].X
	for _, pt := range rings[0] {
		lo = min(lo, pt.X)
		hi = max(hi, pt.X)
	}
	if hi <= lo {
		return 1
	}
	return hi - lo
}

func save(p *plot.Plot, w, h vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(w, h, filename)
	default:
		return p.Save(w, h, filename+".png")
	}
}
