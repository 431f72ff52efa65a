package diagram

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/beam"
	"github.com/alexiusacademia/gosteel/internal/criteria"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// Point represents a 2D coordinate of a section outline (mm)
type Point struct {
	X float64
	Y float64
}

// Series is one named curve
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Curve is a set of series sharing axes
type Curve struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Empty reports whether no series has points
func (c Curve) Empty() bool {
	for _, s := range c.Series {
		if len(s.X) > 0 {
			return false
		}
	}
	return true
}

// CapacityCurves samples the governing compression strength Pn(L) and major
// axis flexural strength Mn(Lb) of a member over unbraced lengths from..to
// (mm) in n steps. All unbraced lengths of the member follow the sample;
// K, Cb and the section are kept. Each curve carries the nominal strength and
// the design strength of cfg.Design, in kN and kN·m against m.
func CapacityCurves(b beam.Beam, cfg criteria.Config, from, to float64, n int) (compression, flexure Curve, err error) {
	if n < 2 || from < 0 || to <= from {
		return compression, flexure, fmt.Errorf("invalid sampling: %g to %g mm in %d steps", from, to, n)
	}
	if b.Section == nil {
		return compression, flexure, fmt.Errorf("member %q has no section", b.Name)
	}
	name := b.Section.Name()
	compression = Curve{
		Title:  fmt.Sprintf("%s compression capacity", name),
		XLabel: "Unbraced length KL (m)",
		YLabel: "Axial strength (kN)",
		Series: []Series{{Name: "Pn"}, {Name: fmt.Sprintf("Pn (%s)", cfg.Design)}},
	}
	flexure = Curve{
		Title:  fmt.Sprintf("%s major axis flexural capacity", name),
		XLabel: "Unbraced length Lb (m)",
		YLabel: "Moment strength (kN·m)",
		Series: []Series{{Name: "Mn"}, {Name: fmt.Sprintf("Mn (%s)", cfg.Design)}},
	}

	b.Loads = aisc.Forces{}
	step := (to - from) / float64(n-1)
	for i := 0; i < n; i++ {
		l := from + float64(i)*step
		b.Lengths = beam.Lengths{Major: l}
		r, err := b.Analyze(cfg)
		if err != nil {
			return compression, flexure, err
		}
		x := l / 1000
		if r.Compression != nil {
			add(&compression, x, r.Compression.Nominal/1000, r.Compression.Design(cfg.Design)/1000)
		}
		if r.MajorFlexure != nil {
			add(&flexure, x, r.MajorFlexure.Nominal/1e6, r.MajorFlexure.Design(cfg.Design)/1e6)
		}
	}
	if compression.Empty() && flexure.Empty() {
		return compression, flexure, fmt.Errorf("%w: no capacity curve for %s section %s",
			aisc.ErrNotImplemented, b.Section.Kind(), name)
	}
	return compression, flexure, nil
}

func add(c *Curve, x, nominal, design float64) {
	c.Series[0].X = append(c.Series[0].X, x)
	c.Series[0].Y = append(c.Series[0].Y, nominal)
	c.Series[1].X = append(c.Series[1].X, x)
	c.Series[1].Y = append(c.Series[1].Y, design)
}

// Outline returns the closed rings of a section outline. Pipes have an outer
// and an inner ring; other shapes have one.
func Outline(sec section.Section) ([][]Point, error) {
	switch s := sec.(type) {
	case *section.ISection:
		d := s.Dims
		bf, tf, tw, h := d.FlangeWidth/2, d.FlangeThickness, d.WebThickness/2, d.TotalHeight
		return [][]Point{{
			{-bf, 0}, {bf, 0}, {bf, tf}, {tw, tf}, {tw, h - tf}, {bf, h - tf},
			{bf, h}, {-bf, h}, {-bf, h - tf}, {-tw, h - tf}, {-tw, tf}, {-bf, tf},
		}}, nil
	case *section.Channel:
		d := s.Dims
		bf, tf, tw, h := d.FlangeWidth, d.FlangeThickness, d.WebThickness, d.TotalHeight
		return [][]Point{{
			{0, 0}, {bf, 0}, {bf, tf}, {tw, tf}, {tw, h - tf}, {bf, h - tf}, {bf, h}, {0, h},
		}}, nil
	case *section.Angle:
		d := s.Dims
		b, h, t := d.ShortLeg, d.LongLeg, d.Thickness
		return [][]Point{{{0, 0}, {b, 0}, {b, t}, {t, t}, {t, h}, {0, h}}}, nil
	case *section.Pipe:
		d := s.Dims
		return [][]Point{
			circle(d.OuterDiameter/2, 72),
			circle(d.OuterDiameter/2-d.Thickness, 72),
		}, nil
	default:
		return nil, fmt.Errorf("no outline for section type %T", sec)
	}
}

func circle(r float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return pts
}
