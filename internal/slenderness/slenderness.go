// Package slenderness classifies the plate elements of a cross-section per
// AISC 360-10 Table B4.1a (members in axial compression) and Table B4.1b
// (members in flexure).
package slenderness

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/material"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// AxialClass is the classification of an element in axial compression
type AxialClass int

const (
	AxialNonSlender AxialClass = iota
	AxialSlender
)

func (c AxialClass) String() string {
	if c == AxialSlender {
		return "slender"
	}
	return "non-slender"
}

// FlexuralClass is the classification of an element in flexure
type FlexuralClass int

const (
	Compact FlexuralClass = iota
	NonCompact
	Slender
)

func (c FlexuralClass) String() string {
	switch c {
	case NonCompact:
		return "non-compact"
	case Slender:
		return "slender"
	default:
		return "compact"
	}
}

// Table B4.1 limit factors
const (
	FlangeAxialRolled  = 0.56
	FlangeAxialBuiltUp = 0.64
	WebAxial           = 1.49

	FlangeCompact        = 0.38
	FlangeSlenderRolled  = 1.0
	FlangeSlenderBuiltUp = 0.95
	FlangeSlenderMinor   = 1.0
	WebCompact           = 3.76
	WebSlender           = 5.70

	LegAxial   = 0.45
	LegCompact = 0.54
	LegSlender = 0.91

	// Round HSS limits are multiples of E/Fy, not of its root
	WallAxial   = 0.11
	WallCompact = 0.07
	WallSlender = 0.31
)

// Axial holds an axial classification with the ratio and limit used
type Axial struct {
	Ratio float64
	Limit float64
	Class AxialClass
}

// Flexural holds a flexural classification with the ratio and limits used
type Flexural struct {
	Ratio        float64
	CompactLimit float64
	SlenderLimit float64
	Class        FlexuralClass
}

// Element is the classification of one plate element
type Element struct {
	Name    string
	Ratio   float64 // width-to-thickness ratio
	Kc      float64 // 1 unless built-up
	Axial   Axial
	Flexure Flexural
	// MinorFlexure is only set for flanges
	MinorFlexure *Flexural
}

// Result holds the classification of every element of a section
type Result struct {
	Construction section.Construction
	Flange       *Element // I and channel
	Web          *Element // I and channel
	Leg          *Element // angle, longer leg
	Wall         *Element // pipe
}

// Elements returns the classified elements in a fixed order
func (r *Result) Elements() []*Element {
	var out []*Element
	for _, e := range []*Element{r.Flange, r.Web, r.Leg, r.Wall} {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// AxiallySlender returns the elements classified slender for axial compression
func (r *Result) AxiallySlender() []*Element {
	var out []*Element
	for _, e := range r.Elements() {
		if e.Axial.Class == AxialSlender {
			out = append(out, e)
		}
	}
	return out
}

// Limit calculates a limiting width-to-thickness ratio factor·√(kc·E/Fy)
func Limit(factor, kc, e, fy float64) float64 {
	return factor * math.Sqrt(kc*e/fy)
}

// ClassifyAxial classifies ratio against limit. A ratio equal to the limit is
// already slender.
func ClassifyAxial(ratio, limit float64) Axial {
	c := AxialNonSlender
	if ratio >= limit {
		c = AxialSlender
	}
	return Axial{Ratio: ratio, Limit: limit, Class: c}
}

// ClassifyFlexure classifies ratio against the compact and slender limits
func ClassifyFlexure(ratio, compact, slender float64) Flexural {
	c := Slender
	switch {
	case ratio < compact:
		c = Compact
	case ratio < slender:
		c = NonCompact
	}
	return Flexural{Ratio: ratio, CompactLimit: compact, SlenderLimit: slender, Class: c}
}

// Classify classifies every element of sec
func Classify(sec section.Section, m material.Material, c section.Construction) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	switch s := sec.(type) {
	case *section.ISection:
		return flanged(s.Dims, s.Dims.FlangeWidth/2, m, c), nil
	case *section.Channel:
		return flanged(s.Dims, s.Dims.FlangeWidth, m, c), nil
	case *section.Angle:
		return angle(s.Dims, m, c), nil
	case *section.Pipe:
		return pipe(s.Dims, m, c), nil
	default:
		return nil, fmt.Errorf("slenderness: unsupported section type %T", sec)
	}
}

// flanged classifies the flange (half width b) and web of an I or channel
func flanged(d section.FlangedDimensions, b float64, m material.Material, c section.Construction) *Result {
	e, fy := m.E, m.Fy
	h := d.CorrectedWebHeight()

	flange := &Element{Name: "flange", Ratio: b / d.FlangeThickness, Kc: 1}
	axialFactor := FlangeAxialRolled
	slenderLimit := Limit(FlangeSlenderRolled, 1, e, fy)
	if c == section.BuiltUp {
		flange.Kc = aisc.Kc(h, d.WebThickness)
		axialFactor = FlangeAxialBuiltUp
		// Doubly symmetric and channel sections have Sxt = Sxc
		fl := aisc.FL(fy, 1, 1)
		slenderLimit = Limit(FlangeSlenderBuiltUp, flange.Kc, e, fl)
	}
	flange.Axial = ClassifyAxial(flange.Ratio, Limit(axialFactor, flange.Kc, e, fy))
	flange.Flexure = ClassifyFlexure(flange.Ratio, Limit(FlangeCompact, 1, e, fy), slenderLimit)
	minor := ClassifyFlexure(flange.Ratio, Limit(FlangeCompact, 1, e, fy), Limit(FlangeSlenderMinor, 1, e, fy))
	flange.MinorFlexure = &minor

	web := &Element{Name: "web", Ratio: h / d.WebThickness, Kc: 1}
	web.Axial = ClassifyAxial(web.Ratio, Limit(WebAxial, 1, e, fy))
	web.Flexure = ClassifyFlexure(web.Ratio, Limit(WebCompact, 1, e, fy), Limit(WebSlender, 1, e, fy))

	return &Result{Construction: c, Flange: flange, Web: web}
}

func angle(d section.AngleDimensions, m material.Material, c section.Construction) *Result {
	leg := &Element{Name: "leg", Ratio: d.LongLeg / d.Thickness, Kc: 1}
	leg.Axial = ClassifyAxial(leg.Ratio, Limit(LegAxial, 1, m.E, m.Fy))
	leg.Flexure = ClassifyFlexure(leg.Ratio, Limit(LegCompact, 1, m.E, m.Fy), Limit(LegSlender, 1, m.E, m.Fy))
	return &Result{Construction: c, Leg: leg}
}

func pipe(d section.PipeDimensions, m material.Material, c section.Construction) *Result {
	r := m.E / m.Fy
	wall := &Element{Name: "wall", Ratio: d.Slenderness(), Kc: 1}
	wall.Axial = ClassifyAxial(wall.Ratio, WallAxial*r)
	wall.Flexure = ClassifyFlexure(wall.Ratio, WallCompact*r, WallSlender*r)
	return &Result{Construction: c, Wall: wall}
}
