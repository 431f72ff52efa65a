package strength

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/material"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// FlexuralBuckling is the Euler buckling strength about one axis
// (AISC 360-10 Section E3)
type FlexuralBuckling struct {
	Axis        Axis
	State       LimitState
	K           float64 // Effective length factor
	L           float64 // Unbraced length (mm)
	R           float64 // Radius of gyration (mm)
	Slenderness float64 // KL/r
	Fe          float64 // Elastic buckling stress (MPa)
	Fcr         float64 // Critical stress (MPa)
	Area        float64 // Gross area (mm²)
	Pn          float64 // Nominal strength (N)
}

// NewFlexuralBuckling calculates Pn = Fcr·Ag with Fe = π²E/(KL/r)²
func NewFlexuralBuckling(axis Axis, k, l, r, area float64, m material.Material) *FlexuralBuckling {
	fb := &FlexuralBuckling{
		Axis:  axis,
		State: StateFlexuralBucklingMajor,
		K:     k,
		L:     l,
		R:     r,
		Area:  area,
	}
	if axis == Minor {
		fb.State = StateFlexuralBucklingMinor
	}
	fb.Slenderness = k * l / r
	fb.Fe = math.Pi * math.Pi * m.E / (fb.Slenderness * fb.Slenderness)
	fb.Fcr = aisc.CriticalStress(m.Fy, fb.Fe)
	fb.Pn = fb.Fcr * area
	return fb
}

func (f *FlexuralBuckling) Name() string             { return string(f.State) }
func (f *FlexuralBuckling) NominalStrength() float64 { return f.Pn }
func (f *FlexuralBuckling) Applicable() bool         { return true }

// TorsionalBuckling is the torsional buckling strength of a doubly symmetric
// open section (AISC 360-10 Section E4). The elastic stress is normalized by
// Ix + Iy, which equals A·ro² only when the shear center is the centroid.
type TorsionalBuckling struct {
	K    float64 // Torsional effective length factor Kz
	L    float64 // Torsional unbraced length (mm)
	Cw   float64 // Warping constant (mm⁶)
	J    float64 // Torsional constant (mm⁴)
	Ix   float64 // (mm⁴)
	Iy   float64 // (mm⁴)
	Fe   float64 // Elastic torsional buckling stress (MPa)
	Fcr  float64 // Critical stress (MPa)
	Area float64 // Gross area (mm²)
	Pn   float64 // Nominal strength (N)
}

// NewTorsionalBuckling calculates Fe = (π²E·Cw/(KzL)² + G·J)/(Ix + Iy)
func NewTorsionalBuckling(k, l float64, p section.Properties, m material.Material) *TorsionalBuckling {
	tb := &TorsionalBuckling{
		K:    k,
		L:    l,
		Cw:   p.Cw,
		J:    p.J,
		Ix:   p.Ix,
		Iy:   p.Iy,
		Area: p.Area,
	}
	tb.Fe = torsionalStiffness(k*l, p, m) / (p.Ix + p.Iy)
	tb.Fcr = aisc.CriticalStress(m.Fy, tb.Fe)
	tb.Pn = tb.Fcr * p.Area
	return tb
}

func (t *TorsionalBuckling) Name() string             { return string(StateTorsionalBuckling) }
func (t *TorsionalBuckling) NominalStrength() float64 { return t.Pn }
func (t *TorsionalBuckling) Applicable() bool         { return true }

// FlexuralTorsionalBuckling is the strength of a singly symmetric section
// whose axis of symmetry is the major axis x, e.g. a channel
// (AISC 360-10 Equation E4-5 with y replaced by x).
type FlexuralTorsionalBuckling struct {
	Fex  float64 // Flexural buckling stress about the axis of symmetry (MPa)
	Fez  float64 // Torsional buckling stress (MPa)
	H    float64 // Flexural constant 1 − (x0² + y0²)/ro²
	Ro   float64 // Polar radius of gyration about the shear center (mm)
	Fe   float64 // Elastic buckling stress (MPa)
	Fcr  float64 // Critical stress (MPa)
	Area float64 // Gross area (mm²)
	Pn   float64 // Nominal strength (N)
}

// NewFlexuralTorsionalBuckling combines flexural buckling about x (kx, lx)
// with torsional buckling (kz, lz).
func NewFlexuralTorsionalBuckling(kx, lx, kz, lz float64, p section.Properties, m material.Material) *FlexuralTorsionalBuckling {
	ft := &FlexuralTorsionalBuckling{Ro: p.Ro, Area: p.Area}
	slx := kx * lx / p.Rx
	ft.Fex = math.Pi * math.Pi * m.E / (slx * slx)
	ft.Fez = torsionalStiffness(kz*lz, p, m) / (p.Area * p.Ro * p.Ro)
	ft.H = 1 - (p.X0*p.X0+p.Y0*p.Y0)/(p.Ro*p.Ro)

	// A fully braced mode drops out and the coupled stress tends to the other
	switch exInf, ezInf := math.IsInf(ft.Fex, 1), math.IsInf(ft.Fez, 1); {
	case exInf && ezInf:
		ft.Fe = math.Inf(1)
	case exInf:
		ft.Fe = ft.Fez
	case ezInf:
		ft.Fe = ft.Fex
	default:
		sum := ft.Fex + ft.Fez
		ft.Fe = sum / (2 * ft.H) * (1 - math.Sqrt(1-4*ft.Fex*ft.Fez*ft.H/(sum*sum)))
	}
	ft.Fcr = aisc.CriticalStress(m.Fy, ft.Fe)
	ft.Pn = ft.Fcr * p.Area
	return ft
}

func (f *FlexuralTorsionalBuckling) Name() string             { return string(StateFlexuralTorsionalBuckling) }
func (f *FlexuralTorsionalBuckling) NominalStrength() float64 { return f.Pn }
func (f *FlexuralTorsionalBuckling) Applicable() bool         { return true }

// torsionalStiffness is π²E·Cw/(KzL)² + G·J. Without warping stiffness the
// first term is zero at every length, so a zero length only makes a section
// with Cw > 0 infinitely stiff.
func torsionalStiffness(kl float64, p section.Properties, m material.Material) float64 {
	gj := m.G * p.J
	if p.Cw == 0 {
		return gj
	}
	return math.Pi*math.Pi*m.E*p.Cw/(kl*kl) + gj
}
