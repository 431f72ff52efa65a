package strength

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/slenderness"
)

// YieldMoment is the plastic moment Mp = Fy·Z (AISC 360-10 F2-1, F8-1)
type YieldMoment struct {
	Fy float64 // Yield stress (MPa)
	Z  float64 // Plastic section modulus (mm³)
	Mp float64 // Nominal strength (N·mm)
}

// NewYielding calculates Mp = Fy·Z
func NewYielding(fy, z float64) *YieldMoment {
	return &YieldMoment{Fy: fy, Z: z, Mp: fy * z}
}

func (y *YieldMoment) Name() string             { return string(StateYielding) }
func (y *YieldMoment) NominalStrength() float64 { return y.Mp }
func (y *YieldMoment) Applicable() bool         { return true }

// MinorYieldMoment is the minor axis yield strength
// Mn = min(Fy·Zy, 1.6·Fy·Sy) (AISC 360-10 F6-1)
type MinorYieldMoment struct {
	Fy     float64
	Z      float64
	S      float64
	Capped bool // true when the 1.6·Fy·Sy cap governs
	Mn     float64
}

// NewMinorYielding calculates the minor axis yield moment
func NewMinorYielding(fy, z, s float64) *MinorYieldMoment {
	plastic := fy * z
	limit := aisc.MinorShapeFactorCap * fy * s
	return &MinorYieldMoment{
		Fy:     fy,
		Z:      z,
		S:      s,
		Capped: limit < plastic,
		Mn:     math.Min(plastic, limit),
	}
}

func (y *MinorYieldMoment) Name() string             { return string(StateMinorYielding) }
func (y *MinorYieldMoment) NominalStrength() float64 { return y.Mn }
func (y *MinorYieldMoment) Applicable() bool         { return true }

// LTBZone is the lateral-torsional buckling regime
type LTBZone int

const (
	ZonePlastic   LTBZone = iota // Lb ≤ Lp, LTB does not apply
	ZoneInelastic                // Lp < Lb ≤ Lr
	ZoneElastic                  // Lb > Lr
)

func (z LTBZone) String() string {
	switch z {
	case ZoneInelastic:
		return "inelastic (Lp < Lb <= Lr)"
	case ZoneElastic:
		return "elastic (Lb > Lr)"
	default:
		return "plastic (Lb <= Lp)"
	}
}

// LTBInput collects what the lateral-torsional buckling check needs
type LTBInput struct {
	Lb float64 // Unbraced length of the compression flange (mm)
	Cb float64 // Moment gradient factor
	E  float64 // (MPa)
	Fy float64 // (MPa)
	Ry float64 // (mm)
	Iy float64 // (mm⁴)
	Cw float64 // (mm⁶)
	J  float64 // (mm⁴)
	Sx float64 // (mm³)
	Zx float64 // (mm³)
	Ho float64 // Distance between flange centroids (mm)
	C  float64 // 1 for doubly symmetric I, ho/2·√(Iy/Cw) for channels
}

// LateralTorsionalBuckling is the LTB strength of a compact I-section or
// channel bent about its major axis (AISC 360-10 Section F2.2)
type LateralTorsionalBuckling struct {
	LTBInput
	Mp   float64 // Plastic moment (N·mm)
	Rts  float64 // Effective radius of gyration (mm)
	Lp   float64 // Limiting length for yielding (mm)
	Lr   float64 // Limiting length for inelastic LTB (mm)
	Fcr  float64 // Critical stress, elastic zone only (MPa)
	Zone LTBZone
	Mn   float64 // Nominal strength (N·mm), zero in the plastic zone
}

// NewLateralTorsionalBuckling evaluates the three zone LTB model
func NewLateralTorsionalBuckling(in LTBInput) *LateralTorsionalBuckling {
	if in.Cb == 0 {
		in.Cb = 1
	}
	l := &LateralTorsionalBuckling{LTBInput: in}
	l.Mp = in.Fy * in.Zx
	l.Rts = math.Sqrt(math.Sqrt(in.Iy*in.Cw) / in.Sx)
	l.Lp = aisc.LpCoefficient * in.Ry * math.Sqrt(in.E/in.Fy)

	fl := aisc.ResidualFactor * in.Fy
	ratio := in.J * in.C / (in.Sx * in.Ho)
	l.Lr = aisc.LrCoefficient * l.Rts * (in.E / fl) *
		math.Sqrt(ratio+math.Sqrt(ratio*ratio+aisc.LrTermFactor*(fl/in.E)*(fl/in.E)))

	switch {
	case in.Lb <= l.Lp:
		l.Zone = ZonePlastic
	case in.Lb <= l.Lr:
		l.Zone = ZoneInelastic
		l.Mn = in.Cb * (l.Mp - (l.Mp-fl*in.Sx)*(in.Lb-l.Lp)/(l.Lr-l.Lp))
		l.Mn = math.Min(l.Mn, l.Mp)
	default:
		l.Zone = ZoneElastic
		s := in.Lb / l.Rts
		l.Fcr = in.Cb * math.Pi * math.Pi * in.E / (s * s) * math.Sqrt(1+aisc.LTBCaseCTerm*ratio*s*s)
		l.Mn = math.Min(l.Fcr*in.Sx, l.Mp)
	}
	return l
}

func (l *LateralTorsionalBuckling) Name() string             { return string(StateLateralTorsionalBuckling) }
func (l *LateralTorsionalBuckling) NominalStrength() float64 { return l.Mn }
func (l *LateralTorsionalBuckling) Applicable() bool         { return l.Zone != ZonePlastic }

// FlangeBuckling is the flange local buckling strength about one axis
// (AISC 360-10 F3.2 major, F6.2 minor). Only non-compact flanges have a
// value; compact flanges make the limit state inapplicable.
type FlangeBuckling struct {
	Axis     Axis
	Flexural slenderness.Flexural
	Mp       float64 // Yield moment about the same axis (N·mm)
	Fy       float64 // (MPa)
	S        float64 // Elastic section modulus (mm³)
	Mn       float64 // Nominal strength (N·mm)
}

// NewFlangeBuckling evaluates flange local buckling for a classified flange.
// A slender flange returns aisc.ErrNotImplemented.
func NewFlangeBuckling(axis Axis, f slenderness.Flexural, mp, fy, s float64) (*FlangeBuckling, error) {
	fb := &FlangeBuckling{Axis: axis, Flexural: f, Mp: mp, Fy: fy, S: s}
	switch f.Class {
	case slenderness.Compact:
	case slenderness.NonCompact:
		fb.Mn = NoncompactFlangeMoment(mp, fy, s, f.Ratio, f.CompactLimit, f.SlenderLimit)
	default:
		return nil, fmt.Errorf("%w: slender flange local buckling (%s axis, b/t = %.2f)",
			aisc.ErrNotImplemented, axis, f.Ratio)
	}
	return fb, nil
}

// NoncompactFlangeMoment interpolates between the yield moment and the
// 0.7·Fy·S anchor:
//
//	Mn = Mp − (Mp − 0.7·Fy·S)·(λ − λr)/(λp − λr)
func NoncompactFlangeMoment(mp, fy, s, ratio, compact, slender float64) float64 {
	return mp - (mp-aisc.ResidualFactor*fy*s)*(ratio-slender)/(compact-slender)
}

func (f *FlangeBuckling) Name() string {
	if f.Axis == Minor {
		return string(StateMinorFlangeLocalBuckling)
	}
	return string(StateFlangeLocalBuckling)
}

func (f *FlangeBuckling) NominalStrength() float64 { return f.Mn }

func (f *FlangeBuckling) Applicable() bool {
	return f.Flexural.Class == slenderness.NonCompact
}
