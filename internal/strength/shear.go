package strength

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// PlateShear is the shear strength of a web or angle leg
// Vn = 0.6·Fy·Aw·Cv (AISC 360-10 Section G2.1, G4)
type PlateShear struct {
	State   LimitState
	H       float64 // Height used for the slenderness ratio (mm)
	T       float64 // Plate thickness (mm)
	Aw      float64 // Shear area (mm²)
	Kv      float64 // Shear buckling coefficient
	Ratio   float64 // h/t
	LimitI  float64 // 1.10·√(kv·E/Fy)
	LimitII float64 // 1.37·√(kv·E/Fy)
	Cv      float64 // Web shear coefficient
	Fy      float64 // (MPa)
	Vn      float64 // Nominal strength (N)
}

// NewWebShear calculates the shear strength of an unstiffened web. h is the
// clear web height for h/tw, aw the shear area.
func NewWebShear(h, tw, aw, e, fy float64) *PlateShear {
	return newPlateShear(StateWebShear, h, tw, aw, aisc.KvUnstiffened, e, fy)
}

// NewLegShear calculates the shear strength of a single angle leg of width b
// and thickness t (Section G4, kv = 1.2).
func NewLegShear(b, t, e, fy float64) *PlateShear {
	return newPlateShear(StateLegShear, b, t, b*t, aisc.KvAngleLeg, e, fy)
}

func newPlateShear(state LimitState, h, t, aw, kv, e, fy float64) *PlateShear {
	s := &PlateShear{State: state, H: h, T: t, Aw: aw, Kv: kv, Fy: fy}
	s.Ratio = h / t
	s.LimitI, s.LimitII = aisc.WebShearLimits(kv, e, fy)
	s.Cv = aisc.WebShearCoefficient(s.Ratio, kv, e, fy)
	s.Vn = 0.6 * fy * aw * s.Cv
	return s
}

func (s *PlateShear) Name() string             { return string(s.State) }
func (s *PlateShear) NominalStrength() float64 { return s.Vn }
func (s *PlateShear) Applicable() bool         { return true }

// RoundShear is the shear strength of a round HSS (AISC 360-10 Section G6)
type RoundShear struct {
	D    float64 // Outside diameter (mm)
	T    float64 // Wall thickness (mm)
	Lv   float64 // Distance from maximum to zero shear (mm)
	Area float64 // Gross area (mm²)
	Fcr  float64 // Critical stress, ≤ 0.6·Fy (MPa)
	Vn   float64 // Nominal strength (N)
}

// NewRoundShear calculates Vn = Fcr·Ag/2 with
// Fcr = max(1.60E/(√(Lv/D)·(D/t)^1.25), 0.78E/(D/t)^1.5) ≤ 0.6·Fy
func NewRoundShear(d, t, lv, area, e, fy float64) *RoundShear {
	s := &RoundShear{D: d, T: t, Lv: lv, Area: area}
	dt := d / t
	fcr := 0.78 * e / math.Pow(dt, 1.5)
	if lv > 0 {
		fcr = math.Max(fcr, 1.60*e/(math.Sqrt(lv/d)*math.Pow(dt, 1.25)))
	}
	s.Fcr = math.Min(fcr, 0.6*fy)
	s.Vn = s.Fcr * area / 2
	return s
}

func (s *RoundShear) Name() string             { return string(StateWallShear) }
func (s *RoundShear) NominalStrength() float64 { return s.Vn }
func (s *RoundShear) Applicable() bool         { return true }
