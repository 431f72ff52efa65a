package aisc

import "math"

// AISC 360-10 constants

const (
	// Default safety and resistance factors (Section B3.3, B3.4)
	OmegaDefault = 1.67 // ASD safety factor Ω
	PhiDefault   = 0.90 // LRFD resistance factor φ

	// Critical stress branch limit Fy/Fe (Section E3)
	InelasticLimit = 2.25

	// Unstiffened web shear buckling coefficient (Section G2.1)
	KvUnstiffened = 5.0

	// Single angle leg shear buckling coefficient (Section G4)
	KvAngleLeg = 1.2

	// Shape factor cap for minor axis yielding (Section F6.1)
	MinorShapeFactorCap = 1.6

	// Lateral-torsional buckling coefficients (Section F2.2)
	LpCoefficient = 1.76
	LrCoefficient = 1.95
	LrTermFactor  = 6.76
	LTBCaseCTerm  = 0.078

	// Residual stress reduction of Fy for LTB and local buckling anchors
	ResidualFactor = 0.7

	// Built-up flange kc bounds (Table B4.1 note [a])
	KcMin = 0.35
	KcMax = 0.76

	// Default steel moduli (MPa)
	Es = 200000.0
	Gs = 77200.0
)

// Kc calculates the flange local buckling coefficient for built-up sections
// Table B4.1 note [a]: kc = 4/√(h/tw), 0.35 ≤ kc ≤ 0.76
func Kc(h, tw float64) float64 {
	kc := 4 / math.Sqrt(h/tw)
	return math.Max(KcMin, math.Min(kc, KcMax))
}

// FL calculates the nominal flexural strength limit stress for built-up
// flanges (Table B4.1 case 11).
//
// FL = 0.7Fy when Sxt/Sxc ≥ 0.7, otherwise min(Fy·Sxt/Sxc, 0.5Fy).
func FL(fy, sxt, sxc float64) float64 {
	ratio := sxt / sxc
	if ratio >= ResidualFactor {
		return ResidualFactor * fy
	}
	return math.Min(fy*ratio, 0.5*fy)
}

// CriticalStress calculates the flexural buckling stress Fcr
// Section E3: Fcr = 0.658^(Fy/Fe)·Fy when Fy/Fe ≤ 2.25, else 0.877·Fe
func CriticalStress(fy, fe float64) float64 {
	if fy/fe <= InelasticLimit {
		return math.Pow(0.658, fy/fe) * fy
	}
	return 0.877 * fe
}

// WebShearCoefficient calculates Cv for a web of slenderness h/tw
// Section G2.1(b)
func WebShearCoefficient(hOverTw, kv, e, fy float64) float64 {
	limitI, limitII := WebShearLimits(kv, e, fy)
	switch {
	case hOverTw < limitI:
		return 1.0
	case hOverTw < limitII:
		return limitI / hOverTw
	default:
		return 1.51 * kv * e / (fy * hOverTw * hOverTw)
	}
}

// WebShearLimits returns the two h/tw thresholds of Section G2.1(b)
func WebShearLimits(kv, e, fy float64) (limitI, limitII float64) {
	root := math.Sqrt(kv * e / fy)
	return 1.10 * root, 1.37 * root
}
