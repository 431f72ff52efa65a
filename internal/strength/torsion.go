package strength

import "math"

// OpenTorsion is the torsional yield strength of an open section. The
// maximum St. Venant shear stress T·tmax/J is limited to 0.6·Fy.
type OpenTorsion struct {
	J    float64 // Torsional constant (mm⁴)
	Tmax float64 // Thickest plate (mm)
	Fy   float64 // (MPa)
	Tn   float64 // Nominal strength (N·mm)
}

// NewOpenTorsion calculates Tn = 0.6·Fy·J/tmax
func NewOpenTorsion(j, tmax, fy float64) *OpenTorsion {
	return &OpenTorsion{J: j, Tmax: tmax, Fy: fy, Tn: 0.6 * fy * j / tmax}
}

func (o *OpenTorsion) Name() string             { return string(StateTorsionalYielding) }
func (o *OpenTorsion) NominalStrength() float64 { return o.Tn }
func (o *OpenTorsion) Applicable() bool         { return true }

// RoundTorsion is the torsional strength of a round HSS
// (AISC 360-10 Section H3.1)
type RoundTorsion struct {
	D   float64 // Outside diameter (mm)
	T   float64 // Wall thickness (mm)
	L   float64 // Member length (mm)
	C   float64 // Torsional constant π(D − t)²t/2 (mm³)
	Fcr float64 // Critical stress, ≤ 0.6·Fy (MPa)
	Tn  float64 // Nominal strength (N·mm)
}

// NewRoundTorsion calculates Tn = Fcr·C with
// Fcr = max(1.23E/(√(L/D)·(D/t)^1.25), 0.60E/(D/t)^1.5) ≤ 0.6·Fy
func NewRoundTorsion(d, t, l, e, fy float64) *RoundTorsion {
	r := &RoundTorsion{D: d, T: t, L: l}
	r.C = math.Pi * (d - t) * (d - t) * t / 2
	dt := d / t
	fcr := 0.60 * e / math.Pow(dt, 1.5)
	if l > 0 {
		fcr = math.Max(fcr, 1.23*e/(math.Sqrt(l/d)*math.Pow(dt, 1.25)))
	}
	r.Fcr = math.Min(fcr, 0.6*fy)
	r.Tn = r.Fcr * r.C
	return r
}

func (r *RoundTorsion) Name() string             { return string(StateHSSTorsion) }
func (r *RoundTorsion) NominalStrength() float64 { return r.Tn }
func (r *RoundTorsion) Applicable() bool         { return true }
