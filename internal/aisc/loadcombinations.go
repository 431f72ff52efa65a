package aisc

import "math"

// Forces holds the member forces of one load case or combination.
// Axial and shear in N, moments and torsion in N·mm.
type Forces struct {
	Axial       float64 `json:"axial"`
	MomentMajor float64 `json:"moment_major"`
	MomentMinor float64 `json:"moment_minor"`
	Shear       float64 `json:"shear"`
	Torsion     float64 `json:"torsion"`
}

// Scale returns f with every component multiplied by k.
func (f Forces) Scale(k float64) Forces {
	return Forces{
		Axial:       f.Axial * k,
		MomentMajor: f.MomentMajor * k,
		MomentMinor: f.MomentMinor * k,
		Shear:       f.Shear * k,
		Torsion:     f.Torsion * k,
	}
}

// Plus returns the component-wise sum of f and g.
func (f Forces) Plus(g Forces) Forces {
	return Forces{
		Axial:       f.Axial + g.Axial,
		MomentMajor: f.MomentMajor + g.MomentMajor,
		MomentMinor: f.MomentMinor + g.MomentMinor,
		Shear:       f.Shear + g.Shear,
		Torsion:     f.Torsion + g.Torsion,
	}
}

// IsZero reports whether every component is zero.
func (f Forces) IsZero() bool {
	return f == Forces{}
}

// LoadEffects holds unfactored member forces per load type
type LoadEffects struct {
	Dead       Forces `json:"dead"`       // D
	Live       Forces `json:"live"`       // L
	Roof       Forces `json:"roof"`       // Lr
	Snow       Forces `json:"snow"`       // S
	Rain       Forces `json:"rain"`       // R
	Wind       Forces `json:"wind"`       // W
	Earthquake Forces `json:"earthquake"` // E
}

// LoadCombination represents an ASCE 7-10 load combination.
// Roof applies to the governing member of the (Lr or S or R) group, Snow to
// the snow-only term of the seismic combinations.
type LoadCombination struct {
	ID          string
	Description string
	Dead        float64
	Live        float64
	Roof        float64
	Snow        float64
	Wind        float64
	Earthquake  float64
}

// LRFDCombinations per ASCE 7-10 Section 2.3.2
var LRFDCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L + 0.5(Lr or S or R)", Dead: 1.2, Live: 1.6, Roof: 0.5},
	{ID: "3", Description: "1.2D + 1.6(Lr or S or R) + (L or 0.5W)", Dead: 1.2, Live: 1.0, Roof: 1.6, Wind: 0.5},
	{ID: "4", Description: "1.2D + 1.0W + L + 0.5(Lr or S or R)", Dead: 1.2, Live: 1.0, Roof: 0.5, Wind: 1.0},
	{ID: "5", Description: "1.2D + 1.0E + L + 0.2S", Dead: 1.2, Live: 1.0, Snow: 0.2, Earthquake: 1.0},
	{ID: "6", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "7", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// ASDCombinations per ASCE 7-10 Section 2.4.1
var ASDCombinations = []LoadCombination{
	{ID: "1", Description: "D", Dead: 1.0},
	{ID: "2", Description: "D + L", Dead: 1.0, Live: 1.0},
	{ID: "3", Description: "D + (Lr or S or R)", Dead: 1.0, Roof: 1.0},
	{ID: "4", Description: "D + 0.75L + 0.75(Lr or S or R)", Dead: 1.0, Live: 0.75, Roof: 0.75},
	{ID: "5a", Description: "D + 0.6W", Dead: 1.0, Wind: 0.6},
	{ID: "5b", Description: "D + 0.7E", Dead: 1.0, Earthquake: 0.7},
	{ID: "6a", Description: "D + 0.75L + 0.75(0.6W) + 0.75(Lr or S or R)", Dead: 1.0, Live: 0.75, Roof: 0.75, Wind: 0.45},
	{ID: "6b", Description: "D + 0.75L + 0.75(0.7E) + 0.75S", Dead: 1.0, Live: 0.75, Snow: 0.75, Earthquake: 0.525},
	{ID: "7", Description: "0.6D + 0.6W", Dead: 0.6, Wind: 0.6},
	{ID: "8", Description: "0.6D + 0.7E", Dead: 0.6, Earthquake: 0.7},
}

// Factored calculates the required member forces for the combination
func (lc LoadCombination) Factored(e LoadEffects) Forces {
	roof := roofGroup(e)
	return e.Dead.Scale(lc.Dead).
		Plus(e.Live.Scale(lc.Live)).
		Plus(roof.Scale(lc.Roof)).
		Plus(e.Snow.Scale(lc.Snow)).
		Plus(e.Wind.Scale(lc.Wind)).
		Plus(e.Earthquake.Scale(lc.Earthquake))
}

// roofGroup picks, per component, the largest of Lr, S and R by magnitude.
func roofGroup(e LoadEffects) Forces {
	pick := func(a, b, c float64) float64 {
		m := a
		if math.Abs(b) > math.Abs(m) {
			m = b
		}
		if math.Abs(c) > math.Abs(m) {
			m = c
		}
		return m
	}
	return Forces{
		Axial:       pick(e.Roof.Axial, e.Snow.Axial, e.Rain.Axial),
		MomentMajor: pick(e.Roof.MomentMajor, e.Snow.MomentMajor, e.Rain.MomentMajor),
		MomentMinor: pick(e.Roof.MomentMinor, e.Snow.MomentMinor, e.Rain.MomentMinor),
		Shear:       pick(e.Roof.Shear, e.Snow.Shear, e.Rain.Shear),
		Torsion:     pick(e.Roof.Torsion, e.Snow.Torsion, e.Rain.Torsion),
	}
}

// Combinations returns the combination table for the design method name
// ("ASD" or "LRFD").
func Combinations(method string) []LoadCombination {
	if method == "ASD" {
		return ASDCombinations
	}
	return LRFDCombinations
}
