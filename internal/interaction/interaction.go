// Package interaction combines the utilization of a member under several
// simultaneous actions into one ratio.
package interaction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"

	"github.com/alexiusacademia/gosteel/internal/units"
)

// AxialThreshold separates the two branches of Equation H1-1
const AxialThreshold = 0.2

// Equation identifies the interaction formula that produced a ratio
type Equation string

const (
	EquationH1a Equation = "H1-1a"
	EquationH1b Equation = "H1-1b"
	EquationH36 Equation = "H3-6"
)

// Demand pairs a required strength with an available strength. Both follow
// the same design type, ASD or LRFD.
type Demand struct {
	Required  float64
	Available float64
}

// NewDemand pairs dimensioned strengths. Both must be forces or both
// moments; a nil available strength is zero.
func NewDemand(required, available unit.Uniter) (Demand, error) {
	if required == nil {
		return Demand{}, fmt.Errorf("%w: missing required strength", units.ErrDimension)
	}
	if available == nil {
		return Demand{Required: required.Unit().Value()}, nil
	}
	if _, err := units.Ratio(required, available); err != nil {
		return Demand{}, err
	}
	return Demand{Required: required.Unit().Value(), Available: available.Unit().Value()}, nil
}

// Ratio returns |Required|/Available. A zero demand is zero regardless of
// capacity.
func (d Demand) Ratio() (float64, error) {
	if d.Required == 0 {
		return 0, nil
	}
	if d.Available <= 0 {
		return 0, fmt.Errorf("available strength must be positive (got %g)", d.Available)
	}
	return math.Abs(d.Required) / d.Available, nil
}

// Result is a combined-loading check
type Result struct {
	Equation     Equation
	AxialRatio   float64 // Pr/Pc
	MajorRatio   float64 // Mrx/Mcx
	MinorRatio   float64 // Mry/Mcy
	ShearRatio   float64 // Vr/Vc, H3-6 only
	TorsionRatio float64 // Tr/Tc, H3-6 only
	Ratio        float64
	Pass         bool // Ratio < 1
}

// H1 evaluates AISC 360-10 Equation H1-1 for combined axial force and
// biaxial flexure:
//
//	Pr/Pc ≥ 0.2: Pr/Pc + 8/9·(Mrx/Mcx + Mry/Mcy)
//	Pr/Pc < 0.2: Pr/(2Pc) + (Mrx/Mcx + Mry/Mcy)
func H1(axial, major, minor Demand) (*Result, error) {
	r := &Result{}
	var err error
	if r.AxialRatio, err = axial.Ratio(); err != nil {
		return nil, fmt.Errorf("axial: %w", err)
	}
	if r.MajorRatio, err = major.Ratio(); err != nil {
		return nil, fmt.Errorf("major axis flexure: %w", err)
	}
	if r.MinorRatio, err = minor.Ratio(); err != nil {
		return nil, fmt.Errorf("minor axis flexure: %w", err)
	}
	r.Ratio, r.Equation = H1Ratio(r.AxialRatio, r.MajorRatio, r.MinorRatio)
	r.Pass = r.Ratio < 1
	return r, nil
}

// H1Ratio is the H1-1 formula on precomputed ratios
func H1Ratio(axial, major, minor float64) (float64, Equation) {
	if axial >= AxialThreshold {
		return axial + 8.0/9.0*(major+minor), EquationH1a
	}
	return axial/2 + (major + minor), EquationH1b
}

// H3 evaluates AISC 360-10 Equation H3-6 for combined axial force, flexure,
// shear and torsion:
//
//	(Pr/Pc + Mr/Mc) + (Vr/Vc + Tr/Tc)²
//
// Mr/Mc is the sum of both flexural ratios.
func H3(axial, major, minor, shear, torsion Demand) (*Result, error) {
	r := &Result{Equation: EquationH36}
	ratios := []*float64{&r.AxialRatio, &r.MajorRatio, &r.MinorRatio, &r.ShearRatio, &r.TorsionRatio}
	names := []string{"axial", "major axis flexure", "minor axis flexure", "shear", "torsion"}
	for i, d := range []Demand{axial, major, minor, shear, torsion} {
		v, err := d.Ratio()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
		*ratios[i] = v
	}
	vt := r.ShearRatio + r.TorsionRatio
	r.Ratio = r.AxialRatio + r.MajorRatio + r.MinorRatio + vt*vt
	r.Pass = r.Ratio < 1
	return r, nil
}
