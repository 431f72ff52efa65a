// Package api calculates allowable stresses of cylindrical members per
// API RP 2A-WSD (21st edition) Section 3.2 and 3.3.
//
// Units: mm, MPa.
package api

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/material"
)

const (
	// Critical elastic buckling coefficient (Section 3.2.2)
	BucklingCoefficient = 0.3

	// Inelastic local buckling does not reduce Fy below this D/t
	StockyLimit = 60.0

	// Bending limits of Section 3.2.3 (MPa)
	BendingCompactLimit = 10340.0
	BendingInterLimit   = 20680.0
	BendingMaxSlender   = 300.0

	// Moment reduction factor for members with sidesway
	CmDefault = 0.85
)

// Tube is a cylindrical member
type Tube struct {
	D float64 // Outside diameter (mm)
	T float64 // Wall thickness (mm)
	K float64 // Effective length factor
	L float64 // Unbraced length (mm)
}

// Validate checks the tube dimensions
func (t Tube) Validate() error {
	if t.D <= 0 || t.T <= 0 || 2*t.T >= t.D {
		return fmt.Errorf("invalid tube: D=%.2f, t=%.2f", t.D, t.T)
	}
	if t.L < 0 || t.K < 0 {
		return fmt.Errorf("invalid tube length: K=%.2f, L=%.2f", t.K, t.L)
	}
	return nil
}

// Slenderness returns D/t
func (t Tube) Slenderness() float64 { return t.D / t.T }

// Radius returns the radius of gyration (mm)
func (t Tube) Radius() float64 {
	di := t.D - 2*t.T
	return math.Sqrt(t.D*t.D+di*di) / 4
}

// Allowables holds the allowable stresses of a tube
type Allowables struct {
	DT  float64 // D/t
	KLr float64 // Kl/r
	Fxe float64 // Elastic local buckling stress (MPa)
	Fxc float64 // Inelastic local buckling stress (MPa)
	Fy  float64 // Yield stress reduced for local buckling (MPa)
	Cc  float64 // Column slenderness limit
	Fa  float64 // Allowable axial compression (MPa)
	Fb  float64 // Allowable bending (MPa)
	Fe  float64 // Euler stress divided by the safety factor, F'e (MPa)
}

// Calculate evaluates Sections 3.2.2 and 3.2.3
func Calculate(t Tube, m material.Material) (*Allowables, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	m = m.WithDefaults()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if t.K == 0 {
		t.K = 1
	}

	a := &Allowables{DT: t.Slenderness(), KLr: t.K * t.L / t.Radius()}
	a.Fxe = ElasticLocalBuckling(m.E, t.D, t.T)
	a.Fxc = InelasticLocalBuckling(m.Fy, a.Fxe, a.DT)
	a.Fy = math.Min(a.Fxc, m.Fy)

	a.Cc = math.Sqrt(2 * math.Pi * math.Pi * m.E / a.Fy)
	a.Fa = AxialCompression(a.KLr, a.Cc, a.Fy, m.E)
	if a.KLr > 0 {
		a.Fe = 12 * math.Pi * math.Pi * m.E / (23 * a.KLr * a.KLr)
	} else {
		a.Fe = math.Inf(1)
	}

	fb, err := Bending(a.DT, m.Fy, m.E)
	if err != nil {
		return nil, err
	}
	a.Fb = fb
	return a, nil
}

// ElasticLocalBuckling calculates Fxe = 2·C·E·t/D (Eq. 3.2.2-3)
func ElasticLocalBuckling(e, d, t float64) float64 {
	return 2 * BucklingCoefficient * e * t / d
}

// InelasticLocalBuckling calculates Fxc (Eq. 3.2.2-4):
// Fy for D/t ≤ 60, else Fy·[1.64 − 0.23(D/t)^¼] ≤ Fxe
func InelasticLocalBuckling(fy, fxe, dt float64) float64 {
	if dt <= StockyLimit {
		return fy
	}
	return math.Min(fy*(1.64-0.23*math.Pow(dt, 0.25)), fxe)
}

// AxialCompression calculates the allowable axial stress Fa
// (Eq. 3.2.2-1 for Kl/r < Cc, Eq. 3.2.2-2 otherwise)
func AxialCompression(klr, cc, fy, e float64) float64 {
	if klr < cc {
		num := (1 - klr*klr/(2*cc*cc)) * fy
		den := 5.0/3.0 + 3*klr/(8*cc) - klr*klr*klr/(8*cc*cc*cc)
		return num / den
	}
	return 12 * math.Pi * math.Pi * e / (23 * klr * klr)
}

// Bending calculates the allowable bending stress Fb (Eq. 3.2.3-1a/b/c).
// D/t above 300 is outside Section 3.2.3 and returns aisc.ErrNotImplemented.
func Bending(dt, fy, e float64) (float64, error) {
	switch {
	case dt <= BendingCompactLimit/fy:
		return 0.75 * fy, nil
	case dt <= BendingInterLimit/fy:
		return (0.84 - 1.74*fy*dt/e) * fy, nil
	case dt <= BendingMaxSlender:
		return (0.72 - 0.58*fy*dt/e) * fy, nil
	default:
		return 0, fmt.Errorf("%w: API RP 2A bending with D/t = %.1f > 300", aisc.ErrNotImplemented, dt)
	}
}

// Stresses are the acting stresses of a tube (MPa)
type Stresses struct {
	Axial float64 // fa, compression positive
	BendX float64 // fbx
	BendY float64 // fby
}

// Utilization is a combined axial compression and bending check
type Utilization struct {
	Equation string
	Ratio    float64
	Pass     bool
}

// Combined evaluates Section 3.3.1. With fa/Fa ≤ 0.15 Eq. 3.3.1-3 applies,
// otherwise the larger of Eq. 3.3.1-1 and 3.3.1-2. cm zero means 0.85.
func (a *Allowables) Combined(s Stresses, cm float64) (*Utilization, error) {
	if cm == 0 {
		cm = CmDefault
	}
	fa := math.Abs(s.Axial)
	fb := math.Hypot(s.BendX, s.BendY)
	ra := fa / a.Fa

	if ra <= 0.15 {
		r := ra + fb/a.Fb
		return &Utilization{Equation: "3.3.1-3", Ratio: r, Pass: r <= 1}, nil
	}
	if fa >= a.Fe {
		return nil, fmt.Errorf("axial stress %.1f MPa exceeds F'e = %.1f MPa", fa, a.Fe)
	}
	r1 := ra + cm*fb/((1-fa/a.Fe)*a.Fb)
	r2 := fa/(0.6*a.Fy) + fb/a.Fb
	if r2 > r1 {
		return &Utilization{Equation: "3.3.1-2", Ratio: r2, Pass: r2 <= 1}, nil
	}
	return &Utilization{Equation: "3.3.1-1", Ratio: r1, Pass: r1 <= 1}, nil
}
