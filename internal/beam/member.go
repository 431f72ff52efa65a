// Package beam orchestrates the design checks of one steel member: section,
// material, unbraced lengths, effective length factors and required
// strengths in; design strengths per loading and the combined-loading ratio
// out.
package beam

import (
	"fmt"

	"gonum.org/v1/gonum/unit"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/material"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/units"
)

// Lengths holds the unbraced lengths of a member (mm). Minor and Torsion
// default to Major when zero.
type Lengths struct {
	Major   float64 `json:"major"`
	Minor   float64 `json:"minor,omitempty"`
	Torsion float64 `json:"torsion,omitempty"`
}

// KFactors holds the effective length factors. Zero means 1.0.
type KFactors struct {
	Major   float64 `json:"major,omitempty"`
	Minor   float64 `json:"minor,omitempty"`
	Torsion float64 `json:"torsion,omitempty"`
}

// Beam is a steel member under combined loading
type Beam struct {
	Name         string
	Section      section.Section
	Material     material.Material
	Construction section.Construction
	Lengths      Lengths
	K            KFactors
	Cb           float64 // LTB moment gradient factor, default 1.0
	ShearLength  float64 // Lv of round HSS shear (mm), default Lengths.Major/2
	Loads        aisc.Forces
}

// withDefaults fills every optional field
func (b Beam) withDefaults() Beam {
	if b.Name == "" && b.Section != nil {
		b.Name = b.Section.Name()
	}
	if b.Lengths.Minor == 0 {
		b.Lengths.Minor = b.Lengths.Major
	}
	if b.Lengths.Torsion == 0 {
		b.Lengths.Torsion = b.Lengths.Major
	}
	if b.K.Major == 0 {
		b.K.Major = 1
	}
	if b.K.Minor == 0 {
		b.K.Minor = 1
	}
	if b.K.Torsion == 0 {
		b.K.Torsion = 1
	}
	if b.Cb == 0 {
		b.Cb = 1
	}
	if b.ShearLength == 0 {
		b.ShearLength = b.Lengths.Major / 2
	}
	b.Material = b.Material.WithDefaults()
	return b
}

// Validate checks the member definition after defaults are applied
func (b Beam) Validate() error {
	if b.Section == nil {
		return fmt.Errorf("member %q has no section", b.Name)
	}
	if err := b.Material.Validate(); err != nil {
		return fmt.Errorf("member %q: %w", b.Name, err)
	}
	if b.Lengths.Major < 0 || b.Lengths.Minor < 0 || b.Lengths.Torsion < 0 {
		return fmt.Errorf("member %q: unbraced lengths must not be negative", b.Name)
	}
	if b.K.Major < 0 || b.K.Minor < 0 || b.K.Torsion < 0 {
		return fmt.Errorf("member %q: effective length factors must be positive", b.Name)
	}
	if b.Cb < 0 {
		return fmt.Errorf("member %q: Cb must be positive", b.Name)
	}
	return nil
}

// LengthsFrom converts unbraced length quantities to Lengths. Minor and
// torsion may be nil.
func LengthsFrom(major, minor, torsion unit.Uniter) (Lengths, error) {
	var l Lengths
	var err error
	if l.Major, err = units.Millimetres(major); err != nil {
		return l, fmt.Errorf("major unbraced length: %w", err)
	}
	if l.Minor, err = optional(minor, units.Millimetres); err != nil {
		return l, fmt.Errorf("minor unbraced length: %w", err)
	}
	if l.Torsion, err = optional(torsion, units.Millimetres); err != nil {
		return l, fmt.Errorf("torsional unbraced length: %w", err)
	}
	return l, nil
}

// LoadsFrom converts required strength quantities to Forces. A nil quantity
// is zero; a quantity of the wrong dimension is an error.
func LoadsFrom(axial, momentMajor, momentMinor, shear, torsion unit.Uniter) (aisc.Forces, error) {
	var f aisc.Forces
	var err error
	if f.Axial, err = optional(axial, units.Newtons); err != nil {
		return f, fmt.Errorf("axial: %w", err)
	}
	if f.MomentMajor, err = optional(momentMajor, units.NewtonMillimetres); err != nil {
		return f, fmt.Errorf("major axis moment: %w", err)
	}
	if f.MomentMinor, err = optional(momentMinor, units.NewtonMillimetres); err != nil {
		return f, fmt.Errorf("minor axis moment: %w", err)
	}
	if f.Shear, err = optional(shear, units.Newtons); err != nil {
		return f, fmt.Errorf("shear: %w", err)
	}
	if f.Torsion, err = optional(torsion, units.NewtonMillimetres); err != nil {
		return f, fmt.Errorf("torsion: %w", err)
	}
	return f, nil
}

func optional(q unit.Uniter, conv func(unit.Uniter) (float64, error)) (float64, error) {
	if q == nil {
		return 0, nil
	}
	return conv(q)
}
