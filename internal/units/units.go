// Package units is the boundary between dimensioned quantities and the
// design core. The core works with plain float64 values in a fixed,
// consistent system:
//
//	length  mm
//	force   N
//	stress  MPa (N/mm²)
//	moment  N·mm
//
// Quantities arrive as gonum units (SI base values) and are checked for
// dimension before they are converted. A mismatch is an error, never a
// silent coercion.
package units

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/unit"
)

// ErrDimension is returned when a quantity does not have the dimensions an
// operation requires.
var ErrDimension = errors.New("units: dimension mismatch")

// Scale factors from SI base values to the core system.
const (
	mmPerMetre   = 1e3
	mm2PerMetre2 = 1e6
	mm3PerMetre3 = 1e9
	mm4PerMetre4 = 1e12
	mpaPerPascal = 1e-6
	nmmPerNm     = 1e3
)

// Reference quantities used only for their dimensions.
var (
	metre        = unit.Metre
	squareMetre  = unit.New(1, unit.Dimensions{unit.LengthDim: 2})
	cubicMetre   = unit.New(1, unit.Dimensions{unit.LengthDim: 3})
	quarticMetre = unit.New(1, unit.Dimensions{unit.LengthDim: 4})
	newton       = unit.Newton
	pascal       = unit.Pascal
	newtonMetre  = unit.Newtonmetre
)

func convert(q unit.Uniter, ref unit.Uniter, scale float64, what string) (float64, error) {
	if q == nil {
		return 0, fmt.Errorf("%w: missing %s", ErrDimension, what)
	}
	if !unit.DimensionsMatch(q, ref) {
		return 0, fmt.Errorf("%w: %s expected %v, got %v", ErrDimension, what,
			ref.Unit().Dimensions(), q.Unit().Dimensions())
	}
	return q.Unit().Value() * scale, nil
}

// Millimetres converts a length quantity to mm.
func Millimetres(q unit.Uniter) (float64, error) {
	return convert(q, metre, mmPerMetre, "length")
}

// SquareMillimetres converts an area quantity to mm².
func SquareMillimetres(q unit.Uniter) (float64, error) {
	return convert(q, squareMetre, mm2PerMetre2, "area")
}

// CubicMillimetres converts a section modulus quantity to mm³.
func CubicMillimetres(q unit.Uniter) (float64, error) {
	return convert(q, cubicMetre, mm3PerMetre3, "section modulus")
}

// QuarticMillimetres converts a second moment of area to mm⁴.
func QuarticMillimetres(q unit.Uniter) (float64, error) {
	return convert(q, quarticMetre, mm4PerMetre4, "moment of inertia")
}

// Newtons converts a force quantity to N.
func Newtons(q unit.Uniter) (float64, error) {
	return convert(q, newton, 1, "force")
}

// Megapascals converts a stress quantity to MPa.
func Megapascals(q unit.Uniter) (float64, error) {
	return convert(q, pascal, mpaPerPascal, "stress")
}

// NewtonMillimetres converts a moment or torque quantity to N·mm.
func NewtonMillimetres(q unit.Uniter) (float64, error) {
	return convert(q, newtonMetre, nmmPerNm, "moment")
}

// Ratio returns a/b. Both operands must have the same dimensions so that the
// result is dimensionless; otherwise the error names both operands.
func Ratio(a, b unit.Uniter) (float64, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("%w: ratio with missing operand", ErrDimension)
	}
	if !unit.DimensionsMatch(a, b) {
		return 0, fmt.Errorf("%w: ratio of %v and %v is not dimensionless", ErrDimension, a.Unit(), b.Unit())
	}
	return a.Unit().Value() / b.Unit().Value(), nil
}

// Length returns a gonum length for a value in mm.
func Length(mm float64) unit.Length {
	return unit.Length(mm / mmPerMetre)
}

// Area returns a gonum quantity for a value in mm².
func Area(mm2 float64) *unit.Unit {
	return unit.New(mm2/mm2PerMetre2, squareMetre.Dimensions())
}

// Modulus returns a gonum quantity for a section modulus in mm³.
func Modulus(mm3 float64) *unit.Unit {
	return unit.New(mm3/mm3PerMetre3, cubicMetre.Dimensions())
}

// Inertia returns a gonum quantity for a second moment of area in mm⁴.
func Inertia(mm4 float64) *unit.Unit {
	return unit.New(mm4/mm4PerMetre4, quarticMetre.Dimensions())
}

// Force returns a gonum force for a value in N.
func Force(n float64) unit.Force {
	return unit.Force(n)
}

// Stress returns a gonum pressure for a value in MPa.
func Stress(mpa float64) unit.Pressure {
	return unit.Pressure(mpa / mpaPerPascal)
}

// Moment returns a gonum torque for a value in N·mm.
func Moment(nmm float64) unit.Torque {
	return unit.Torque(nmm / nmmPerNm)
}
