package section

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/unit"

	"github.com/alexiusacademia/gosteel/internal/units"
)

// Kind identifies the cross-section shape family
type Kind string

const (
	KindI       Kind = "I"    // doubly symmetric I (W, HP, welded plate girder)
	KindChannel Kind = "C"    // channel
	KindAngle   Kind = "L"    // single angle
	KindPipe    Kind = "PIPE" // circular hollow section
)

// Construction selects the rolled or built-up variant of the slenderness limits
type Construction int

const (
	Rolled Construction = iota
	BuiltUp
)

func (c Construction) String() string {
	if c == BuiltUp {
		return "built-up"
	}
	return "rolled"
}

// MarshalText implements encoding.TextMarshaler
func (c Construction) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Construction) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "", "rolled":
		*c = Rolled
	case "built-up", "builtup", "built_up", "welded":
		*c = BuiltUp
	default:
		return fmt.Errorf("unknown construction %q", string(b))
	}
	return nil
}

// Properties holds the area properties of a cross-section.
// x is the major (strong) axis and y the minor axis. Lengths in mm.
type Properties struct {
	Area float64 `json:"area"` // Gross area (mm²)

	Ix float64 `json:"ix"` // Major axis moment of inertia (mm⁴)
	Iy float64 `json:"iy"` // Minor axis moment of inertia (mm⁴)

	Sx float64 `json:"sx,omitempty"` // Major axis elastic section modulus (mm³)
	Sy float64 `json:"sy,omitempty"` // Minor axis elastic section modulus (mm³)
	Zx float64 `json:"zx,omitempty"` // Major axis plastic section modulus (mm³)
	Zy float64 `json:"zy,omitempty"` // Minor axis plastic section modulus (mm³)

	Rx float64 `json:"rx,omitempty"` // Major axis radius of gyration (mm)
	Ry float64 `json:"ry,omitempty"` // Minor axis radius of gyration (mm)
	Rz float64 `json:"rz,omitempty"` // Minor principal radius of gyration (mm), equals Ry except for angles
	Ro float64 `json:"ro,omitempty"` // Polar radius of gyration about the shear center (mm)

	J  float64 `json:"j,omitempty"`  // Torsional constant (mm⁴)
	Cw float64 `json:"cw,omitempty"` // Warping constant (mm⁶)

	X0 float64 `json:"x0,omitempty"` // Shear center offset from centroid along x (mm)
	Y0 float64 `json:"y0,omitempty"` // Shear center offset from centroid along y (mm)
}

// Quantities holds tabulated section properties as dimensioned values, e.g.
// from a catalogue in another unit system. Nil fields are derived from the
// dimensions when the section is built.
type Quantities struct {
	Area   unit.Uniter
	Ix, Iy unit.Uniter
	Sx, Sy unit.Uniter
	Zx, Zy unit.Uniter
	J      unit.Uniter
}

// IsZero reports whether no property is given
func (q Quantities) IsZero() bool {
	return q == Quantities{}
}

// Properties converts the quantities to mm based Properties
func (q Quantities) Properties() (Properties, error) {
	var p Properties
	fields := []struct {
		name string
		q    unit.Uniter
		conv func(unit.Uniter) (float64, error)
		dst  *float64
	}{
		{"area", q.Area, units.SquareMillimetres, &p.Area},
		{"Ix", q.Ix, units.QuarticMillimetres, &p.Ix},
		{"Iy", q.Iy, units.QuarticMillimetres, &p.Iy},
		{"Sx", q.Sx, units.CubicMillimetres, &p.Sx},
		{"Sy", q.Sy, units.CubicMillimetres, &p.Sy},
		{"Zx", q.Zx, units.CubicMillimetres, &p.Zx},
		{"Zy", q.Zy, units.CubicMillimetres, &p.Zy},
		{"J", q.J, units.QuarticMillimetres, &p.J},
	}
	for _, f := range fields {
		if f.q == nil {
			continue
		}
		v, err := f.conv(f.q)
		if err != nil {
			return p, fmt.Errorf("property %s: %w", f.name, err)
		}
		*f.dst = v
	}
	return p, nil
}

// PolarInertia returns Ix + Iy
func (p Properties) PolarInertia() float64 {
	return p.Ix + p.Iy
}

// Section is a cross-section whose area properties are known
type Section interface {
	Name() string
	Kind() Kind
	Properties() Properties
	// Depth is the total height measured along the minor axis direction.
	Depth() float64
	// MaxThickness is the thickest plate element, used for torsional stress.
	MaxThickness() float64
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func positive(name string, v float64) error {
	if v <= 0 {
		return &ValidationError{msg: fmt.Sprintf("%s must be positive (got %g)", name, v)}
	}
	return nil
}
