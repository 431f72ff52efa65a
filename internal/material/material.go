package material

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/unit"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/units"
)

// Material holds the structural steel properties used by every check.
// Values are in MPa. A Material is a value: share it freely.
type Material struct {
	Name string  `json:"name,omitempty"`
	E    float64 `json:"e"`            // Modulus of elasticity
	G    float64 `json:"g"`            // Shear modulus
	Nu   float64 `json:"nu,omitempty"` // Poisson ratio
	Fy   float64 `json:"fy"`           // Yield stress
	Fu   float64 `json:"fu,omitempty"` // Ultimate stress
}

// New creates a steel with default moduli (E = 200 GPa, ν = 0.3)
func New(name string, fy, fu float64) Material {
	return Material{
		Name: name,
		E:    aisc.Es,
		G:    aisc.Gs,
		Nu:   0.3,
		Fy:   fy,
		Fu:   fu,
	}
}

// WithDefaults fills unset moduli. G is derived from E and ν when only
// those are given.
func (m Material) WithDefaults() Material {
	if m.E == 0 {
		m.E = aisc.Es
	}
	if m.G == 0 {
		if m.Nu > 0 {
			m.G = m.E / (2 * (1 + m.Nu))
		} else {
			m.G = aisc.Gs
		}
	}
	if m.Nu == 0 {
		m.Nu = m.E/(2*m.G) - 1
	}
	return m
}

// WithYield returns m with the yield stress replaced by fy, a stress quantity
func (m Material) WithYield(fy unit.Uniter) (Material, error) {
	v, err := units.Megapascals(fy)
	if err != nil {
		return m, fmt.Errorf("yield stress: %w", err)
	}
	if v <= 0 {
		return m, &ValidationError{msg: fmt.Sprintf("yield stress Fy=%g must be positive", v)}
	}
	m.Fy = v
	return m, nil
}

// Validate checks if the material definition is valid
func (m Material) Validate() error {
	if m.E <= 0 {
		return &ValidationError{"modulus of elasticity E must be positive"}
	}
	if m.G <= 0 {
		return &ValidationError{"shear modulus G must be positive"}
	}
	if m.Fy <= 0 {
		return &ValidationError{"yield stress Fy must be positive"}
	}
	if m.Fu != 0 && m.Fu < m.Fy {
		return &ValidationError{msg: fmt.Sprintf("ultimate stress Fu=%.1f is below Fy=%.1f", m.Fu, m.Fy)}
	}
	return nil
}

// ValidationError represents a material validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Common structural steel grades
var grades = map[string]Material{
	"A36":      New("A36", 250, 400),
	"A572-50":  New("A572-50", 345, 450),
	"A992":     New("A992", 345, 450),
	"A500-B":   New("A500-B", 290, 400),
	"A53-B":    New("A53-B", 240, 415),
	"S235":     New("S235", 235, 360),
	"S275":     New("S275", 275, 430),
	"S355":     New("S355", 355, 510),
	"API-2H50": New("API-2H50", 345, 483),
}

// Grade looks up a named steel grade (case-insensitive).
func Grade(name string) (Material, error) {
	m, ok := grades[strings.ToUpper(name)]
	if !ok {
		return Material{}, fmt.Errorf("unknown steel grade %q (known: %s)", name, strings.Join(GradeNames(), ", "))
	}
	return m, nil
}

// GradeNames lists the known grades in sorted order.
func GradeNames() []string {
	names := make([]string, 0, len(grades))
	for n := range grades {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
