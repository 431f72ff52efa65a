package material

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/unit"

	"github.com/alexiusacademia/gosteel/internal/units"
)

func TestNew(t *testing.T) {
	t.Parallel()
	m := New("S355", 355, 510)
	if m.E != 200000 || m.G != 77200 || m.Nu != 0.3 {
		t.Errorf("moduli = %v/%v/%v, want 200000/77200/0.3", m.E, m.G, m.Nu)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		in     Material
		wantE  float64
		wantG  float64
		wantNu float64
	}{
		{"empty", Material{Fy: 250}, 200000, 77200, 200000/(2*77200.0) - 1},
		{"G from poisson", Material{E: 210000, Nu: 0.3, Fy: 250}, 210000, 210000 / 2.6, 0.3},
		{"poisson from G", Material{E: 200000, G: 80000, Fy: 250}, 200000, 80000, 0.25},
	}
	for _, tt := range tests {
		m := tt.in.WithDefaults()
		if !scalar.EqualWithinRel(m.E, tt.wantE, 1e-12) ||
			!scalar.EqualWithinRel(m.G, tt.wantG, 1e-12) ||
			!scalar.EqualWithinRel(m.Nu, tt.wantNu, 1e-12) {
			t.Errorf("%s: E, G, ν = %v, %v, %v, want %v, %v, %v",
				tt.name, m.E, m.G, m.Nu, tt.wantE, tt.wantG, tt.wantNu)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		m    Material
	}{
		{"no E", Material{G: 77200, Fy: 250}},
		{"no G", Material{E: 200000, Fy: 250}},
		{"no Fy", Material{E: 200000, G: 77200}},
		{"Fu below Fy", Material{E: 200000, G: 77200, Fy: 345, Fu: 300}},
	}
	for _, tt := range tests {
		err := tt.m.Validate()
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: Validate() = %v, want *ValidationError", tt.name, err)
		}
	}
}

func TestGrade(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		fy, fu float64
	}{
		{"A36", 250, 400},
		{"a992", 345, 450},
		{"s355", 355, 510},
		{"API-2H50", 345, 483},
	}
	for _, tt := range tests {
		m, err := Grade(tt.name)
		if err != nil {
			t.Errorf("Grade(%q): %v", tt.name, err)
			continue
		}
		if m.Fy != tt.fy || m.Fu != tt.fu {
			t.Errorf("Grade(%q) = Fy %v Fu %v, want %v %v", tt.name, m.Fy, m.Fu, tt.fy, tt.fu)
		}
		if m.Name != strings.ToUpper(tt.name) {
			t.Errorf("Grade(%q).Name = %q", tt.name, m.Name)
		}
	}

	_, err := Grade("X99")
	if err == nil || !strings.Contains(err.Error(), "A992") {
		t.Errorf("unknown grade error = %v, want list of known grades", err)
	}
}

func TestGradeNamesSorted(t *testing.T) {
	t.Parallel()
	names := GradeNames()
	if len(names) != len(grades) {
		t.Fatalf("GradeNames = %d names, want %d", len(names), len(grades))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("GradeNames not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}

func TestWithYield(t *testing.T) {
	t.Parallel()
	base, _ := Grade("A992")
	m, err := base.WithYield(unit.Pressure(380 * unit.Mega))
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinRel(m.Fy, 380, 1e-12) || m.Fu != base.Fu || base.Fy != 345 {
		t.Errorf("Fy = %v Fu = %v, base Fy = %v", m.Fy, m.Fu, base.Fy)
	}
	if _, err := base.WithYield(unit.Force(380)); !errors.Is(err, units.ErrDimension) {
		t.Errorf("force as yield stress error = %v, want ErrDimension", err)
	}
	var verr *ValidationError
	if _, err := base.WithYield(units.Stress(0)); !errors.As(err, &verr) {
		t.Errorf("zero yield stress error = %v, want ValidationError", err)
	}
}
