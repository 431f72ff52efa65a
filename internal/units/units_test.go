package units

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/unit"
)

func TestConversions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		conv func(unit.Uniter) (float64, error)
		in   unit.Uniter
		want float64
	}{
		{"length", Millimetres, unit.Length(3.5), 3500},
		{"area", SquareMillimetres, unit.New(2e-3, unit.Dimensions{unit.LengthDim: 2}), 2000},
		{"section modulus", CubicMillimetres, unit.New(1e-4, unit.Dimensions{unit.LengthDim: 3}), 1e5},
		{"inertia", QuarticMillimetres, unit.New(1e-6, unit.Dimensions{unit.LengthDim: 4}), 1e6},
		{"force", Newtons, unit.Force(250 * unit.Kilo), 250000},
		{"stress", Megapascals, unit.Pressure(345e6), 345},
		{"moment", NewtonMillimetres, unit.Torque(10 * unit.Kilo), 1e7},
	}
	for _, tt := range tests {
		got, err := tt.conv(tt.in)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if !scalar.EqualWithinRel(got, tt.want, 1e-12) {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDimensionMismatch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		conv func(unit.Uniter) (float64, error)
		in   unit.Uniter
	}{
		{"force as length", Millimetres, unit.Force(1)},
		{"length as stress", Megapascals, unit.Length(1)},
		{"force as moment", NewtonMillimetres, unit.Force(1)},
		{"missing", Newtons, nil},
	}
	for _, tt := range tests {
		if _, err := tt.conv(tt.in); !errors.Is(err, ErrDimension) {
			t.Errorf("%s: error = %v, want ErrDimension", tt.name, err)
		}
	}
}

func TestRatio(t *testing.T) {
	t.Parallel()
	got, err := Ratio(unit.Force(50), unit.Force(200))
	if err != nil || got != 0.25 {
		t.Errorf("Ratio = %v, %v, want 0.25", got, err)
	}
	if _, err := Ratio(unit.Force(1), unit.Torque(1)); !errors.Is(err, ErrDimension) {
		t.Errorf("force/torque ratio error = %v, want ErrDimension", err)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	if got, _ := Millimetres(Length(4500)); !scalar.EqualWithinRel(got, 4500, 1e-12) {
		t.Errorf("Length round trip = %v", got)
	}
	if got, _ := Megapascals(Stress(345)); !scalar.EqualWithinRel(got, 345, 1e-12) {
		t.Errorf("Stress round trip = %v", got)
	}
	if got, _ := NewtonMillimetres(Moment(2.5e7)); !scalar.EqualWithinRel(got, 2.5e7, 1e-12) {
		t.Errorf("Moment round trip = %v", got)
	}
	if got, _ := Newtons(Force(1200)); got != 1200 {
		t.Errorf("Force round trip = %v", got)
	}
	if got, _ := SquareMillimetres(Area(1650)); !scalar.EqualWithinRel(got, 1650, 1e-12) {
		t.Errorf("Area round trip = %v", got)
	}
	if got, _ := CubicMillimetres(Modulus(75000)); !scalar.EqualWithinRel(got, 75000, 1e-12) {
		t.Errorf("Modulus round trip = %v", got)
	}
	if got, _ := QuarticMillimetres(Inertia(4.7625e6)); !scalar.EqualWithinRel(got, 4.7625e6, 1e-12) {
		t.Errorf("Inertia round trip = %v", got)
	}
	if _, err := SquareMillimetres(Inertia(1)); !errors.Is(err, ErrDimension) {
		t.Errorf("inertia as area error = %v, want ErrDimension", err)
	}
}
