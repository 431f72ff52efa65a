package api

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/material"
)

const tol = 1e-9

func grade() material.Material {
	return material.Material{E: 200000, G: 77200, Fy: 345}
}

// TestCalculate verifies the allowable stresses for three tube regimes.
func TestCalculate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		tube        Tube
		fxc, fa, fb float64
	}{
		{"stocky", Tube{D: 610, T: 12.7, K: 1, L: 10000}, 345, 170.82731827612176, 240.06254527559054},
		{"local buckling", Tube{D: 1000, T: 10, K: 1, L: 10000}, 314.87326766563905, 173.05599564423832, 213.88275},
		{"long column", Tube{D: 300, T: 20, K: 1, L: 30000}, 345, 11.271374301533934, 258.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, err := Calculate(tt.tube, grade())
			if err != nil {
				t.Fatal(err)
			}
			if !scalar.EqualWithinRel(a.Fxc, tt.fxc, tol) {
				t.Errorf("Fxc = %v, want %v", a.Fxc, tt.fxc)
			}
			if !scalar.EqualWithinRel(a.Fa, tt.fa, tol) {
				t.Errorf("Fa = %v, want %v", a.Fa, tt.fa)
			}
			if !scalar.EqualWithinRel(a.Fb, tt.fb, tol) {
				t.Errorf("Fb = %v, want %v", a.Fb, tt.fb)
			}
		})
	}
}

// TestElasticLocalBuckling verifies Fxe = 0.6·E·t/D.
func TestElasticLocalBuckling(t *testing.T) {
	t.Parallel()
	if got := ElasticLocalBuckling(200000, 1000, 10); !scalar.EqualWithinRel(got, 1200, tol) {
		t.Errorf("Fxe = %v, want 1200", got)
	}
}

// TestInelasticLocalBucklingStocky verifies Fxc = Fy up to D/t = 60.
func TestInelasticLocalBucklingStocky(t *testing.T) {
	t.Parallel()
	if got := InelasticLocalBuckling(345, 5000, 60); got != 345 {
		t.Errorf("Fxc = %v, want 345", got)
	}
	if got := InelasticLocalBuckling(345, 5000, 61); got >= 345 {
		t.Errorf("Fxc = %v, want below Fy", got)
	}
}

// TestBendingLimit verifies the D/t limit of Section 3.2.3.
func TestBendingLimit(t *testing.T) {
	t.Parallel()
	if _, err := Bending(301, 345, 200000); !errors.Is(err, aisc.ErrNotImplemented) {
		t.Errorf("err = %v, want ErrNotImplemented", err)
	}
	if fb, err := Bending(10340.0/345, 345, 200000); err != nil || fb != 0.75*345 {
		t.Errorf("Fb = %v, %v", fb, err)
	}
}

// TestCombined verifies the branches of Section 3.3.1.
func TestCombined(t *testing.T) {
	t.Parallel()
	a, err := Calculate(Tube{D: 610, T: 12.7, K: 1, L: 10000}, grade())
	if err != nil {
		t.Fatal(err)
	}

	u, err := a.Combined(Stresses{Axial: 60, BendX: 80, BendY: 60}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if u.Equation != "3.3.1-1" || !scalar.EqualWithinRel(u.Ratio, 0.7584854561728666, 1e-9) || !u.Pass {
		t.Errorf("got %+v", u)
	}

	u, err = a.Combined(Stresses{Axial: 10, BendX: 80, BendY: 60}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if u.Equation != "3.3.1-3" || !scalar.EqualWithinRel(u.Ratio, 0.47509675592628886, 1e-9) {
		t.Errorf("got %+v", u)
	}
}

// TestValidate verifies rejected tubes.
func TestValidate(t *testing.T) {
	t.Parallel()
	for _, tube := range []Tube{{D: 0, T: 1}, {D: 100, T: 50}, {D: 100, T: 5, L: -1}} {
		if _, err := Calculate(tube, grade()); err == nil {
			t.Errorf("%+v: expected error", tube)
		}
	}
}
