package diagram

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/beam"
	"github.com/alexiusacademia/gosteel/internal/criteria"
	"github.com/alexiusacademia/gosteel/internal/material"
	"github.com/alexiusacademia/gosteel/internal/section"
)

func member(t *testing.T) beam.Beam {
	t.Helper()
	s, err := section.NewISection("I200", section.FlangedDimensions{
		FlangeWidth: 100, FlangeThickness: 8, WebThickness: 5.6, TotalHeight: 200,
	})
	if err != nil {
		t.Fatal(err)
	}
	return beam.Beam{Section: s, Material: material.New("S355", 355, 490)}
}

// TestCapacityCurvesDecrease verifies sampling and that both curves fall
// with length.
func TestCapacityCurvesDecrease(t *testing.T) {
	t.Parallel()
	comp, flex, err := CapacityCurves(member(t), criteria.Default(), 500, 8000, 16)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []Curve{comp, flex} {
		if len(c.Series) != 2 || len(c.Series[0].X) != 16 {
			t.Fatalf("%s: series = %d, points = %d", c.Title, len(c.Series), len(c.Series[0].X))
		}
		y := c.Series[0].Y
		for i := 1; i < len(y); i++ {
			if y[i] > y[i-1]+1e-9 {
				t.Errorf("%s: rises at %d: %v > %v", c.Title, i, y[i], y[i-1])
			}
		}
		if c.Series[1].Y[0] >= c.Series[0].Y[0] {
			t.Errorf("%s: ASD design strength should be below nominal", c.Title)
		}
	}
}

// TestCapacityCurvesInvalid verifies rejected sampling ranges.
func TestCapacityCurvesInvalid(t *testing.T) {
	t.Parallel()
	if _, _, err := CapacityCurves(member(t), criteria.Default(), 1000, 500, 10); err == nil {
		t.Error("expected error for reversed range")
	}
	if _, _, err := CapacityCurves(member(t), criteria.Default(), 0, 500, 1); err == nil {
		t.Error("expected error for one step")
	}
}

// TestCapacityCurvesAngle verifies angles have no capacity curves.
func TestCapacityCurvesAngle(t *testing.T) {
	t.Parallel()
	a, err := section.NewAngle("L75", section.AngleDimensions{LongLeg: 75, Thickness: 8})
	if err != nil {
		t.Fatal(err)
	}
	b := beam.Beam{Section: a, Material: material.New("A36", 250, 400)}
	if _, _, err := CapacityCurves(b, criteria.Default(), 500, 3000, 5); !errors.Is(err, aisc.ErrNotImplemented) {
		t.Errorf("err = %v, want ErrNotImplemented", err)
	}
}

// TestDrawASCIICurve verifies the caption and legends are rendered.
func TestDrawASCIICurve(t *testing.T) {
	t.Parallel()
	comp, _, err := CapacityCurves(member(t), criteria.Default(), 500, 6000, 12)
	if err != nil {
		t.Fatal(err)
	}
	out := DrawASCIICurve(comp, 10)
	if !strings.Contains(out, "I200 compression capacity") {
		t.Errorf("missing caption:\n%s", out)
	}
	if !strings.Contains(out, "Pn (ASD)") {
		t.Errorf("missing legend:\n%s", out)
	}
	if DrawASCIICurve(Curve{}, 10) != "" {
		t.Error("empty curve should draw nothing")
	}
}

// TestOutline verifies the outline rings of every shape.
func TestOutline(t *testing.T) {
	t.Parallel()
	i, _ := section.NewISection("I", section.FlangedDimensions{FlangeWidth: 100, FlangeThickness: 8, WebThickness: 6, TotalHeight: 200})
	c, _ := section.NewChannel("C", section.FlangedDimensions{FlangeWidth: 50, FlangeThickness: 8, WebThickness: 6, TotalHeight: 150})
	a, _ := section.NewAngle("L", section.AngleDimensions{LongLeg: 100, ShortLeg: 75, Thickness: 8})
	p, _ := section.NewPipe("O", section.PipeDimensions{OuterDiameter: 168.3, Thickness: 7.1})
	tests := []struct {
		sec    section.Section
		rings  int
		points int
		width  float64
	}{
		{i, 1, 12, 100},
		{c, 1, 8, 50},
		{a, 1, 6, 75},
		{p, 2, 72, 168.3},
	}
	for _, tt := range tests {
		rings, err := Outline(tt.sec)
		if err != nil {
			t.Fatal(err)
		}
		if len(rings) != tt.rings || len(rings[0]) != tt.points {
			t.Errorf("%s: %d rings, %d points", tt.sec.Name(), len(rings), len(rings[0]))
		}
		if w := width(rings); w < tt.width-1e-9 || w > tt.width+1e-9 {
			t.Errorf("%s: width = %v, want %v", tt.sec.Name(), w, tt.width)
		}
	}
}

// TestExport writes curve and outline images.
func TestExport(t *testing.T) {
	t.Parallel()
	b := member(t)
	comp, _, err := CapacityCurves(b, criteria.Default(), 500, 6000, 8)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	curve := filepath.Join(dir, "out", "compression.svg")
	if err := ExportCurve(comp, curve); err != nil {
		t.Fatal(err)
	}
	outline := filepath.Join(dir, "section")
	if err := ExportSectionOutline(b.Section, outline); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{curve, outline + ".png"} {
		if st, err := os.Stat(f); err != nil || st.Size() == 0 {
			t.Errorf("%s not written: %v", f, err)
		}
	}
}

// TestDrawSummaryBox verifies the box is as wide as its longest line.
func TestDrawSummaryBox(t *testing.T) {
	t.Parallel()
	body := []string{"φPn = 422.3 kN", "ratio = 0.87"}
	out := DrawSummaryBox("RESULT", body)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, title, separator, body, bottom border
	if want := len(body) + 4; len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}
	want := len([]rune(lines[0]))
	for _, l := range lines {
		if len([]rune(l)) != want {
			t.Errorf("ragged line %q", l)
		}
	}
}
