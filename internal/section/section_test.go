package section

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/unit"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/units"
)

const tol = 1e-9

// bf 100, tf 8, tw 5.6, d 200, no fillet
func plateGirder() FlangedDimensions {
	return FlangedDimensions{FlangeWidth: 100, FlangeThickness: 8, WebThickness: 5.6, TotalHeight: 200}
}

func TestISectionProperties(t *testing.T) {
	t.Parallel()
	s, err := NewISection("I200", plateGirder())
	if err != nil {
		t.Fatalf("NewISection: %v", err)
	}
	if s.Dims.WebHeight != 184 {
		t.Errorf("derived web height = %v, want 184", s.Dims.WebHeight)
	}
	p := s.Properties()
	tests := []struct {
		name      string
		got, want float64
	}{
		{"Area", p.Area, 2630.4},
		{"Ix", p.Ix, 17661235.2},
		{"Iy", p.Iy, 1336026.112},
		{"Sx", p.Sx, 176612.352},
		{"Zx", p.Zx, 200998.4},
		{"J", p.J, 45372.757333333335},
		{"Cw", p.Cw, 12312816648.192},
		{"Rx", p.Rx, 81.94069423835006},
	}
	for _, tt := range tests {
		if !scalar.EqualWithinRel(tt.got, tt.want, tol) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if p.Rz != p.Ry {
		t.Errorf("Rz = %v, want Ry = %v", p.Rz, p.Ry)
	}
	if s.MaxThickness() != 8 {
		t.Errorf("MaxThickness = %v, want 8", s.MaxThickness())
	}
}

func TestFlangedDimensionsNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mod     func(*FlangedDimensions)
		wantErr bool
	}{
		{"total height only", func(d *FlangedDimensions) {}, false},
		{"web height only", func(d *FlangedDimensions) { d.TotalHeight, d.WebHeight = 0, 184 }, false},
		{"consistent heights", func(d *FlangedDimensions) { d.WebHeight = 184 }, false},
		{"inconsistent heights", func(d *FlangedDimensions) { d.WebHeight = 150 }, true},
		{"no heights", func(d *FlangedDimensions) { d.TotalHeight = 0 }, true},
		{"zero flange width", func(d *FlangedDimensions) { d.FlangeWidth = 0 }, true},
		{"negative web thickness", func(d *FlangedDimensions) { d.WebThickness = -1 }, true},
		{"fillet fills web", func(d *FlangedDimensions) { d.Radius = 92 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := plateGirder()
			tt.mod(&d)
			got, err := d.normalize()
			if tt.wantErr {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("normalize() error = %v, want *ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalize() unexpected error: %v", err)
			}
			if got.TotalHeight != 200 || got.WebHeight != 184 {
				t.Errorf("heights = %v/%v, want 200/184", got.TotalHeight, got.WebHeight)
			}
		})
	}
}

func TestCorrectedWebHeight(t *testing.T) {
	t.Parallel()
	d := plateGirder()
	d.Radius = 10
	d, err := d.normalize()
	if err != nil {
		t.Fatal(err)
	}
	if got := d.CorrectedWebHeight(); got != 164 {
		t.Errorf("CorrectedWebHeight = %v, want 164", got)
	}
	if got := d.FlangeDistance(); got != 192 {
		t.Errorf("FlangeDistance = %v, want 192", got)
	}
}

func TestPipeProperties(t *testing.T) {
	t.Parallel()
	s, err := NewPipe("CHS168", PipeDimensions{OuterDiameter: 168.3, Thickness: 7.1})
	if err != nil {
		t.Fatalf("NewPipe: %v", err)
	}
	p := s.Properties()
	for _, tt := range []struct {
		name      string
		got, want float64
	}{
		{"Area", p.Area, 3595.6156238865856},
		{"Ix", p.Ix, 11701863.630145952},
		{"Zx", p.Zx, 184615.92766666654},
		{"J", p.J, 2 * 11701863.630145952},
	} {
		if !scalar.EqualWithinRel(tt.got, tt.want, tol) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if p.Iy != p.Ix || p.Zy != p.Zx {
		t.Errorf("pipe properties are not axisymmetric: %+v", p)
	}
	if got := s.Dims.Slenderness(); !scalar.EqualWithinRel(got, 168.3/7.1, tol) {
		t.Errorf("D/t = %v", got)
	}

	if _, err := NewPipe("bad", PipeDimensions{OuterDiameter: 100, Thickness: 50}); err == nil {
		t.Error("solid pipe accepted")
	}
}

func TestAngleProperties(t *testing.T) {
	t.Parallel()
	s, err := NewAngle("L100x10", AngleDimensions{LongLeg: 100, Thickness: 10})
	if err != nil {
		t.Fatalf("NewAngle: %v", err)
	}
	if s.Dims.ShortLeg != 100 {
		t.Errorf("short leg = %v, want 100", s.Dims.ShortLeg)
	}
	p := s.Properties()
	if p.Area != 1900 {
		t.Errorf("Area = %v, want 1900", p.Area)
	}
	if !scalar.EqualWithinRel(p.Ix, 1800043.8596491227, tol) || !scalar.EqualWithinRel(p.Iy, p.Ix, tol) {
		t.Errorf("Ix, Iy = %v, %v, want 1800043.86", p.Ix, p.Iy)
	}
	if !scalar.EqualWithinRel(p.Rz, 19.65832334721448, tol) {
		t.Errorf("Rz = %v, want 19.658", p.Rz)
	}
	if p.Rz >= p.Ry {
		t.Errorf("principal minor radius %v not below geometric %v", p.Rz, p.Ry)
	}
	if !scalar.EqualWithinRel(p.X0, -23.68421052631579, tol) {
		t.Errorf("X0 = %v", p.X0)
	}

	// Legs given in the wrong order are swapped
	s, err = NewAngle("L75x100", AngleDimensions{LongLeg: 75, ShortLeg: 100, Thickness: 8})
	if err != nil {
		t.Fatal(err)
	}
	if s.Dims.LongLeg != 100 || s.Dims.ShortLeg != 75 {
		t.Errorf("legs = %v x %v, want 100 x 75", s.Dims.LongLeg, s.Dims.ShortLeg)
	}

	if _, err := NewAngle("bad", AngleDimensions{LongLeg: 50, Thickness: 50}); err == nil {
		t.Error("thickness equal to leg accepted")
	}
}

func TestChannelCentroid(t *testing.T) {
	t.Parallel()
	s, err := NewChannel("C200", FlangedDimensions{FlangeWidth: 75, FlangeThickness: 11, WebThickness: 8, TotalHeight: 200})
	if err != nil {
		t.Fatalf("NewChannel: %v", err)
	}
	p := s.Properties()
	if !scalar.EqualWithinRel(p.Area, 8*178+2*75*11, tol) {
		t.Errorf("Area = %v", p.Area)
	}
	if p.Y0 != 0 {
		t.Errorf("Y0 = %v, want 0 for a section symmetric about x", p.Y0)
	}
	if p.X0 == 0 {
		t.Error("shear center offset not set")
	}
	if p.Ix <= p.Iy {
		t.Errorf("Ix %v not above Iy %v", p.Ix, p.Iy)
	}
}

func TestSuppliedProperties(t *testing.T) {
	t.Parallel()
	d := FlangedDimensions{FlangeWidth: 76, FlangeThickness: 7.6, WebThickness: 4, TotalHeight: 127}
	s, err := NewISectionWithProperties("W130x13", d, Properties{Area: 1650, Ix: 4762500, Iy: 560000})
	if err != nil {
		t.Fatalf("NewISectionWithProperties: %v", err)
	}
	p := s.Properties()
	if !scalar.EqualWithinRel(p.Sx, 75000, tol) {
		t.Errorf("Sx = %v, want 75000", p.Sx)
	}
	if !scalar.EqualWithinRel(p.Rx, 53.72488842579049, tol) {
		t.Errorf("Rx = %v", p.Rx)
	}
	ho := 127 - 7.6
	if !scalar.EqualWithinRel(p.Cw, 560000*ho*ho/4, tol) {
		t.Errorf("Cw = %v, want from supplied Iy", p.Cw)
	}
	if p.J == 0 || p.Zx == 0 {
		t.Errorf("J and Zx not back-derived: %+v", p)
	}

	for _, missing := range []Properties{
		{Ix: 4762500, Iy: 560000},
		{Area: 1650, Iy: 560000},
		{Area: 1650, Ix: 4762500},
	} {
		if _, err := NewISectionWithProperties("W130x13", d, missing); !errors.Is(err, aisc.ErrMissingProperty) {
			t.Errorf("%+v: error = %v, want ErrMissingProperty", missing, err)
		}
	}
}

func TestConstructionText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Construction
		wantErr bool
	}{
		{"", Rolled, false},
		{"rolled", Rolled, false},
		{"Built-Up", BuiltUp, false},
		{"builtup", BuiltUp, false},
		{"built_up", BuiltUp, false},
		{"welded", BuiltUp, false},
		{"cast", Rolled, true},
	}
	for _, tt := range tests {
		var c Construction
		err := c.UnmarshalText([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && c != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, c, tt.want)
		}
	}
	b, _ := BuiltUp.MarshalText()
	if string(b) != "built-up" {
		t.Errorf("MarshalText = %q", b)
	}
}

func TestDefinitionBuild(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		json     string
		wantKind Kind
		wantErr  bool
	}{
		{"W alias", `{"name":"W","shape":"w","dimensions":{"flange_width":100,"flange_thickness":8,"web_thickness":5.6,"total_height":200}}`, KindI, false},
		{"channel", `{"name":"C","shape":"C","dimensions":{"flange_width":75,"flange_thickness":11,"web_thickness":8,"total_height":200}}`, KindChannel, false},
		{"angle", `{"name":"L","shape":"L","dimensions":{"long_leg":100,"thickness":10}}`, KindAngle, false},
		{"CHS alias", `{"name":"P","shape":"chs","dimensions":{"outer_diameter":168.3,"thickness":7.1}}`, KindPipe, false},
		{"unknown shape", `{"name":"Z","shape":"Z","dimensions":{}}`, "", true},
		{"no dimensions", `{"name":"W","shape":"I"}`, "", true},
		{"angle with properties", `{"name":"L","shape":"L","dimensions":{"long_leg":100,"thickness":10},"properties":{"area":1900,"ix":1,"iy":1}}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var d Definition
			if err := json.Unmarshal([]byte(tt.json), &d); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			s, err := d.Build()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && s.Kind() != tt.wantKind {
				t.Errorf("Kind = %v, want %v", s.Kind(), tt.wantKind)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "w130.json")
	data := `{
  "name": "W130x13",
  "shape": "I",
  "construction": "built-up",
  "dimensions": {"flange_width": 76, "flange_thickness": 7.6, "web_thickness": 4, "total_height": 127, "radius": 7.6},
  "properties": {"area": 1650, "ix": 4762500, "iy": 560000, "j": 28540}
}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	s, def, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if s.Name() != "W130x13" || def.Construction != BuiltUp {
		t.Errorf("got %q (%v)", s.Name(), def.Construction)
	}
	if s.Properties().J != 28540 {
		t.Errorf("supplied J not kept: %v", s.Properties().J)
	}
	if s.Depth() != 127 {
		t.Errorf("Depth = %v", s.Depth())
	}

	if _, _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestQuantities(t *testing.T) {
	t.Parallel()
	// W130x13 catalogue values in cm based units
	cm := func(v float64, power int) *unit.Unit {
		return unit.New(v*math.Pow(1e-2, float64(power)), unit.Dimensions{unit.LengthDim: power})
	}
	q := Quantities{Area: cm(16.5, 2), Ix: cm(476.25, 4), Iy: cm(56, 4), Sx: cm(75, 3)}
	if q.IsZero() || !(Quantities{}).IsZero() {
		t.Fatal("IsZero mismatch")
	}
	p, err := q.Properties()
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinRel(p.Area, 1650, tol) || !scalar.EqualWithinRel(p.Ix, 4762500, tol) ||
		!scalar.EqualWithinRel(p.Iy, 560000, tol) || !scalar.EqualWithinRel(p.Sx, 75000, tol) {
		t.Errorf("properties = %+v", p)
	}
	if p.Zx != 0 || p.J != 0 {
		t.Errorf("unset quantities converted: Zx = %v, J = %v", p.Zx, p.J)
	}

	q.Iy = units.Area(5600)
	if _, err := q.Properties(); !errors.Is(err, units.ErrDimension) {
		t.Errorf("area given as Iy: err = %v, want ErrDimension", err)
	}
}
