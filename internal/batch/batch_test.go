package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/criteria"
)

const batchJSON = `{
  "design": "LRFD",
  "members": [
    {
      "name": "B1",
      "section": {
        "name": "I200",
        "shape": "I",
        "dimensions": {"flange_width": 100, "flange_thickness": 8, "web_thickness": 5.6, "total_height": 200}
      },
      "grade": "A992",
      "lengths": {"major": 3000},
      "loads": {"axial": -100000, "moment_major": 10000000}
    },
    {
      "section": {"name": "Z1", "shape": "Z", "dimensions": {}},
      "grade": "A36",
      "lengths": {"major": 3000}
    },
    {
      "name": "L1",
      "section": {"name": "L75", "shape": "L", "dimensions": {"long_leg": 75, "thickness": 8}},
      "grade": "A36",
      "lengths": {"major": 2000},
      "loads": {"axial": -20000}
    },
    {
      "name": "B2",
      "section": {
        "name": "I200",
        "shape": "I",
        "dimensions": {"flange_width": 100, "flange_thickness": 8, "web_thickness": 5.6, "total_height": 200}
      },
      "material": {"e": 200000, "g": 77200, "fy": 355},
      "lengths": {"major": 3000},
      "effects": {"dead": {"moment_major": 5000000}, "live": {"moment_major": 5000000}}
    }
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadJSON verifies members resolve or carry their definition error.
func TestLoadJSON(t *testing.T) {
	t.Parallel()
	f, members, err := LoadJSON(writeFile(t, "batch.json", batchJSON))
	if err != nil {
		t.Fatal(err)
	}
	if f.Design == nil || *f.Design != criteria.LRFD {
		t.Errorf("design = %v, want LRFD", f.Design)
	}
	if len(members) != 4 {
		t.Fatalf("got %d members", len(members))
	}
	if members[0].Err != nil || members[0].Beam.Material.Fy != 345 {
		t.Errorf("B1: err = %v, Fy = %v", members[0].Err, members[0].Beam.Material.Fy)
	}
	if members[1].Err == nil {
		t.Error("unknown shape should fail to resolve")
	}
	if members[1].Beam.Name != "member 2" {
		t.Errorf("unnamed member = %q", members[1].Beam.Name)
	}
	if members[3].Effects == nil || members[3].Beam.Material.Fy != 355 {
		t.Errorf("B2: effects = %v, Fy = %v", members[3].Effects, members[3].Beam.Material.Fy)
	}
}

// TestRunIsolatesFailures verifies that failed members do not stop the run
// and that outcomes keep input order.
func TestRunIsolatesFailures(t *testing.T) {
	t.Parallel()
	_, members, err := LoadJSON(writeFile(t, "batch.json", batchJSON))
	if err != nil {
		t.Fatal(err)
	}
	cfg := criteria.Default()
	cfg.Design = criteria.LRFD
	rep, err := Run(context.Background(), members, cfg, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(rep.RunID); err != nil {
		t.Errorf("run ID %q: %v", rep.RunID, err)
	}
	if len(rep.Outcomes) != 4 || rep.Failed() != 2 {
		t.Fatalf("outcomes = %d, failed = %d", len(rep.Outcomes), rep.Failed())
	}
	for i, o := range rep.Outcomes {
		if o.Index != i {
			t.Errorf("outcome %d has index %d", i, o.Index)
		}
		if (o.Result == nil) == (o.Err == nil) {
			t.Errorf("outcome %d: result %v, err %v", i, o.Result, o.Err)
		}
	}
	if !errors.Is(rep.Outcomes[2].Err, aisc.ErrNotImplemented) {
		t.Errorf("angle under compression: err = %v", rep.Outcomes[2].Err)
	}
	if rep.Outcomes[0].Result.Interaction.Equation == "" {
		t.Error("B1 has no interaction result")
	}
}

// TestAnalyzeCombinations verifies the governing combination is reported.
func TestAnalyzeCombinations(t *testing.T) {
	t.Parallel()
	_, members, err := LoadJSON(writeFile(t, "batch.json", batchJSON))
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range []criteria.DesignType{criteria.ASD, criteria.LRFD} {
		cfg := criteria.Default()
		cfg.Design = d
		r, id, err := members[3].Analyze(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if id != "2" {
			t.Errorf("%s: governing combination = %q, want 2", d, id)
		}
		want := 10e6
		if d == criteria.LRFD {
			want = 14e6
		}
		if !scalar.EqualWithinRel(r.Loads.MomentMajor, want, 1e-12) {
			t.Errorf("%s: Mr = %v, want %v", d, r.Loads.MomentMajor, want)
		}
	}
}

// TestRunCancelled verifies a cancelled run marks every member.
func TestRunCancelled(t *testing.T) {
	t.Parallel()
	_, members, err := LoadJSON(writeFile(t, "batch.json", batchJSON))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := Run(ctx, members, criteria.Default(), 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if rep.Failed() != len(members) {
		t.Errorf("failed = %d, want %d", rep.Failed(), len(members))
	}
}

func memberSheet(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]interface{}{
		{"Name", "Shape", "Grade", "Depth", "Flange_Width", "Flange_Thickness", "Web_Thickness",
			"Diameter", "Thickness", "Lx", "Axial", "Moment_Major"},
		{"B1", "I", "A992", 200, 100, 8, 5.6, nil, nil, 3000, 50, 10},
		{"P1", "PIPE", "A53-B", nil, nil, nil, nil, 168.3, 7.1, 4000, 100, nil},
		{"X1", "Z", "A36", nil, nil, nil, nil, nil, nil, 1000, nil, nil},
		{"B3", "I", "A992", 200, 100, 8, "thick", nil, nil, 3000, nil, nil},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "members.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadXLSX verifies column parsing and the kN, kN·m and mm inputs.
func TestLoadXLSX(t *testing.T) {
	t.Parallel()
	members, err := LoadXLSX(memberSheet(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 4 {
		t.Fatalf("got %d members", len(members))
	}
	b := members[0].Beam
	if members[0].Err != nil {
		t.Fatal(members[0].Err)
	}
	if !scalar.EqualWithinRel(b.Loads.Axial, 50000, 1e-12) {
		t.Errorf("axial = %v N, want 50000", b.Loads.Axial)
	}
	if !scalar.EqualWithinRel(b.Loads.MomentMajor, 10e6, 1e-12) {
		t.Errorf("moment = %v N·mm, want 1e7", b.Loads.MomentMajor)
	}
	if !scalar.EqualWithinRel(b.Lengths.Major, 3000, 1e-12) {
		t.Errorf("lx = %v mm, want 3000", b.Lengths.Major)
	}
	if members[1].Err != nil || members[1].Beam.Section.Name() != "P1" {
		t.Errorf("pipe row: %v", members[1].Err)
	}
	for _, i := range []int{2, 3} {
		if members[i].Err == nil {
			t.Errorf("row %d should carry an error", i+2)
		}
	}
}

// TestLoadXLSXTabulated verifies the Fy override and tabulated property
// columns.
func TestLoadXLSXTabulated(t *testing.T) {
	t.Parallel()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]interface{}{
		{"name", "shape", "grade", "fy", "depth", "flange_width", "flange_thickness", "web_thickness",
			"area", "ix", "iy", "sx", "zx", "j", "lx"},
		{"W127", "W", "A992", 300, 127, 76, 7.6, 4, 1650, 4762500, 560000, 75000, 84000, 28540, 1000},
		{"W127b", "W", "A992", nil, 127, 76, 7.6, 4, 1650, nil, 560000, nil, nil, nil, 1000},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "tabulated.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	members, err := LoadXLSX(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 2 {
		t.Fatalf("got %d members", len(members))
	}
	m := members[0]
	if m.Err != nil {
		t.Fatal(m.Err)
	}
	if !scalar.EqualWithinRel(m.Beam.Material.Fy, 300, 1e-12) || m.Beam.Material.Name != "A992" {
		t.Errorf("material = %s Fy %v, want A992 Fy 300", m.Beam.Material.Name, m.Beam.Material.Fy)
	}
	p := m.Beam.Section.Properties()
	for name, got := range map[string][2]float64{
		"area": {p.Area, 1650}, "Ix": {p.Ix, 4762500}, "Iy": {p.Iy, 560000},
		"Sx": {p.Sx, 75000}, "Zx": {p.Zx, 84000}, "J": {p.J, 28540},
	} {
		if !scalar.EqualWithinRel(got[0], got[1], 1e-9) {
			t.Errorf("%s = %v, want %v", name, got[0], got[1])
		}
	}
	if members[1].Err == nil {
		t.Error("tabulated row without Ix accepted")
	}
}

// TestLoadXLSXMissingColumn verifies the required headers.
func TestLoadXLSXMissingColumn(t *testing.T) {
	t.Parallel()
	f := excelize.NewFile()
	defer f.Close()
	_ = f.SetSheetRow("Sheet1", "A1", &[]interface{}{"name", "shape"})
	_ = f.SetSheetRow("Sheet1", "A2", &[]interface{}{"B1", "I"})
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadXLSX(path); err == nil {
		t.Error("expected missing column error")
	}
}

// TestWriteXLSX verifies the results and run sheets.
func TestWriteXLSX(t *testing.T) {
	t.Parallel()
	members, err := LoadXLSX(memberSheet(t))
	if err != nil {
		t.Fatal(err)
	}
	rep, err := Run(context.Background(), members, criteria.Default(), 0)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "results.xlsx")
	if err := WriteXLSX(rep, path); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	tests := []struct {
		sheet, cell, want string
	}{
		{"Results", "A1", "Member"},
		{"Results", "A2", "B1"},
		{"Results", "E2", "50"},
		{"Results", "G2", "10"},
		{"Results", "B3", "PIPE"},
		{"Results", "D4", "ERROR"},
		{"Run", "B1", rep.RunID},
		{"Run", "B2", "ASD"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(tt.sheet, tt.cell)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s!%s = %q, want %q", tt.sheet, tt.cell, got, tt.want)
		}
	}
}
