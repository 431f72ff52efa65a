package batch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/unit"

	"github.com/alexiusacademia/gosteel/internal/beam"
	"github.com/alexiusacademia/gosteel/internal/material"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/units"
)

// Columns of a member sheet. The first row holds the headers, in any order
// and case. Dimensions and lengths are in mm, Fy in MPa, forces in kN and
// moments in kN·m. Tabulated properties are optional (mm², mm³, mm⁴); when
// area is given, area, ix and iy replace the geometric derivation.
//
//	name shape construction grade fy
//	depth flange_width flange_thickness web_thickness radius   (I, C)
//	long_leg short_leg thickness                               (L)
//	diameter thickness                                         (PIPE)
//	area ix iy sx sy zx zy j                                   (I, C, PIPE)
//	lx ly lz kx ky kz cb
//	axial moment_major moment_minor shear torsion
var Columns = []string{
	"name", "shape", "construction", "grade", "fy",
	"depth", "flange_width", "flange_thickness", "web_thickness", "radius",
	"long_leg", "short_leg", "thickness", "diameter",
	"area", "ix", "iy", "sx", "sy", "zx", "zy", "j",
	"lx", "ly", "lz", "kx", "ky", "kz", "cb",
	"axial", "moment_major", "moment_minor", "shear", "torsion",
}

// row gives access to the cells of one sheet row by header name
type row struct {
	cells  []string
	header map[string]int
}

func (r row) text(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// number returns 0 for an empty cell
func (r row) number(col string) (float64, error) {
	s := r.text(col)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not a number", col, s)
	}
	return v, nil
}

// numbers reads several columns, stopping at the first bad cell
func (r row) numbers(cols ...string) ([]float64, error) {
	out := make([]float64, len(cols))
	for i, c := range cols {
		v, err := r.number(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// LoadXLSX reads members from the first sheet of a workbook. A row that
// cannot be parsed becomes a member carrying its error.
func LoadXLSX(path string) ([]Member, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: sheet %q has no members", path, sheet)
	}

	header := map[string]int{}
	for i, h := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"shape", "lx"} {
		if _, ok := header[required]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, required)
		}
	}

	var members []Member
	for i := 1; i < len(rows); i++ {
		r := row{cells: rows[i], header: header}
		if r.text("shape") == "" {
			continue
		}
		m := r.member()
		if m.Beam.Name == "" {
			m.Beam.Name = fmt.Sprintf("row %d", i+1)
		}
		if m.Err != nil {
			m.Err = fmt.Errorf("row %d: %w", i+1, m.Err)
		}
		members = append(members, m)
	}
	return members, nil
}

func (r row) member() Member {
	m := Member{Beam: beam.Beam{Name: r.text("name")}}

	sec, err := r.section()
	if err != nil {
		m.Err = err
		return m
	}
	m.Beam.Section = sec
	if m.Beam.Name == "" {
		m.Beam.Name = sec.Name()
	}
	if err := m.Beam.Construction.UnmarshalText([]byte(r.text("construction"))); err != nil {
		m.Err = err
		return m
	}

	if m.Beam.Material, m.Err = r.material(); m.Err != nil {
		return m
	}

	v, err := r.numbers("lx", "ly", "lz", "kx", "ky", "kz", "cb")
	if err != nil {
		m.Err = err
		return m
	}
	lengths, err := beam.LengthsFrom(units.Length(v[0]), units.Length(v[1]), units.Length(v[2]))
	if err != nil {
		m.Err = err
		return m
	}
	m.Beam.Lengths = lengths
	m.Beam.K = beam.KFactors{Major: v[3], Minor: v[4], Torsion: v[5]}
	m.Beam.Cb = v[6]

	f, err := r.numbers("axial", "moment_major", "moment_minor", "shear", "torsion")
	if err != nil {
		m.Err = err
		return m
	}
	m.Beam.Loads, m.Err = beam.LoadsFrom(
		unit.Force(f[0]*unit.Kilo),
		unit.Torque(f[1]*unit.Kilo),
		unit.Torque(f[2]*unit.Kilo),
		unit.Force(f[3]*unit.Kilo),
		unit.Torque(f[4]*unit.Kilo),
	)
	return m
}

func (r row) section() (section.Section, error) {
	name := r.text("name")
	switch section.Kind(strings.ToUpper(r.text("shape"))) {
	case section.KindI, "W", "H", "HP", section.KindChannel:
		v, err := r.numbers("depth", "flange_width", "flange_thickness", "web_thickness", "radius")
		if err != nil {
			return nil, err
		}
		d := section.FlangedDimensions{
			TotalHeight:     v[0],
			FlangeWidth:     v[1],
			FlangeThickness: v[2],
			WebThickness:    v[3],
			Radius:          v[4],
		}
		props, err := r.properties()
		if err != nil {
			return nil, err
		}
		channel := strings.EqualFold(r.text("shape"), string(section.KindChannel))
		switch {
		case channel && props != nil:
			return section.NewChannelWithProperties(name, d, *props)
		case channel:
			return section.NewChannel(name, d)
		case props != nil:
			return section.NewISectionWithProperties(name, d, *props)
		}
		return section.NewISection(name, d)
	case section.KindAngle:
		v, err := r.numbers("long_leg", "short_leg", "thickness")
		if err != nil {
			return nil, err
		}
		return section.NewAngle(name, section.AngleDimensions{LongLeg: v[0], ShortLeg: v[1], Thickness: v[2]})
	case section.KindPipe, "CHS", "O":
		v, err := r.numbers("diameter", "thickness")
		if err != nil {
			return nil, err
		}
		d := section.PipeDimensions{OuterDiameter: v[0], Thickness: v[1]}
		props, err := r.properties()
		if err != nil {
			return nil, err
		}
		if props != nil {
			return section.NewPipeWithProperties(name, d, *props)
		}
		return section.NewPipe(name, d)
	default:
		return nil, fmt.Errorf("unknown shape %q", r.text("shape"))
	}
}

// properties reads the optional tabulated properties, nil when the row has
// no area
func (r row) properties() (*section.Properties, error) {
	v, err := r.numbers("area", "ix", "iy", "sx", "sy", "zx", "zy", "j")
	if err != nil {
		return nil, err
	}
	if v[0] == 0 {
		return nil, nil
	}
	q := section.Quantities{Area: units.Area(v[0])}
	for _, f := range []struct {
		dst *unit.Uniter
		v   float64
		as  func(float64) *unit.Unit
	}{
		{&q.Ix, v[1], units.Inertia},
		{&q.Iy, v[2], units.Inertia},
		{&q.Sx, v[3], units.Modulus},
		{&q.Sy, v[4], units.Modulus},
		{&q.Zx, v[5], units.Modulus},
		{&q.Zy, v[6], units.Modulus},
		{&q.J, v[7], units.Inertia},
	} {
		if f.v != 0 {
			*f.dst = f.as(f.v)
		}
	}
	p, err := q.Properties()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// material reads the grade and an optional Fy override
func (r row) material() (material.Material, error) {
	fy, err := r.number("fy")
	if err != nil {
		return material.Material{}, err
	}
	grade := r.text("grade")
	if grade == "" {
		if fy == 0 {
			return material.Material{}, fmt.Errorf("no grade or fy given")
		}
		return material.New(fmt.Sprintf("Fy %g", fy), fy, 0), nil
	}
	m, err := material.Grade(grade)
	if err != nil || fy == 0 {
		return m, err
	}
	return m.WithYield(units.Stress(fy))
}

// Result sheet headers
var resultHeaders = []string{
	"Member", "Shape", "Combination", "Status",
	"Pu (kN)", "Pc (kN)", "Mux (kN·m)", "Mcx (kN·m)", "Muy (kN·m)", "Mcy (kN·m)",
	"Vu (kN)", "Vc (kN)", "Tu (kN·m)", "Tc (kN·m)",
	"Equation", "Ratio", "Governing", "Message",
}

// WriteXLSX writes one row per outcome to the "Results" sheet and the run
// metadata to a "Run" sheet
func WriteXLSX(rep *Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	header := make([]interface{}, len(resultHeaders))
	for i, h := range resultHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(resultHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}

	for i, o := range rep.Outcomes {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := o.cells()
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheet, "A", "A", 16); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "R", "R", 60); err != nil {
		return err
	}

	if _, err := f.NewSheet("Run"); err != nil {
		return err
	}
	meta := [][]interface{}{
		{"Run ID", rep.RunID},
		{"Design", rep.Design.String()},
		{"Started", rep.Started.Format("2006-01-02 15:04:05")},
		{"Members", len(rep.Outcomes)},
		{"Failed", rep.Failed()},
		{"Not adequate", rep.Inadequate()},
	}
	for i, m := range meta {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Run", cell, &m); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// cells renders an outcome as a result sheet row
func (o Outcome) cells() []interface{} {
	if o.Err != nil {
		return []interface{}{o.Name, o.Kind, o.Combination, "ERROR",
			nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, o.Err.Error()}
	}
	r := o.Result
	status := "OK"
	if !r.IsAdequate {
		status = "NG"
	}
	values := []interface{}{o.Name, string(r.Kind), o.Combination, status}
	for _, l := range beam.Loadings {
		required, available := r.Quantities(l)
		values = append(values, kilo(required), kilo(available))
	}
	return append(values, string(r.Interaction.Equation), round(r.MaxRatio), r.Governing, r.Message)
}

// kilo renders a force in kN or a moment in kN·m, nil stays an empty cell
func kilo(q unit.Uniter) interface{} {
	if q == nil {
		return nil
	}
	return round(q.Unit().Value() / unit.Kilo)
}

func round(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 3, 64), 64)
	return f
}
