package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gosteel/internal/batch"
	"github.com/alexiusacademia/gosteel/internal/beam"
	"github.com/alexiusacademia/gosteel/internal/criteria"
	"github.com/alexiusacademia/gosteel/internal/version"
)

// pdfUnit spells the loading unit with core font characters
func pdfUnit(l criteria.Loading) (float64, string) {
	k, u := scale(l)
	return k, strings.ReplaceAll(u, "·", "-")
}

// WritePDF writes a summary page for the run followed by one page per
// checked member
func WritePDF(rep *batch.Report, title, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator(version.String(), true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Run: %s", rep.RunID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", rep.Started.Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Design: %s %s", version.Code, rep.Design))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Members: %d checked, %d not adequate, %d failed",
		len(rep.Outcomes)-rep.Failed(), rep.Inadequate(), rep.Failed()))
	pdf.Ln(10)

	widths := []float64{35, 14, 14, 18, 84, 15}
	header := []string{"Member", "Shape", "Combo", "Ratio", "Governing", "Status"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, o := range rep.Outcomes {
		cells := []string{o.Name, o.Kind, dash(o.Combination), "-", "", "ERROR"}
		if o.Err != nil {
			cells[4] = o.Err.Error()
		} else {
			cells[3] = fmt.Sprintf("%.3f", o.Result.MaxRatio)
			cells[4] = o.Result.Governing
			cells[5] = "OK"
			if !o.Result.IsAdequate {
				cells[5] = "NG"
			}
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, tr(clip(pdf, c, widths[i])), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	for _, o := range rep.Outcomes {
		if o.Err == nil {
			memberPage(pdf, tr, o)
		}
	}
	return pdf.OutputFileAndClose(path)
}

// clip shortens s to fit a cell of width w
func clip(pdf *gofpdf.Fpdf, s string, w float64) string {
	r := []rune(s)
	for len(r) > 3 && pdf.GetStringWidth(string(r)) > w-2 {
		r = append(r[:len(r)-4], '.', '.', '.')
	}
	return string(r)
}

func memberPage(pdf *gofpdf.Fpdf, tr func(string) string, o batch.Outcome) {
	r := o.Result
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 9, tr(fmt.Sprintf("Member %s (%s)", r.Name, r.Kind)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Material: %s, Fy = %.0f MPa, E = %.0f MPa", r.Material.Name, r.Material.Fy, r.Material.E),
		fmt.Sprintf("Unbraced lengths Lx, Ly, Lz = %.0f, %.0f, %.0f mm; Kx, Ky, Kz = %.2f, %.2f, %.2f; Cb = %.2f",
			r.Lengths.Major, r.Lengths.Minor, r.Lengths.Torsion, r.K.Major, r.K.Minor, r.K.Torsion, r.Cb),
		fmt.Sprintf("A = %.1f mm2, Ix = %.4g mm4, Iy = %.4g mm4, J = %.4g mm4", r.Properties.Area,
			r.Properties.Ix, r.Properties.Iy, r.Properties.J),
	}
	if o.Combination != "" {
		lines = append(lines, fmt.Sprintf("Governing load combination: %s", o.Combination))
	}
	for _, l := range lines {
		pdf.Cell(0, 6, tr(l))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	label := "Rn/Omega"
	if r.Design == criteria.LRFD {
		label = "phi Rn"
	}
	widths := []float64{38, 62, 24, 24, 24, 18}
	header := []string{"Loading", "Governing limit state", "Rn", label, "Required", "Ratio"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, l := range beam.Loadings {
		ds := r.Strength(l)
		k, u := pdfUnit(l)
		row := []string{string(l), "not available", "-", "-", fmt.Sprintf("%.2f %s", r.Required(l)/k, u), "-"}
		if ds != nil {
			row[1] = ds.Governing
			row[2] = fmt.Sprintf("%.2f %s", ds.Nominal/k, u)
			row[3] = fmt.Sprintf("%.2f %s", ds.Design(r.Design)/k, u)
			row[5] = fmt.Sprintf("%.3f", r.Ratios[l])
		}
		for i, c := range row {
			pdf.CellFormat(widths[i], 6, tr(clip(pdf, c, widths[i])), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Limit states")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	for _, l := range beam.Loadings {
		ds := r.Strength(l)
		if ds == nil {
			continue
		}
		k, u := pdfUnit(l)
		for _, c := range ds.Candidates {
			line := fmt.Sprintf("%s: %s, Rn = %.2f %s", l, c.Name(), c.NominalStrength()/k, u)
			if d := details(c); d != "" {
				line += " (" + d + ")"
			}
			pdf.Cell(0, 5, tr(line))
			pdf.Ln(5)
		}
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, tr(interactionLine(r)))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, tr(r.Message), "", "L", false)
}

func interactionLine(r *beam.Result) string {
	s := fmt.Sprintf("Interaction %s = %.3f", r.Interaction.Equation, r.Interaction.Ratio)
	if r.Combined != nil {
		s += fmt.Sprintf(", %s = %.3f", r.Combined.Equation, r.Combined.Ratio)
	}
	return s
}
