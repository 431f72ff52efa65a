package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/unit"

	"github.com/alexiusacademia/gosteel/internal/batch"
	"github.com/alexiusacademia/gosteel/internal/beam"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/material"
	"github.com/alexiusacademia/gosteel/internal/report"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/units"
)

var (
	// Member inputs
	checkSection string
	checkGrade   string
	checkFy      float64
	checkLx      float64
	checkLy      float64
	checkLz      float64
	checkKx      float64
	checkKy      float64
	checkKz      float64
	checkCb      float64

	// Required strengths (kN, kN-m)
	checkAxial   float64
	checkMx      float64
	checkMy      float64
	checkShear   float64
	checkTorsion float64

	// Output options
	checkSketch bool
	checkPDF    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a steel member under combined loading",
	Long: `Check a steel member against AISC 360-10 for the given required
strengths. The section is defined in a JSON file.

Every loading is evaluated so that its design strength is reported:
  - Chapter E: flexural, torsional and flexural-torsional buckling
  - Chapter F: yielding, lateral-torsional buckling, flange local buckling
  - Chapter G: web, leg and round HSS shear
  - Chapter H: torsion, H1-1 interaction and H3-6 for round HSS

Examples:
  # W130x13 beam-column, 3 m unbraced, ASD
  gosteel check --section w130.json --grade A992 --lx 3000 --axial 100 --mx 10

  # Same member in LRFD with a PDF report
  gosteel check -s w130.json -g A992 --lx 3000 --axial 150 --mx 15 -m LRFD --pdf w130.pdf`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Member flags
	checkCmd.Flags().StringVarP(&checkSection, "section", "s", "", "Path to section JSON file [required]")
	checkCmd.Flags().StringVarP(&checkGrade, "grade", "g", "A992", "Steel grade")
	checkCmd.Flags().Float64Var(&checkFy, "fy", 0, "Yield stress Fy override (MPa)")
	checkCmd.Flags().Float64Var(&checkLx, "lx", 0, "Major axis unbraced length (mm) [required]")
	checkCmd.Flags().Float64Var(&checkLy, "ly", 0, "Minor axis and LTB unbraced length (mm), default lx")
	checkCmd.Flags().Float64Var(&checkLz, "lz", 0, "Torsional unbraced length (mm), default lx")
	checkCmd.Flags().Float64Var(&checkKx, "kx", 1, "Major axis effective length factor")
	checkCmd.Flags().Float64Var(&checkKy, "ky", 1, "Minor axis effective length factor")
	checkCmd.Flags().Float64Var(&checkKz, "kz", 1, "Torsional effective length factor")
	checkCmd.Flags().Float64Var(&checkCb, "cb", 1, "Lateral-torsional buckling modification factor Cb")

	// Load flags
	checkCmd.Flags().Float64VarP(&checkAxial, "axial", "p", 0, "Required axial strength (kN)")
	checkCmd.Flags().Float64Var(&checkMx, "mx", 0, "Required major axis flexural strength (kN-m)")
	checkCmd.Flags().Float64Var(&checkMy, "my", 0, "Required minor axis flexural strength (kN-m)")
	checkCmd.Flags().Float64VarP(&checkShear, "shear", "v", 0, "Required shear strength (kN)")
	checkCmd.Flags().Float64VarP(&checkTorsion, "torsion", "t", 0, "Required torsional strength (kN-m)")

	// Output flags
	checkCmd.Flags().BoolVar(&checkSketch, "sketch", false, "Show an ASCII sketch of the section")
	checkCmd.Flags().StringVar(&checkPDF, "pdf", "", "Write a PDF report to this file")

	checkCmd.MarkFlagRequired("section")
	checkCmd.MarkFlagRequired("lx")
}

// loadMember reads the section file and material shared by check and curve
func loadMember(path, grade string, fy float64) (beam.Beam, error) {
	sec, def, err := section.LoadFromFile(path)
	if err != nil {
		return beam.Beam{}, fmt.Errorf("loading section: %w", err)
	}
	m, err := material.Grade(grade)
	if err != nil {
		return beam.Beam{}, err
	}
	if fy > 0 {
		if m, err = m.WithYield(units.Stress(fy)); err != nil {
			return beam.Beam{}, err
		}
	}
	slog.Debug("member loaded", "section", sec.Name(), "shape", sec.Kind(), "grade", m.Name, "fy", m.Fy)
	return beam.Beam{Name: sec.Name(), Section: sec, Material: m, Construction: def.Construction}, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := designConfig()
	if err != nil {
		return err
	}
	b, err := loadMember(checkSection, checkGrade, checkFy)
	if err != nil {
		return err
	}

	b.Lengths, err = beam.LengthsFrom(units.Length(checkLx), units.Length(checkLy), units.Length(checkLz))
	if err != nil {
		return err
	}
	b.K = beam.KFactors{Major: checkKx, Minor: checkKy, Torsion: checkKz}
	b.Cb = checkCb
	b.Loads, err = beam.LoadsFrom(
		unit.Force(checkAxial*unit.Kilo),
		unit.Torque(checkMx*unit.Kilo),
		unit.Torque(checkMy*unit.Kilo),
		unit.Force(checkShear*unit.Kilo),
		unit.Torque(checkTorsion*unit.Kilo),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := b.Analyze(cfg)
	if err != nil {
		return fmt.Errorf("checking member: %w", err)
	}
	slog.Info("member checked", "member", result.Name, "ratio", result.MaxRatio,
		"governing", result.Governing, "elapsed", time.Since(start))

	if checkSketch {
		fmt.Print(diagram.DrawSectionSketch(b.Section))
	}
	report.WriteMember(os.Stdout, result)

	if checkPDF != "" {
		rep := &batch.Report{
			RunID:    "single",
			Design:   cfg.Design,
			Started:  start,
			Outcomes: []batch.Outcome{{Name: result.Name, Kind: string(result.Kind), Result: result}},
		}
		if err := report.WritePDF(rep, fmt.Sprintf("Member check %s", result.Name), checkPDF); err != nil {
			return fmt.Errorf("writing PDF: %w", err)
		}
		fmt.Printf("  ✓ Report written to %s\n\n", checkPDF)
	}
	return nil
}
