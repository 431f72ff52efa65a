package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/api"
	"github.com/alexiusacademia/gosteel/internal/material"
	"github.com/alexiusacademia/gosteel/internal/units"
)

var (
	// Tube inputs
	apiDiameter  float64
	apiThickness float64
	apiLength    float64
	apiK         float64
	apiGrade     string
	apiFy        float64

	// Acting stresses (MPa)
	apiFa  float64
	apiFbx float64
	apiFby float64
	apiCm  float64
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Allowable stresses of a tubular member per API RP 2A-WSD",
	Long: `Calculate the allowable stresses of a cylindrical member per
API RP 2A-WSD (21st edition):
  - Section 3.2.2: Local buckling (Fxe, Fxc) and axial compression (Fa)
  - Section 3.2.3: Bending (Fb)
  - Section 3.3.1: Combined axial compression and bending

Acting stresses are optional; when given, the combined check is printed.

Examples:
  # 610 x 12.7 tube, 10 m long
  gosteel api --diameter 610 --thickness 12.7 --length 10000 --grade API-2H50

  # With acting stresses
  gosteel api -D 610 -t 12.7 -L 10000 --fa 60 --fbx 80 --fby 60`,
	RunE: runAPI,
}

func init() {
	rootCmd.AddCommand(apiCmd)

	// Geometry flags
	apiCmd.Flags().Float64VarP(&apiDiameter, "diameter", "D", 0, "Outside diameter (mm) [required]")
	apiCmd.Flags().Float64VarP(&apiThickness, "thickness", "t", 0, "Wall thickness (mm) [required]")
	apiCmd.Flags().Float64VarP(&apiLength, "length", "L", 0, "Unbraced length (mm)")
	apiCmd.Flags().Float64Var(&apiK, "k", 1, "Effective length factor")

	// Material flags
	apiCmd.Flags().StringVarP(&apiGrade, "grade", "g", "API-2H50", "Steel grade")
	apiCmd.Flags().Float64Var(&apiFy, "fy", 0, "Yield stress Fy override (MPa)")

	// Stress flags
	apiCmd.Flags().Float64Var(&apiFa, "fa", 0, "Acting axial compression stress fa (MPa)")
	apiCmd.Flags().Float64Var(&apiFbx, "fbx", 0, "Acting bending stress fbx (MPa)")
	apiCmd.Flags().Float64Var(&apiFby, "fby", 0, "Acting bending stress fby (MPa)")
	apiCmd.Flags().Float64Var(&apiCm, "cm", api.CmDefault, "Moment reduction factor Cm")

	apiCmd.MarkFlagRequired("diameter")
	apiCmd.MarkFlagRequired("thickness")
}

func runAPI(cmd *cobra.Command, args []string) error {
	m, err := material.Grade(apiGrade)
	if err != nil {
		return err
	}
	if apiFy > 0 {
		if m, err = m.WithYield(units.Stress(apiFy)); err != nil {
			return err
		}
	}
	m = m.WithDefaults()

	tube := api.Tube{D: apiDiameter, T: apiThickness, K: apiK, L: apiLength}
	a, err := api.Calculate(tube, m)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     TUBULAR MEMBER ALLOWABLE STRESSES - API RP 2A-WSD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Outside Diameter (D):\t%.1f mm\n", tube.D)
	fmt.Fprintf(w, "  Wall Thickness (t):\t%.2f mm\n", tube.T)
	fmt.Fprintf(w, "  Unbraced Length (L):\t%.0f mm\n", tube.L)
	fmt.Fprintf(w, "  Effective Length Factor (K):\t%.2f\n", tube.K)
	fmt.Fprintf(w, "  Material:\t%s (Fy = %.0f MPa, E = %.0f MPa)\n", m.Name, m.Fy, m.E)
	w.Flush()
	fmt.Println()

	fmt.Println("LOCAL BUCKLING (Section 3.2.2):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  D/t:\t%.2f\n", a.DT)
	fmt.Fprintf(w, "  Elastic local buckling (Fxe):\t%.2f MPa\n", a.Fxe)
	fmt.Fprintf(w, "  Inelastic local buckling (Fxc):\t%.2f MPa\n", a.Fxc)
	w.Flush()
	fmt.Println()

	fmt.Println("ALLOWABLE STRESSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Kl/r:\t%.2f\n", a.KLr)
	fmt.Fprintf(w, "  Cc:\t%.2f\n", a.Cc)
	fmt.Fprintf(w, "  Axial compression (Fa):\t%.2f MPa\n", a.Fa)
	fmt.Fprintf(w, "  Bending (Fb):\t%.2f MPa\n", a.Fb)
	fmt.Fprintf(w, "  F'e:\t%.2f MPa\n", a.Fe)
	w.Flush()
	fmt.Println()

	if apiFa == 0 && apiFbx == 0 && apiFby == 0 {
		return nil
	}
	u, err := a.Combined(api.Stresses{Axial: apiFa, BendX: apiFbx, BendY: apiFby}, apiCm)
	if err != nil {
		return err
	}
	status := "PASS ✓"
	if !u.Pass {
		status = "FAIL ✗"
	}
	fmt.Println("COMBINED AXIAL AND BENDING (Section 3.3.1):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Eq. %s: ratio = %.3f  %s\n", u.Equation, u.Ratio, status)
	fmt.Println()
	return nil
}
