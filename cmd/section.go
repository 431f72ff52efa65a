package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/slenderness"
)

var (
	sectionFile   string
	sectionGrade  string
	sectionFy     float64
	sectionSketch bool
	sectionOutput string
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Show section properties and width-to-thickness classification",
	Long: `Derive the area properties of a section defined in a JSON file and
classify its elements per AISC 360-10 Table B4.1.

Supplied properties replace the derived ones; missing radii of gyration
and section moduli are back-derived.

Example JSON file structure:
{
  "name": "W130x13",
  "shape": "I",
  "construction": "rolled",
  "dimensions": {
    "flange_width": 76, "flange_thickness": 7.6,
    "web_thickness": 4, "total_height": 127, "radius": 7.6
  },
  "properties": {"area": 1650, "ix": 4762500, "iy": 560000, "j": 28540}
}

Shapes: I (W, H, HP), C, L and PIPE (CHS).

Examples:
  gosteel section --file w130.json --grade A992
  gosteel section -f pipe.json -g A53-B --sketch --output pipe.svg`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section JSON file [required]")
	sectionCmd.Flags().StringVarP(&sectionGrade, "grade", "g", "A992", "Steel grade used for the classification")
	sectionCmd.Flags().Float64Var(&sectionFy, "fy", 0, "Yield stress Fy override (MPa)")
	sectionCmd.MarkFlagRequired("file")

	// Diagram options
	sectionCmd.Flags().BoolVar(&sectionSketch, "sketch", false, "Show an ASCII sketch of the section")
	sectionCmd.Flags().StringVarP(&sectionOutput, "output", "o", "", "Export the section outline to file (png, svg, pdf)")
}

func runSection(cmd *cobra.Command, args []string) error {
	b, err := loadMember(sectionFile, sectionGrade, sectionFy)
	if err != nil {
		return err
	}
	sec, m := b.Section, b.Material.WithDefaults()
	cls, err := slenderness.Classify(sec, m, b.Construction)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     SECTION %s (%s, %s)\n", sec.Name(), sec.Kind(), b.Construction)
	fmt.Println("═══════════════════════════════════════════════════════════════")

	if sectionSketch {
		fmt.Print(diagram.DrawSectionSketch(sec))
	}
	fmt.Println()

	p := sec.Properties()
	fmt.Println("AREA PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.1f mm²\n", p.Area)
	fmt.Fprintf(w, "  Ix:\t%.6g mm⁴\n", p.Ix)
	fmt.Fprintf(w, "  Iy:\t%.6g mm⁴\n", p.Iy)
	fmt.Fprintf(w, "  Sx / Sy:\t%.6g / %.6g mm³\n", p.Sx, p.Sy)
	fmt.Fprintf(w, "  Zx / Zy:\t%.6g / %.6g mm³\n", p.Zx, p.Zy)
	fmt.Fprintf(w, "  rx / ry:\t%.2f / %.2f mm\n", p.Rx, p.Ry)
	if p.Rz != p.Ry {
		fmt.Fprintf(w, "  rz:\t%.2f mm\n", p.Rz)
	}
	fmt.Fprintf(w, "  J:\t%.6g mm⁴\n", p.J)
	fmt.Fprintf(w, "  Cw:\t%.6g mm⁶\n", p.Cw)
	if p.X0 != 0 || p.Y0 != 0 {
		fmt.Fprintf(w, "  Shear center (x0, y0):\t%.2f, %.2f mm\n", p.X0, p.Y0)
		fmt.Fprintf(w, "  ro:\t%.2f mm\n", p.Ro)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("CLASSIFICATION (Table B4.1, Fy = %.0f MPa):\n", m.Fy)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Element\tb/t\tCompression\tFlexure\tMinor flexure\n")
	fmt.Fprintf(w, "  ───────\t───\t───────────\t───────\t─────────────\n")
	for _, e := range cls.Elements() {
		minor := "-"
		if e.MinorFlexure != nil {
			minor = e.MinorFlexure.Class.String()
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%s (λr = %.2f)\t%s (λp = %.2f, λr = %.2f)\t%s\n",
			e.Name, e.Ratio, e.Axial.Class, e.Axial.Limit,
			e.Flexure.Class, e.Flexure.CompactLimit, e.Flexure.SlenderLimit, minor)
	}
	w.Flush()
	fmt.Println()

	if slender := cls.AxiallySlender(); len(slender) > 0 {
		fmt.Println("  ⚠ Section has slender elements for compression (Section E7 not implemented)")
		fmt.Println()
	}

	if sectionOutput != "" {
		if err := diagram.ExportSectionOutline(sec, sectionOutput); err != nil {
			return fmt.Errorf("exporting outline: %w", err)
		}
		fmt.Printf("  ✓ Outline exported to %s\n\n", sectionOutput)
	}
	return nil
}
