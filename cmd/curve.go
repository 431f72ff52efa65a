package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/beam"
	"github.com/alexiusacademia/gosteel/internal/diagram"
)

var (
	curveSection string
	curveGrade   string
	curveFy      float64
	curveFrom    float64
	curveTo      float64
	curveSteps   int
	curveHeight  int
	curveKx      float64
	curveKy      float64
	curveCb      float64
	curveOutput  string
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Plot compression and flexural capacity against unbraced length",
	Long: `Sample the governing compression strength Pn and major axis
flexural strength Mn of a section over a range of unbraced lengths and plot
them in the terminal. Every unbraced length follows the sample.

Examples:
  gosteel curve --section w130.json --grade A992 --from 0.5 --to 8
  gosteel curve -s w130.json -m LRFD --output w130.png`,
	RunE: runCurve,
}

func init() {
	rootCmd.AddCommand(curveCmd)

	curveCmd.Flags().StringVarP(&curveSection, "section", "s", "", "Path to section JSON file [required]")
	curveCmd.Flags().StringVarP(&curveGrade, "grade", "g", "A992", "Steel grade")
	curveCmd.Flags().Float64Var(&curveFy, "fy", 0, "Yield stress Fy override (MPa)")
	curveCmd.Flags().Float64Var(&curveFrom, "from", 0.5, "Shortest unbraced length (m)")
	curveCmd.Flags().Float64Var(&curveTo, "to", 10, "Longest unbraced length (m)")
	curveCmd.Flags().IntVarP(&curveSteps, "steps", "n", 40, "Number of samples")
	curveCmd.Flags().IntVar(&curveHeight, "height", 15, "Plot height in lines")
	curveCmd.Flags().Float64Var(&curveKx, "kx", 1, "Major axis effective length factor")
	curveCmd.Flags().Float64Var(&curveKy, "ky", 1, "Minor axis effective length factor")
	curveCmd.Flags().Float64Var(&curveCb, "cb", 1, "Lateral-torsional buckling modification factor Cb")
	curveCmd.Flags().StringVarP(&curveOutput, "output", "o", "", "Export the curves to file (png, svg, pdf); two files are written")
	curveCmd.MarkFlagRequired("section")
}

func runCurve(cmd *cobra.Command, args []string) error {
	cfg, err := designConfig()
	if err != nil {
		return err
	}
	b, err := loadMember(curveSection, curveGrade, curveFy)
	if err != nil {
		return err
	}
	b.K = beam.KFactors{Major: curveKx, Minor: curveKy}
	b.Cb = curveCb

	compression, flexure, err := diagram.CapacityCurves(b, cfg, curveFrom*1000, curveTo*1000, curveSteps)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     CAPACITY CURVES - %s (%s)\n", b.Name, cfg.Design)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	for _, c := range []diagram.Curve{compression, flexure} {
		if !c.Empty() {
			fmt.Print(diagram.DrawASCIICurve(c, curveHeight))
		}
	}
	fmt.Println()

	if curveOutput != "" {
		ext := filepath.Ext(curveOutput)
		base := strings.TrimSuffix(curveOutput, ext)
		for _, out := range []struct {
			c      diagram.Curve
			suffix string
		}{
			{compression, "-compression"},
			{flexure, "-flexure"},
		} {
			if out.c.Empty() {
				continue
			}
			file := base + out.suffix + ext
			if err := diagram.ExportCurve(out.c, file); err != nil {
				return fmt.Errorf("exporting %s: %w", file, err)
			}
			fmt.Printf("  ✓ Curve exported to %s\n", file)
		}
		fmt.Println()
	}
	return nil
}
