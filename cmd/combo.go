package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/criteria"
)

var (
	// Unfactored load effects (kN or kN-m)
	comboDead       float64
	comboLive       float64
	comboRoof       float64
	comboSnow       float64
	comboRain       float64
	comboWind       float64
	comboEarthquake float64

	// Options
	comboComponent string
)

var comboCmd = &cobra.Command{
	Use:   "combo",
	Short: "Calculate required strengths using ASCE 7-10 load combinations",
	Long: `Calculate the required strength of one force component for every
ASCE 7-10 load combination of the design method (Section 2.3.2 for LRFD,
Section 2.4.1 for ASD) and report the governing one.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  S  - Snow load
  R  - Rain load
  W  - Wind load
  E  - Earthquake load

Lr, S and R enter the combinations as the largest of the three.

Examples:
  # Gravity moment, LRFD
  gosteel combo --dead 50 --live 30 -m LRFD

  # Axial force with wind, ASD
  gosteel combo --component axial --dead 200 --live 120 --wind -80`,
	RunE: runCombo,
}

func init() {
	rootCmd.AddCommand(comboCmd)

	// Load effect flags
	comboCmd.Flags().Float64VarP(&comboDead, "dead", "d", 0, "Effect of dead load")
	comboCmd.Flags().Float64VarP(&comboLive, "live", "l", 0, "Effect of live load")
	comboCmd.Flags().Float64VarP(&comboRoof, "roof", "r", 0, "Effect of roof live load")
	comboCmd.Flags().Float64Var(&comboSnow, "snow", 0, "Effect of snow load")
	comboCmd.Flags().Float64VarP(&comboRain, "rain", "R", 0, "Effect of rain load")
	comboCmd.Flags().Float64VarP(&comboWind, "wind", "w", 0, "Effect of wind load")
	comboCmd.Flags().Float64VarP(&comboEarthquake, "earthquake", "e", 0, "Effect of earthquake load")

	// Options
	comboCmd.Flags().StringVarP(&comboComponent, "component", "c", "mx",
		"Force component: axial (kN), mx, my (kN-m), shear (kN) or torsion (kN-m)")
}

// component places a value in the named force component
func component(name string, v float64) (aisc.Forces, string, error) {
	switch name {
	case "axial", "p":
		return aisc.Forces{Axial: v}, "kN", nil
	case "mx", "major":
		return aisc.Forces{MomentMajor: v}, "kN-m", nil
	case "my", "minor":
		return aisc.Forces{MomentMinor: v}, "kN-m", nil
	case "shear", "v":
		return aisc.Forces{Shear: v}, "kN", nil
	case "torsion", "t":
		return aisc.Forces{Torsion: v}, "kN-m", nil
	default:
		return aisc.Forces{}, "", fmt.Errorf("unknown force component %q", name)
	}
}

// value reads back the single non-zero component
func value(f aisc.Forces) float64 {
	return f.Axial + f.MomentMajor + f.MomentMinor + f.Shear + f.Torsion
}

func runCombo(cmd *cobra.Command, args []string) error {
	cfg, err := designConfig()
	if err != nil {
		return err
	}

	var effects aisc.LoadEffects
	var unit string
	for _, in := range []struct {
		dst *aisc.Forces
		v   float64
	}{
		{&effects.Dead, comboDead},
		{&effects.Live, comboLive},
		{&effects.Roof, comboRoof},
		{&effects.Snow, comboSnow},
		{&effects.Rain, comboRain},
		{&effects.Wind, comboWind},
		{&effects.Earthquake, comboEarthquake},
	} {
		if *in.dst, unit, err = component(comboComponent, in.v); err != nil {
			return err
		}
	}

	// Check if any effect is provided
	if comboDead == 0 && comboLive == 0 && comboRoof == 0 && comboSnow == 0 &&
		comboRain == 0 && comboWind == 0 && comboEarthquake == 0 {
		return fmt.Errorf("provide at least one unfactored load effect (see 'gosteel combo --help')")
	}

	combinations := aisc.Combinations(cfg.Design.String())
	section := "Section 2.3.2"
	if cfg.Design == criteria.ASD {
		section = "Section 2.4.1"
	}

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("          ASCE 7-10 %s LOAD COMBINATIONS\n", cfg.Design)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Printf("UNFACTORED EFFECTS (%s, %s):\n", comboComponent, unit)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, e := range []struct {
		label string
		v     float64
	}{
		{"Dead Load (D)", comboDead},
		{"Live Load (L)", comboLive},
		{"Roof Live Load (Lr)", comboRoof},
		{"Snow Load (S)", comboSnow},
		{"Rain Load (R)", comboRain},
		{"Wind Load (W)", comboWind},
		{"Earthquake Load (E)", comboEarthquake},
	} {
		if e.v != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", e.label, e.v)
		}
	}
	w.Flush()
	fmt.Println()

	// Governing combination by magnitude
	var governing aisc.LoadCombination
	var required float64
	for _, lc := range combinations {
		if v := value(lc.Factored(effects)); governing.ID == "" || math.Abs(v) > math.Abs(required) {
			governing, required = lc, v
		}
	}

	fmt.Printf("LOAD COMBINATIONS (ASCE 7-10 %s):\n", section)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tRequired (%s)\n", unit)
	fmt.Fprintf(w, "  ─\t───────────\t─────────\n")
	for _, lc := range combinations {
		marker := ""
		if lc.ID == governing.ID {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", lc.ID, lc.Description, value(lc.Factored(effects)), marker)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════════╗\n")
	fmt.Printf("  ║  REQUIRED STRENGTH = %.2f %s\n", required, unit)
	fmt.Printf("  ╚═══════════════════════════════════════╝\n")
	fmt.Println()
	return nil
}
