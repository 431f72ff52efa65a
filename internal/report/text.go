// Package report renders member checks as plain text and PDF. Each limit
// state is listed with the stresses and limiting lengths it was derived from.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/gosteel/internal/batch"
	"github.com/alexiusacademia/gosteel/internal/beam"
	"github.com/alexiusacademia/gosteel/internal/criteria"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/strength"
	"github.com/alexiusacademia/gosteel/internal/version"
)

const (
	rule    = "═══════════════════════════════════════════════════════════════"
	divider = "───────────────────────────────────────────────────────────────"
)

// scale converts a core value of a loading to kN or kN·m
func scale(l criteria.Loading) (float64, string) {
	switch l {
	case criteria.Compression, criteria.Shear:
		return 1e3, "kN"
	default:
		return 1e6, "kN·m"
	}
}

// details lists the intermediate values of a limit state
func details(c criteria.Strength) string {
	switch s := c.(type) {
	case *strength.FlexuralBuckling:
		return fmt.Sprintf("KL/r = %.1f, Fe = %.1f MPa, Fcr = %.1f MPa", s.Slenderness, s.Fe, s.Fcr)
	case *strength.TorsionalBuckling:
		return fmt.Sprintf("Fe = %.1f MPa, Fcr = %.1f MPa", s.Fe, s.Fcr)
	case *strength.FlexuralTorsionalBuckling:
		return fmt.Sprintf("Fex = %.1f, Fez = %.1f, H = %.3f, Fe = %.1f, Fcr = %.1f MPa",
			s.Fex, s.Fez, s.H, s.Fe, s.Fcr)
	case *strength.LateralTorsionalBuckling:
		return fmt.Sprintf("Lb = %.0f, Lp = %.0f, Lr = %.0f mm, %s", s.Lb, s.Lp, s.Lr, s.Zone)
	case *strength.PlateShear:
		return fmt.Sprintf("h/t = %.1f, Cv = %.3f, Aw = %.0f mm²", s.Ratio, s.Cv, s.Aw)
	case *strength.RoundShear:
		return fmt.Sprintf("Lv = %.0f mm, Fcr = %.1f MPa", s.Lv, s.Fcr)
	case *strength.RoundTorsion:
		return fmt.Sprintf("C = %.4g mm³, Fcr = %.1f MPa", s.C, s.Fcr)
	case *strength.MinorYieldMoment:
		if s.Capped {
			return "1.6·Fy·Sy governs"
		}
	}
	return ""
}

func heading(w io.Writer, title string) *tabwriter.Writer {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, divider)
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// WriteMember writes the full check of one member
func WriteMember(w io.Writer, r *beam.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "     STEEL MEMBER CHECK - %s (%s)\n", version.Code, r.Design)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	tw := heading(w, "INPUT DATA:")
	fmt.Fprintf(tw, "  Member:\t%s\n", r.Name)
	fmt.Fprintf(tw, "  Shape:\t%s\n", r.Kind)
	fmt.Fprintf(tw, "  Material:\t%s (Fy = %.0f MPa, E = %.0f MPa, G = %.0f MPa)\n",
		r.Material.Name, r.Material.Fy, r.Material.E, r.Material.G)
	fmt.Fprintf(tw, "  Unbraced lengths (Lx, Ly, Lz):\t%.0f, %.0f, %.0f mm\n",
		r.Lengths.Major, r.Lengths.Minor, r.Lengths.Torsion)
	fmt.Fprintf(tw, "  K factors (Kx, Ky, Kz):\t%.2f, %.2f, %.2f\n", r.K.Major, r.K.Minor, r.K.Torsion)
	fmt.Fprintf(tw, "  Cb:\t%.2f\n", r.Cb)
	tw.Flush()
	fmt.Fprintln(w)

	p := r.Properties
	tw = heading(w, "SECTION PROPERTIES:")
	fmt.Fprintf(tw, "  A:\t%.1f mm²\n", p.Area)
	fmt.Fprintf(tw, "  Ix, Iy:\t%.4g, %.4g mm⁴\n", p.Ix, p.Iy)
	fmt.Fprintf(tw, "  Sx, Sy:\t%.4g, %.4g mm³\n", p.Sx, p.Sy)
	fmt.Fprintf(tw, "  Zx, Zy:\t%.4g, %.4g mm³\n", p.Zx, p.Zy)
	fmt.Fprintf(tw, "  rx, ry:\t%.2f, %.2f mm\n", p.Rx, p.Ry)
	fmt.Fprintf(tw, "  J, Cw:\t%.4g mm⁴, %.4g mm⁶\n", p.J, p.Cw)
	tw.Flush()
	fmt.Fprintln(w)

	tw = heading(w, "SLENDERNESS (Table B4.1):")
	fmt.Fprintf(tw, "  Element\tRatio\tAxial (λr)\tFlexure (λp, λr)\n")
	for _, e := range r.Slenderness.Elements() {
		fmt.Fprintf(tw, "  %s\t%.2f\t%s (%.2f)\t%s (%.2f, %.2f)\n", e.Name, e.Ratio,
			e.Axial.Class, e.Axial.Limit, e.Flexure.Class, e.Flexure.CompactLimit, e.Flexure.SlenderLimit)
	}
	tw.Flush()
	fmt.Fprintln(w)

	label := "Rn/Ω"
	if r.Design == criteria.LRFD {
		label = "φRn"
	}
	tw = heading(w, "DESIGN STRENGTHS:")
	for _, l := range beam.Loadings {
		k, u := scale(l)
		ds := r.Strength(l)
		if ds == nil {
			fmt.Fprintf(tw, "  %s:\tnot available (%s)\n", l, r.Unavailable[l])
			continue
		}
		fmt.Fprintf(tw, "  %s:\t%s = %.2f %s\tgoverned by %s\n", l, label, ds.Design(r.Design)/k, u, ds.Governing)
		for _, c := range ds.Candidates {
			fmt.Fprintf(tw, "    %s\tRn = %.2f %s\t%s\n", c.Name(), c.NominalStrength()/k, u, details(c))
		}
	}
	tw.Flush()
	fmt.Fprintln(w)

	tw = heading(w, "UTILIZATION:")
	for _, l := range beam.Loadings {
		if _, ok := r.Ratios[l]; !ok {
			continue
		}
		k, u := scale(l)
		fmt.Fprintf(tw, "  %s:\t%.2f %s\t%.3f\n", l, r.Required(l)/k, u, r.Ratios[l])
	}
	fmt.Fprintf(tw, "  Interaction (%s):\t\t%.3f\n", r.Interaction.Equation, r.Interaction.Ratio)
	if r.Combined != nil {
		fmt.Fprintf(tw, "  Interaction (%s):\t\t%.3f\n", r.Combined.Equation, r.Combined.Ratio)
	}
	tw.Flush()
	fmt.Fprintln(w)

	status := "ADEQUATE ✓"
	if !r.IsAdequate {
		status = "NOT ADEQUATE ✗"
	}
	fmt.Fprint(w, diagram.DrawSummaryBox(status, []string{
		fmt.Sprintf("Governing: %s", r.Governing),
		fmt.Sprintf("Ratio = %.3f", r.MaxRatio),
	}))
	fmt.Fprintln(w)
}

// WriteBatch writes one line per member and the run totals
func WriteBatch(w io.Writer, rep *batch.Report) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "     BATCH CHECK - %s (%s)\n", version.Code, rep.Design)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  Run %s, %d members in %s\n", rep.RunID, len(rep.Outcomes), rep.Duration.Round(time.Millisecond))
	fmt.Fprintln(w)

	tw := heading(w, "RESULTS:")
	fmt.Fprintf(tw, "  Member\tShape\tCombo\tRatio\tGoverning\tStatus\n")
	for _, o := range rep.Outcomes {
		if o.Err != nil {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t-\t-\tERROR: %v\n", o.Name, o.Kind, dash(o.Combination), o.Err)
			continue
		}
		status := "OK"
		if !o.Result.IsAdequate {
			status = "NG"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%.3f\t%s\t%s\n",
			o.Name, o.Kind, dash(o.Combination), o.Result.MaxRatio, o.Result.Governing, status)
	}
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprint(w, diagram.DrawSummaryBox("BATCH SUMMARY", []string{
		fmt.Sprintf("Checked:      %d", len(rep.Outcomes)-rep.Failed()),
		fmt.Sprintf("Not adequate: %d", rep.Inadequate()),
		fmt.Sprintf("Failed:       %d", rep.Failed()),
	}))
	fmt.Fprintln(w)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
