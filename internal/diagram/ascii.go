package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gosteel/internal/section"
)

// DrawASCIICurve plots every series of c in the terminal
func DrawASCIICurve(c Curve, height int) string {
	if c.Empty() {
		return ""
	}
	var data [][]float64
	var legends []string
	for _, s := range c.Series {
		if len(s.Y) == 0 {
			continue
		}
		data = append(data, s.Y)
		legends = append(legends, s.Name)
	}
	first := c.Series[0]
	caption := fmt.Sprintf("%s  [%s vs %s, %.2f to %.2f]",
		c.Title, c.YLabel, c.XLabel, first.X[0], first.X[len(first.X)-1])

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.LowerBound(0),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")
	return sb.String()
}

// DrawSectionSketch creates an ASCII sketch of a section with its main
// dimensions
func DrawSectionSketch(sec section.Section) string {
	var sb strings.Builder
	sb.WriteString("\n")

	switch s := sec.(type) {
	case *section.ISection:
		d := s.Dims
		sb.WriteString(fmt.Sprintf("       ◄─── bf = %.1f ───►\n", d.FlangeWidth))
		sb.WriteString("      ┌───────────────────┐ ▲\n")
		sb.WriteString(fmt.Sprintf("      └───────┐   ┌───────┘ │ tf = %.1f\n", d.FlangeThickness))
		sb.WriteString("              │   │         │\n")
		sb.WriteString(fmt.Sprintf("              │   │ tw = %.1f│ d = %.1f\n", d.WebThickness, d.TotalHeight))
		sb.WriteString(fmt.Sprintf("              │   │         │ h = %.1f\n", d.WebHeight))
		sb.WriteString("      ┌───────┘   └───────┐ │\n")
		sb.WriteString("      └───────────────────┘ ▼\n")
	case *section.Channel:
		d := s.Dims
		sb.WriteString(fmt.Sprintf("      ◄── bf = %.1f ──►\n", d.FlangeWidth))
		sb.WriteString("      ┌─────────────────┐ ▲\n")
		sb.WriteString(fmt.Sprintf("      │   ┌─────────────┘ │ tf = %.1f\n", d.FlangeThickness))
		sb.WriteString(fmt.Sprintf("      │   │ tw = %.1f     │ d = %.1f\n", d.WebThickness, d.TotalHeight))
		sb.WriteString("      │   └─────────────┐ │\n")
		sb.WriteString("      └─────────────────┘ ▼\n")
	case *section.Angle:
		d := s.Dims
		sb.WriteString("      ┌───┐ ▲\n")
		sb.WriteString(fmt.Sprintf("      │   │ │ %.1f\n", d.LongLeg))
		sb.WriteString("      │   └───────────┐\n")
		sb.WriteString("      └───────────────┘ ▼\n")
		sb.WriteString(fmt.Sprintf("      ◄──── %.1f ────► t = %.1f\n", d.ShortLeg, d.Thickness))
	case *section.Pipe:
		d := s.Dims
		sb.WriteString("         ╭───────╮\n")
		sb.WriteString("       ╱   ╭───╮   ╲\n")
		sb.WriteString(fmt.Sprintf("      │    │   │    │  D = %.1f\n", d.OuterDiameter))
		sb.WriteString(fmt.Sprintf("       ╲   ╰───╯   ╱   t = %.2f\n", d.Thickness))
		sb.WriteString("         ╰───────╯\n")
	default:
		sb.WriteString(fmt.Sprintf("  (no sketch for %s)\n", sec.Kind()))
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	width += 4

	border := strings.Repeat("═", width)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, width-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, width-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))
	return sb.String()
}

// pad right-pads s to n runes
func pad(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return s + strings.Repeat(" ", n-c)
	}
	return s
}
