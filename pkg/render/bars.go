package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Palette colors successive series in Bars.
var Palette = []lipgloss.Color{"117", "212", "150", "222"}

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// Bars renders a horizontal bar chart. Every vocabulary entry gets one line
// per series; bars are scaled so that probability 1 spans width cells.
func Bars(vocab []string, width int, series ...Series) string {
	if width < 1 {
		width = 1
	}

	labelWidth := 0
	for _, label := range vocab {
		labelWidth = max(labelWidth, ansi.StringWidth(label))
	}
	labelWidth = min(labelWidth, 16)

	var b strings.Builder
	for i, label := range vocab {
		label = ansi.Truncate(label, labelWidth, "…")
		for n, s := range series {
			name := ""
			if n == 0 {
				name = label
			}
			style := lipgloss.NewStyle().Foreground(Palette[n%len(Palette)])

			var v float64
			if i < len(s.Values) {
				v = s.Values[i]
			}
			cells := int(v*float64(width) + 0.5)

			fmt.Fprintf(&b, "%s %s%s %s\n",
				labelStyle.Width(labelWidth).Render(name),
				style.Render(strings.Repeat("█", cells)),
				strings.Repeat(" ", width-min(cells, width)),
				mutedStyle.Render(fmt.Sprintf("%.3f", v)),
			)
		}
	}

	if len(series) > 1 {
		legend := make([]string, len(series))
		for n, s := range series {
			legend[n] = lipgloss.NewStyle().Foreground(Palette[n%len(Palette)]).Render("█ " + s.Name)
		}
		b.WriteString(strings.Join(legend, "  "))
		b.WriteString("\n")
	}
	return b.String()
}
