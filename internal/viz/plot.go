package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 12
)

// DriftChart plots a relative energy drift series in parts per million.
func DriftChart(series []float64, width, height int) string {
	if len(series) == 0 {
		return Subtle.Render("no samples")
	}

	ppm := make([]float64, len(series))
	for i, v := range series {
		ppm[i] = v * 1e6
	}

	return asciigraph.Plot(ppm,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption("relative energy drift (ppm) per checkpoint"),
	)
}

// Report stacks a styled title, a stat block and a chart.
func Report(title string, stats []Stat, chart string) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(title))
	b.WriteString("\n\n")
	if len(stats) > 0 {
		b.WriteString(StatBlock(stats))
		b.WriteString("\n\n")
	}
	b.WriteString(chart)
	b.WriteString("\n")
	return b.String()
}
