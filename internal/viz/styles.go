package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Header with decorative line
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))
)

// Stat is one labelled value in a report block.
type Stat struct {
	Label string
	Value string
}

// StatBlock renders stats as aligned "label  value" lines.
func StatBlock(stats []Stat) string {
	width := 0
	for _, s := range stats {
		if len(s.Label) > width {
			width = len(s.Label)
		}
	}

	lines := make([]string, 0, len(stats))
	for _, s := range stats {
		label := fmt.Sprintf("%-*s", width, s.Label)
		lines = append(lines, MetricLabel.Render(label)+"  "+MetricValue.Render(s.Value))
	}
	return strings.Join(lines, "\n")
}
