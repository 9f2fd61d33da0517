package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriftChart(t *testing.T) {
	chart := DriftChart([]float64{0, 1e-6, -2e-6, 3e-6}, 40, 5)
	assert.Contains(t, chart, "relative energy drift (ppm)")
	assert.Contains(t, chart, "3.000")
}

func TestDriftChartEmpty(t *testing.T) {
	assert.Contains(t, DriftChart(nil, 40, 5), "no samples")
}

func TestStatBlockAlignsLabels(t *testing.T) {
	out := StatBlock([]Stat{{"steps", "10"}, {"max drift", "1e-6"}})
	assert.Contains(t, out, "steps")
	assert.Contains(t, out, "max drift")
	assert.Contains(t, out, "1e-6")
}

func TestReport(t *testing.T) {
	out := Report("nbody", []Stat{{"steps", "1000"}}, "CHART")
	assert.Contains(t, out, "nbody")
	assert.Contains(t, out, "1000")
	assert.Contains(t, out, "CHART")
}
