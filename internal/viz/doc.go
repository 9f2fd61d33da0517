// Package viz renders diagnostic terminal charts.
//
// It is used by the nbody plot subcommand only; benchmark result lines are
// printed by the cli package and never pass through here.
//
//	chart := viz.DriftChart(drift.Series(), viz.DefaultWidth, viz.DefaultHeight)
//	fmt.Print(viz.Report("nbody energy drift", stats, chart))
package viz
