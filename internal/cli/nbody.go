package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/benchlab/internal/config"
	"github.com/san-kum/benchlab/internal/dynamo"
	"github.com/san-kum/benchlab/internal/metrics"
	"github.com/san-kum/benchlab/internal/physics"
	"github.com/san-kum/benchlab/internal/viz"
)

// plotSamples is the checkpoint count used when the workload sets no
// sampling interval.
const plotSamples = 100

// NewNBodyCommand prints the system energy before and after the run.
func NewNBodyCommand(w config.NBodyWorkload) *cobra.Command {
	cmd := newProgram("nbody", "five-body Jovian planet simulation", func(cmd *cobra.Command) error {
		out := cmd.OutOrStdout()

		sim := dynamo.New(physics.NewNBody())
		sim.AddObserver(dynamo.ObserverFunc(func(cp dynamo.Checkpoint) {
			if cp.Phase == dynamo.PhaseBaseline || cp.Phase == dynamo.PhaseFinal {
				fmt.Fprintf(out, "%.9f\n", cp.Energy)
			}
		}))

		_, err := sim.Run(w.SimConfig())
		return err
	})

	cmd.AddCommand(newNBodyPlotCommand(w))
	return cmd
}

func newNBodyPlotCommand(w config.NBodyWorkload) *cobra.Command {
	return &cobra.Command{
		Use:   "plot",
		Short: "plot relative energy drift over the run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := w.SampledSimConfig()
			if cfg.SampleEvery == 0 {
				cfg.SampleEvery = max(1, cfg.Steps/plotSamples)
			}

			drift := metrics.NewEnergyDrift()
			sim := dynamo.New(physics.NewNBody())
			sim.AddObserver(drift)

			res, err := sim.Run(cfg)
			if err != nil {
				return fmt.Errorf("nbody plot: %w", err)
			}

			stats := []viz.Stat{
				{Label: "steps", Value: fmt.Sprintf("%d", res.StepsTaken)},
				{Label: "dt", Value: fmt.Sprintf("%g", cfg.Dt)},
				{Label: "initial energy", Value: fmt.Sprintf("%.9f", res.InitialEnergy)},
				{Label: "final energy", Value: fmt.Sprintf("%.9f", drift.Current())},
				{Label: "max |" + drift.Name() + "|", Value: fmt.Sprintf("%.3e", drift.Value())},
			}
			chart := viz.DriftChart(drift.Series(), viz.DefaultWidth, viz.DefaultHeight)

			fmt.Fprint(cmd.OutOrStdout(), viz.Report("nbody energy drift", stats, chart))
			return nil
		},
	}
}
