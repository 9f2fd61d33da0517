// Package dynamo drives fixed-step simulations and records energy checkpoints.
//
// The package defines the interfaces a model implements and the run
// sequence applied to it:
//
//   - [System]: advances state in place by one step
//   - [Hamiltonian]: reports total energy without side effects
//   - [Simulator]: runs the baseline, advance and final phases
//   - [Observer]: receives [Checkpoint] values as they are taken
//
// # Run sequence
//
// A run is a linear pipeline with no failure states once it has started:
//
//	initialized -> baseline -> advancing -> final -> done
//
// The baseline checkpoint is emitted before the first step, the model is
// advanced exactly Config.Steps times, and the final checkpoint is emitted
// after the last step.
//
// # Thread Safety
//
// A Simulator owns its model exclusively for the duration of a run and is
// NOT safe for concurrent use.
package dynamo
