package dynamo

import "fmt"

// System advances its own state in place by one time step.
type System interface {
	Advance(dt float64)
}

// Hamiltonian reports the total energy of the current state without
// modifying it.
type Hamiltonian interface {
	Energy() float64
}

// Model is a system whose energy can be probed between steps.
type Model interface {
	System
	Hamiltonian
}

// Phase is a stage of a simulation run.
type Phase int

const (
	PhaseInitialized Phase = iota
	PhaseBaseline
	PhaseAdvancing
	PhaseFinal
	PhaseDone
)

var phaseNames = [...]string{
	PhaseInitialized: "initialized",
	PhaseBaseline:    "baseline",
	PhaseAdvancing:   "advancing",
	PhaseFinal:       "final",
	PhaseDone:        "done",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Checkpoint is an energy probe taken at a given step.
type Checkpoint struct {
	Phase  Phase
	Step   int
	Energy float64
}

// Observer receives checkpoints synchronously, in order.
type Observer interface {
	OnCheckpoint(cp Checkpoint)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(cp Checkpoint)

func (f ObserverFunc) OnCheckpoint(cp Checkpoint) { f(cp) }

type Config struct {
	Dt    float64
	Steps int
	// SampleEvery emits an advancing checkpoint every n steps. Zero disables
	// sampling.
	SampleEvery int
}

func DefaultConfig() Config {
	return Config{
		Dt:    0.01,
		Steps: 500000,
	}
}

// Validate reports whether the config can drive a run.
func (c Config) Validate() error {
	if !(c.Dt > 0) {
		return fmt.Errorf("%w: dt must be positive, got %v", ErrParameterBounds, c.Dt)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps must be non-negative, got %d", ErrParameterBounds, c.Steps)
	}
	if c.SampleEvery < 0 {
		return fmt.Errorf("%w: sample interval must be non-negative, got %d", ErrParameterBounds, c.SampleEvery)
	}
	return nil
}

type Result struct {
	InitialEnergy float64
	FinalEnergy   float64
	// EnergyDrift is |final - initial| / |initial|.
	EnergyDrift float64
	StepsTaken  int
}
