package metrics

import (
	"math"

	"github.com/san-kum/benchlab/internal/dynamo"
)

// EnergyDrift tracks the relative deviation of each checkpoint energy from
// the first one it observed.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	currentEnergy float64
	maxDrift      float64
	samples       int
	series        []float64
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(energy float64) {
	if e.samples == 0 {
		e.initialEnergy = energy
	}

	e.currentEnergy = energy
	e.samples++

	drift := 0.0
	if e.initialEnergy != 0 {
		drift = (energy - e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, math.Abs(drift))
	}
	e.series = append(e.series, drift)
}

// OnCheckpoint lets EnergyDrift observe a simulator directly.
func (e *EnergyDrift) OnCheckpoint(cp dynamo.Checkpoint) {
	e.Observe(cp.Energy)
}

// Value is the largest absolute relative drift seen so far.
func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

// Series returns the signed relative drift of every observation, in order.
func (e *EnergyDrift) Series() []float64 {
	out := make([]float64, len(e.series))
	copy(out, e.series)
	return out
}

func (e *EnergyDrift) Samples() int { return e.samples }

// Current is the most recently observed energy.
func (e *EnergyDrift) Current() float64 { return e.currentEnergy }

