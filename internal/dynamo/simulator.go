package dynamo

import (
	"log/slog"
	"math"
)

// Simulator runs a Model through the checkpoint sequence and notifies
// observers.
type Simulator struct {
	model     Model
	observers []Observer
	logger    *slog.Logger
	phase     Phase
}

// New returns a simulator for model that logs through slog.Default.
func New(model Model) *Simulator {
	return &Simulator{
		model:     model,
		observers: make([]Observer, 0),
		logger:    slog.Default(),
	}
}

// AddObserver registers o for every checkpoint of subsequent runs.
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// SetLogger replaces the logger. A nil logger is ignored.
func (s *Simulator) SetLogger(l *slog.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Phase returns the phase the last run reached.
func (s *Simulator) Phase() Phase { return s.phase }

// Run takes the baseline checkpoint, advances the model exactly cfg.Steps
// times and takes the final checkpoint. The only errors are config errors,
// reported before the model is touched.
func (s *Simulator) Run(cfg Config) (*Result, error) {
	if s.model == nil {
		return nil, ErrNilModel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s.enter(PhaseInitialized)
	s.logger.Debug("simulation initialized", "dt", cfg.Dt, "steps", cfg.Steps, "sample_every", cfg.SampleEvery)

	result := &Result{}

	s.enter(PhaseBaseline)
	result.InitialEnergy = s.checkpoint(PhaseBaseline, 0)

	s.enter(PhaseAdvancing)
	if cfg.SampleEvery == 0 {
		for i := 0; i < cfg.Steps; i++ {
			s.model.Advance(cfg.Dt)
		}
	} else {
		for i := 1; i <= cfg.Steps; i++ {
			s.model.Advance(cfg.Dt)
			if i%cfg.SampleEvery == 0 {
				s.checkpoint(PhaseAdvancing, i)
			}
		}
	}
	result.StepsTaken = cfg.Steps

	s.enter(PhaseFinal)
	result.FinalEnergy = s.checkpoint(PhaseFinal, cfg.Steps)

	if result.InitialEnergy != 0 {
		result.EnergyDrift = math.Abs(result.FinalEnergy-result.InitialEnergy) / math.Abs(result.InitialEnergy)
	}

	s.enter(PhaseDone)
	s.logger.Debug("simulation done", "steps", result.StepsTaken, "energy_drift", result.EnergyDrift)

	return result, nil
}

func (s *Simulator) enter(p Phase) {
	s.phase = p
	s.logger.Debug("phase", "name", p.String())
}

func (s *Simulator) checkpoint(p Phase, step int) float64 {
	cp := Checkpoint{Phase: p, Step: step, Energy: s.model.Energy()}
	for _, obs := range s.observers {
		obs.OnCheckpoint(cp)
	}
	return cp.Energy
}
