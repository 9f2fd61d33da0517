package dynamo

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decayModel halves its energy on every step.
type decayModel struct {
	energy   float64
	advances int
	dts      []float64
}

func (m *decayModel) Advance(dt float64) {
	m.advances++
	m.dts = append(m.dts, dt)
	m.energy /= 2
}

func (m *decayModel) Energy() float64 { return m.energy }

type recorder struct {
	checkpoints []Checkpoint
}

func (r *recorder) OnCheckpoint(cp Checkpoint) { r.checkpoints = append(r.checkpoints, cp) }

func TestSimulatorRun(t *testing.T) {
	m := &decayModel{energy: 8}
	s := New(m)

	result, err := s.Run(Config{Dt: 0.5, Steps: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, m.advances)
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, m.dts)
	assert.Equal(t, 8.0, result.InitialEnergy)
	assert.Equal(t, 1.0, result.FinalEnergy)
	assert.Equal(t, 3, result.StepsTaken)
	assert.InDelta(t, 7.0/8.0, result.EnergyDrift, 1e-15)
	assert.Equal(t, PhaseDone, s.Phase())
}

func TestSimulatorCheckpointOrder(t *testing.T) {
	m := &decayModel{energy: 16}
	rec := &recorder{}
	s := New(m)
	s.AddObserver(rec)

	_, err := s.Run(Config{Dt: 1, Steps: 4, SampleEvery: 2})
	require.NoError(t, err)

	expected := []Checkpoint{
		{Phase: PhaseBaseline, Step: 0, Energy: 16},
		{Phase: PhaseAdvancing, Step: 2, Energy: 4},
		{Phase: PhaseAdvancing, Step: 4, Energy: 1},
		{Phase: PhaseFinal, Step: 4, Energy: 1},
	}
	assert.Equal(t, expected, rec.checkpoints)
}

func TestSimulatorBaselineBeforeAdvance(t *testing.T) {
	m := &decayModel{energy: 2}
	var advancesAtBaseline = -1
	s := New(m)
	s.AddObserver(ObserverFunc(func(cp Checkpoint) {
		if cp.Phase == PhaseBaseline {
			advancesAtBaseline = m.advances
		}
	}))

	_, err := s.Run(Config{Dt: 1, Steps: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, advancesAtBaseline)
}

func TestSimulatorZeroSteps(t *testing.T) {
	m := &decayModel{energy: 3}
	result, err := New(m).Run(Config{Dt: 0.01, Steps: 0})
	require.NoError(t, err)

	assert.Equal(t, 0, m.advances)
	assert.Equal(t, result.InitialEnergy, result.FinalEnergy)
	assert.Zero(t, result.EnergyDrift)
}

func TestSimulatorInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Steps: 1}},
		{"negative dt", Config{Dt: -0.01, Steps: 1}},
		{"negative steps", Config{Dt: 0.01, Steps: -1}},
		{"negative sampling", Config{Dt: 0.01, Steps: 1, SampleEvery: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &decayModel{energy: 1}
			_, err := New(m).Run(tt.cfg)
			require.ErrorIs(t, err, ErrParameterBounds)
			assert.Zero(t, m.advances)
		})
	}
}

func TestSimulatorNilModel(t *testing.T) {
	_, err := New(nil).Run(DefaultConfig())
	require.ErrorIs(t, err, ErrNilModel)
}

func TestSimulatorLogsPhases(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := New(&decayModel{energy: 1})
	s.SetLogger(logger)
	_, err := s.Run(Config{Dt: 1, Steps: 1})
	require.NoError(t, err)

	out := buf.String()
	for _, p := range []Phase{PhaseInitialized, PhaseBaseline, PhaseAdvancing, PhaseFinal, PhaseDone} {
		assert.Contains(t, out, "name="+p.String())
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.01, cfg.Dt)
	assert.Equal(t, 500000, cfg.Steps)
	assert.Zero(t, cfg.SampleEvery)
	assert.NoError(t, cfg.Validate())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "advancing", PhaseAdvancing.String())
	assert.Equal(t, "phase(42)", Phase(42).String())
}
