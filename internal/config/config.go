package config

import (
	"errors"
	"fmt"

	"github.com/san-kum/benchlab/internal/dynamo"
)

const (
	DefaultDt          = 0.01
	DefaultSteps       = 500000
	DefaultFibonacciN  = 35
	DefaultMinDepth    = 4
	DefaultMaxDepth    = 14
	DefaultArraySize   = 10000
	DefaultSumPasses   = 1000
	DefaultSpectralN   = 100
	DefaultPowerIters  = 10
	DefaultGridSize    = 200
	DefaultMaxIter     = 50
	DefaultFannkuchN   = 10
	DefaultNullChecks  = 100000
	maxFannkuchN       = 12
	maxFibonacciN      = 92
	maxTreeDepth       = 24
	referencePresetKey = "reference"
)

var (
	ErrUnknownPreset   = errors.New("config: unknown preset")
	ErrInvalidWorkload = errors.New("config: invalid workload")
)

// Workloads holds the fixed parameters of every benchmark program.
type Workloads struct {
	NBody        NBodyWorkload        `yaml:"nbody"`
	Fibonacci    FibonacciWorkload    `yaml:"fibonacci"`
	BinaryTrees  BinaryTreesWorkload  `yaml:"binary_trees"`
	BoundsCheck  BoundsCheckWorkload  `yaml:"bounds_check"`
	SpectralNorm SpectralNormWorkload `yaml:"spectral_norm"`
	Mandelbrot   MandelbrotWorkload   `yaml:"mandelbrot"`
	Fannkuch     FannkuchWorkload     `yaml:"fannkuch"`
	NullCheck    NullCheckWorkload    `yaml:"null_check"`
}

type NBodyWorkload struct {
	Steps int     `yaml:"steps"`
	Dt    float64 `yaml:"dt"`
	// SampleEvery is only used by the drift plot.
	SampleEvery int `yaml:"sample_every"`
}

type FibonacciWorkload struct {
	N int `yaml:"n"`
}

type BinaryTreesWorkload struct {
	MinDepth int `yaml:"min_depth"`
	MaxDepth int `yaml:"max_depth"`
}

type BoundsCheckWorkload struct {
	Size       int `yaml:"size"`
	Iterations int `yaml:"iterations"`
}

type SpectralNormWorkload struct {
	N          int `yaml:"n"`
	Iterations int `yaml:"iterations"`
}

type MandelbrotWorkload struct {
	Size    int `yaml:"size"`
	MaxIter int `yaml:"max_iter"`
}

type FannkuchWorkload struct {
	N int `yaml:"n"`
}

type NullCheckWorkload struct {
	Iterations int `yaml:"iterations"`
}

func DefaultWorkloads() *Workloads {
	return &Workloads{
		NBody:        NBodyWorkload{Steps: DefaultSteps, Dt: DefaultDt},
		Fibonacci:    FibonacciWorkload{N: DefaultFibonacciN},
		BinaryTrees:  BinaryTreesWorkload{MinDepth: DefaultMinDepth, MaxDepth: DefaultMaxDepth},
		BoundsCheck:  BoundsCheckWorkload{Size: DefaultArraySize, Iterations: DefaultSumPasses},
		SpectralNorm: SpectralNormWorkload{N: DefaultSpectralN, Iterations: DefaultPowerIters},
		Mandelbrot:   MandelbrotWorkload{Size: DefaultGridSize, MaxIter: DefaultMaxIter},
		Fannkuch:     FannkuchWorkload{N: DefaultFannkuchN},
		NullCheck:    NullCheckWorkload{Iterations: DefaultNullChecks},
	}
}

// SimConfig converts the workload into a simulator config without sampling.
func (w NBodyWorkload) SimConfig() dynamo.Config {
	return dynamo.Config{Dt: w.Dt, Steps: w.Steps}
}

// SampledSimConfig is SimConfig with checkpoint sampling enabled.
func (w NBodyWorkload) SampledSimConfig() dynamo.Config {
	cfg := w.SimConfig()
	cfg.SampleEvery = w.SampleEvery
	return cfg
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidWorkload, fmt.Sprintf(format, args...))
}

func (w *Workloads) Validate() error {
	switch {
	case !(w.NBody.Dt > 0):
		return invalid("nbody.dt must be positive, got %v", w.NBody.Dt)
	case w.NBody.Steps < 0:
		return invalid("nbody.steps must be non-negative, got %d", w.NBody.Steps)
	case w.NBody.SampleEvery < 0:
		return invalid("nbody.sample_every must be non-negative, got %d", w.NBody.SampleEvery)
	case w.Fibonacci.N < 0 || w.Fibonacci.N > maxFibonacciN:
		return invalid("fibonacci.n must be in [0, %d], got %d", maxFibonacciN, w.Fibonacci.N)
	case w.BinaryTrees.MinDepth < 0:
		return invalid("binary_trees.min_depth must be non-negative, got %d", w.BinaryTrees.MinDepth)
	case w.BinaryTrees.MaxDepth < w.BinaryTrees.MinDepth || w.BinaryTrees.MaxDepth > maxTreeDepth:
		return invalid("binary_trees.max_depth must be in [min_depth, %d], got %d", maxTreeDepth, w.BinaryTrees.MaxDepth)
	case w.BoundsCheck.Size < 0:
		return invalid("bounds_check.size must be non-negative, got %d", w.BoundsCheck.Size)
	case w.BoundsCheck.Iterations < 0:
		return invalid("bounds_check.iterations must be non-negative, got %d", w.BoundsCheck.Iterations)
	case w.SpectralNorm.N < 1:
		return invalid("spectral_norm.n must be positive, got %d", w.SpectralNorm.N)
	case w.SpectralNorm.Iterations < 1:
		return invalid("spectral_norm.iterations must be positive, got %d", w.SpectralNorm.Iterations)
	case w.Mandelbrot.Size < 0:
		return invalid("mandelbrot.size must be non-negative, got %d", w.Mandelbrot.Size)
	case w.Mandelbrot.MaxIter < 1:
		return invalid("mandelbrot.max_iter must be positive, got %d", w.Mandelbrot.MaxIter)
	case w.Fannkuch.N < 1 || w.Fannkuch.N > maxFannkuchN:
		return invalid("fannkuch.n must be in [1, %d], got %d", maxFannkuchN, w.Fannkuch.N)
	case w.NullCheck.Iterations < 0:
		return invalid("null_check.iterations must be non-negative, got %d", w.NullCheck.Iterations)
	}
	return nil
}
