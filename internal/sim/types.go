package sim

import "math"

// Metric aggregates a scalar over a run, observed once per tick against
// the committed temperature frame.
type Metric interface {
	Name() string
	Observe(temps []float64, t float64)
	Value() float64
	Reset()
}

// Observer receives each committed temperature frame.
type Observer interface {
	OnTick(temps []float64, t float64)
}

type Config struct {
	Dt            float64
	Duration      float64
	Seed          int64
	Workers       int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.1,
		Duration:      60.0,
		Workers:       0,
		ValidateState: true,
	}
}

type Result struct {
	Frames      [][]float64
	Times       []float64
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Errors      []error
}

func validTemps(temps []float64) bool {
	for _, v := range temps {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
