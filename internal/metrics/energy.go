package metrics

import (
	"math"
)

// TotalEnergy tracks the mean of sum(C*T) over observed frames. The
// capacities are fixed at construction; frames carry temperatures only.
type TotalEnergy struct {
	name       string
	capacities []float64
	sum        float64
	samples    int
}

func NewTotalEnergy(capacities []float64) *TotalEnergy {
	return &TotalEnergy{
		name:       "total_energy",
		capacities: capacities,
	}
}

func (e *TotalEnergy) Name() string { return e.name }

func (e *TotalEnergy) Observe(temps []float64, t float64) {
	total := 0.0
	for i, temp := range temps {
		if i < len(e.capacities) {
			total += e.capacities[i] * temp
		}
	}
	e.sum += total
	e.samples++
}

func (e *TotalEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.sum / float64(e.samples)
}

func (e *TotalEnergy) Reset() {
	e.sum = 0
	e.samples = 0
}

// EnergyDrift tracks the maximum relative deviation of sum(C*T) from the
// first observed frame. With only conservative pairwise exchanges the
// value should stay at floating-point noise.
type EnergyDrift struct {
	name       string
	capacities []float64
	initial    float64
	maxDrift   float64
	samples    int
}

func NewEnergyDrift(capacities []float64) *EnergyDrift {
	return &EnergyDrift{
		name:       "energy_drift",
		capacities: capacities,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(temps []float64, t float64) {
	total := 0.0
	for i, temp := range temps {
		if i < len(e.capacities) {
			total += e.capacities[i] * temp
		}
	}

	if e.samples == 0 {
		e.initial = total
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(total-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
