package metrics

import "math"

// Spread reports the max-min temperature spread of the last observed
// frame, the headline "how far from equilibrium" number.
type Spread struct {
	name string
	last float64
}

func NewSpread() *Spread {
	return &Spread{name: "spread"}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(temps []float64, t float64) {
	if len(temps) == 0 {
		return
	}
	lo, hi := temps[0], temps[0]
	for _, v := range temps {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	s.last = hi - lo
}

func (s *Spread) Value() float64 { return s.last }

func (s *Spread) Reset() { s.last = 0 }

// Flux reports the mean absolute per-tick temperature change across all
// bodies, a measure of how much heat is still moving.
type Flux struct {
	name    string
	prev    []float64
	sum     float64
	samples int
}

func NewFlux() *Flux {
	return &Flux{name: "flux"}
}

func (f *Flux) Name() string { return f.name }

func (f *Flux) Observe(temps []float64, t float64) {
	if f.prev != nil && len(f.prev) == len(temps) {
		total := 0.0
		for i, v := range temps {
			total += math.Abs(v - f.prev[i])
		}
		f.sum += total / float64(len(temps))
		f.samples++
	}

	if f.prev == nil || len(f.prev) != len(temps) {
		f.prev = make([]float64, len(temps))
	}
	copy(f.prev, temps)
}

func (f *Flux) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.sum / float64(f.samples)
}

func (f *Flux) Reset() {
	f.prev = nil
	f.sum = 0
	f.samples = 0
}
