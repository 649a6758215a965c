package sim

import (
	"context"
	"math"

	"github.com/san-kum/heatgrid/internal/thermo"
)

// Scheduler advances a contact network of thermal bodies in discrete
// ticks. Each tick is two-phase: every pair's exchange is computed
// against the pre-tick temperatures and staged as a delta, then all
// deltas are committed at once. A body shared by several pairs
// accumulates their deltas, so results never depend on pair order.
type Scheduler struct {
	bodies    []thermo.Body
	pairs     []thermo.Pair
	deltas    []float64
	metrics   []Metric
	observers []Observer
	workers   int
	pool      *deltaPool
}

func New(bodies []thermo.Body, pairs []thermo.Pair) *Scheduler {
	return &Scheduler{
		bodies:    bodies,
		pairs:     pairs,
		deltas:    make([]float64, len(bodies)),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		pool:      newDeltaPool(len(bodies)),
	}
}

func (s *Scheduler) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Scheduler) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// SetWorkers selects the number of goroutines used for the staging
// sweep. Zero or one keeps the sweep serial.
func (s *Scheduler) SetWorkers(n int) { s.workers = n }

// Temps returns a snapshot of the current temperatures.
func (s *Scheduler) Temps() []float64 {
	temps := make([]float64, len(s.bodies))
	for i, b := range s.bodies {
		temps[i] = b.Temp
	}
	return temps
}

// SetTemps overwrites body temperatures from a frame, e.g. to reset a
// live view.
func (s *Scheduler) SetTemps(temps []float64) {
	for i := range s.bodies {
		if i < len(temps) {
			s.bodies[i].Temp = temps[i]
		}
	}
}

// Energy returns the network's total stored heat, sum of C*T.
func (s *Scheduler) Energy() float64 {
	return thermo.TotalEnergy(s.bodies)
}

// Tick advances the network by one time slice.
func (s *Scheduler) Tick(dt float64) {
	for i := range s.deltas {
		s.deltas[i] = 0
	}

	if s.workers > 1 && len(s.pairs) > 1 {
		s.stageParallel(dt)
	} else {
		s.stage(dt, s.pairs, s.deltas)
	}

	for i := range s.bodies {
		s.bodies[i].Temp += s.deltas[i]
	}
}

// stage computes per-pair deltas against pre-tick temperatures.
func (s *Scheduler) stage(dt float64, pairs []thermo.Pair, deltas []float64) {
	for _, p := range pairs {
		b1, b2 := s.bodies[p.A], s.bodies[p.B]
		n1, n2 := thermo.Exchange(b1, b2, dt)
		deltas[p.A] += n1 - b1.Temp
		deltas[p.B] += n2 - b2.Temp
	}
}

func (s *Scheduler) validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return thermo.ErrInvalidTimestep
	}
	if cfg.Duration <= 0 {
		return thermo.ErrInvalidDuration
	}
	if cfg.Workers < 0 {
		return thermo.ErrInvalidWorkers
	}
	if len(s.bodies) == 0 {
		return thermo.ErrEmptyMesh
	}
	for _, p := range s.pairs {
		if p.A < 0 || p.A >= len(s.bodies) || p.B < 0 || p.B >= len(s.bodies) {
			return thermo.ErrPairBounds
		}
	}
	return nil
}

// Run ticks the network for cfg.Duration and records every frame.
func (s *Scheduler) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validate(cfg); err != nil {
		return nil, err
	}
	s.workers = cfg.Workers

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Frames:  make([][]float64, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	t := 0.0
	temps := s.Temps()
	result.Frames = append(result.Frames, temps)
	result.Times = append(result.Times, t)

	initialEnergy := s.Energy()

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(temps, t)
		}
		for _, obs := range s.observers {
			obs.OnTick(temps, t)
		}

		s.Tick(cfg.Dt)
		t += cfg.Dt
		temps = s.Temps()

		if cfg.ValidateState && !validTemps(temps) {
			err := thermo.TickError{Step: i, Time: t, Message: "invalid temperature (NaN/Inf)"}
			result.Errors = append(result.Errors, err)
			break
		}

		result.StepsTaken++
		result.Frames = append(result.Frames, temps)
		result.Times = append(result.Times, t)
	}

	for _, m := range s.metrics {
		m.Observe(temps, t)
		result.Metrics[m.Name()] = m.Value()
	}

	finalEnergy := s.Energy()
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	return result, nil
}

// RunWithCallback streams frames to fn without recording them. The run
// stops early when fn returns false.
func (s *Scheduler) RunWithCallback(ctx context.Context, cfg Config, fn func(temps []float64, t float64) bool) error {
	if err := s.validate(cfg); err != nil {
		return err
	}
	s.workers = cfg.Workers

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !fn(s.Temps(), t) {
			return nil
		}

		s.Tick(cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState && !validTemps(s.Temps()) {
			return thermo.TickError{Time: t, Message: "invalid temperature (NaN/Inf)"}
		}
	}

	return nil
}
