package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/heatgrid/internal/config"
	"github.com/san-kum/heatgrid/internal/mesh"
	"github.com/san-kum/heatgrid/internal/sim"
)

// Experiment wires a built mesh, scheduler, and metric set for one run.
type Experiment struct {
	cfg        *config.Config
	scheduler  *sim.Scheduler
	randSource *rand.Rand
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{
		cfg:        cfg,
		randSource: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Setup builds the scheduler over m. A non-zero Jitter perturbs every
// initial temperature uniformly by up to +-Jitter kelvin, seeded from
// the config for reproducibility.
func (e *Experiment) Setup(m *mesh.Mesh, metrics []sim.Metric) error {
	if m == nil || len(m.Bodies) == 0 {
		return fmt.Errorf("experiment: empty mesh")
	}

	if e.cfg.Jitter > 0 {
		for i := range m.Bodies {
			m.Bodies[i].Temp += (e.randSource.Float64()*2 - 1) * e.cfg.Jitter
		}
	}

	e.scheduler = sim.New(m.Bodies, m.Pairs)
	for _, metric := range metrics {
		e.scheduler.AddMetric(metric)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.scheduler == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	simCfg := sim.Config{
		Dt:            e.cfg.Dt,
		Duration:      e.cfg.Duration,
		Seed:          e.cfg.Seed,
		Workers:       e.cfg.Workers,
		ValidateState: true,
	}

	return e.scheduler.Run(ctx, simCfg)
}

// Scheduler exposes the underlying scheduler for observers and live use.
func (e *Experiment) Scheduler() *sim.Scheduler {
	return e.scheduler
}
