package experiment

import (
	"fmt"

	"github.com/san-kum/heatgrid/internal/config"
	"github.com/san-kum/heatgrid/internal/mesh"
	"github.com/san-kum/heatgrid/internal/metrics"
	"github.com/san-kum/heatgrid/internal/sim"
)

type Registry struct {
	scenarios map[string]func(*config.Config) (*mesh.Mesh, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		scenarios: make(map[string]func(*config.Config) (*mesh.Mesh, error)),
	}

	r.scenarios["junction"] = func(cfg *config.Config) (*mesh.Mesh, error) {
		matA, err := mesh.GetMaterial(cfg.Materials.A)
		if err != nil {
			return nil, err
		}
		matB, err := mesh.GetMaterial(cfg.Materials.B)
		if err != nil {
			return nil, err
		}
		return mesh.Junction(matA, matB, hotOr(cfg), coldOr(cfg)), nil
	}

	r.scenarios["bar"] = func(cfg *config.Config) (*mesh.Mesh, error) {
		mat, err := mesh.GetMaterial(cfg.Materials.A)
		if err != nil {
			return nil, err
		}
		n := cfg.Mesh.BarLen
		if n == 0 {
			n = config.DefaultBarLen
		}
		return mesh.Bar(n, mat, hotOr(cfg), coldOr(cfg)), nil
	}

	r.scenarios["plate"] = func(cfg *config.Config) (*mesh.Mesh, error) {
		mat, err := mesh.GetMaterial(cfg.Materials.A)
		if err != nil {
			return nil, err
		}
		w, h := cfg.Mesh.PlateW, cfg.Mesh.PlateH
		if w == 0 {
			w = config.DefaultPlateW
		}
		if h == 0 {
			h = config.DefaultPlateH
		}
		ambient := cfg.Mesh.Ambient
		if ambient == 0 {
			ambient = config.DefaultAmbient
		}
		return mesh.Plate(w, h, mat, hotOr(cfg), ambient), nil
	}

	return r
}

func hotOr(cfg *config.Config) float64 {
	if cfg.Mesh.Hot == 0 {
		return config.DefaultHot
	}
	return cfg.Mesh.Hot
}

func coldOr(cfg *config.Config) float64 {
	if cfg.Mesh.Cold == 0 {
		return config.DefaultCold
	}
	return cfg.Mesh.Cold
}

func (r *Registry) GetScenario(cfg *config.Config) (*mesh.Mesh, error) {
	fn, ok := r.scenarios[cfg.Scenario]
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %s", cfg.Scenario)
	}
	return fn(cfg)
}

func (r *Registry) ListScenarios() []string {
	names := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		names = append(names, name)
	}
	return names
}

// DefaultMetrics returns the standard metric set for a built mesh.
func (r *Registry) DefaultMetrics(m *mesh.Mesh) []sim.Metric {
	capacities := make([]float64, len(m.Bodies))
	for i, b := range m.Bodies {
		capacities[i] = b.Capacity
	}
	return []sim.Metric{
		metrics.NewTotalEnergy(capacities),
		metrics.NewEnergyDrift(capacities),
		metrics.NewSpread(),
		metrics.NewFlux(),
	}
}
