package experiment

import (
	"context"
	"testing"

	"github.com/san-kum/heatgrid/internal/config"
)

func TestRegistryScenarios(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		scenario   string
		wantBodies int
	}{
		{"junction", 2},
		{"bar", config.DefaultBarLen},
		{"plate", config.DefaultPlateW * config.DefaultPlateH},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Scenario = tt.scenario
			cfg.Materials.A = "copper"
			cfg.Materials.B = "steel"

			m, err := r.GetScenario(cfg)
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			if len(m.Bodies) != tt.wantBodies {
				t.Errorf("expected %d bodies, got %d", tt.wantBodies, len(m.Bodies))
			}
		})
	}
}

func TestRegistryUnknownScenario(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()
	cfg.Scenario = "volcano"

	if _, err := r.GetScenario(cfg); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestRegistryUnknownMaterial(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()
	cfg.Materials.A = "unobtainium"

	if _, err := r.GetScenario(cfg); err == nil {
		t.Error("expected error for unknown material")
	}
}

func TestExperimentRun(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()
	cfg.Duration = 5

	m, err := r.GetScenario(cfg)
	if err != nil {
		t.Fatal(err)
	}

	exp := New(cfg)
	if err := exp.Setup(m, r.DefaultMetrics(m)); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.StepsTaken == 0 {
		t.Error("expected steps taken")
	}
	for _, name := range []string{"total_energy", "energy_drift", "spread", "flux"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
	if result.Metrics["energy_drift"] > 1e-9 {
		t.Errorf("junction run must conserve energy, drift %e", result.Metrics["energy_drift"])
	}
}

func TestExperimentRunWithoutSetup(t *testing.T) {
	exp := New(config.DefaultConfig())
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error before setup")
	}
}

func TestJitterIsDeterministic(t *testing.T) {
	r := NewRegistry()

	build := func() []float64 {
		cfg := config.DefaultConfig()
		cfg.Seed = 42
		cfg.Jitter = 5

		m, err := r.GetScenario(cfg)
		if err != nil {
			t.Fatal(err)
		}
		exp := New(cfg)
		if err := exp.Setup(m, nil); err != nil {
			t.Fatal(err)
		}
		return exp.Scheduler().Temps()
	}

	a := build()
	b := build()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("body %d: same seed produced %f vs %f", i, a[i], b[i])
		}
	}
}
