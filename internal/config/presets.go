package config

var Presets = map[string]map[string]*Config{
	"junction": {
		"balanced": {
			Scenario: "junction", Dt: 0.1, Duration: 60.0,
			Mesh:      MeshConfig{Hot: 400, Cold: 300},
			Materials: MaterialNames{A: "copper", B: "copper"},
		},
		"lopsided": {
			Scenario: "junction", Dt: 0.1, Duration: 60.0,
			Mesh:      MeshConfig{Hot: 500, Cold: 280},
			Materials: MaterialNames{A: "copper", B: "insulator"},
		},
		"big-step": {
			Scenario: "junction", Dt: 50.0, Duration: 500.0,
			Mesh:      MeshConfig{Hot: 400, Cold: 300},
			Materials: MaterialNames{A: "steel", B: "steel"},
		},
	},
	"bar": {
		"short": {
			Scenario: "bar", Dt: 0.05, Duration: 30.0,
			Mesh:      MeshConfig{BarLen: 8, Hot: 400, Cold: 300},
			Materials: MaterialNames{A: "copper"},
		},
		"long": {
			Scenario: "bar", Dt: 0.05, Duration: 120.0,
			Mesh:      MeshConfig{BarLen: 64, Hot: 400, Cold: 300},
			Materials: MaterialNames{A: "steel"},
		},
		"insulated": {
			Scenario: "bar", Dt: 0.5, Duration: 600.0,
			Mesh:      MeshConfig{BarLen: 16, Hot: 450, Cold: 290},
			Materials: MaterialNames{A: "insulator"},
		},
	},
	"plate": {
		"small": {
			Scenario: "plate", Dt: 0.05, Duration: 60.0,
			Mesh:      MeshConfig{PlateW: 8, PlateH: 8, Hot: 500, Ambient: 293.15},
			Materials: MaterialNames{A: "water"},
		},
		"large": {
			Scenario: "plate", Dt: 0.05, Duration: 240.0, Workers: 4,
			Mesh:      MeshConfig{PlateW: 32, PlateH: 32, Hot: 500, Ambient: 293.15},
			Materials: MaterialNames{A: "brick"},
		},
	},
}

func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
