package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.1
	DefaultDuration = 60.0
	DefaultBarLen   = 16
	DefaultPlateW   = 8
	DefaultPlateH   = 8
	DefaultHot      = 400.0
	DefaultCold     = 300.0
	DefaultAmbient  = 293.15
)

type Config struct {
	Scenario  string        `yaml:"scenario"`
	Dt        float64       `yaml:"dt"`
	Duration  float64       `yaml:"duration"`
	Seed      int64         `yaml:"seed"`
	Workers   int           `yaml:"workers"`
	Jitter    float64       `yaml:"jitter"`
	Mesh      MeshConfig    `yaml:"mesh"`
	Materials MaterialNames `yaml:"materials"`
}

type MeshConfig struct {
	BarLen  int     `yaml:"bar_len"`
	PlateW  int     `yaml:"plate_w"`
	PlateH  int     `yaml:"plate_h"`
	Hot     float64 `yaml:"hot"`
	Cold    float64 `yaml:"cold"`
	Ambient float64 `yaml:"ambient"`
}

type MaterialNames struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: "junction",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Mesh: MeshConfig{
			BarLen:  DefaultBarLen,
			PlateW:  DefaultPlateW,
			PlateH:  DefaultPlateH,
			Hot:     DefaultHot,
			Cold:    DefaultCold,
			Ambient: DefaultAmbient,
		},
		Materials: MaterialNames{
			A: "copper",
			B: "steel",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
