package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	keysInt  = "int"
	keysU128 = "u128"
)

type BenchConfig struct {
	Count       int     `yaml:"count"`
	Keys        string  `yaml:"keys"`
	Seed        uint64  `yaml:"seed"`
	RemoveRatio float64 `yaml:"remove_ratio"`
	Progress    bool    `yaml:"progress"`
}

type Config struct {
	Bench BenchConfig `yaml:"bench"`
}

var defaultConfig = Config{
	Bench: BenchConfig{
		Count:       1_000_000,
		Keys:        keysInt,
		Seed:        1,
		RemoveRatio: 0.5,
	},
}

// LoadConfig reads the workload file at path on top of the defaults.
// An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig
	if path == "" {
		return &config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Bench.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c BenchConfig) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("invalid count %d", c.Count)
	}
	if c.Keys != keysInt && c.Keys != keysU128 {
		return fmt.Errorf("invalid key kind %q", c.Keys)
	}
	if c.RemoveRatio < 0 || c.RemoveRatio > 1 {
		return fmt.Errorf("invalid remove ratio %f", c.RemoveRatio)
	}
	return nil
}
