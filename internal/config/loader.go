package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Load reads a battle file on top of Default. Keys missing from the file
// keep their default values.
func Load(path string) (*BattleConfig, error) {
	cfg := Default()
	if err := loadYAML(path, &cfg); err != nil {
		return nil, fmt.Errorf("loading battle config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid battle config %s: %w", path, err)
	}
	return &cfg, nil
}

// Parse is Load for in-memory documents.
func Parse(b []byte) (*BattleConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parsing battle config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid battle config: %w", err)
	}
	return &cfg, nil
}
