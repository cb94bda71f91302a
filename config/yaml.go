package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes a MeshConfig from YAML. Unknown fields are rejected so typos
// surface as configuration errors instead of silently selecting a different
// construction strategy.
func Load(data []byte) (*MeshConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg MeshConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("mesh config: decoding YAML: %w", err)
	}

	return &cfg, nil
}

// LoadFile reads and decodes a YAML mesh configuration file.
func LoadFile(path string) (*MeshConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mesh config: reading %s: %w", path, err)
	}

	cfg, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
