// Package config loads seqschema settings files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tordrt/seqschema/internal/naming"
)

// Settings represents the seqschema.yaml configuration structure
type Settings struct {
	Database struct {
		URL    string `yaml:"url"`
		Schema string `yaml:"schema"`
	} `yaml:"database"`

	ExcludeTables    []string       `yaml:"excludeTables"`
	IDSuffix         string         `yaml:"idSuffix"`
	CustomFieldTable string         `yaml:"customFieldTable"`
	ModelFactory     bool           `yaml:"modelFactory"`
	Naming           naming.Options `yaml:"naming"`
}

// Default returns the settings used when no file is given.
func Default() *Settings {
	return &Settings{Naming: naming.DefaultOptions()}
}

// Load reads settings from path. Naming options missing from the file keep
// their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return settings, nil
}
