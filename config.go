package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Output formats of the bundle export.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config holds the lab configuration.
type Config struct {
	Params `yaml:",inline"`

	// Seed seeds the hostname generator; 0 picks a random seed.
	Seed uint64 `yaml:"seed"`
	// Workers bounds concurrent configuration rendering.
	Workers int `yaml:"workers"`

	ConfigDir string `yaml:"config_dir"`
	Templates string `yaml:"templates"`
	Format    string `yaml:"format"`
	LogLevel  string `yaml:"log_level"`

	Settings LabSettings `yaml:"settings"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Params: Params{
			NumP:         3,
			NumPE:        4,
			LoopbackPool: "10.255.0.0/24",
			P2PPool:      "10.0.0.0/24",
		},
		Seed:      0,
		Workers:   1,
		ConfigDir: "./output",
		Templates: "",
		Format:    FormatYAML,
		LogLevel:  "info",
		Settings:  DefaultLabSettings(),
	}
}

// LoadConfig loads a lab file on top of the default configuration.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks values the build itself does not check.
func (c Config) Validate() error {
	if c.NumP < 0 || c.NumPE < 0 {
		return fmt.Errorf("router counts must not be negative (p=%d, pe=%d)", c.NumP, c.NumPE)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.Format {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	return c.Settings.Validate()
}

// TotalRouters returns the number of routers in the lab.
func (c Config) TotalRouters() int {
	return c.NumP + c.NumPE
}

// BuildOptions returns the build options derived from the configuration.
func (c Config) BuildOptions() []BuildOption {
	return []BuildOption{
		WithSeed(c.Seed),
		WithSettings(c.Settings),
		WithWorkers(c.Workers),
	}
}
