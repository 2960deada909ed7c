package ecs

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config sizes a Scene and its registries. Zero fields are replaced by the
// corresponding default at construction time, so the zero Config is usable.
type Config struct {
	// MaxEntities bounds the number of distinct entity identifiers.
	MaxEntities int `yaml:"max_entities" json:"max_entities"`

	// MaxComponentTypes bounds the number of registered component types.
	// It cannot exceed MaxComponentTypes (the mask width).
	MaxComponentTypes int `yaml:"max_component_types" json:"max_component_types"`

	// InitialCapacity is the preallocation hint for entity slots and each
	// component pool's dense storage.
	InitialCapacity int `yaml:"initial_capacity" json:"initial_capacity"`

	// LogLevel selects the scene logger's verbosity: debug, info, warn,
	// error or silent.
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// DefaultConfig returns the configuration used when no overrides are given.
func DefaultConfig() Config {
	return Config{
		MaxEntities:       1 << 20,
		MaxComponentTypes: MaxComponentTypes,
		InitialCapacity:   256,
		LogLevel:          "info",
	}
}

// LoadConfig reads a yaml Config from path. Missing fields keep their zero
// value and are defaulted at construction time.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %q", path)
	}
	var cfg Config
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %q", path)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot honor.
func (c Config) Validate() error {
	if c.MaxEntities < 0 {
		return errors.Errorf("max_entities must be positive, got %d", c.MaxEntities)
	}
	if c.MaxComponentTypes < 0 || c.MaxComponentTypes > MaxComponentTypes {
		return errors.Errorf("max_component_types must be within [0, %d], got %d",
			MaxComponentTypes, c.MaxComponentTypes)
	}
	if c.InitialCapacity < 0 {
		return errors.Errorf("initial_capacity must be positive, got %d", c.InitialCapacity)
	}
	return nil
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MaxEntities == 0 {
		c.MaxEntities = def.MaxEntities
	}
	if c.MaxComponentTypes == 0 {
		c.MaxComponentTypes = def.MaxComponentTypes
	}
	if c.InitialCapacity == 0 {
		c.InitialCapacity = def.InitialCapacity
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	return c
}
