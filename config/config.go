// Package config loads the finter host configuration from YAML.
//
//	cache:
//	  capacity: 32
//	formula:
//	  precision: 4
//	series:
//	  lenient: false
//	dataset:
//	  max_name_len: 255
//	sample:
//	  steps: 64
//	log:
//	  level: info
//	metrics:
//	  addr: ":9100"
//	datasets:
//	  - name: square
//	    points: "0,0; 1,1; 2,4"
//
// Missing keys keep their Default values; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full host configuration.
type Config struct {
	Cache    Cache   `yaml:"cache"`
	Formula  Formula `yaml:"formula"`
	Series   Series  `yaml:"series"`
	Dataset  Dataset `yaml:"dataset"`
	Sample   Sample  `yaml:"sample"`
	Log      Log     `yaml:"log"`
	Metrics  Metrics `yaml:"metrics"`
	Datasets []Seed  `yaml:"datasets"`
}

// Cache configures the formula render cache.
type Cache struct {
	Capacity int `yaml:"capacity"`
}

// Formula configures number formatting in formulas.
type Formula struct {
	Precision int `yaml:"precision"`
}

// Series configures the point parser.
type Series struct {
	Lenient bool `yaml:"lenient"`
}

// Dataset configures dataset naming.
type Dataset struct {
	MaxNameLen int `yaml:"max_name_len"`
}

// Sample configures curve sampling.
type Sample struct {
	Steps int `yaml:"steps"`
}

// Log configures the global log level.
type Log struct {
	Level string `yaml:"level"`
}

// Metrics configures the prometheus endpoint. An empty Addr disables it.
type Metrics struct {
	Addr string `yaml:"addr"`
}

// Seed is a dataset created at startup.
type Seed struct {
	Name   string `yaml:"name"`
	Points string `yaml:"points"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cache:   Cache{Capacity: 32},
		Formula: Formula{Precision: 4},
		Dataset: Dataset{MaxNameLen: 255},
		Sample:  Sample{Steps: 64},
		Log:     Log{Level: "info"},
	}
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// MustLoad is Load that panics on error.
func MustLoad(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("could not load config %s: %s", path, err.Error()))
	}
	log.Info().Str("path", path).Msg("loaded config")

	return cfg
}

// Save writes cfg as YAML to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return os.WriteFile(path, data, 0o600)
}

// Validate checks every value against its allowed range.
func (c Config) Validate() error {
	switch {
	case c.Cache.Capacity < 1:
		return fmt.Errorf("%w: cache.capacity %d < 1", ErrInvalidConfig, c.Cache.Capacity)
	case c.Formula.Precision < 1:
		return fmt.Errorf("%w: formula.precision %d < 1", ErrInvalidConfig, c.Formula.Precision)
	case c.Dataset.MaxNameLen < 1:
		return fmt.Errorf("%w: dataset.max_name_len %d < 1", ErrInvalidConfig, c.Dataset.MaxNameLen)
	case c.Sample.Steps < 2:
		return fmt.Errorf("%w: sample.steps %d < 2", ErrInvalidConfig, c.Sample.Steps)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	return lvl, nil
}
