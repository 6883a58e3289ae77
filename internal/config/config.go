// Package config loads the tutor's configuration. Values are layered: built-in
// defaults, then YAML files in the order given, then environment variables,
// then whatever the command line overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"periodic-tutor/internal/errors"
	"periodic-tutor/internal/logger"
)

const (
	DefaultElementClass = "http://test.org/periodic#Element"
	DefaultTitle        = "Periodic Table Tutor"
	DefaultWidth        = 1200
	DefaultHeight       = 700
	MinWindowWidth      = 800
	MinWindowHeight     = 600

	EnvPrefix = "PERIODIC_TUTOR"
)

// Config is the complete application configuration
type Config struct {
	Ontology OntologyConfig `yaml:"ontology"`
	Window   WindowConfig   `yaml:"window"`
	Log      LogConfig      `yaml:"log"`
}

// OntologyConfig locates the element data. An empty Path selects the
// ontology embedded in the binary.
type OntologyConfig struct {
	Path         string `yaml:"path"`
	ElementClass string `yaml:"element_class"`
}

type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Ontology: OntologyConfig{
			ElementClass: DefaultElementClass,
		},
		Window: WindowConfig{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Log: LogConfig{
			Level:  logger.LevelFromEnv().String(),
			Format: "console",
		},
	}
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Ontology.ElementClass) == "" {
		return fmt.Errorf("%w: ontology.element_class is required", errors.ErrInvalidConfig)
	}
	if !strings.Contains(c.Ontology.ElementClass, ":") {
		return fmt.Errorf("%w: ontology.element_class %q is not an absolute IRI",
			errors.ErrInvalidConfig, c.Ontology.ElementClass)
	}
	if c.Window.Width < MinWindowWidth || c.Window.Height < MinWindowHeight {
		return fmt.Errorf("%w: window must be at least %dx%d, got %.0fx%.0f",
			errors.ErrInvalidConfig, MinWindowWidth, MinWindowHeight, c.Window.Width, c.Window.Height)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format must be console or json, got %q", errors.ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// LogLevel returns the parsed log level; call after Validate
func (c *Config) LogLevel() logger.LogLevel {
	level, _ := logger.ParseLevel(c.Log.Level)
	return level
}

// Loader handles configuration loading with layers and overrides
type Loader struct {
	layers    []string
	envPrefix string
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		layers:    []string{},
		envPrefix: EnvPrefix,
		lookupEnv: os.LookupEnv,
	}
}

// AddLayer adds a configuration file layer
func (l *Loader) AddLayer(path string) {
	l.layers = append(l.layers, path)
}

// Load merges defaults, file layers and environment overrides. The result is
// not validated so that flag overrides can still be applied.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	for _, path := range l.layers {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapFatal(err, "config", "Load", fmt.Sprintf("read %s", path))
		}
		// Decoding onto the populated struct keeps fields the layer leaves out.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapFatal(fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err),
				"config", "Load", fmt.Sprintf("parse %s", path))
		}
	}

	l.applyEnvOverrides(cfg)
	return cfg, nil
}

func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v, ok := l.lookupEnv(l.envPrefix + "_ONTOLOGY"); ok {
		cfg.Ontology.Path = v
	}
	if v, ok := l.lookupEnv(l.envPrefix + "_ELEMENT_CLASS"); ok && v != "" {
		cfg.Ontology.ElementClass = v
	}
	if v, ok := l.lookupEnv(l.envPrefix + "_LOG_FORMAT"); ok && v != "" {
		cfg.Log.Format = v
	}
	if v, ok := l.lookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.Log.Level = v
	} else if v, ok := l.lookupEnv("DEBUG"); ok && v == "1" {
		cfg.Log.Level = logger.DebugLevel.String()
	}
}

// ToYAML renders the configuration as a YAML document
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
