package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "data/config.yaml"

type config struct {
	App AppConfig `yaml:"app"`
	Log LogConfig `yaml:"log"`
}

type Service struct {
	config config
}

// New reads the YAML file at path on top of the built-in defaults. A missing
// file leaves the defaults in place.
func New(path string, defaults ...Option) (*Service, error) {
	s := &Service{config: config{
		App: defaultApp(),
		Log: defaultLog(),
	}}
	for _, opt := range defaults {
		opt(&s.config)
	}

	rawYAML, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if err = s.config.App.validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return s, nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Log() *LogConfig {
	return &s.config.Log
}

// Option adjusts a default before the config file is applied.
type Option func(c *config)

// WithLogOutputs sets where logs go unless the file says otherwise.
func WithLogOutputs(paths ...string) Option {
	return func(c *config) {
		c.Log.OutputPaths = paths
	}
}
