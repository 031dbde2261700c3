package config

type LogConfig struct {
	Environment string   `yaml:"env"`
	MinLevel    string   `yaml:"level"`
	OutputPaths []string `yaml:"outputs"`
}

func defaultLog() LogConfig {
	return LogConfig{
		Environment: "prod",
		MinLevel:    "warn",
		OutputPaths: []string{"stderr"},
	}
}

func (s *LogConfig) Env() string {
	return s.Environment
}

func (s *LogConfig) Level() string {
	return s.MinLevel
}

func (s *LogConfig) Outputs() []string {
	return s.OutputPaths
}
