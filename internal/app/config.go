package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ManifestPath points at the project's HCL manifest.
	ManifestPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
