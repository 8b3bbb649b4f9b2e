package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds CLI defaults loadable from a YAML file.
type config struct {
	PerPage  int  `yaml:"per_page"`
	Compress bool `yaml:"compress"`
}

func defaultConfig() config {
	return config{PerPage: 50}
}

// loadConfig reads a YAML config file, falling back to defaults when
// path is empty.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.PerPage < 1 {
		cfg.PerPage = defaultConfig().PerPage
	}
	return cfg, nil
}
