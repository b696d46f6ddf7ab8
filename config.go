package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings. Defaults are overridden first by an
// optional YAML file (CONFIG_FILE) and then by individual environment
// variables, so a bare `go run .` always works.
type Config struct {
	Port    string `yaml:"port"`
	BaseURL string `yaml:"base_url"`
	// APIKey enables the Bearer auth check when non-empty.
	APIKey string `yaml:"api_key"`
	// DefaultSpeed and DefaultExcitement seed new simulation sessions when
	// the client omits the query parameters.
	DefaultSpeed      float64 `yaml:"default_speed"`
	DefaultExcitement int     `yaml:"default_excitement"`
}

func loadConfig() (*Config, error) {
	cfg := &Config{
		Port:              "8080",
		BaseURL:           "http://localhost:8080",
		DefaultSpeed:      DefaultSpeed,
		DefaultExcitement: DefaultExcitement,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if key := os.Getenv("API_KEY"); key != "" {
		cfg.APIKey = key
	}

	return cfg, nil
}
