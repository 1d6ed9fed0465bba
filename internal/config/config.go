// Package config loads the storefront configuration from environment
// variables, with an optional YAML file overriding the defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// DataDir is where session snapshots are kept. Empty means in-memory
	// only (nothing survives a restart).
	DataDir string `yaml:"data_dir"`
	// SimulatedLatency is the artificial delay applied to login, register,
	// and order placement, standing in for network round-trips.
	SimulatedLatency time.Duration `yaml:"simulated_latency"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Load builds the configuration from environment variables. If CONFIG_FILE
// names a YAML file, its values are applied on top.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:             getEnv("HTTP_ADDR", ":8080"),
		DataDir:          getEnv("DATA_DIR", "data"),
		SimulatedLatency: getEnvDuration("SIMULATED_LATENCY", 500*time.Millisecond),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}
