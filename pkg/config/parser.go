package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads and parses the workload file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a workload document
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration and normalizes the algorithm name
func validateConfig(config *Config) error {
	if config.Algorithm != "" {
		alg, err := ParseAlgorithm(string(config.Algorithm))
		if err != nil {
			return err
		}
		config.Algorithm = alg
	}

	if config.Quantum < 0 {
		return fmt.Errorf("quantum must not be negative")
	}

	if config.Horizon < 0 {
		return fmt.Errorf("horizon must not be negative")
	}

	if config.WaitWarningThreshold < 0 {
		return fmt.Errorf("waitWarningThreshold must not be negative")
	}

	if len(config.Processes) == 0 && len(config.Recurring) == 0 {
		return fmt.Errorf("at least one process must be defined")
	}

	for i, p := range config.Processes {
		if err := validateProcess(p); err != nil {
			return fmt.Errorf("process %d: %w", i+1, err)
		}
	}

	if len(config.Recurring) > 0 && config.Horizon == 0 {
		return fmt.Errorf("horizon is required when recurring processes are defined")
	}

	for i, r := range config.Recurring {
		if r.Name == "" {
			return fmt.Errorf("recurring process %d: name is required", i+1)
		}

		if r.Burst <= 0 {
			return fmt.Errorf("recurring process %s: burst must be greater than 0", r.Name)
		}

		if r.Schedule == "" {
			return fmt.Errorf("recurring process %s: schedule is required", r.Name)
		}

		if _, err := cronParser.Parse(r.Schedule); err != nil {
			return fmt.Errorf("recurring process %s: invalid schedule: %w", r.Name, err)
		}
	}

	return nil
}

func validateProcess(p ProcessSpec) error {
	if p.Arrival < 0 {
		return fmt.Errorf("arrival must not be negative")
	}
	if p.Burst <= 0 {
		return fmt.Errorf("burst must be greater than 0")
	}
	return nil
}

// Workload returns every process definition in ID order: the explicit
// processes first, then each recurring process expanded over the horizon.
func (c *Config) Workload() []ProcessSpec {
	specs := make([]ProcessSpec, 0, len(c.Processes))
	specs = append(specs, c.Processes...)
	for i := range c.Recurring {
		specs = append(specs, expandRecurring(&c.Recurring[i], c.Horizon)...)
	}
	return specs
}
