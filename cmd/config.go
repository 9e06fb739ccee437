package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/williamBlazing/gpu-bdb/metrics"
)

// EvalConfig holds evaluation parameters, loadable from a YAML file.
// Zero-valued fields fall back to the corresponding CLI flag defaults.
type EvalConfig struct {
	Reviews    string  `yaml:"reviews"`     // reviews CSV path; empty = synthetic labels
	Workers    int     `yaml:"workers"`     // number of simulated workers
	Partitions int     `yaml:"partitions"`  // number of label partitions
	Average    string  `yaml:"average"`     // precision averaging mode
	Normalize  string  `yaml:"normalize"`   // confusion-matrix normalization
	Seed       int64   `yaml:"seed"`        // synthetic generation seed
	Rows       int     `yaml:"rows"`        // synthetic row count
	Classes    int     `yaml:"classes"`     // synthetic class count
	FlipProb   float64 `yaml:"flip_prob"`   // synthetic prediction error rate
}

// LoadEvalConfig reads and parses a YAML evaluation configuration file.
func LoadEvalConfig(path string) (*EvalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading eval config: %w", err)
	}
	var cfg EvalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing eval config: %w", err)
	}
	return &cfg, nil
}

// ValidAverages is the set of recognized precision averaging modes.
var ValidAverages = map[string]bool{
	string(metrics.AverageBinary): true,
	string(metrics.AverageMacro):  true,
	string(metrics.AverageMicro):  true,
}

// ValidNormalizations is the set of recognized confusion-matrix
// normalization modes.
var ValidNormalizations = map[string]bool{
	string(metrics.NormalizeNone): true,
	string(metrics.NormalizeTrue): true,
	string(metrics.NormalizePred): true,
	string(metrics.NormalizeAll):  true,
}

// Validate checks field ranges and mode names.
func (c *EvalConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Partitions < 1 {
		return fmt.Errorf("partitions must be at least 1, got %d", c.Partitions)
	}
	if !ValidAverages[c.Average] {
		return fmt.Errorf("unknown average %q", c.Average)
	}
	if !ValidNormalizations[c.Normalize] {
		return fmt.Errorf("unknown normalize %q", c.Normalize)
	}
	if c.Reviews == "" {
		if c.Rows < 1 {
			return fmt.Errorf("rows must be at least 1 for synthetic data, got %d", c.Rows)
		}
		if c.Classes < 2 {
			return fmt.Errorf("classes must be at least 2 for synthetic data, got %d", c.Classes)
		}
		if c.FlipProb < 0 || c.FlipProb > 1 {
			return fmt.Errorf("flip_prob must be within [0, 1], got %f", c.FlipProb)
		}
	}
	return nil
}
