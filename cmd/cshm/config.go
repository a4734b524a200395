package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cshm/model"
	"github.com/katalvlaran/cshm/optimizer"
	"gopkg.in/yaml.v3"
)

// cliConfig is the optional --config file shape: profile constant
// overrides per mode, plus a metal-indicator override (spec.md §3.4).
// Absent a config file, built-in defaults apply (SPEC_FULL.md §3.3).
type cliConfig struct {
	MetalIndicators []string          `yaml:"metalIndicators"`
	Default         *profileOverrides `yaml:"default"`
	Intensive       *profileOverrides `yaml:"intensive"`
}

// profileOverrides mirrors the subset of optimizer.Profile an operator may
// reasonably want to tune without recompiling.
type profileOverrides struct {
	GridSteps          *int     `yaml:"gridSteps"`
	GridStride         *int     `yaml:"gridStride"`
	NumRestarts        *int     `yaml:"numRestarts"`
	StepsPerRun        *int     `yaml:"stepsPerRun"`
	NoImprovementLimit *int     `yaml:"noImprovementLimit"`
	StartTemp          *float64 `yaml:"startTemp"`
	MinTemp            *float64 `yaml:"minTemp"`
}

// loadConfig reads path (if non-empty), applies its overrides as global
// process state (metal indicators, optimizer profile constants), and
// returns the parsed config for reference. An empty path is not an error:
// it means "use built-in defaults," and loadConfig does nothing.
func loadConfig(path string) (*cliConfig, error) {
	if path == "" {
		return &cliConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newInputError(fmt.Sprintf("reading config %s: %v", path, err))
	}

	var cfg cliConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, newInputError(fmt.Sprintf("parsing config %s: %v", path, err))
	}

	if len(cfg.MetalIndicators) > 0 {
		overridden := make(map[string]bool, len(cfg.MetalIndicators))
		for _, el := range cfg.MetalIndicators {
			overridden[el] = true
		}
		model.DefaultMetalIndicators = overridden
	}

	if cfg.Default != nil {
		optimizer.SetDefaultProfile(cfg.Default.apply(optimizer.DefaultProfile()))
	}
	if cfg.Intensive != nil {
		optimizer.SetIntensiveProfile(cfg.Intensive.apply(optimizer.IntensiveProfile()))
	}

	return &cfg, nil
}

// apply overrides the named fields of p with non-nil config entries.
func (o *profileOverrides) apply(p optimizer.Profile) optimizer.Profile {
	if o == nil {
		return p
	}
	if o.GridSteps != nil {
		p.GridSteps = *o.GridSteps
	}
	if o.GridStride != nil {
		p.GridStride = *o.GridStride
	}
	if o.NumRestarts != nil {
		p.NumRestarts = *o.NumRestarts
	}
	if o.StepsPerRun != nil {
		p.StepsPerRun = *o.StepsPerRun
	}
	if o.NoImprovementLimit != nil {
		p.NoImprovementLimit = *o.NoImprovementLimit
	}
	if o.StartTemp != nil {
		p.StartTemp = *o.StartTemp
	}
	if o.MinTemp != nil {
		p.MinTemp = *o.MinTemp
	}
	return p
}
