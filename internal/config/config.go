// Package config loads the lockboost configuration from YAML with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-lockboost/anchor"
	"github.com/cwbudde/algo-lockboost/pipeline"
)

// DefaultHTTPAddr is the listen address of the lookup service.
const DefaultHTTPAddr = ":8080"

// App holds all application configuration.
type App struct {
	// Preset, when set, replaces Pipeline.Anchors with a named anchor set.
	Preset   string          `yaml:"preset"`
	Pipeline pipeline.Config `yaml:"pipeline"`
	HTTP     struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file yields the defaults.
func Load(path string) (*App, error) {
	cfg := &App{Pipeline: pipeline.DefaultConfig()}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LOCKBOOST_PRESET"); v != "" {
		cfg.Preset = v
	}

	if v := os.Getenv("LOCKBOOST_DAILY_PATH"); v != "" {
		cfg.Pipeline.DailyPath = v
	}

	if v := os.Getenv("LOCKBOOST_WEEKLY_PATH"); v != "" {
		cfg.Pipeline.WeeklyPath = v
	}

	if v := os.Getenv("LOCKBOOST_CHART_PATH"); v != "" {
		cfg.Pipeline.ChartPath = v
	}

	if v := os.Getenv("LOCKBOOST_DAILY_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse LOCKBOOST_DAILY_COUNT: %w", err)
		}

		cfg.Pipeline.DailyCount = n
	}

	if v := os.Getenv("LOCKBOOST_HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}

	// Defaults
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = DefaultHTTPAddr
	}

	if err := cfg.ApplyPreset(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyPreset copies the anchors of the configured preset, if any.
func (a *App) ApplyPreset() error {
	if a.Preset == "" {
		return nil
	}

	s, err := anchor.Preset(a.Preset)
	if err != nil {
		return err
	}

	a.Pipeline.Anchors = s

	return nil
}

// Validate checks that the pipeline can run with this configuration.
func (a *App) Validate() error {
	return a.Pipeline.Validate()
}
