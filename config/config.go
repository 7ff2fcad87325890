/*
File    : loxgo/config/config.go
Package : config
*/

// Package config loads optional REPL/driver cosmetics from a YAML file.
// Nothing in loxgo's language semantics is configurable — this only
// covers ambient presentation: prompt text, banner visibility, color,
// history file location, and the driver's default stage when none is
// given on the command line. A missing file is not an error; Default()
// describes the hard-coded behavior the teacher interpreter shipped with.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the REPL/driver cosmetics that can be overridden.
type Config struct {
	Prompt       string `yaml:"prompt"`
	Banner       bool   `yaml:"banner"`
	Color        bool   `yaml:"color"`
	HistoryFile  string `yaml:"history_file"`
	DefaultStage string `yaml:"default_stage"`
}

// Default returns the built-in configuration, matching the values the
// REPL used before any config file existed.
func Default() Config {
	return Config{
		Prompt:       "loxgo> ",
		Banner:       true,
		Color:        true,
		HistoryFile:  ".loxgo_history",
		DefaultStage: "run",
	}
}

// Load reads a YAML config file at path and overlays it onto Default().
// A path that does not exist returns Default() unchanged, not an error —
// the config file is strictly optional.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
