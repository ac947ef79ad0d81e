// Package config provides configuration management for the advent CLI.
//
// Values are layered with koanf: built-in defaults, then advent.yaml, then
// ADVENT_* environment variables, then explicitly set flags.
package config

import (
	sharedcfg "github.com/leapstack-labs/advent/internal/config"
)

// Config holds all CLI configuration options.
type Config struct {
	InputsDir   string `koanf:"inputs_dir"`
	HistoryPath string `koanf:"history_path"` // empty disables history
	Output      string `koanf:"output"`
	Verbose     bool   `koanf:"verbose"`
	Parallel    int    `koanf:"parallel"`
	Days        []int  `koanf:"days"` // restricts `all`; empty means every day

	// ProjectRoot is the directory relative paths were resolved against.
	ProjectRoot string `koanf:"-"`
}

// HistoryEnabled reports whether solves should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.HistoryPath != ""
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultInputsDir   = sharedcfg.DefaultInputsDir
	DefaultHistoryFile = sharedcfg.DefaultHistoryFile
	DefaultOutput      = sharedcfg.DefaultOutput
	DefaultParallel    = sharedcfg.DefaultParallel
)

// Default returns a Config holding only defaults, rooted at the working directory.
func Default() *Config {
	return &Config{
		InputsDir:   DefaultInputsDir,
		HistoryPath: DefaultHistoryFile,
		Output:      DefaultOutput,
		Parallel:    DefaultParallel,
	}
}
