// Package config holds the project layout defaults shared by the CLI and
// any tool that needs to locate an advent project on disk.
package config

// Default configuration values.
const (
	DefaultInputsDir   = "inputs"
	DefaultHistoryFile = ".advent/history.db"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultParallel    = 0      // GOMAXPROCS
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "advent.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "advent.yml"

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "ADVENT_"
