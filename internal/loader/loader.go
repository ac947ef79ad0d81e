// Package loader locates puzzle inputs on disk and parses the optional
// answers.yaml fixtures that sit next to them.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File names inside a day directory.
const (
	InputFile   = "input.txt"
	AnswersFile = "answers.yaml"
	StdinPath   = "-"
)

// ErrInputNotFound is returned when a day's input file does not exist.
var ErrInputNotFound = errors.New("input not found")

// DayDir returns <inputsDir>/dayNN.
func DayDir(inputsDir string, day int) string {
	return filepath.Join(inputsDir, fmt.Sprintf("day%02d", day))
}

// InputPath returns the default input file for a day.
func InputPath(inputsDir string, day int) string {
	return filepath.Join(DayDir(inputsDir, day), InputFile)
}

// AnswersPath returns the fixture file for a day.
func AnswersPath(inputsDir string, day int) string {
	return filepath.Join(DayDir(inputsDir, day), AnswersFile)
}

// ReadInput reads a puzzle input. The path "-" reads stdin instead.
func ReadInput(path string, stdin io.Reader) (string, error) {
	if path == StdinPath {
		if stdin == nil {
			return "", fmt.Errorf("reading stdin: no reader")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("error reading %s: %w", path, ErrInputNotFound)
		}
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	return string(data), nil
}

// Exists reports whether path is an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
