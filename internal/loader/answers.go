package loader

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/leapstack-labs/advent/internal/puzzle"
	"gopkg.in/yaml.v3"
)

// Expected holds the known answers for a day, keyed by part.
type Expected map[int]puzzle.Answer

// Get returns the expected answer for part, if one is recorded.
func (e Expected) Get(part int) (puzzle.Answer, bool) {
	a, ok := e[part]
	return a, ok
}

// partKeys are the only keys accepted in answers.yaml.
var partKeys = map[string]int{
	"part1": 1,
	"part2": 2,
}

// LoadExpected reads <inputsDir>/dayNN/answers.yaml. A missing file yields
// an empty Expected and no error.
func LoadExpected(inputsDir string, day int) (Expected, error) {
	path := AnswersPath(inputsDir, day)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Expected{}, nil
		}
		return nil, &AnswersParseError{File: path, Err: err}
	}
	exp, err := ParseExpected(data)
	if err != nil {
		return nil, &AnswersParseError{File: path, Err: err}
	}
	return exp, nil
}

// ParseExpected parses answers.yaml content:
//
//	part1: 142
//	part2: "EZFCHJAB"
func ParseExpected(data []byte) (Expected, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	exp := make(Expected, len(raw))
	for _, key := range keys {
		part, ok := partKeys[key]
		if !ok {
			return nil, &UnknownFieldError{Field: key}
		}
		node := raw[key]
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s: expected a scalar value", key)
		}
		switch node.ShortTag() {
		case "!!int":
			n, err := strconv.ParseInt(node.Value, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			exp[part] = puzzle.Num(n)
		case "!!null":
			// a blank entry means "not solved yet"
		case "!!str":
			exp[part] = puzzle.Str(node.Value)
		default:
			exp[part] = puzzle.ParseAnswer(node.Value)
		}
	}
	return exp, nil
}

// AnswersParseError reports an unreadable or malformed answers.yaml.
type AnswersParseError struct {
	File string
	Err  error
}

func (e *AnswersParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *AnswersParseError) Unwrap() error {
	return e.Err
}

// UnknownFieldError is returned for keys other than part1 and part2.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q (allowed: part1, part2)", e.Field)
}
