// Package day01 solves "Trebuchet?!": recover calibration values from
// the first and last digit of each line.
package day01

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/advent/internal/puzzle"
	"github.com/leapstack-labs/advent/internal/registry"
)

func init() {
	registry.MustRegister(1, "Trebuchet?!", PartOne, PartTwo)
}

var spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// PartOne sums the two-digit values formed by the first and last numeric digit.
func PartOne(input string) (puzzle.Answer, error) {
	return sum(input, false)
}

// PartTwo is PartOne with spelled-out digits counting too. Words may
// overlap, so "eightwo" contributes both 8 and 2.
func PartTwo(input string) (puzzle.Answer, error) {
	return sum(input, true)
}

func sum(input string, words bool) (puzzle.Answer, error) {
	var total int64
	for i, line := range puzzle.Lines(input) {
		v, err := calibration(line, words)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += int64(v)
	}
	return puzzle.Num(total), nil
}

func calibration(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := range line {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("no digit in %q", line)
	}
	return first*10 + last, nil
}

// digitAt reports the digit starting at byte i, if any.
func digitAt(line string, i int, words bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for n, w := range spelled {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}
