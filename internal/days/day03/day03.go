// Package day03 solves "Gear Ratios" on an engine schematic grid.
package day03

import (
	"fmt"

	"github.com/leapstack-labs/advent/internal/puzzle"
	"github.com/leapstack-labs/advent/internal/registry"
)

func init() {
	registry.MustRegister(3, "Gear Ratios", PartOne, PartTwo)
}

type point struct{ row, col int }

// number is a run of digits on one row; cols [start, end).
type number struct {
	value      int
	row        int
	start, end int
}

type schematic struct {
	grid    []string
	numbers []number
}

func parse(input string) (*schematic, error) {
	s := &schematic{grid: puzzle.Lines(input)}
	for row, line := range s.grid {
		spans, err := puzzle.IntSpans(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", row+1, err)
		}
		for _, sp := range spans {
			s.numbers = append(s.numbers, number{value: sp.Value, row: row, start: sp.Start, end: sp.End})
		}
	}
	return s, nil
}

func (s *schematic) at(p point) (byte, bool) {
	if p.row < 0 || p.row >= len(s.grid) {
		return 0, false
	}
	line := s.grid[p.row]
	if p.col < 0 || p.col >= len(line) {
		return 0, false
	}
	return line[p.col], true
}

// neighbors returns the distinct cells around n, excluding n's own digits.
func (s *schematic) neighbors(n number) []point {
	var out []point
	for row := n.row - 1; row <= n.row+1; row++ {
		for col := n.start - 1; col <= n.end; col++ {
			if row == n.row && col >= n.start && col < n.end {
				continue
			}
			p := point{row, col}
			if _, ok := s.at(p); ok {
				out = append(out, p)
			}
		}
	}
	return out
}

func isSymbol(c byte) bool {
	return c != '.' && (c < '0' || c > '9')
}

// PartOne sums every part number, i.e. every number touching a symbol.
func PartOne(input string) (puzzle.Answer, error) {
	s, err := parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var total int64
	for _, n := range s.numbers {
		for _, p := range s.neighbors(n) {
			if c, _ := s.at(p); isSymbol(c) {
				total += int64(n.value)
				break
			}
		}
	}
	return puzzle.Num(total), nil
}

// PartTwo sums the gear ratios: the product of the two numbers around
// every '*' that touches exactly two numbers.
func PartTwo(input string) (puzzle.Answer, error) {
	s, err := parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	gears := make(map[point][]int)
	for _, n := range s.numbers {
		for _, p := range s.neighbors(n) {
			if c, _ := s.at(p); c == '*' {
				gears[p] = append(gears[p], n.value)
			}
		}
	}

	var total int64
	for _, values := range gears {
		if len(values) == 2 {
			total += int64(values[0]) * int64(values[1])
		}
	}
	return puzzle.Num(total), nil
}
