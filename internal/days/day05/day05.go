// Package day05 solves "If You Give A Seed A Fertilizer": push seeds,
// or whole seed ranges, through a chain of almanac maps.
package day05

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/advent/internal/puzzle"
	"github.com/leapstack-labs/advent/internal/registry"
)

func init() {
	registry.MustRegister(5, "If You Give A Seed A Fertilizer", PartOne, PartTwo)
}

var errNoSeeds = errors.New("almanac lists no seeds")

// Interval is the half-open range [Start, Start+Len).
type Interval struct {
	Start, Len int
}

// End is one past the last value.
func (iv Interval) End() int { return iv.Start + iv.Len }

// Rule maps [Src, Src+Len) onto [Dst, Dst+Len).
type Rule struct {
	Dst, Src, Len int
}

// Stage is one "<from>-to-<to> map" block.
type Stage struct {
	From, To string
	Rules    []Rule
}

// Map sends a single value through the stage. Values outside every
// rule map to themselves.
func (s Stage) Map(v int) int {
	for _, r := range s.Rules {
		if v >= r.Src && v < r.Src+r.Len {
			return r.Dst + v - r.Src
		}
	}
	return v
}

// MapIntervals sends whole intervals through the stage. Each interval is
// cut at rule boundaries; the overlapping piece is shifted and the pieces
// before and after it are tried against the rules again. Pieces no rule
// covers pass through unchanged, so the total length is preserved.
func (s Stage) MapIntervals(in []Interval) []Interval {
	queue := append([]Interval(nil), in...)
	var out []Interval
	for len(queue) > 0 {
		iv := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		matched := false
		for _, r := range s.Rules {
			lo := max(iv.Start, r.Src)
			hi := min(iv.End(), r.Src+r.Len)
			if lo >= hi {
				continue
			}
			out = append(out, Interval{Start: r.Dst + lo - r.Src, Len: hi - lo})
			if iv.Start < lo {
				queue = append(queue, Interval{Start: iv.Start, Len: lo - iv.Start})
			}
			if hi < iv.End() {
				queue = append(queue, Interval{Start: hi, Len: iv.End() - hi})
			}
			matched = true
			break
		}
		if !matched {
			out = append(out, iv)
		}
	}
	return out
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds  []int
	Stages []Stage
}

// Location maps a seed through every stage.
func (a *Almanac) Location(seed int) int {
	v := seed
	for _, s := range a.Stages {
		v = s.Map(v)
	}
	return v
}

// Locations maps an interval of seeds through every stage.
func (a *Almanac) Locations(seeds Interval) []Interval {
	ivs := []Interval{seeds}
	for _, s := range a.Stages {
		ivs = s.MapIntervals(ivs)
	}
	return ivs
}

// SeedRanges reads the seed list as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("seed ranges need pairs, got %d numbers", len(a.Seeds))
	}
	out := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Interval{Start: a.Seeds[i], Len: a.Seeds[i+1]})
	}
	return out, nil
}

// PartOne is the lowest location of any listed seed.
func PartOne(input string) (puzzle.Answer, error) {
	a, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(a.Seeds) == 0 {
		return puzzle.Answer{}, errNoSeeds
	}
	lowest := a.Location(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		lowest = min(lowest, a.Location(seed))
	}
	return puzzle.Num(int64(lowest)), nil
}

// PartTwo is the lowest location reachable from any seed range.
func PartTwo(input string) (puzzle.Answer, error) {
	a, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ranges, err := a.SeedRanges()
	if err != nil {
		return puzzle.Answer{}, err
	}

	lowest, found := 0, false
	for _, r := range ranges {
		for _, iv := range a.Locations(r) {
			if iv.Len == 0 {
				continue
			}
			if !found || iv.Start < lowest {
				lowest, found = iv.Start, true
			}
		}
	}
	if !found {
		return puzzle.Answer{}, errNoSeeds
	}
	return puzzle.Num(int64(lowest)), nil
}

// Parse reads the seed line and every map block.
func Parse(input string) (*Almanac, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) == 0 {
		return nil, errors.New("empty almanac")
	}

	head := strings.Join(blocks[0], " ")
	seedText, ok := strings.CutPrefix(head, "seeds:")
	if !ok {
		return nil, fmt.Errorf("expected \"seeds:\" line, got %q", blocks[0][0])
	}
	seeds, err := puzzle.Fields(seedText)
	if err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}

	a := &Almanac{Seeds: seeds}
	for _, block := range blocks[1:] {
		stage, err := parseStage(block)
		if err != nil {
			return nil, err
		}
		a.Stages = append(a.Stages, stage)
	}
	return a, nil
}

func parseStage(block []string) (Stage, error) {
	name, ok := strings.CutSuffix(strings.TrimSpace(block[0]), " map:")
	if !ok {
		return Stage{}, fmt.Errorf("expected \"<from>-to-<to> map:\", got %q", block[0])
	}
	var s Stage
	if from, to, ok := strings.Cut(name, "-to-"); ok {
		s.From, s.To = from, to
	} else {
		s.From = name
	}

	for _, line := range block[1:] {
		nums, err := puzzle.Fields(line)
		if err != nil {
			return Stage{}, fmt.Errorf("%s map: %w", name, err)
		}
		if len(nums) != 3 {
			return Stage{}, fmt.Errorf("%s map: expected 3 numbers, got %q", name, line)
		}
		s.Rules = append(s.Rules, Rule{Dst: nums[0], Src: nums[1], Len: nums[2]})
	}
	return s, nil
}
