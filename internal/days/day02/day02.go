// Package day02 solves "Cube Conundrum".
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/advent/internal/puzzle"
	"github.com/leapstack-labs/advent/internal/registry"
)

func init() {
	registry.MustRegister(2, "Cube Conundrum", PartOne, PartTwo)
}

// bag is the load the elf claims for part one.
var bag = Draw{Red: 12, Green: 13, Blue: 14}

// Draw is one handful of cubes.
type Draw struct {
	Red, Green, Blue int
}

// Fits reports whether d could come out of limit.
func (d Draw) Fits(limit Draw) bool {
	return d.Red <= limit.Red && d.Green <= limit.Green && d.Blue <= limit.Blue
}

// Power is the product of the three counts.
func (d Draw) Power() int64 {
	return int64(d.Red) * int64(d.Green) * int64(d.Blue)
}

// Game is one recorded game.
type Game struct {
	ID    int
	Draws []Draw
}

// Possible reports whether every draw fits limit.
func (g Game) Possible(limit Draw) bool {
	for _, d := range g.Draws {
		if !d.Fits(limit) {
			return false
		}
	}
	return true
}

// Minimum is the smallest bag that could have produced every draw.
func (g Game) Minimum() Draw {
	var m Draw
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// PartOne sums the ids of the games possible with 12 red, 13 green and 14 blue cubes.
func PartOne(input string) (puzzle.Answer, error) {
	games, err := parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var total int64
	for _, g := range games {
		if g.Possible(bag) {
			total += int64(g.ID)
		}
	}
	return puzzle.Num(total), nil
}

// PartTwo sums the power of each game's minimum bag.
func PartTwo(input string) (puzzle.Answer, error) {
	games, err := parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var total int64
	for _, g := range games {
		total += g.Minimum().Power()
	}
	return puzzle.Num(total), nil
}

func parse(input string) ([]Game, error) {
	lines := puzzle.Lines(input)
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := parseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, g)
	}
	return games, nil
}

func parseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("missing ':' in %q", line)
	}
	label, idText, ok := strings.Cut(strings.TrimSpace(head), " ")
	if !ok || label != "Game" {
		return Game{}, fmt.Errorf("expected \"Game <id>\", got %q", head)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, fmt.Errorf("invalid game id %q: %w", idText, err)
	}

	g := Game{ID: id}
	for _, set := range strings.Split(body, ";") {
		d, err := parseDraw(set)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

func parseDraw(set string) (Draw, error) {
	var d Draw
	for _, part := range strings.Split(set, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return Draw{}, fmt.Errorf("expected \"<n> <color>\", got %q", strings.TrimSpace(part))
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return Draw{}, fmt.Errorf("invalid count %q: %w", fields[0], err)
		}
		switch fields[1] {
		case "red":
			d.Red += n
		case "green":
			d.Green += n
		case "blue":
			d.Blue += n
		default:
			return Draw{}, fmt.Errorf("unknown color %q", fields[1])
		}
	}
	return d, nil
}
