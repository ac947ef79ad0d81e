// Package day04 solves "Scratchcards".
package day04

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/advent/internal/puzzle"
	"github.com/leapstack-labs/advent/internal/registry"
)

func init() {
	registry.MustRegister(4, "Scratchcards", PartOne, PartTwo)
}

// Card is a scratchcard reduced to how many of its numbers are winners.
type Card struct {
	ID       int
	Matching int
}

// Points is 2^(matching-1), or 0 without matches.
func (c Card) Points() int64 {
	if c.Matching == 0 {
		return 0
	}
	return 1 << (c.Matching - 1)
}

// PartOne sums the points of every card.
func PartOne(input string) (puzzle.Answer, error) {
	cards, err := parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var total int64
	for _, c := range cards {
		total += c.Points()
	}
	return puzzle.Num(total), nil
}

// PartTwo counts cards once every card has won copies of the cards
// following it. Copies past the end of the table are not awarded.
func PartTwo(input string) (puzzle.Answer, error) {
	cards, err := parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	// Copies only flow forward, so one pass in card order settles every count.
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matching && j < len(cards); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}
	return puzzle.Num(total), nil
}

func parse(input string) ([]Card, error) {
	lines := puzzle.Lines(input)
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		c, err := parseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("missing ':' in %q", line)
	}
	fields := strings.Fields(head)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, fmt.Errorf("expected \"Card <id>\", got %q", head)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card id %q: %w", fields[1], err)
	}

	winText, haveText, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("card %d: missing '|'", id)
	}
	winners, err := puzzle.Fields(winText)
	if err != nil {
		return Card{}, fmt.Errorf("card %d winners: %w", id, err)
	}
	have, err := puzzle.Fields(haveText)
	if err != nil {
		return Card{}, fmt.Errorf("card %d numbers: %w", id, err)
	}

	winning := make(map[int]struct{}, len(winners))
	for _, w := range winners {
		winning[w] = struct{}{}
	}
	c := Card{ID: id}
	for _, n := range have {
		if _, ok := winning[n]; ok {
			c.Matching++
		}
	}
	return c, nil
}
