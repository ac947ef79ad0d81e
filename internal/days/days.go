// Package days registers every implemented puzzle with the default registry.
//
// Solutions register themselves from init(), so the CLI only needs:
//
//	import _ "github.com/leapstack-labs/advent/internal/days"
package days

import (
	_ "github.com/leapstack-labs/advent/internal/days/day01" // Trebuchet?!
	_ "github.com/leapstack-labs/advent/internal/days/day02" // Cube Conundrum
	_ "github.com/leapstack-labs/advent/internal/days/day03" // Gear Ratios
	_ "github.com/leapstack-labs/advent/internal/days/day04" // Scratchcards
	_ "github.com/leapstack-labs/advent/internal/days/day05" // If You Give A Seed A Fertilizer
)
