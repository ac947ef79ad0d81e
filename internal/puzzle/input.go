package puzzle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var intPattern = regexp.MustCompile(`\d+`)

// normalize converts CRLF line endings so the same input parses on every platform.
func normalize(input string) string {
	return strings.ReplaceAll(input, "\r\n", "\n")
}

// Lines splits input into lines. A trailing newline does not produce
// an empty last line.
func Lines(input string) []string {
	input = strings.TrimSuffix(normalize(input), "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits input into groups of lines separated by one or more blank lines.
func Blocks(input string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range Lines(input) {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// Ints returns every unsigned decimal integer found in s, in order.
func Ints(s string) ([]int, error) {
	matches := intPattern.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", m, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// IntSpan is an integer found in a line together with its byte offsets.
// End is exclusive.
type IntSpan struct {
	Value int
	Start int
	End   int
}

// IntSpans is like Ints but keeps the position of each number.
func IntSpans(s string) ([]IntSpan, error) {
	locs := intPattern.FindAllStringIndex(s, -1)
	out := make([]IntSpan, 0, len(locs))
	for _, loc := range locs {
		n, err := strconv.Atoi(s[loc[0]:loc[1]])
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s[loc[0]:loc[1]], err)
		}
		out = append(out, IntSpan{Value: n, Start: loc[0], End: loc[1]})
	}
	return out, nil
}

// Fields parses whitespace separated integers, failing on the first token that
// is not a number.
func Fields(s string) ([]int, error) {
	tokens := strings.Fields(s)
	out := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", tok, err)
		}
		out = append(out, n)
	}
	return out, nil
}
