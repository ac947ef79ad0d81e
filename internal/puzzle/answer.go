// Package puzzle holds the types and input helpers shared by every day's solver.
package puzzle

import (
	"encoding/json"
	"strconv"
)

// Answer is the result of one puzzle part. Most parts produce a number,
// a few produce text.
type Answer struct {
	num   int64
	str   string
	isStr bool
}

// Num returns a numeric answer.
func Num(n int64) Answer {
	return Answer{num: n}
}

// Str returns a text answer.
func Str(s string) Answer {
	return Answer{str: s, isStr: true}
}

// IsNum reports whether the answer is numeric.
func (a Answer) IsNum() bool {
	return !a.isStr
}

// Int returns the numeric value. Text answers return 0.
func (a Answer) Int() int64 {
	return a.num
}

// String renders the bare value.
func (a Answer) String() string {
	if a.isStr {
		return a.str
	}
	return strconv.FormatInt(a.num, 10)
}

// Equal reports whether two answers have the same kind and value.
func (a Answer) Equal(b Answer) bool {
	return a == b
}

// MarshalJSON encodes numbers as JSON numbers and text as JSON strings.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.isStr {
		return json.Marshal(a.str)
	}
	return json.Marshal(a.num)
}

// ParseAnswer turns a stored or configured value back into an Answer.
// Anything that parses as a base-10 integer is numeric.
func ParseAnswer(s string) Answer {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Num(n)
	}
	return Str(s)
}

// PartFunc solves one part of a puzzle from its raw input.
type PartFunc func(input string) (Answer, error)
