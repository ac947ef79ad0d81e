package puzzle

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswer_String(t *testing.T) {
	assert.Equal(t, "142", Num(142).String())
	assert.Equal(t, "-7", Num(-7).String())
	assert.Equal(t, "EZFCHJAB", Str("EZFCHJAB").String())
}

func TestAnswer_Kind(t *testing.T) {
	assert.True(t, Num(1).IsNum())
	assert.False(t, Str("1").IsNum())
	assert.False(t, Num(1).Equal(Str("1")), "kinds must match")
	assert.True(t, Num(35).Equal(Num(35)))
}

func TestAnswer_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Answer{"n": Num(46), "s": Str("abc")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":46,"s":"abc"}`, string(data))
}

func TestParseAnswer(t *testing.T) {
	assert.Equal(t, Num(2286), ParseAnswer("2286"))
	assert.Equal(t, Str("12a"), ParseAnswer("12a"))
	assert.Equal(t, Str(""), ParseAnswer(""))
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "trailing newline", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "no trailing newline", input: "a\nb", want: []string{"a", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "inner blank kept", input: "a\n\nb\n", want: []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Lines(tt.input)); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	input := "seeds: 1 2\r\n\r\nx map:\r\n1 2 3\r\n\r\n\r\ny map:\r\n4 5 6\r\n"
	want := [][]string{
		{"seeds: 1 2"},
		{"x map:", "1 2 3"},
		{"y map:", "4 5 6"},
	}
	if diff := cmp.Diff(want, Blocks(input)); diff != "" {
		t.Errorf("Blocks() mismatch (-want +got):\n%s", diff)
	}
}

func TestInts(t *testing.T) {
	got, err := Ints("Card  12: 41 48 | 83 6")
	require.NoError(t, err)
	assert.Equal(t, []int{12, 41, 48, 83, 6}, got)

	got, err = Ints("no numbers")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Ints("99999999999999999999999")
	assert.Error(t, err)
}

func TestIntSpans(t *testing.T) {
	got, err := IntSpans("467..114..")
	require.NoError(t, err)
	assert.Equal(t, []IntSpan{
		{Value: 467, Start: 0, End: 3},
		{Value: 114, Start: 5, End: 8},
	}, got)
}

func TestFields(t *testing.T) {
	got, err := Fields(" 83 86  6 31 ")
	require.NoError(t, err)
	assert.Equal(t, []int{83, 86, 6, 31}, got)

	_, err = Fields("1 x 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}
