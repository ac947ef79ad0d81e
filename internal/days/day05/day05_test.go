package day05

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leapstack-labs/advent/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	return string(data)
}

func TestPartOne_Sample(t *testing.T) {
	got, err := PartOne(sample(t))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Num(35), got)
}

func TestPartTwo_Sample(t *testing.T) {
	got, err := PartTwo(sample(t))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Num(46), got)
}

func TestPartTwo_SampleWithCRLF(t *testing.T) {
	got, err := PartTwo(toCRLF(sample(t)))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Num(46), got)
}

func toCRLF(s string) string {
	out := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, '\r')
		}
		out = append(out, s[i])
	}
	return string(out)
}

func TestParse_Sample(t *testing.T) {
	a, err := Parse(sample(t))
	require.NoError(t, err)
	assert.Equal(t, []int{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Stages, 7)
	assert.Equal(t, "seed", a.Stages[0].From)
	assert.Equal(t, "soil", a.Stages[0].To)
	assert.Equal(t, "location", a.Stages[6].To)
	assert.Equal(t, Rule{Dst: 50, Src: 98, Len: 2}, a.Stages[0].Rules[0])
}

func TestAlmanac_Location(t *testing.T) {
	a, err := Parse(sample(t))
	require.NoError(t, err)
	want := map[int]int{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, loc := range want {
		assert.Equal(t, loc, a.Location(seed), "seed %d", seed)
	}
}

func sorted(ivs []Interval) []Interval {
	out := append([]Interval(nil), ivs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func TestStage_MapIntervals(t *testing.T) {
	stage := Stage{Rules: []Rule{
		{Dst: 100, Src: 10, Len: 5}, // 10..14 -> 100..104
		{Dst: 0, Src: 20, Len: 2},   // 20..21 -> 0..1
	}}

	tests := []struct {
		name string
		in   Interval
		want []Interval
	}{
		{
			name: "untouched",
			in:   Interval{Start: 0, Len: 5},
			want: []Interval{{Start: 0, Len: 5}},
		},
		{
			name: "fully inside",
			in:   Interval{Start: 11, Len: 2},
			want: []Interval{{Start: 101, Len: 2}},
		},
		{
			name: "before inside after",
			in:   Interval{Start: 8, Len: 10},
			want: []Interval{{Start: 8, Len: 2}, {Start: 15, Len: 3}, {Start: 100, Len: 5}},
		},
		{
			name: "spans two rules",
			in:   Interval{Start: 12, Len: 10},
			want: []Interval{{Start: 0, Len: 2}, {Start: 15, Len: 5}, {Start: 102, Len: 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stage.MapIntervals([]Interval{tt.in})
			if diff := cmp.Diff(tt.want, sorted(got)); diff != "" {
				t.Errorf("MapIntervals() mismatch (-want +got):\n%s", diff)
			}
			total := 0
			for _, iv := range got {
				total += iv.Len
			}
			assert.Equal(t, tt.in.Len, total, "length must be preserved")
		})
	}
}

func TestPartTwo_AgreesWithBruteForce(t *testing.T) {
	a, err := Parse(sample(t))
	require.NoError(t, err)
	ranges, err := a.SeedRanges()
	require.NoError(t, err)

	brute := -1
	for _, r := range ranges {
		for seed := r.Start; seed < r.End(); seed++ {
			if loc := a.Location(seed); brute < 0 || loc < brute {
				brute = loc
			}
		}
	}
	got, err := PartTwo(sample(t))
	require.NoError(t, err)
	assert.Equal(t, int64(brute), got.Int())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "empty almanac"},
		{"no seeds line", "plants: 1 2\n", "expected \"seeds:\""},
		{"bad seed", "seeds: 1 x\n", "seeds:"},
		{"bad header", "seeds: 1 2\n\nseed-to-soil\n1 2 3\n", "map:"},
		{"short rule", "seeds: 1 2\n\nseed-to-soil map:\n1 2\n", "expected 3 numbers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPartTwo_OddSeedCount(t *testing.T) {
	_, err := PartTwo("seeds: 1 2 3\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pairs")
}

func TestPartOne_NoSeeds(t *testing.T) {
	_, err := PartOne("seeds:\n")
	assert.ErrorIs(t, err, errNoSeeds)
}
