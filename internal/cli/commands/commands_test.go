package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/advent/internal/cli/config"
	"github.com/leapstack-labs/advent/internal/cli/output"
	"github.com/leapstack-labs/advent/internal/cli/testutil"

	// registers the solutions
	_ "github.com/leapstack-labs/advent/internal/days"
)

func TestNewAllCommand(t *testing.T) {
	cmd := NewAllCommand()

	assert.Equal(t, "all", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("days"), "flag %q should exist", "days")
}

func TestNewDayCommand(t *testing.T) {
	cmd := NewDayCommand()

	assert.Equal(t, "day <day> [part]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	watch := cmd.Flags().Lookup("watch")
	require.NotNil(t, watch)
	assert.Equal(t, "w", watch.Shorthand)
}

func TestNewFileCommand(t *testing.T) {
	cmd := NewFileCommand()

	assert.Equal(t, "file <day> <part> <path>", cmd.Use)
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check [day...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewListCommand(t *testing.T) {
	cmd := NewListCommand()

	assert.Equal(t, "list", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewHistoryCommand(t *testing.T) {
	cmd := NewHistoryCommand()

	assert.Equal(t, "history", cmd.Use)
	for _, flag := range []string{"day", "part", "limit"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestParsePart(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"2", 2, false},
		{"both", 0, false},
		{"0", 0, false},
		{"two", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePart(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseDay("five")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid day "five"`)
}

// loadProject loads the config of a fresh test project, the way the root
// command would, and returns the project directory.
func loadProject(t *testing.T, extra string) string {
	t.Helper()
	dir := testutil.SetupTestProject(t)
	cfgPath := filepath.Join(dir, "advent.yaml")
	if extra != "" {
		testutil.WriteFile(t, cfgPath, "inputs_dir: inputs\nhistory_path: .advent/history.db\n"+extra)
	}

	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	_, err := config.LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	return dir
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithStderr(t, cmd, args...)
	return out, err
}

func executeWithStderr(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDayCommand_Execute(t *testing.T) {
	loadProject(t, "")

	out, err := execute(t, NewDayCommand(), "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"day02 part01: 8", "day02 part02: 2286"}, testutil.ResultLines(out))

	out, err = execute(t, NewDayCommand(), "4", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"day04 part02: 30"}, testutil.ResultLines(out))
}

func TestDayCommand_MissingInput(t *testing.T) {
	loadProject(t, "")

	out, err := execute(t, NewDayCommand(), "3")
	require.NoError(t, err)

	lines := testutil.ResultLines(out)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "day03 part01: Err: "), lines[0])
}

func TestDayCommand_BadArgs(t *testing.T) {
	loadProject(t, "")

	_, err := execute(t, NewDayCommand(), "x")
	require.Error(t, err)

	_, err = execute(t, NewDayCommand(), "2", "3")
	require.Error(t, err)

	_, err = execute(t, NewDayCommand())
	require.Error(t, err)
}

func TestAllCommand_Execute(t *testing.T) {
	loadProject(t, "")

	out, err := execute(t, NewAllCommand(), "--days", "4,2")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"day04 part01: 13",
		"day04 part02: 30",
		"day02 part01: 8",
		"day02 part02: 2286",
	}, testutil.ResultLines(out))
}

func TestAllCommand_ConfiguredDays(t *testing.T) {
	loadProject(t, "days: [2]\noutput: json\n")

	out, err := execute(t, NewAllCommand())
	require.NoError(t, err)

	var doc output.ResultsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 2)
	assert.Equal(t, 2, doc.Summary.OK)
	assert.True(t, doc.Summary.Passed)
}

func TestAllCommand_WarnsMissingInputsDir(t *testing.T) {
	dir := loadProject(t, "")
	config.GetCurrentConfig().InputsDir = filepath.Join(dir, "missing")

	out, errOut, err := executeWithStderr(t, NewAllCommand(), "--days", "2")
	require.NoError(t, err)
	assert.Contains(t, errOut, "inputs directory does not exist")
	assert.Len(t, testutil.ResultLines(out), 2)
}

func TestFileCommand_Stdin(t *testing.T) {
	loadProject(t, "")

	cmd := NewFileCommand()
	cmd.SetIn(strings.NewReader(testutil.Day04Sample))
	out, err := execute(t, cmd, "4", "1", "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"day04 part01: 13"}, testutil.ResultLines(out))
}

func TestFileCommand_MissingFile(t *testing.T) {
	dir := loadProject(t, "")

	_, err := execute(t, NewFileCommand(), "4", "both", filepath.Join(dir, "nope.txt"))
	require.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	t.Run("passes", func(t *testing.T) {
		loadProject(t, "")

		out, err := execute(t, NewCheckCommand())
		require.NoError(t, err)
		assert.Contains(t, out, "2 ok, 0 mismatch, 0 errors, 0 unchecked")
	})

	t.Run("mismatch fails", func(t *testing.T) {
		dir := loadProject(t, "")
		testutil.WriteFile(t, filepath.Join(dir, "inputs", "day02", "answers.yaml"), "part1: 9\n")

		out, err := execute(t, NewCheckCommand(), "2")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCheckFailed))
		assert.Contains(t, err.Error(), "1 mismatched, 0 failed")
		assert.Contains(t, out, "day02 part01: 8 (expected 9)")
	})

	t.Run("malformed fixture fails", func(t *testing.T) {
		dir := loadProject(t, "")
		testutil.WriteFile(t, filepath.Join(dir, "inputs", "day02", "answers.yaml"), "part1: [\n")

		out, err := execute(t, NewCheckCommand())
		require.ErrorIs(t, err, ErrCheckFailed)
		assert.Contains(t, err.Error(), "0 mismatched, 2 failed")
		assert.Contains(t, out, "day02 part01: Err: ")
		assert.Contains(t, out, "answers.yaml")
	})
}

func TestListCommand_WarnsMissingInputsDir(t *testing.T) {
	dir := loadProject(t, "")
	config.GetCurrentConfig().InputsDir = filepath.Join(dir, "missing")

	_, errOut, err := executeWithStderr(t, NewListCommand())
	require.NoError(t, err)
	assert.Contains(t, errOut, "--inputs-dir")
}

func TestListCommand(t *testing.T) {
	dir := loadProject(t, "output: json\n")
	t.Cleanup(func() {
		_, err := os.Stat(filepath.Join(dir, ".advent", "history.db"))
		assert.True(t, os.IsNotExist(err), "list should not open the history database")
	})

	out, err := execute(t, NewListCommand())
	require.NoError(t, err)

	var doc output.ListOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.NotEmpty(t, doc.Days)

	byDay := make(map[int]output.DayInfo)
	for _, d := range doc.Days {
		byDay[d.Day] = d
	}
	assert.True(t, byDay[2].HasInput)
	assert.True(t, byDay[2].HasAnswers)
	assert.True(t, byDay[4].HasInput)
	assert.False(t, byDay[4].HasAnswers)
	assert.False(t, byDay[1].HasInput)
}

func TestHistoryCommand(t *testing.T) {
	t.Run("records solves", func(t *testing.T) {
		loadProject(t, "")

		_, err := execute(t, NewDayCommand(), "2")
		require.NoError(t, err)

		config.GetCurrentConfig().Output = "json"
		out, err := execute(t, NewHistoryCommand(), "--part", "2")
		require.NoError(t, err)

		var doc output.HistoryOutput
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		require.Len(t, doc.Solves, 1)
		assert.Equal(t, "2286", doc.Solves[0].Answer)
		assert.Equal(t, 2, doc.Solves[0].Day)
	})

	t.Run("disabled", func(t *testing.T) {
		loadProject(t, "")
		config.GetCurrentConfig().HistoryPath = ""

		_, err := execute(t, NewHistoryCommand())
		require.ErrorIs(t, err, ErrHistoryDisabled)
	})

	t.Run("negative limit", func(t *testing.T) {
		loadProject(t, "")

		_, err := execute(t, NewHistoryCommand(), "--limit", "-1")
		require.Error(t, err)
	})
}
