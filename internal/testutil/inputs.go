package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Day describes the files to create for one day of an inputs tree.
// Empty fields are not written.
type Day struct {
	Input   string
	Answers string
}

// WriteInputs lays out <root>/dayNN/{input.txt,answers.yaml} in a fresh
// temporary directory and returns its path.
func WriteInputs(t testing.TB, days map[int]Day) string {
	t.Helper()
	root := t.TempDir()
	for day, files := range days {
		dir := filepath.Join(root, fmt.Sprintf("day%02d", day))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
		if files.Input != "" {
			writeFile(t, filepath.Join(dir, "input.txt"), files.Input)
		}
		if files.Answers != "" {
			writeFile(t, filepath.Join(dir, "answers.yaml"), files.Answers)
		}
	}
	return root
}

func writeFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
