package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GoldenHelper compares generated notes and exports with files under a
// golden directory. With UPDATE_GOLDEN=true the golden files are rewritten.
type GoldenHelper struct {
	t          *testing.T
	goldenDir  string
	updateMode bool
}

// NewGoldenHelper creates a new golden file helper rooted at goldenDir.
func NewGoldenHelper(t *testing.T, goldenDir string) *GoldenHelper {
	t.Helper()

	return &GoldenHelper{
		t:          t,
		goldenDir:  goldenDir,
		updateMode: os.Getenv("UPDATE_GOLDEN") == "true",
	}
}

// GoldenPath returns the full path to a golden file.
func (g *GoldenHelper) GoldenPath(name string) string {
	return filepath.Join(g.goldenDir, name)
}

// IsUpdateMode returns true if golden files should be updated.
func (g *GoldenHelper) IsUpdateMode() bool {
	return g.updateMode
}

// AssertGoldenString compares actual with the golden file, or rewrites the
// golden file in update mode.
func (g *GoldenHelper) AssertGoldenString(name, actual string) {
	g.t.Helper()

	golden, ok := g.golden(name, actual)
	if !ok {
		return
	}
	assert.Equal(g.t, golden, actual, "content does not match golden file %s", name)
}

// AssertGoldenJSON is AssertGoldenString for JSON, ignoring formatting differences.
func (g *GoldenHelper) AssertGoldenJSON(name string, actual []byte) {
	g.t.Helper()

	golden, ok := g.golden(name, string(actual))
	if !ok {
		return
	}
	assert.JSONEq(g.t, golden, string(actual), "JSON content does not match golden file %s", name)
}

func (g *GoldenHelper) golden(name, actual string) (string, bool) {
	g.t.Helper()

	goldenPath := g.GoldenPath(name)

	if g.updateMode {
		require.NoError(g.t, os.MkdirAll(filepath.Dir(goldenPath), 0o755), "failed to create golden file directory")
		require.NoError(g.t, os.WriteFile(goldenPath, []byte(actual), 0o644), "failed to update golden file")
		g.t.Logf("Updated golden file: %s", goldenPath)
		return "", false
	}

	content, err := os.ReadFile(goldenPath)
	require.NoError(g.t, err, "failed to read golden file %s", goldenPath)
	return string(content), true
}
