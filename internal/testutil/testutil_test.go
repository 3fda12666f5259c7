package testutil

import (
	"path/filepath"
	"testing"

	"github.com/lepinkainen/doinote/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnv_Path(t *testing.T) {
	env := NewTestEnv(t)

	path := env.Path("notes", "paper.md")
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, filepath.Join(env.RootDir(), "notes", "paper.md"), path)
	assert.Equal(t, env.RootDir(), env.Path())
}

func TestTestEnv_WriteReadFileString(t *testing.T) {
	env := NewTestEnv(t)

	abs := env.WriteFileString("nested/dir/test.md", "content")

	assert.Equal(t, env.Path("nested/dir/test.md"), abs)
	assert.Equal(t, "content", env.ReadFileString("nested/dir/test.md"))
	assert.True(t, env.FileExists("nested/dir/test.md"))
	assert.False(t, env.FileExists("nested/dir/other.md"))
}

func TestTestEnv_WriteNote(t *testing.T) {
	env := NewTestEnv(t)

	env.WriteNote("paper.md", []string{"doi: 10.1/x", "tags:", "  - paper"}, "Body\n")

	env.AssertFileEquals("paper.md", "---\ndoi: 10.1/x\ntags:\n  - paper\n---\nBody\n")
}

func TestTestEnv_MkdirAll(t *testing.T) {
	env := NewTestEnv(t)

	env.MkdirAll("vault/papers")

	assert.DirExists(t, env.Path("vault/papers"))
}

func TestGoldenHelper_AssertGoldenString(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFileString("golden/note.golden", "---\ntitle: \"T\"\n---\n")

	golden := NewGoldenHelper(t, env.Path("golden"))
	golden.AssertGoldenString("note.golden", "---\ntitle: \"T\"\n---\n")
}

func TestGoldenHelper_AssertGoldenJSON(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFileString("golden/records.json", `[{"doi": "10.1/x"}]`)

	golden := NewGoldenHelper(t, env.Path("golden"))
	golden.AssertGoldenJSON("records.json", []byte("[\n  {\n    \"doi\":\"10.1/x\"\n  }\n]"))
}

func TestGoldenHelper_GoldenPath(t *testing.T) {
	golden := NewGoldenHelper(t, "/some/golden/dir")

	assert.Equal(t, "/some/golden/dir/test.golden", golden.GoldenPath("test.golden"))
	assert.False(t, golden.IsUpdateMode())
}

func TestResetConfig(t *testing.T) {
	origKey := config.IdentifierKey
	origDryRun := config.DryRun

	t.Run("inner", func(t *testing.T) {
		ResetConfig(t)

		config.IdentifierKey = origKey + "-changed"
		config.DryRun = !origDryRun

		assert.NotEqual(t, origKey, config.IdentifierKey)
	})

	assert.Equal(t, origKey, config.IdentifierKey)
	assert.Equal(t, origDryRun, config.DryRun)
}

func TestSetTestConfig(t *testing.T) {
	orig := SaveConfigState()

	t.Run("defaults", func(t *testing.T) {
		SetTestConfig(t)

		assert.Equal(t, "doi", config.IdentifierKey)
		assert.Equal(t, "test@example.org", config.CrossrefMailto)
		assert.Zero(t, config.CrossrefRatePerSecond)
		assert.False(t, config.DryRun)
	})

	t.Run("options", func(t *testing.T) {
		SetTestConfig(t,
			WithCrossrefBaseURL("http://registry.test"),
			WithIdentifierKey("reference"),
			WithDryRun(true),
		)

		assert.Equal(t, "http://registry.test", config.CrossrefBaseURL)
		assert.Equal(t, "reference", config.IdentifierKey)
		assert.True(t, config.DryRun)
	})

	assert.Equal(t, orig, SaveConfigState())
}

func TestSetViperValue(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Run("inner", func(t *testing.T) {
		SetViperValue(t, "test.key", "test-value")
		assert.Equal(t, "test-value", viper.GetString("test.key"))
	})
}

func TestSetupDatasetteDB(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	env := NewTestEnv(t)
	dbPath := SetupDatasetteDB(t, env)

	require.Equal(t, env.Path("test.db"), dbPath)
	assert.True(t, viper.GetBool(config.KeyDatasetteOn))
	assert.Equal(t, dbPath, viper.GetString(config.KeyDatasetteDB))
}

func TestSaveRestoreConfigState(t *testing.T) {
	ResetConfig(t)

	config.IdentifierKey = "saved"
	config.CrossrefMailto = "saved@example.org"
	state := SaveConfigState()

	config.IdentifierKey = "modified"
	config.CrossrefMailto = "modified@example.org"
	RestoreConfigState(state)

	assert.Equal(t, "saved", config.IdentifierKey)
	assert.Equal(t, "saved@example.org", config.CrossrefMailto)
}
