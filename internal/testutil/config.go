package testutil

import (
	"testing"

	"github.com/lepinkainen/doinote/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	IdentifierKey         string
	CrossrefBaseURL       string
	CrossrefMailto        string
	CrossrefRatePerSecond float64
	DryRun                bool
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		IdentifierKey:         config.IdentifierKey,
		CrossrefBaseURL:       config.CrossrefBaseURL,
		CrossrefMailto:        config.CrossrefMailto,
		CrossrefRatePerSecond: config.CrossrefRatePerSecond,
		DryRun:                config.DryRun,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.IdentifierKey = state.IdentifierKey
	config.CrossrefBaseURL = state.CrossrefBaseURL
	config.CrossrefMailto = state.CrossrefMailto
	config.CrossrefRatePerSecond = state.CrossrefRatePerSecond
	config.DryRun = state.DryRun
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfigOption is a functional option for configuring test config.
type SetTestConfigOption func(*ConfigState)

// WithCrossrefBaseURL points the Crossref client at a test server.
func WithCrossrefBaseURL(url string) SetTestConfigOption {
	return func(s *ConfigState) {
		s.CrossrefBaseURL = url
	}
}

// WithIdentifierKey sets the front matter key holding the DOI.
func WithIdentifierKey(key string) SetTestConfigOption {
	return func(s *ConfigState) {
		s.IdentifierKey = key
	}
}

// WithDryRun sets the DryRun option.
func WithDryRun(v bool) SetTestConfigOption {
	return func(s *ConfigState) {
		s.DryRun = v
	}
}

// SetTestConfig sets up a test configuration with common defaults: the "doi"
// key, no pacing, and a Crossref URL that is never reachable.
// It saves the current state and restores it when the test completes.
func SetTestConfig(t *testing.T, opts ...SetTestConfigOption) {
	t.Helper()

	ResetConfig(t)

	options := ConfigState{
		IdentifierKey:   "doi",
		CrossrefBaseURL: "http://127.0.0.1:0",
		CrossrefMailto:  "test@example.org",
	}
	for _, opt := range opts {
		opt(&options)
	}

	RestoreConfigState(options)
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// viper has no Unset, a key that was unset before stays set.
	})
}

// SetupDatasetteDB enables the local SQLite export into the test environment
// and returns the database path.
func SetupDatasetteDB(t *testing.T, env *TestEnv) string {
	t.Helper()

	dbPath := env.Path("test.db")

	SetViperValue(t, config.KeyDatasetteOn, true)
	SetViperValue(t, config.KeyDatasetteDB, dbPath)

	return dbPath
}
