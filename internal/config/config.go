package config

import (
	"github.com/spf13/viper"
)

// Config keys
const (
	KeyIdentifier      = "doi_key"
	KeyCrossrefBaseURL = "crossref.base_url"
	KeyCrossrefMailto  = "crossref.mailto"
	KeyCrossrefRate    = "crossref.rate_per_second"
	KeyDatasetteOn     = "datasette.enabled"
	KeyDatasetteDB     = "datasette.dbfile"
	KeyDatasetteURL    = "datasette.remote_url"
	KeyDatasetteToken  = "datasette.api_token"
)

// Version is the release version, set at build time with
// -ldflags "-X github.com/lepinkainen/doinote/internal/config.Version=..."
var Version = "dev"

// Global configuration variables
var (
	// IdentifierKey is the front matter key holding the DOI
	IdentifierKey string
	// CrossrefBaseURL is the base URL of the Crossref API
	CrossrefBaseURL string
	// CrossrefMailto is the contact address sent to Crossref for the polite pool
	CrossrefMailto string
	// CrossrefRatePerSecond paces Crossref requests, 0 disables pacing
	CrossrefRatePerSecond float64
	// DryRun reports changes without writing notes
	DryRun bool
)

// SetDefaults registers default values for every config key.
func SetDefaults() {
	viper.SetDefault(KeyIdentifier, "doi")
	viper.SetDefault(KeyCrossrefBaseURL, "https://api.crossref.org")
	viper.SetDefault(KeyCrossrefMailto, "")
	viper.SetDefault(KeyCrossrefRate, 5.0)

	viper.SetDefault(KeyDatasetteOn, false)
	viper.SetDefault(KeyDatasetteDB, "./doinote.db")
	viper.SetDefault(KeyDatasetteURL, "")
	viper.SetDefault(KeyDatasetteToken, "")
}

// InitConfig initializes the global configuration
func InitConfig() {
	SetDefaults()

	IdentifierKey = viper.GetString(KeyIdentifier)
	CrossrefBaseURL = viper.GetString(KeyCrossrefBaseURL)
	CrossrefMailto = viper.GetString(KeyCrossrefMailto)
	CrossrefRatePerSecond = viper.GetFloat64(KeyCrossrefRate)
}

// SetDryRun sets the DryRun flag
func SetDryRun(dryRun bool) {
	DryRun = dryRun
}
