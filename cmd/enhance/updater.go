package enhance

import (
	"github.com/lepinkainen/doinote/internal/citation"
	"github.com/lepinkainen/doinote/internal/config"
	"github.com/lepinkainen/doinote/internal/crossref"
	"github.com/lepinkainen/doinote/internal/obsidian"
	"github.com/lepinkainen/doinote/internal/ratelimit"
)

// NewCrossrefClient builds a Crossref client from the global configuration.
func NewCrossrefClient() *crossref.Client {
	return crossref.NewClient(
		crossref.WithBaseURL(config.CrossrefBaseURL),
		crossref.WithMailto(config.CrossrefMailto),
		crossref.WithUserAgent("doinote/"+config.Version),
		crossref.WithRateLimiter(ratelimit.New("Crossref", config.CrossrefRatePerSecond)),
	)
}

// newUpdater wires an Updater to a vault and the configured registry.
func newUpdater(vault *obsidian.Vault, fetcher citation.Fetcher, notifier citation.Notifier, dryRun bool) *citation.Updater {
	return &citation.Updater{
		Metadata:      vault,
		Documents:     vault,
		Fetcher:       fetcher,
		Notifier:      notifier,
		IdentifierKey: config.IdentifierKey,
		DryRun:        dryRun,
	}
}
