package enhance

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lepinkainen/doinote/internal/config"
	"github.com/lepinkainen/doinote/internal/datastore"
	"github.com/lepinkainen/doinote/internal/fileutil"
	"github.com/spf13/viper"
)

// exportCitations writes updated citations to the JSON file and the
// datastores enabled in the configuration.
func exportCitations(citations []datastore.Citation, jsonOutput string) error {
	if len(citations) == 0 {
		return nil
	}

	if jsonOutput != "" {
		if _, err := fileutil.WriteJSONFile(citations, jsonOutput, true); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
	}

	if viper.GetBool(config.KeyDatasetteOn) {
		dbFile := viper.GetString(config.KeyDatasetteDB)
		slog.Info("Writing citations to SQLite", "db", dbFile, "count", len(citations))
		if err := datastore.Export(datastore.NewSQLiteStore(dbFile), citations); err != nil {
			return fmt.Errorf("failed to write citations to %s: %w", dbFile, err)
		}
	}

	if remote := viper.GetString(config.KeyDatasetteURL); remote != "" {
		slog.Info("Sending citations to Datasette", "url", remote, "count", len(citations))
		client := datastore.NewDatasetteClient(remote, viper.GetString(config.KeyDatasetteToken))
		if err := datastore.Export(client, citations); err != nil {
			return fmt.Errorf("failed to send citations to Datasette: %w", err)
		}
	}

	return nil
}

var now = time.Now
