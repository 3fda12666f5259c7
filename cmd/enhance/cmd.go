// Package enhance fills the front matter of markdown notes with citation
// metadata looked up by DOI.
package enhance

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/lepinkainen/doinote/internal/citation"
	"github.com/lepinkainen/doinote/internal/config"
	"github.com/lepinkainen/doinote/internal/datastore"
	"github.com/lepinkainen/doinote/internal/fileutil"
	"github.com/lepinkainen/doinote/internal/frontmatter"
	"github.com/lepinkainen/doinote/internal/obsidian"
)

// EnhanceCmd represents the enhance command
type EnhanceCmd struct {
	InputDirs  []string `short:"d" help:"Directories containing markdown notes to enhance (can specify multiple)" required:""`
	Recursive  bool     `short:"r" help:"Scan subdirectories recursively" default:"false"`
	Force      bool     `short:"f" help:"Look up notes that already have title and author" default:"false"`
	JSONOutput string   `help:"Write updated citations to this JSON file"`
}

func (e *EnhanceCmd) Run() error {
	for _, inputDir := range e.InputDirs {
		opts := Options{
			InputDir:   inputDir,
			Recursive:  e.Recursive,
			DryRun:     config.DryRun,
			Force:      e.Force,
			JSONOutput: e.JSONOutput,
		}

		if err := EnhanceNotesFunc(opts); err != nil {
			return err
		}
	}

	return nil
}

// UpdateCmd represents the update command
type UpdateCmd struct {
	File       string `arg:"" help:"Markdown note to update" type:"existingfile"`
	JSONOutput string `help:"Write the updated citation to this JSON file"`
}

func (u *UpdateCmd) Run() error {
	result, err := UpdateFileFunc(context.Background(), u.File)
	if err != nil {
		return err
	}
	if config.DryRun {
		return nil
	}
	return exportCitations([]datastore.Citation{datastore.CitationFromResult(result, now())}, u.JSONOutput)
}

var (
	EnhanceNotesFunc = EnhanceNotes
	UpdateFileFunc   = UpdateFile

	newFetcher = func() citation.Fetcher { return NewCrossrefClient() }
)

// Options holds configuration for the enhance command.
type Options struct {
	// InputDir is the directory containing markdown notes
	InputDir string
	// Recursive determines whether to scan subdirectories
	Recursive bool
	// DryRun shows what would be done without making changes
	DryRun bool
	// Force looks up notes that already carry a title and author
	Force bool
	// JSONOutput is the path of the JSON export, empty to skip
	JSONOutput string
}

// UpdateFile looks up the DOI of a single note and rewrites its front matter.
// Every outcome other than an update is returned as an error.
func UpdateFile(ctx context.Context, path string) (citation.Result, error) {
	updater := newUpdater(obsidian.NewVault(""), newFetcher(), obsidian.LogNotifier{Path: path}, config.DryRun)

	result, err := updater.Update(ctx, path)
	if err != nil {
		return result, err
	}
	if err := result.Err(); err != nil {
		return result, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// pathNotifier logs notices for the note currently being processed.
type pathNotifier struct {
	Path string
}

func (n *pathNotifier) Notify(msg string) {
	obsidian.LogNotifier{Path: n.Path}.Notify(msg)
}

// hasCitation reports whether a note already carries looked-up metadata.
func hasCitation(fm *frontmatter.Frontmatter) bool {
	return fm.Has(citation.KeyTitle) && fm.Has(citation.KeyAuthor)
}

// EnhanceNotes processes markdown notes in a directory one at a time.
func EnhanceNotes(opts Options) error {
	ctx := context.Background()

	slog.Info("Starting enhance process", "dir", opts.InputDir, "recursive", opts.Recursive)

	files, err := fileutil.FindMarkdownFiles(opts.InputDir, opts.Recursive)
	if err != nil {
		return fmt.Errorf("failed to find markdown files: %w", err)
	}

	if len(files) == 0 {
		slog.Info("No markdown files found in directory")
		return nil
	}

	slog.Info("Found markdown files to process", "count", len(files))

	vault := obsidian.NewVault(opts.InputDir)
	notifier := &pathNotifier{}
	updater := newUpdater(vault, newFetcher(), notifier, opts.DryRun)

	successCount := 0
	skipCount := 0
	errorCount := 0
	var citations []datastore.Citation

	for _, file := range files {
		rel, err := filepath.Rel(opts.InputDir, file)
		if err != nil {
			rel = file
		}
		slog.Debug("Processing file", "path", rel)

		fm, err := vault.Frontmatter(ctx, rel)
		if err != nil {
			slog.Warn("Failed to parse file", "path", rel, "error", err)
			errorCount++
			continue
		}

		if !opts.Force && hasCitation(fm) {
			slog.Info("Skipping file (citation present)", "path", rel, "doi", fm.GetString(config.IdentifierKey))
			skipCount++
			continue
		}

		notifier.Path = rel
		result, err := updater.UpdateParsed(ctx, rel, fm)
		if err != nil {
			slog.Warn("Failed to update note", "path", rel, "error", err)
			errorCount++
			continue
		}

		switch result.Outcome {
		case citation.OutcomeUpdated:
			slog.Info("Enhanced note", "path", rel, "doi", result.DOI, "title", result.Work.FirstTitle())
			citations = append(citations, datastore.CitationFromResult(result, now()))
			successCount++
		case citation.OutcomeBlockNotFound:
			slog.Warn("Skipping file (front matter block not replaceable)", "path", rel)
			skipCount++
		default:
			slog.Debug("Skipping file (no DOI)", "path", rel)
			skipCount++
		}
	}

	slog.Info("Enhancement complete",
		"total", len(files),
		"enhanced", successCount,
		"skipped", skipCount,
		"errors", errorCount)

	if opts.DryRun {
		return nil
	}
	return exportCitations(citations, opts.JSONOutput)
}
