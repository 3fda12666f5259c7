package citation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lepinkainen/doinote/internal/crossref"
	doierrors "github.com/lepinkainen/doinote/internal/errors"
	"github.com/lepinkainen/doinote/internal/frontmatter"
)

// DefaultIdentifierKey is the front matter key holding the DOI.
const DefaultIdentifierKey = "doi"

// Notice texts shown to the user.
const (
	NoticeMissingIdentifier = "DOI not found in front matter"
	NoticeFetchFailed       = "Error fetching metadata: "
	NoticeBlockNotFound     = "No front matter block to replace; document left unchanged"
	NoticeUpdated           = "Metadata updated successfully"
)

// MetadataCache returns the parsed front matter of a document.
type MetadataCache interface {
	Frontmatter(ctx context.Context, path string) (*frontmatter.Frontmatter, error)
}

// DocumentStore reads and writes whole documents.
type DocumentStore interface {
	Read(ctx context.Context, path string) (string, error)
	Modify(ctx context.Context, path, content string) error
}

// Fetcher looks up the citation record for a DOI.
type Fetcher interface {
	Fetch(ctx context.Context, doi string) (*crossref.Work, error)
}

// Notifier shows short messages to the user.
type Notifier interface {
	Notify(msg string)
}

// Outcome is the terminal state of one update.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeUpdated
	OutcomeMissingIdentifier
	OutcomeFetchFailed
	OutcomeBlockNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeMissingIdentifier:
		return "missing_identifier"
	case OutcomeFetchFailed:
		return "fetch_failed"
	case OutcomeBlockNotFound:
		return "block_not_found"
	default:
		return "unknown"
	}
}

// Result describes what Update did to one document.
type Result struct {
	Path    string
	DOI     string
	Outcome Outcome
	Work    *crossref.Work
	// Content is the rewritten document when Outcome is OutcomeUpdated.
	Content string
}

// Err converts a non-success outcome into the matching sentinel error.
func (r Result) Err() error {
	switch r.Outcome {
	case OutcomeUpdated:
		return nil
	case OutcomeMissingIdentifier:
		return doierrors.ErrMissingIdentifier
	case OutcomeBlockNotFound:
		return doierrors.ErrBlockNotFound
	default:
		return fmt.Errorf("update %s: %s", r.Path, r.Outcome)
	}
}

// Updater fills a document's front matter with citation metadata for its DOI.
// All collaborators are required; IdentifierKey defaults to "doi".
type Updater struct {
	Metadata      MetadataCache
	Documents     DocumentStore
	Fetcher       Fetcher
	Notifier      Notifier
	IdentifierKey string
	// DryRun computes the new content without writing it.
	DryRun bool
}

func (u *Updater) identifierKey() string {
	if u.IdentifierKey == "" {
		return DefaultIdentifierKey
	}
	return u.IdentifierKey
}

// Update runs one lookup-and-rewrite for the document at path.
// Missing identifier and missing block are reported through the outcome
// with a nil error. Fetch failures return both FetchFailed and the error.
func (u *Updater) Update(ctx context.Context, path string) (Result, error) {
	existing, err := u.Metadata.Frontmatter(ctx, path)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("read front matter of %s: %w", path, err)
	}
	return u.UpdateParsed(ctx, path, existing)
}

// UpdateParsed is Update for a caller that already holds the document's
// parsed front matter. Metadata is not consulted.
func (u *Updater) UpdateParsed(ctx context.Context, path string, existing *frontmatter.Frontmatter) (Result, error) {
	result := Result{Path: path}

	doi := ""
	if existing != nil {
		doi = existing.GetString(u.identifierKey())
	}
	if doi == "" {
		u.Notifier.Notify(NoticeMissingIdentifier)
		result.Outcome = OutcomeMissingIdentifier
		return result, nil
	}
	result.DOI = doi

	work, err := u.Fetcher.Fetch(ctx, doi)
	if err != nil {
		u.Notifier.Notify(NoticeFetchFailed + err.Error())
		result.Outcome = OutcomeFetchFailed
		return result, fmt.Errorf("fetch %s: %w", doi, err)
	}
	result.Work = work

	content, err := u.Documents.Read(ctx, path)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", path, err)
	}

	updated, found, err := Rewrite(content, existing, work)
	if err != nil {
		return result, err
	}
	if !found {
		slog.Warn("No front matter block to replace", "path", path, "doi", doi)
		u.Notifier.Notify(NoticeBlockNotFound)
		result.Outcome = OutcomeBlockNotFound
		return result, nil
	}

	result.Content = updated
	if u.DryRun {
		slog.Info("Dry run: not writing", "path", path, "doi", doi)
	} else if err := u.Documents.Modify(ctx, path, updated); err != nil {
		return result, fmt.Errorf("write %s: %w", path, err)
	}

	u.Notifier.Notify(NoticeUpdated)
	result.Outcome = OutcomeUpdated
	return result, nil
}
