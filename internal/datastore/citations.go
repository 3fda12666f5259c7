package datastore

import (
	"time"

	"github.com/lepinkainen/doinote/internal/citation"
)

// Database and table names used for citation exports.
const (
	DatabaseName   = "doinote"
	CitationsTable = "citations"
)

// CitationsSchema is the SQLite schema of the citations table. Re-running an
// export for the same note replaces its row.
const CitationsSchema = `CREATE TABLE IF NOT EXISTS citations (
	path TEXT PRIMARY KEY,
	doi TEXT NOT NULL,
	title TEXT,
	author TEXT,
	journal TEXT,
	year INTEGER,
	volume TEXT,
	issue TEXT,
	pages TEXT,
	url TEXT,
	updated_at TEXT
)`

// Citation is one exported row.
type Citation struct {
	Path      string `json:"path"`
	DOI       string `json:"doi"`
	Title     string `json:"title"`
	Author    string `json:"author,omitempty"`
	Journal   string `json:"journal,omitempty"`
	Year      int    `json:"year,omitempty"`
	Volume    string `json:"volume,omitempty"`
	Issue     string `json:"issue,omitempty"`
	Pages     string `json:"pages,omitempty"`
	URL       string `json:"url,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

// CitationFromResult builds an export row from an updated note.
func CitationFromResult(r citation.Result, updatedAt time.Time) Citation {
	c := Citation{
		Path:      r.Path,
		DOI:       r.DOI,
		UpdatedAt: updatedAt.UTC().Format(time.RFC3339),
	}
	if r.Work == nil {
		return c
	}

	w := r.Work
	c.Title = w.FirstTitle()
	c.Author = citation.FormatAuthors(w.Author)
	c.Journal, _ = w.Journal()
	c.Year, _ = w.Year()
	c.Volume = w.Volume
	c.Issue = w.Issue
	c.Pages = w.Page
	c.URL = w.URL
	return c
}

// Record converts the row to a column map for BatchInsert.
// Absent year is stored as NULL.
func (c Citation) Record() map[string]any {
	var year any
	if c.Year != 0 {
		year = c.Year
	}
	return map[string]any{
		"path":       c.Path,
		"doi":        c.DOI,
		"title":      c.Title,
		"author":     c.Author,
		"journal":    c.Journal,
		"year":       year,
		"volume":     c.Volume,
		"issue":      c.Issue,
		"pages":      c.Pages,
		"url":        c.URL,
		"updated_at": c.UpdatedAt,
	}
}

// Records converts rows to column maps.
func Records(citations []Citation) []map[string]any {
	records := make([]map[string]any, 0, len(citations))
	for _, c := range citations {
		records = append(records, c.Record())
	}
	return records
}

// Export writes citations to store, creating the table first.
func Export(store Store, citations []Citation) error {
	if len(citations) == 0 {
		return nil
	}
	if err := store.Connect(); err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(CitationsSchema); err != nil {
		return err
	}
	return store.BatchInsert(DatabaseName, CitationsTable, Records(citations))
}
