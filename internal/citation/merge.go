// Package citation merges registry metadata into note front matter and
// orchestrates a single DOI lookup and rewrite.
package citation

import (
	"strings"

	"github.com/lepinkainen/doinote/internal/crossref"
	"github.com/lepinkainen/doinote/internal/frontmatter"
)

// Keys written by Merge.
const (
	KeyTitle   = "title"
	KeyAuthor  = "author"
	KeyJournal = "journal"
	KeyYear    = "year"
	KeyVolume  = "volume"
	KeyIssue   = "issue"
	KeyPages   = "pages"
	KeyURL     = "url"
)

// DerivedKeys lists every key Merge may set or remove, in sorted order.
var DerivedKeys = []string{KeyAuthor, KeyIssue, KeyJournal, KeyPages, KeyTitle, KeyURL, KeyVolume, KeyYear}

// Merge returns a copy of existing with the citation fields of work applied.
// Derived fields the work does not provide are removed from the result,
// every other key of existing is carried over unchanged.
func Merge(existing *frontmatter.Frontmatter, work *crossref.Work) *frontmatter.Frontmatter {
	var merged *frontmatter.Frontmatter
	if existing == nil {
		merged = frontmatter.New()
	} else {
		merged = existing.Clone()
	}

	fields := derivedFields(work)
	for _, key := range DerivedKeys {
		if value, ok := fields[key]; ok {
			merged.Set(key, value)
			continue
		}
		merged.Delete(key)
	}

	return merged
}

// derivedFields holds the defined citation values of work by key.
func derivedFields(work *crossref.Work) map[string]any {
	fields := make(map[string]any, len(DerivedKeys))
	setIf := func(key string, value any, present bool) {
		if present {
			fields[key] = value
		}
	}

	title := work.FirstTitle()
	setIf(KeyTitle, frontmatter.Quoted(title), title != "")

	authors := FormatAuthors(work.Author)
	setIf(KeyAuthor, authors, authors != "")

	journal, ok := work.Journal()
	setIf(KeyJournal, journal, ok)

	year, ok := work.Year()
	setIf(KeyYear, year, ok)

	setIf(KeyVolume, work.Volume, work.Volume != "")
	setIf(KeyIssue, work.Issue, work.Issue != "")
	setIf(KeyPages, work.Page, work.Page != "")
	setIf(KeyURL, work.URL, work.URL != "")

	return fields
}

// FormatAuthors renders authors as "Family, Given" joined by " and ".
func FormatAuthors(authors []crossref.Author) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		if name := formatAuthor(a); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, " and ")
}

func formatAuthor(a crossref.Author) string {
	family := strings.TrimSpace(a.Family)
	given := strings.TrimSpace(a.Given)

	switch {
	case family != "" && given != "":
		return family + ", " + given
	case family != "":
		return family
	default:
		return given
	}
}
