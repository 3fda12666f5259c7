package crossref

import "encoding/json"

// Work is the citation record for one DOI as returned under "message" by the
// Crossref works endpoint. Only the fields used for front matter are decoded.
type Work struct {
	Title          []string   `json:"title"`
	Author         []Author   `json:"author"`
	ContainerTitle []string   `json:"container-title"`
	PublishedPrint *DateParts `json:"published-print"`
	Volume         string     `json:"volume"`
	Issue          string     `json:"issue"`
	Page           string     `json:"page"`
	DOI            string     `json:"DOI"`
	URL            string     `json:"URL"`
}

// Author is a contributor name as given by the registry.
type Author struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

// DateParts is Crossref's partial date structure: [[year, month, day]].
// Unknown parts are sent as null and decode to 0.
type DateParts struct {
	DateParts [][]int `json:"date-parts"`
}

func (d *DateParts) UnmarshalJSON(data []byte) error {
	var raw struct {
		DateParts [][]*int `json:"date-parts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.DateParts = make([][]int, len(raw.DateParts))
	for i, parts := range raw.DateParts {
		d.DateParts[i] = make([]int, len(parts))
		for j, p := range parts {
			if p != nil {
				d.DateParts[i][j] = *p
			}
		}
	}
	return nil
}

// worksResponse is the envelope of a /works/{doi} response.
type worksResponse struct {
	Status  string `json:"status"`
	Message *Work  `json:"message"`
}

// FirstTitle returns the first title, or an empty string.
func (w *Work) FirstTitle() string {
	if len(w.Title) == 0 {
		return ""
	}
	return w.Title[0]
}

// Journal returns the first container title and whether one was present.
func (w *Work) Journal() (string, bool) {
	if len(w.ContainerTitle) == 0 {
		return "", false
	}
	return w.ContainerTitle[0], true
}

// Year returns the print publication year and whether it was present.
// A null or non-positive year counts as absent.
func (w *Work) Year() (int, bool) {
	if w.PublishedPrint == nil || len(w.PublishedPrint.DateParts) == 0 || len(w.PublishedPrint.DateParts[0]) == 0 {
		return 0, false
	}
	year := w.PublishedPrint.DateParts[0][0]
	if year <= 0 {
		return 0, false
	}
	return year, true
}
