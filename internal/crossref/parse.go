package crossref

import (
	"bytes"
	"encoding/json"
	"strings"

	doierrors "github.com/lepinkainen/doinote/internal/errors"
)

// ParseWork decodes a /works/{doi} response body into a Work.
// Bodies that are not JSON, lack the "message" object, or have no title are
// reported as a MalformedResponseError.
func ParseWork(body []byte) (*Work, error) {
	var envelope worksResponse

	decoder := json.NewDecoder(bytes.NewReader(body))
	if err := decoder.Decode(&envelope); err != nil {
		return nil, doierrors.NewMalformedResponseError("invalid JSON", err)
	}

	if envelope.Message == nil {
		return nil, doierrors.NewMalformedResponseError("missing message object", nil)
	}

	work := envelope.Message
	if strings.TrimSpace(work.FirstTitle()) == "" {
		return nil, doierrors.NewMalformedResponseError("missing title", nil)
	}

	return work, nil
}
