package crossref

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	doierrors "github.com/lepinkainen/doinote/internal/errors"
)

const errorBodyLimit = 512

// WorkURL returns the works endpoint for a DOI. The DOI is embedded as-is,
// its slashes are part of the path.
func (c *Client) WorkURL(doi string) string {
	return c.baseURL + "/works/" + strings.TrimSpace(doi)
}

// Fetch retrieves the citation record for a DOI.
// Non-200 responses are returned as *errors.FetchError, unusable 200 bodies as
// *errors.MalformedResponseError.
func (c *Client) Fetch(ctx context.Context, doi string) (*Work, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := c.WorkURL(doi)
	slog.Debug("Fetching Crossref work", "doi", doi, "url", endpoint, "limiter", c.rateLimiter.Name())

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	return ParseWork(body)
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgentHeader())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, doierrors.NewFetchError(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}
