package enhance

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/lepinkainen/doinote/internal/testutil"
)

const attentionWork = `{
  "status": "ok",
  "message": {
    "DOI": "10.1/a",
    "URL": "http://dx.doi.org/10.1/a",
    "title": ["Attention Is All You Need"],
    "author": [
      {"given": "Ashish", "family": "Vaswani"},
      {"given": "Noam", "family": "Shazeer"}
    ],
    "container-title": ["Advances in Neural Information Processing Systems"],
    "published-print": {"date-parts": [[2017]]},
    "volume": "30",
    "page": "5998-6008"
  }
}`

// registry is a fake Crossref works endpoint.
type registry struct {
	mu    sync.Mutex
	works map[string]string
	hits  []string
}

func (r *registry) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	doi := strings.TrimPrefix(req.URL.Path, "/works/")

	r.mu.Lock()
	r.hits = append(r.hits, doi)
	body, ok := r.works[doi]
	r.mu.Unlock()

	if !ok {
		http.Error(w, "Resource not found.", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (r *registry) Hits() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.hits...)
}

// setupRegistry starts a fake registry and points the configuration at it.
func setupRegistry(t *testing.T, opts ...testutil.SetTestConfigOption) *registry {
	t.Helper()

	reg := &registry{works: map[string]string{"10.1/a": attentionWork}}
	server := httptest.NewServer(reg)
	t.Cleanup(server.Close)

	testutil.SetTestConfig(t, append([]testutil.SetTestConfigOption{testutil.WithCrossrefBaseURL(server.URL)}, opts...)...)
	return reg
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	origLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	t.Cleanup(func() {
		slog.SetDefault(origLogger)
	})

	return &buf
}
