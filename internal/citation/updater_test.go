package citation

import (
	"context"
	"errors"
	"testing"

	"github.com/lepinkainen/doinote/internal/crossref"
	doierrors "github.com/lepinkainen/doinote/internal/errors"
	"github.com/lepinkainen/doinote/internal/frontmatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memVault is an in-memory MetadataCache and DocumentStore.
type memVault struct {
	docs     map[string]string
	modified map[string]int
	writeErr error
}

func newMemVault(docs map[string]string) *memVault {
	return &memVault{docs: docs, modified: map[string]int{}}
}

func (m *memVault) Frontmatter(_ context.Context, path string) (*frontmatter.Frontmatter, error) {
	content, ok := m.docs[path]
	if !ok {
		return nil, errors.New("no such document")
	}
	return frontmatter.Parse([]byte(content))
}

func (m *memVault) Read(_ context.Context, path string) (string, error) {
	content, ok := m.docs[path]
	if !ok {
		return "", errors.New("no such document")
	}
	return content, nil
}

func (m *memVault) Modify(_ context.Context, path, content string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.docs[path] = content
	m.modified[path]++
	return nil
}

type stubFetcher struct {
	work  *crossref.Work
	err   error
	calls []string
}

func (s *stubFetcher) Fetch(_ context.Context, doi string) (*crossref.Work, error) {
	s.calls = append(s.calls, doi)
	return s.work, s.err
}

type notices struct {
	messages []string
}

func (n *notices) Notify(msg string) {
	n.messages = append(n.messages, msg)
}

func newUpdater(vault *memVault, fetcher *stubFetcher) (*Updater, *notices) {
	n := &notices{}
	return &Updater{
		Metadata:  vault,
		Documents: vault,
		Fetcher:   fetcher,
		Notifier:  n,
	}, n
}

func TestUpdate_Success(t *testing.T) {
	vault := newMemVault(map[string]string{"paper.md": "---\ndoi: \"10.1/x\"\n---\nBody\n"})
	fetcher := &stubFetcher{work: scenarioWork()}
	updater, n := newUpdater(vault, fetcher)

	result, err := updater.Update(context.Background(), "paper.md")
	require.NoError(t, err)
	require.NoError(t, result.Err())

	assert.Equal(t, OutcomeUpdated, result.Outcome)
	assert.Equal(t, "10.1/x", result.DOI)
	assert.Equal(t, []string{"10.1/x"}, fetcher.calls)
	assert.Equal(t, []string{NoticeUpdated}, n.messages)
	assert.Equal(t, 1, vault.modified["paper.md"])

	expected := "---\nauthor: B, A\ndoi: 10.1/x\nissue: \"2\"\npages: 1-9\ntitle: \"T\"\nurl: http://x\nvolume: \"3\"\n---\nBody\n"
	assert.Equal(t, expected, vault.docs["paper.md"])
	assert.Equal(t, expected, result.Content)
}

func TestUpdate_FetchFailed(t *testing.T) {
	original := "---\ndoi: 10.1/x\n---\nBody\n"
	vault := newMemVault(map[string]string{"paper.md": original})
	fetcher := &stubFetcher{err: doierrors.NewFetchError(404, "Resource not found.")}
	updater, n := newUpdater(vault, fetcher)

	result, err := updater.Update(context.Background(), "paper.md")
	require.Error(t, err)
	assert.True(t, doierrors.IsFetchError(err))
	assert.Equal(t, OutcomeFetchFailed, result.Outcome)

	assert.Equal(t, original, vault.docs["paper.md"])
	assert.Zero(t, vault.modified["paper.md"])
	require.Len(t, n.messages, 1)
	assert.Contains(t, n.messages[0], "404")
	assert.Equal(t, "Error fetching metadata: HTTP error 404", n.messages[0])
}

func TestUpdate_MissingIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no doi key", content: "---\ntitle: Something\n---\nBody\n"},
		{name: "empty doi", content: "---\ndoi: \"  \"\n---\nBody\n"},
		{name: "null doi", content: "---\ndoi:\n---\nBody\n"},
		{name: "no front matter", content: "Body only\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault := newMemVault(map[string]string{"paper.md": tt.content})
			fetcher := &stubFetcher{work: scenarioWork()}
			updater, n := newUpdater(vault, fetcher)

			result, err := updater.Update(context.Background(), "paper.md")
			require.NoError(t, err)
			assert.Equal(t, OutcomeMissingIdentifier, result.Outcome)
			assert.ErrorIs(t, result.Err(), doierrors.ErrMissingIdentifier)

			assert.Empty(t, fetcher.calls, "no network call")
			assert.Equal(t, []string{NoticeMissingIdentifier}, n.messages)
			assert.Equal(t, tt.content, vault.docs["paper.md"])
		})
	}
}

func TestUpdate_BlockNotFound(t *testing.T) {
	// The closing delimiter at end of file is enough for the metadata lookup
	// but not for block replacement.
	original := "---\ndoi: 10.1/x\n---"
	vault := newMemVault(map[string]string{"paper.md": original})
	fetcher := &stubFetcher{work: scenarioWork()}
	updater, n := newUpdater(vault, fetcher)

	result, err := updater.Update(context.Background(), "paper.md")
	require.NoError(t, err)
	assert.Equal(t, OutcomeBlockNotFound, result.Outcome)
	assert.ErrorIs(t, result.Err(), doierrors.ErrBlockNotFound)

	assert.Len(t, fetcher.calls, 1)
	assert.Zero(t, vault.modified["paper.md"])
	assert.Equal(t, original, vault.docs["paper.md"])
	assert.Equal(t, []string{NoticeBlockNotFound}, n.messages)
}

func TestUpdate_DryRun(t *testing.T) {
	original := "---\ndoi: 10.1/x\n---\nBody\n"
	vault := newMemVault(map[string]string{"paper.md": original})
	updater, _ := newUpdater(vault, &stubFetcher{work: scenarioWork()})
	updater.DryRun = true

	result, err := updater.Update(context.Background(), "paper.md")
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, result.Outcome)
	assert.Contains(t, result.Content, "title: \"T\"")
	assert.Equal(t, original, vault.docs["paper.md"])
	assert.Zero(t, vault.modified["paper.md"])
}

func TestUpdate_CustomIdentifierKey(t *testing.T) {
	vault := newMemVault(map[string]string{"paper.md": "---\nreference: 10.9/abc\n---\n"})
	fetcher := &stubFetcher{work: scenarioWork()}
	updater, _ := newUpdater(vault, fetcher)
	updater.IdentifierKey = "reference"

	result, err := updater.Update(context.Background(), "paper.md")
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, result.Outcome)
	assert.Equal(t, []string{"10.9/abc"}, fetcher.calls)
	assert.Contains(t, vault.docs["paper.md"], "reference: 10.9/abc\n")
}

func TestUpdate_WriteError(t *testing.T) {
	vault := newMemVault(map[string]string{"paper.md": "---\ndoi: 10.1/x\n---\n"})
	vault.writeErr = errors.New("disk full")
	updater, n := newUpdater(vault, &stubFetcher{work: scenarioWork()})

	_, err := updater.Update(context.Background(), "paper.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Empty(t, n.messages)
}

func TestUpdate_MetadataLookupError(t *testing.T) {
	vault := newMemVault(map[string]string{})
	fetcher := &stubFetcher{work: scenarioWork()}
	updater, _ := newUpdater(vault, fetcher)

	result, err := updater.Update(context.Background(), "missing.md")
	require.Error(t, err)
	assert.Equal(t, OutcomeUnknown, result.Outcome)
	assert.Empty(t, fetcher.calls)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "updated", OutcomeUpdated.String())
	assert.Equal(t, "missing_identifier", OutcomeMissingIdentifier.String())
	assert.Equal(t, "fetch_failed", OutcomeFetchFailed.String())
	assert.Equal(t, "block_not_found", OutcomeBlockNotFound.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

// countingMetadata records lookups on top of memVault.
type countingMetadata struct {
	*memVault
	lookups int
}

func (c *countingMetadata) Frontmatter(ctx context.Context, path string) (*frontmatter.Frontmatter, error) {
	c.lookups++
	return c.memVault.Frontmatter(ctx, path)
}

func TestUpdateParsed_UsesGivenFrontmatter(t *testing.T) {
	vault := newMemVault(map[string]string{"paper.md": "---\ndoi: 10.1/x\n---\nBody\n"})
	metadata := &countingMetadata{memVault: vault}
	fetcher := &stubFetcher{work: scenarioWork()}
	updater, _ := newUpdater(vault, fetcher)
	updater.Metadata = metadata

	existing, err := vault.Frontmatter(context.Background(), "paper.md")
	require.NoError(t, err)

	result, err := updater.UpdateParsed(context.Background(), "paper.md", existing)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, result.Outcome)
	assert.Equal(t, 0, metadata.lookups)
	assert.Equal(t, []string{"10.1/x"}, fetcher.calls)
	assert.Contains(t, vault.docs["paper.md"], "title: \"T\"\n")

	_, err = updater.Update(context.Background(), "paper.md")
	require.NoError(t, err)
	assert.Equal(t, 1, metadata.lookups)
}
