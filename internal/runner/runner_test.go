// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-scraper/internal/classify"
	"github.com/pdiddy/paper-scraper/internal/enrich"
	"github.com/pdiddy/paper-scraper/internal/store"
)

// --- test helpers ---

type fakeFetcher struct {
	body     string
	err      error
	keywords []string
	counts   []int
}

func (f *fakeFetcher) Fetch(_ context.Context, keyword string, maxResults int) ([]byte, error) {
	f.keywords = append(f.keywords, keyword)
	f.counts = append(f.counts, maxResults)
	return []byte(f.body), f.err
}

type fixedBackend struct {
	ranked []string
	err    error
}

func (b fixedBackend) Name() string { return "fixed" }

func (b fixedBackend) Rank(context.Context, string, []string) ([]string, error) {
	return b.ranked, b.err
}

func entryXML(id, title, published, author string) string {
	authorXML := ""
	if author != "" {
		authorXML = "<author><name>" + author + "</name></author>"
	}
	return `<entry>
    <id>http://arxiv.org/abs/` + id + `</id>
    <published>` + published + `</published>
    <title>` + title + `</title>
    <summary>Summary of ` + title + `.</summary>
    ` + authorXML + `
  </entry>`
}

func feedXML(entries ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query</title>
  ` + strings.Join(entries, "\n  ") + `
</feed>`
}

func newRunner(t *testing.T, f Fetcher, backend classify.Backend) (*Runner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &Runner{
		Fetcher: f,
		Enricher: &enrich.Enricher{
			Classifier: classify.NewClassifier(backend),
			Labels:     classify.Labels,
		},
		Path: filepath.Join(t.TempDir(), "output", "arxiv_articles.json"),
		Out:  &out,
	}, &out
}

func strptr(s string) *string { return &s }

// --- prompts ---

func TestCollectInteractive(t *testing.T) {
	in := strings.NewReader("graph neural networks\n10\nAppend\n")
	var out bytes.Buffer

	p, err := NewPrompter(in, &out).Collect(Answers{})
	require.NoError(t, err)

	assert.Equal(t, Params{Keyword: "graph neural networks", Count: 10, Mode: store.ModeAppend}, p)
	assert.Equal(t, keywordPrompt+countPrompt+modePrompt, out.String())
}

func TestCollectFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
		wantMode  store.Mode
		warnings  []string
	}{
		{"count abc", "k\nabc\nappend\n", DefaultCount, store.ModeAppend, []string{countWarning}},
		{"mode foo", "k\n3\nfoo\n", 3, store.ModeOverwrite, []string{modeWarning}},
		{"mode upper", "k\n3\nOVERWRITE\n", 3, store.ModeOverwrite, nil},
		{"both invalid", "k\n\n\n", DefaultCount, store.ModeOverwrite, []string{countWarning, modeWarning}},
		{"count with spaces", "k\n 12 \nappend\n", 12, store.ModeAppend, nil},
		{"crlf line endings", "k\r\n4\r\nappend\r\n", 4, store.ModeAppend, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p, err := NewPrompter(strings.NewReader(tt.input), &out).Collect(Answers{})
			require.NoError(t, err)

			assert.Equal(t, "k", p.Keyword)
			assert.Equal(t, tt.wantCount, p.Count)
			assert.Equal(t, tt.wantMode, p.Mode)
			for _, w := range tt.warnings {
				assert.Contains(t, out.String(), w+"\n")
			}
			if len(tt.warnings) == 0 {
				assert.NotContains(t, out.String(), "Invalid")
			}
		})
	}
}

func TestCollectEmptyKeywordPassesThrough(t *testing.T) {
	p, err := NewPrompter(strings.NewReader("\n5\noverwrite\n"), &bytes.Buffer{}).Collect(Answers{})
	require.NoError(t, err)
	assert.Equal(t, "", p.Keyword)
}

func TestCollectPresetSkipsPrompts(t *testing.T) {
	var out bytes.Buffer
	p, err := NewPrompter(strings.NewReader("7\n"), &out).Collect(Answers{
		Keyword: strptr("robots"),
		Mode:    strptr("append"),
	})
	require.NoError(t, err)

	assert.Equal(t, Params{Keyword: "robots", Count: 7, Mode: store.ModeAppend}, p)
	assert.Equal(t, countPrompt, out.String())
}

func TestCollectPresetInvalidStillWarns(t *testing.T) {
	var out bytes.Buffer
	p, err := NewPrompter(strings.NewReader(""), &out).Collect(Answers{
		Keyword: strptr("robots"),
		Count:   strptr("many"),
		Mode:    strptr("merge"),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultCount, p.Count)
	assert.Equal(t, store.ModeOverwrite, p.Mode)
	assert.Equal(t, countWarning+"\n"+modeWarning+"\n", out.String())
}

func TestAskLastLineWithoutNewline(t *testing.T) {
	pr := NewPrompter(strings.NewReader("robots"), &bytes.Buffer{})
	got, err := pr.Ask("q: ")
	require.NoError(t, err)
	assert.Equal(t, "robots", got)

	_, err = pr.Ask("q: ")
	assert.Error(t, err)
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"5", 5, true},
		{"10", 10, true},
		{"+3", 3, true},
		{"0", 0, true},
		{"abc", DefaultCount, false},
		{"2.5", DefaultCount, false},
		{"", DefaultCount, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCount(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

// --- Run ---

func TestRunOverwrite(t *testing.T) {
	f := &fakeFetcher{body: feedXML(
		entryXML("1", "Paper One", "2024-03-01T12:00:00Z", "Ada Lovelace"),
		entryXML("2", "Paper Two", "2024-02-01T08:30:00Z", ""),
	)}
	r, out := newRunner(t, f, fixedBackend{ranked: []string{"Robotics", "Computer Vision"}})

	res, err := r.Run(context.Background(), Params{Keyword: "robots", Count: 2, Mode: store.ModeOverwrite})
	require.NoError(t, err)

	assert.Equal(t, []string{"robots"}, f.keywords)
	assert.Equal(t, []int{2}, f.counts)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "Saved 2 new articles (total: 2) to "+r.Path+"\n", out.String())

	got, err := store.Load(r.Path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Paper One", got[0].Title)
	assert.Equal(t, "2024-03-01", got[0].Date)
	assert.Equal(t, []string{"Robotics"}, got[0].InternalTags)
	assert.Equal(t, 1, got[0].ReadingTime)
	assert.Equal(t, "Ada Lovelace", got[0].Author.Name)
	assert.Equal(t, "Unknown", got[1].Author.Name)
	assert.Equal(t, "http://arxiv.org/abs/2", got[1].SourceURL)
}

func TestRunUncategorized(t *testing.T) {
	f := &fakeFetcher{body: feedXML(entryXML("1", "Paper One", "2024-03-01T12:00:00Z", "A"))}
	r, _ := newRunner(t, f, fixedBackend{})

	_, err := r.Run(context.Background(), Params{Count: 1, Mode: store.ModeOverwrite})
	require.NoError(t, err)

	got, err := store.Load(r.Path)
	require.NoError(t, err)
	assert.Equal(t, []string{classify.Uncategorized}, got[0].InternalTags)
}

func TestRunAppendTwiceIsIdempotent(t *testing.T) {
	f := &fakeFetcher{body: feedXML(
		entryXML("1", "Paper One", "2024-03-01T12:00:00Z", "A"),
		entryXML("2", "Paper Two", "2024-03-02T12:00:00Z", "B"),
	)}
	r, out := newRunner(t, f, fixedBackend{ranked: []string{"Data Science"}})
	p := Params{Keyword: "data", Count: 2, Mode: store.ModeAppend}

	first, err := r.Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Added)

	second, err := r.Run(context.Background(), p)
	require.NoError(t, err)
	assert.Zero(t, second.Added)
	assert.Equal(t, 2, second.Total)
	assert.Contains(t, out.String(), "Saved 0 new articles (total: 2)")
}

func TestRunZeroEntriesLeavesCollection(t *testing.T) {
	seed := &fakeFetcher{body: feedXML(entryXML("1", "Paper One", "2024-03-01T12:00:00Z", "A"))}
	r, _ := newRunner(t, seed, fixedBackend{ranked: []string{"Robotics"}})
	_, err := r.Run(context.Background(), Params{Count: 1, Mode: store.ModeAppend})
	require.NoError(t, err)
	before, err := os.ReadFile(r.Path)
	require.NoError(t, err)

	r.Fetcher = &fakeFetcher{body: feedXML()}
	res, err := r.Run(context.Background(), Params{Count: 5, Mode: store.ModeAppend})
	require.NoError(t, err)
	assert.Zero(t, res.Added)
	assert.Equal(t, 1, res.Total)

	after, err := os.ReadFile(r.Path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestRunFetchErrorAborts(t *testing.T) {
	boom := errors.New("connection refused")
	r, out := newRunner(t, &fakeFetcher{err: boom}, fixedBackend{})

	_, err := r.Run(context.Background(), Params{Count: 5, Mode: store.ModeOverwrite})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, out.String())
	_, statErr := os.Stat(r.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunBadTimestampAborts(t *testing.T) {
	f := &fakeFetcher{body: feedXML(
		entryXML("1", "Good", "2024-03-01T12:00:00Z", "A"),
		entryXML("2", "Bad", "March 1, 2024", "B"),
	)}
	r, _ := newRunner(t, f, fixedBackend{ranked: []string{"Robotics"}})

	_, err := r.Run(context.Background(), Params{Count: 2, Mode: store.ModeOverwrite})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad")
	_, statErr := os.Stat(r.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunClassifierErrorAborts(t *testing.T) {
	boom := errors.New("inference API returned HTTP 500")
	f := &fakeFetcher{body: feedXML(entryXML("1", "Paper One", "2024-03-01T12:00:00Z", "A"))}
	r, _ := newRunner(t, f, fixedBackend{err: boom})

	_, err := r.Run(context.Background(), Params{Count: 1, Mode: store.ModeOverwrite})
	require.ErrorIs(t, err, boom)
}

func TestRunMalformedFeed(t *testing.T) {
	r, _ := newRunner(t, &fakeFetcher{body: "<html><body>oops</body></html>"}, fixedBackend{})
	_, err := r.Run(context.Background(), Params{Count: 1, Mode: store.ModeOverwrite})
	assert.Error(t, err)
}

func TestRunLogsProgress(t *testing.T) {
	f := &fakeFetcher{body: feedXML(entryXML("1", "Paper One", "2024-03-01T12:00:00Z", "A"))}
	r, _ := newRunner(t, f, fixedBackend{ranked: []string{"Robotics"}})
	var logBuf bytes.Buffer
	r.Log = &logBuf

	_, err := r.Run(context.Background(), Params{Keyword: "walk", Count: 1, Mode: store.ModeOverwrite})
	require.NoError(t, err)
	assert.Contains(t, logBuf.String(), `fetched 1 entries for "walk"`)
	assert.Contains(t, logBuf.String(), "classified Paper One -> Robotics (1 min)")
}
