// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"

	"github.com/mmcdole/gofeed/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-scraper/pkg/types"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <title type="html">ArXiv Query: search_query=all:robots</title>
  <id>http://arxiv.org/api/abc</id>
  <updated>2024-03-02T00:00:00-05:00</updated>
  <entry>
    <id>
      http://arxiv.org/abs/2403.00001v1
    </id>
    <updated>2024-03-01T12:00:00Z</updated>
    <published>2024-03-01T12:00:00Z</published>
    <title>  Learning to Walk with Legged Robots  </title>
    <summary>
      We train a quadruped robot to walk.
    </summary>
    <author><name>Ada Lovelace</name></author>
    <author><name>Alan Turing</name></author>
    <arxiv:primary_category term="cs.RO"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2403.00002v2</id>
    <published>2023-12-31T23:59:59Z</published>
    <title>Anonymous Paper</title>
    <summary>No authors listed.</summary>
  </entry>
</feed>`

func TestParseFeedEntries(t *testing.T) {
	entries, err := ParseFeed(strings.NewReader(sampleFeed))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first, err := Extract(entries[0])
	require.NoError(t, err)

	assert.Equal(t, "Learning to Walk with Legged Robots", first.Title)
	assert.Equal(t, "We train a quadruped robot to walk.", first.Summary)
	assert.Equal(t, "2024-03-01", first.Date)
	assert.Equal(t, "Ada Lovelace", first.Author.Name)
	assert.Equal(t, "http://arxiv.org/abs/2403.00001v1", first.SourceURL)
	assert.Equal(t, first.SourceURL, first.Publication.URL)

	second, err := Extract(entries[1])
	require.NoError(t, err)
	assert.Equal(t, types.UnknownAuthor, second.Author.Name)
	assert.Equal(t, "2023-12-31", second.Date)
}

func TestParseFeedNoEntries(t *testing.T) {
	feed := `<feed xmlns="http://www.w3.org/2005/Atom"><title>empty</title></feed>`
	entries, err := ParseFeed(strings.NewReader(feed))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseFeedNotAtom(t *testing.T) {
	_, err := ParseFeed(strings.NewReader(`<rss version="2.0"><channel></channel></rss>`))
	assert.Error(t, err)
}

func TestExtractFixedFields(t *testing.T) {
	a, err := Extract(&atom.Entry{
		Title:     "T",
		Summary:   "Some <b>bold</b> abstract",
		ID:        "http://arxiv.org/abs/1",
		Published: "2024-03-01T12:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, types.ContentGroupArticles, a.ContentGroup)
	assert.Equal(t, types.PublicationArxiv, a.Publication.Name)
	assert.Equal(t, types.LanguageEnglish, a.Language)
	assert.Equal(t, "<p>Some <b>bold</b> abstract</p>", a.Content)
	assert.Empty(t, a.Author.Email)
	assert.Empty(t, a.Author.Organization)
	assert.Empty(t, a.ImageURL)
	assert.NotNil(t, a.PublicTags)
	assert.NotNil(t, a.RelatedContent)
	assert.Empty(t, a.PublicTags)
	assert.Empty(t, a.RelatedContent)
	assert.Zero(t, a.ReadingTime)
}

func TestExtractBadTimestamp(t *testing.T) {
	_, err := Extract(&atom.Entry{Title: "T", Published: "2024-03-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"T"`)
}

func TestPublishedDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-03-01T12:00:00Z", "2024-03-01", false},
		{"  2024-03-01T12:00:00Z\n", "2024-03-01", false},
		{"1999-12-31T23:59:59Z", "1999-12-31", false},
		{"2024-03-01T12:00:00.5Z", "", true},
		{"2024-03-01T12:00:00+01:00", "", true},
		{"2024-03-01 12:00:00", "", true},
		{"2024-13-01T12:00:00Z", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := PublishedDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstAuthor(t *testing.T) {
	assert.Equal(t, types.UnknownAuthor, FirstAuthor(nil))
	assert.Equal(t, "B", FirstAuthor([]*atom.Person{{Name: "B"}, {Name: "C"}}))
	assert.Equal(t, "", FirstAuthor([]*atom.Person{{Email: "x@example.com"}}))
}
