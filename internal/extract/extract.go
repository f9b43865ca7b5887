// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns entries of an arXiv Atom feed into partially
// populated Article records. Topic and reading time are left for the
// enrich stage.
package extract

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/atom"

	"github.com/pdiddy/paper-scraper/pkg/types"
)

// publishedLayout is the only accepted form of an entry's <published> value.
const publishedLayout = "2006-01-02T15:04:05Z"

// dateLayout is the persisted date form.
const dateLayout = "2006-01-02"

// ParseFeed decodes an Atom document and returns its entries in document
// order. A feed with no entries yields an empty slice and no error.
func ParseFeed(r io.Reader) ([]*atom.Entry, error) {
	fp := &atom.Parser{}
	feed, err := fp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing arXiv feed: %w", err)
	}
	return feed.Entries, nil
}

// Extract normalizes one feed entry into an Article. Title, summary and id
// are trimmed; the id doubles as the paper link. The published timestamp
// must match YYYY-MM-DDTHH:MM:SSZ exactly or Extract fails.
func Extract(e *atom.Entry) (types.Article, error) {
	title := strings.TrimSpace(e.Title)
	summary := strings.TrimSpace(e.Summary)
	link := strings.TrimSpace(e.ID)

	date, err := PublishedDate(e.Published)
	if err != nil {
		return types.Article{}, fmt.Errorf("entry %q: %w", title, err)
	}

	return types.Article{
		Title:        title,
		Date:         date,
		ContentGroup: types.ContentGroupArticles,
		InternalTags: []string{},
		Author: types.Author{
			Name: FirstAuthor(e.Authors),
		},
		Publication: types.Publication{
			Name: types.PublicationArxiv,
			URL:  link,
		},
		PublicTags:     []string{},
		Summary:        summary,
		SourceURL:      link,
		Language:       types.LanguageEnglish,
		ImageURL:       "",
		RelatedContent: []string{},
		Content:        "<p>" + summary + "</p>",
	}, nil
}

// PublishedDate converts an Atom published timestamp to YYYY-MM-DD.
func PublishedDate(published string) (string, error) {
	raw := strings.TrimSpace(published)
	t, err := time.Parse(publishedLayout, raw)
	if err != nil {
		return "", fmt.Errorf("parsing published timestamp %q: %w", raw, err)
	}
	// time.Parse tolerates fractional seconds the layout does not name.
	if t.Format(publishedLayout) != raw {
		return "", fmt.Errorf("parsing published timestamp %q: want form %s", raw, publishedLayout)
	}
	return t.Format(dateLayout), nil
}

// FirstAuthor returns the name of the first listed author as given, or
// types.UnknownAuthor when the entry has none.
func FirstAuthor(authors []*atom.Person) string {
	if len(authors) == 0 || authors[0] == nil {
		return types.UnknownAuthor
	}
	return authors[0].Name
}
