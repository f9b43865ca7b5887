// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-scraper/pkg/types"
)

// Format selects how a collection is rendered for display.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// FilterTopic returns the articles whose topic equals topic, ignoring case.
// An empty topic returns articles unchanged.
func FilterTopic(articles []types.Article, topic string) []types.Article {
	if topic == "" {
		return articles
	}
	var out []types.Article
	for _, a := range articles {
		if strings.EqualFold(a.Topic(), topic) {
			out = append(out, a)
		}
	}
	return out
}

// Write renders articles to w in the requested format.
func Write(w io.Writer, articles []types.Article, format Format) error {
	switch format {
	case FormatTable, "":
		WriteTable(w, articles)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(normalize(articles))
	case FormatYAML:
		data, err := yaml.Marshal(normalize(articles))
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}

const (
	titleWidth  = 56
	topicWidth  = 28
	authorWidth = 20
)

// WriteTable writes articles as a human-readable table. Columns are padded by
// display width so wide (CJK) and combining characters stay aligned.
func WriteTable(w io.Writer, articles []types.Article) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %s  %-10s  %s  %s  %s\n",
		"#", pad("Title", titleWidth), "Date", pad("Topic", topicWidth), pad("Author", authorWidth), "Min")
	fmt.Fprintln(w, strings.Repeat("-", 4+2+titleWidth+2+10+2+topicWidth+2+authorWidth+2+3))

	for i, a := range articles {
		fmt.Fprintf(w, "%-4d  %s  %-10s  %s  %s  %d\n",
			i+1,
			pad(a.Title, titleWidth),
			a.Date,
			pad(a.Topic(), topicWidth),
			pad(a.Author.Name, authorWidth),
			a.ReadingTime)
	}

	fmt.Fprintf(w, "\n%d articles\n", len(articles))
}

// pad truncates s to width display cells and right-pads it with spaces.
func pad(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.FillRight(runewidth.Truncate(s, width, "..."), width)
}
