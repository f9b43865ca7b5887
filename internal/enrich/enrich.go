// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich derives the topic label and reading time of extracted
// articles.
package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/paper-scraper/pkg/types"
)

// WordsPerMinute is the reading speed behind ReadingTime.
const WordsPerMinute = 200

// TopicClassifier returns the label from labels that best matches text.
// classify.Classifier satisfies it.
type TopicClassifier interface {
	Classify(ctx context.Context, text string, labels []string) (string, error)
}

// ReadingTime estimates minutes to read text: whitespace-separated words
// divided by WordsPerMinute, never less than 1.
func ReadingTime(text string) int {
	minutes := len(strings.Fields(text)) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Enricher fills the derived fields of an Article.
type Enricher struct {
	Classifier TopicClassifier
	Labels     []string
}

// Enrich returns a copy of a with InternalTags set to the summary's topic and
// ReadingTime estimated from the summary. Classifier errors are returned
// unchanged.
func (e *Enricher) Enrich(ctx context.Context, a types.Article) (types.Article, error) {
	topic, err := e.Classifier.Classify(ctx, a.Summary, e.Labels)
	if err != nil {
		return types.Article{}, err
	}
	a.InternalTags = []string{topic}
	a.ReadingTime = ReadingTime(a.Summary)
	return a, nil
}

// EnrichAll enriches articles in order, one classification at a time. The
// first failure aborts the batch.
func (e *Enricher) EnrichAll(ctx context.Context, articles []types.Article) ([]types.Article, error) {
	out := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		enriched, err := e.Enrich(ctx, a)
		if err != nil {
			return nil, fmt.Errorf("classifying %q: %w", a.Title, err)
		}
		out = append(out, enriched)
	}
	return out, nil
}
