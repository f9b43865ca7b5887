// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns a topic label to a piece of text by delegating to a
// zero-shot classification backend. The backend is treated as an opaque
// ranking function: given text and candidate labels it returns the labels
// ordered by relevance.
package classify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pdiddy/paper-scraper/pkg/types"
)

// Uncategorized is returned when the backend ranks no labels.
const Uncategorized = "Uncategorized"

// Labels is the fixed topic vocabulary used for every record.
var Labels = []string{
	"Machine Learning",
	"Natural Language Processing",
	"Computer Vision",
	"Robotics",
	"Bioinformatics",
	"Cybersecurity",
	"Data Science",
	"AI Ethics",
}

// Backend ranks candidate labels for a text. Each implementation
// (Hugging Face inference, local keyword matching) satisfies this interface.
type Backend interface {
	Name() string
	Rank(ctx context.Context, text string, labels []string) ([]string, error)
}

// Classifier picks the best label for a text from a backend's ranking.
// A Classifier is built once per process and reused for every record.
type Classifier struct {
	backend Backend
}

// NewClassifier wraps backend in a Classifier.
func NewClassifier(backend Backend) *Classifier {
	return &Classifier{backend: backend}
}

// Backend returns the underlying ranking backend.
func (c *Classifier) Backend() Backend {
	return c.backend
}

// Classify returns the highest-ranked label for text, or Uncategorized if the
// backend returns an empty ranking. Backend errors are returned unchanged.
func (c *Classifier) Classify(ctx context.Context, text string, labels []string) (string, error) {
	ranked, err := c.backend.Rank(ctx, text, labels)
	if err != nil {
		return "", err
	}
	if len(ranked) == 0 {
		return Uncategorized, nil
	}
	return ranked[0], nil
}

// New builds the Classifier selected by cfg.Backend. An empty backend
// defaults to Hugging Face.
func New(cfg types.ClassifierConfig, client *http.Client) (*Classifier, error) {
	switch cfg.Backend {
	case types.ClassifierHuggingFace, "":
		return NewClassifier(&HuggingFaceBackend{
			Client:     client,
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			APIKey:     cfg.APIKey,
			UserAgent:  cfg.UserAgent,
			MaxRetries: cfg.MaxRetries,
		}), nil
	case types.ClassifierKeyword:
		return NewClassifier(NewKeywordBackend()), nil
	default:
		return nil, fmt.Errorf("unsupported classifier backend %q: use huggingface or keyword", cfg.Backend)
	}
}
