// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runner orchestrates one scrape: fetch the arXiv feed, extract and
// enrich each entry, and merge the batch into the persisted collection.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/paper-scraper/internal/enrich"
	"github.com/pdiddy/paper-scraper/internal/extract"
	"github.com/pdiddy/paper-scraper/internal/store"
	"github.com/pdiddy/paper-scraper/pkg/types"
)

// Fetcher returns the raw Atom feed for a keyword search.
// arxiv.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, keyword string, maxResults int) ([]byte, error)
}

// Runner wires the pipeline stages to one output file.
type Runner struct {
	Fetcher  Fetcher
	Enricher *enrich.Enricher

	// Path is the collection file.
	Path string

	// Out receives the summary line.
	Out io.Writer

	// Log receives per-record progress. Nil discards it.
	Log io.Writer
}

// Run executes the pipeline once with p. Any fetch, parse, classification or
// filesystem error aborts the run before the collection is rewritten.
func (r *Runner) Run(ctx context.Context, p Params) (store.Result, error) {
	logw := r.Log
	if logw == nil {
		logw = io.Discard
	}

	body, err := r.Fetcher.Fetch(ctx, p.Keyword, p.Count)
	if err != nil {
		return store.Result{}, fmt.Errorf("fetching arXiv feed: %w", err)
	}

	entries, err := extract.ParseFeed(bytes.NewReader(body))
	if err != nil {
		return store.Result{}, err
	}
	fmt.Fprintf(logw, "fetched %d entries for %q\n", len(entries), p.Keyword)

	extracted := make([]types.Article, 0, len(entries))
	for _, e := range entries {
		a, err := extract.Extract(e)
		if err != nil {
			return store.Result{}, err
		}
		extracted = append(extracted, a)
	}

	batch, err := r.Enricher.EnrichAll(ctx, extracted)
	if err != nil {
		return store.Result{}, err
	}
	for _, a := range batch {
		fmt.Fprintf(logw, "classified %s -> %s (%d min)\n", a.Title, a.Topic(), a.ReadingTime)
	}

	res, err := store.Apply(r.Path, p.Mode, batch)
	if err != nil {
		return store.Result{}, err
	}

	if r.Out != nil {
		fmt.Fprintf(r.Out, "Saved %d new articles (total: %d) to %s\n", res.Added, res.Total, res.Path)
	}
	return res, nil
}
