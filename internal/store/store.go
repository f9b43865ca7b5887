// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the article collection as a single JSON array and
// merges new batches into it, deduplicating by title.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paper-scraper/pkg/types"
)

// Mode selects how a batch is combined with the collection on disk.
type Mode string

const (
	// ModeOverwrite discards the collection on disk.
	ModeOverwrite Mode = "overwrite"
	// ModeAppend merges the batch into the collection on disk.
	ModeAppend Mode = "append"
)

// ParseMode lowercases s and reports whether it names a Mode. Invalid input
// returns ModeOverwrite and false.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeOverwrite, ModeAppend:
		return m, true
	default:
		return ModeOverwrite, false
	}
}

// Result reports the outcome of Apply.
type Result struct {
	Added int
	Total int
	Path  string
}

// Load reads the collection at path. A missing file yields an empty
// collection; any other read or decode failure is returned.
func Load(path string) ([]types.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []types.Article{}, nil
		}
		return nil, fmt.Errorf("reading collection %s: %w", path, err)
	}

	var articles []types.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("parsing collection %s: %w", path, err)
	}
	if articles == nil {
		// A literal null decodes without error.
		return nil, fmt.Errorf("parsing collection %s: not a JSON array", path)
	}
	return articles, nil
}

// Merge appends to existing every batch article whose title is not already
// present in existing. Titles are compared exactly. Batch articles are not
// checked against each other. It returns the merged collection and the
// number of batch articles kept.
func Merge(existing, batch []types.Article) ([]types.Article, int) {
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[a.Title] = true
	}

	merged := make([]types.Article, 0, len(existing)+len(batch))
	merged = append(merged, existing...)

	added := 0
	for _, a := range batch {
		if seen[a.Title] {
			continue
		}
		merged = append(merged, a)
		added++
	}
	return merged, added
}

// Save writes articles to path as an indented JSON array, creating the
// parent directory if needed. Non-ASCII and HTML characters are written
// literally. The file is replaced atomically via a temp file and rename.
func Save(path string, articles []types.Article) error {
	articles = normalize(articles)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(articles); err != nil {
		return fmt.Errorf("marshaling collection: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing collection: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing collection: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing collection: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// normalize returns a copy of articles in which nil slices are empty, so
// records loaded without list fields are written back as [] rather than null.
func normalize(articles []types.Article) []types.Article {
	out := make([]types.Article, len(articles))
	for i, a := range articles {
		if a.InternalTags == nil {
			a.InternalTags = []string{}
		}
		if a.PublicTags == nil {
			a.PublicTags = []string{}
		}
		if a.RelatedContent == nil {
			a.RelatedContent = []string{}
		}
		out[i] = a
	}
	return out
}

// Apply combines batch with the collection at path according to mode and
// rewrites the file. In ModeOverwrite, or when the file does not exist, the
// existing collection is empty.
func Apply(path string, mode Mode, batch []types.Article) (Result, error) {
	existing := []types.Article{}
	if mode == ModeAppend {
		loaded, err := Load(path)
		if err != nil {
			return Result{}, err
		}
		existing = loaded
	}

	merged, added := Merge(existing, batch)
	if err := Save(path, merged); err != nil {
		return Result{}, err
	}

	return Result{Added: added, Total: len(merged), Path: path}, nil
}
