// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// The filename is the key and the trimmed file contents are the value.
//
// paper-scraper reads one key: huggingface-api-key, the bearer token sent to
// the Hugging Face Inference API. Other files are loaded but unused.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// HuggingFaceAPIKey names the file holding the Hugging Face token.
const HuggingFaceAPIKey = "huggingface-api-key"

// Load reads the secret files in dir. A missing directory yields an empty map.
// Unreadable files are reported to warn and skipped; a nil warn discards them.
func Load(dir string, warn io.Writer) (map[string]string, error) {
	if warn == nil {
		warn = io.Discard
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	loaded := make(map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			loaded[name] = value
		}
	}
	return loaded, nil
}

// Names returns the loaded key names in sorted order, for logging without
// exposing values.
func Names(s map[string]string) []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
