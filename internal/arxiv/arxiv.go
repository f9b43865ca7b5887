// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv fetches one page of search results from the arXiv API.
package arxiv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/paper-scraper/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "http://export.arxiv.org/api/query"

// Client issues a single unauthenticated search request. It does not retry.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
}

// NewClient builds a Client from cfg. A zero timeout leaves requests unbounded.
func NewClient(cfg types.FetchConfig) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
	}
}

// Fetch requests up to maxResults entries matching keyword across all fields
// and returns the raw Atom response body. The keyword is sent as given,
// including the empty string.
func (c *Client) Fetch(ctx context.Context, keyword string, maxResults int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.QueryURL(keyword, maxResults), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading arXiv response: %w", err)
	}
	return body, nil
}

// QueryURL builds the search URL: search_query=all:<keyword>, start=0,
// max_results=<maxResults>.
func (c *Client) QueryURL(keyword string, maxResults int) string {
	base := c.BaseURL
	if base == "" {
		base = arxivAPIBase
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%ssearch_query=%s&start=0&max_results=%d",
		base, sep, url.QueryEscape("all:"+keyword), maxResults)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}
