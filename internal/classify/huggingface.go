// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/paper-scraper/internal/httputil"
)

// hfAPIBase is the Hugging Face inference endpoint root. Declared as a var so
// tests can substitute an httptest server.
var hfAPIBase = "https://api-inference.huggingface.co/models"

// DefaultModel is the zero-shot model used when none is configured.
const DefaultModel = "facebook/bart-large-mnli"

// HuggingFaceBackend ranks labels with a zero-shot classification model
// served by the Hugging Face Inference API.
type HuggingFaceBackend struct {
	Client     *http.Client
	BaseURL    string
	Model      string
	APIKey     string
	UserAgent  string
	MaxRetries int
}

// Name returns the backend identifier.
func (b *HuggingFaceBackend) Name() string { return "huggingface" }

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

// hfResponse is the zero-shot pipeline output. Labels are sorted by
// descending score.
type hfResponse struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

type hfError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// Rank sends text and labels to the inference API and returns the ranked labels.
func (b *HuggingFaceBackend) Rank(ctx context.Context, text string, labels []string) ([]string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs:     text,
		Parameters: hfParameters{CandidateLabels: labels},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding classification request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if b.UserAgent != "" {
		req.Header.Set("User-Agent", b.UserAgent)
	}
	if b.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, b.client(), req, b.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("inference API request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading inference response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr hfError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("inference API returned HTTP %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("inference API returned HTTP %d", resp.StatusCode)
	}

	return decodeRanking(data)
}

// decodeRanking accepts either a single pipeline result or a one-element
// list of results, which newer inference deployments return.
func decodeRanking(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var batch []hfResponse
		if err := json.Unmarshal(trimmed, &batch); err != nil {
			return nil, fmt.Errorf("parsing inference response: %w", err)
		}
		if len(batch) == 0 {
			return nil, nil
		}
		return batch[0].Labels, nil
	}

	var out hfResponse
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("parsing inference response: %w", err)
	}
	return out.Labels, nil
}

func (b *HuggingFaceBackend) endpoint() string {
	base := b.BaseURL
	if base == "" {
		base = hfAPIBase
	}
	model := b.Model
	if model == "" {
		model = DefaultModel
	}
	return strings.TrimSuffix(base, "/") + "/" + model
}

func (b *HuggingFaceBackend) client() *http.Client {
	if b.Client == nil {
		return http.DefaultClient
	}
	return b.Client
}
