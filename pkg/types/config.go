package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-scraper/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the arXiv fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the arXiv query endpoint.
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// ClassifierBackend identifies the topic classification implementation.
type ClassifierBackend string

const (
	ClassifierHuggingFace ClassifierBackend = "huggingface"
	ClassifierKeyword     ClassifierBackend = "keyword"
)

// ClassifierConfig holds settings for the topic classifier.
type ClassifierConfig struct {
	HTTPConfig `yaml:",inline"`

	// Backend selects the classifier: huggingface or keyword.
	Backend ClassifierBackend `json:"backend" yaml:"backend"`

	// Model is the zero-shot model identifier (e.g. "facebook/bart-large-mnli").
	Model string `json:"model" yaml:"model"`

	// BaseURL is the inference API root; the model name is appended to it.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey is the optional bearer token for the inference API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retries on HTTP 429 or 503 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// OutputConfig locates the persisted collection.
type OutputConfig struct {
	// Dir is the output directory, created if absent (default "output").
	Dir string `json:"dir" yaml:"dir"`

	// File is the collection file name inside Dir (default "arxiv_articles.json").
	File string `json:"file" yaml:"file"`
}

// Config groups all stage configurations for one run.
type Config struct {
	Fetch      FetchConfig      `json:"arxiv" yaml:"arxiv"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier"`
	Output     OutputConfig     `json:"output" yaml:"output"`
}
