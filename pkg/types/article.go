// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-scraper pipeline:
// the persisted Article record and the per-stage configuration structs.
package types

const (
	// ContentGroupArticles is the contentGroup value of every scraped record.
	ContentGroupArticles = "Articles"

	// PublicationArxiv is the publication name of every scraped record.
	PublicationArxiv = "arXiv"

	// LanguageEnglish is the language value of every scraped record.
	LanguageEnglish = "en"

	// UnknownAuthor is used when an entry lists no authors.
	UnknownAuthor = "Unknown"
)

// Article is one enriched paper as persisted in the JSON collection.
// Field order matches the on-disk key order.
type Article struct {
	// Title is the trimmed paper title. It is the dedup key of the collection
	// and is compared as an exact string.
	Title string `json:"title" yaml:"title"`

	// Date is the publication date formatted as YYYY-MM-DD.
	Date string `json:"date" yaml:"date"`

	// ContentGroup is always ContentGroupArticles.
	ContentGroup string `json:"contentGroup" yaml:"contentGroup"`

	// InternalTags holds exactly one entry: the derived topic label.
	InternalTags []string `json:"internalTags" yaml:"internalTags"`

	// Author carries the first listed author; only Name is populated.
	Author Author `json:"author" yaml:"author"`

	// Publication names the source and links to the paper.
	Publication Publication `json:"publication" yaml:"publication"`

	// PublicTags is reserved and always empty.
	PublicTags []string `json:"publicTags" yaml:"publicTags"`

	// Summary is the trimmed abstract.
	Summary string `json:"summary" yaml:"summary"`

	// SourceURL duplicates Publication.URL.
	SourceURL string `json:"sourceUrl" yaml:"sourceUrl"`

	// Language is always LanguageEnglish.
	Language string `json:"language" yaml:"language"`

	// ReadingTime is the estimated reading time in minutes (at least 1).
	ReadingTime int `json:"readingTime" yaml:"readingTime"`

	// ImageURL is reserved and always empty.
	ImageURL string `json:"imageUrl" yaml:"imageUrl"`

	// RelatedContent is reserved and always empty.
	RelatedContent []string `json:"relatedContent" yaml:"relatedContent"`

	// Content is the summary wrapped in a paragraph element.
	Content string `json:"content" yaml:"content"`
}

// Author identifies the first author of a paper.
type Author struct {
	Name         string `json:"name" yaml:"name"`
	Email        string `json:"email" yaml:"email"`
	Organization string `json:"organization" yaml:"organization"`
}

// Publication identifies where a paper was published.
type Publication struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Topic returns the article's topic label, or "" if none has been assigned.
func (a Article) Topic() string {
	if len(a.InternalTags) == 0 {
		return ""
	}
	return a.InternalTags[0]
}
