// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

// defaultCues maps each label in Labels to lowercase cue terms. A multi-word
// cue matches a run of consecutive tokens.
var defaultCues = map[string][]string{
	"Machine Learning": {
		"machine learning", "neural network", "deep learning", "training",
		"gradient", "supervised", "unsupervised", "reinforcement learning",
		"classifier", "regression",
	},
	"Natural Language Processing": {
		"language model", "natural language", "nlp", "text", "translation",
		"token", "corpus", "sentiment", "transformer", "question answering",
	},
	"Computer Vision": {
		"image", "vision", "visual", "segmentation", "object detection",
		"video", "pixel", "convolutional", "camera",
	},
	"Robotics": {
		"robot", "robotic", "manipulation", "locomotion", "grasping",
		"autonomous", "navigation", "control policy",
	},
	"Bioinformatics": {
		"protein", "gene", "genomic", "dna", "rna", "molecular", "biological",
		"sequencing", "cell",
	},
	"Cybersecurity": {
		"security", "attack", "adversarial", "malware", "privacy",
		"vulnerability", "intrusion", "encryption",
	},
	"Data Science": {
		"dataset", "statistical", "analytics", "data analysis", "visualization",
		"clustering", "time series", "forecasting",
	},
	"AI Ethics": {
		"ethics", "ethical", "fairness", "bias", "accountability",
		"transparency", "responsible", "societal",
	},
}

// KeywordBackend is a local classifier that ranks labels by how many of their
// cue terms occur in the text. It needs no network access.
type KeywordBackend struct {
	cues map[string][]string
}

// NewKeywordBackend returns a KeywordBackend using the built-in cue table.
func NewKeywordBackend() *KeywordBackend {
	return &KeywordBackend{cues: defaultCues}
}

// Name returns the backend identifier.
func (b *KeywordBackend) Name() string { return "keyword" }

// Rank returns the labels with a non-zero cue count, highest count first.
// Ties keep the order of labels. A text matching no cues ranks nothing.
func (b *KeywordBackend) Rank(_ context.Context, text string, labels []string) ([]string, error) {
	tokens := tokenize(text)

	type scored struct {
		label string
		score int
	}
	var hits []scored
	for _, label := range labels {
		score := 0
		for _, cue := range b.cues[label] {
			score += countPhrase(tokens, strings.Fields(cue))
		}
		if score > 0 {
			hits = append(hits, scored{label: label, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	ranked := make([]string, len(hits))
	for i, h := range hits {
		ranked[i] = h.label
	}
	return ranked, nil
}

// tokenize lowercases text and splits it on anything that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// countPhrase counts occurrences of phrase as consecutive tokens. A single
// token also matches as a prefix so "robot" counts "robots".
func countPhrase(tokens, phrase []string) int {
	if len(phrase) == 0 {
		return 0
	}
	n := 0
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j, p := range phrase {
			if !strings.HasPrefix(tokens[i+j], p) {
				match = false
				break
			}
		}
		if match {
			n++
		}
	}
	return n
}
