// Package engine implements the TF-IDF recommendation core: tokenization,
// vocabulary construction, sparse vectorization, and cosine ranking over an
// immutable index.
package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMinTokenLength drops single-character tokens.
const DefaultMinTokenLength = 2

// Tokenizer normalizes free text into match terms: case-folded, split on
// non-alphanumeric boundaries, with short tokens and stop-words removed.
// Documents and queries must go through the same Tokenizer so they share a
// term space.
type Tokenizer struct {
	minLen    int
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer. minLen <= 0 selects the default minimum
// token length; stopwords may be empty.
func NewTokenizer(minLen int, stopwords []string) *Tokenizer {
	if minLen <= 0 {
		minLen = DefaultMinTokenLength
	}
	stop := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			stop[w] = struct{}{}
		}
	}
	return &Tokenizer{minLen: minLen, stopwords: stop}
}

// Tokenize returns the match terms of text in order of appearance.
// Duplicates are preserved: term frequency is counted downstream.
func (t *Tokenizer) Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) < t.minLen {
			continue
		}
		if _, stop := t.stopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}
