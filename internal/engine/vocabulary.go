package engine

import (
	"math"
	"sort"
)

type termStat struct {
	index int
	idf   float64
}

// Vocabulary is the frozen term space of one index build: every term that
// appears in at least one document, with its vector index and smoothed idf
// weight. No term is added or removed without a full rebuild.
type Vocabulary struct {
	terms map[string]termStat
}

// buildVocabulary assigns term indices in sorted-term order so identical
// corpora always produce identical vocabularies, and computes
// idf(t) = ln((N+1)/(df(t)+1)) + 1, which stays positive even for terms
// present in every document.
func buildVocabulary(docs [][]string) Vocabulary {
	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	ordered := make([]string, 0, len(df))
	for term := range df {
		ordered = append(ordered, term)
	}
	sort.Strings(ordered)

	n := float64(len(docs))
	terms := make(map[string]termStat, len(ordered))
	for i, term := range ordered {
		terms[term] = termStat{
			index: i,
			idf:   math.Log((n+1)/float64(df[term]+1)) + 1,
		}
	}
	return Vocabulary{terms: terms}
}

// Size returns the number of distinct terms.
func (v Vocabulary) Size() int { return len(v.terms) }

func (v Vocabulary) lookup(term string) (termStat, bool) {
	st, ok := v.terms[term]
	return st, ok
}
