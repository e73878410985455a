package engine

import (
	"math"
	"sort"
)

// DefaultScorePrecision is the number of decimal digits response scores are
// rounded to.
const DefaultScorePrecision = 4

// Hit is one scored document: its corpus position and full-precision score.
type Hit struct {
	Position int
	Score    float64
}

// Rank scores query against every document vector and returns up to k hits
// with a strictly positive score, ordered by descending score with ties
// broken by ascending corpus position. A query with only out-of-vocabulary
// terms matches nothing and returns an empty result.
func (ix *Index) Rank(query SparseVector, k int) []Hit {
	if k <= 0 || query.IsZero() {
		return nil
	}

	hits := make([]Hit, 0, len(ix.vectors))
	for pos, vec := range ix.vectors {
		if score := query.Dot(vec); score > 0 {
			hits = append(hits, Hit{Position: pos, Score: score})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Position < hits[j].Position
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}

// RoundScore rounds a score to the given number of decimal digits, half away
// from zero. Ranking happens before rounding, at full precision.
func RoundScore(score float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(score*pow) / pow
}
