package recommend

import "github.com/litmatch/litmatch/internal/domain"

// Recommendation is a single ranked hit against the corpus.
type Recommendation struct {
	paper domain.Paper
	score float64
	rank  int
}

// NewRecommendation creates a ranked recommendation. score is expected to be
// in [0, 1], rank is 1-based.
func NewRecommendation(paper domain.Paper, score float64, rank int) Recommendation {
	return Recommendation{paper: paper, score: score, rank: rank}
}

// Paper returns the recommended paper.
func (r *Recommendation) Paper() domain.Paper { return r.paper }

// Score returns the similarity score, rounded to the response precision.
func (r *Recommendation) Score() float64 { return r.score }

// Rank returns the 1-based position within the response.
func (r *Recommendation) Rank() int { return r.rank }
