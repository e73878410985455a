package engine

import (
	"math"
	"testing"

	"github.com/litmatch/litmatch/internal/domain"
)

func TestRank_CropScenario(t *testing.T) {
	ix, err := Build(testCorpus(), NewTokenizer(2, nil))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	hits := ix.Rank(ix.QueryVector("machine learning for crops"), 1)
	if len(hits) != 1 {
		t.Fatalf("expected exactly 1 hit, got %d", len(hits))
	}
	if got := ix.Paper(hits[0].Position).Title; got != "Crop Yield ML" {
		t.Errorf("top hit = %q, want \"Crop Yield ML\"", got)
	}
	if hits[0].Score <= 0 {
		t.Errorf("score = %v, want > 0", hits[0].Score)
	}
}

func TestRank_ScoresOrderedAndBounded(t *testing.T) {
	papers := []domain.Paper{
		{Title: "a", Text: "graph algorithms shortest path"},
		{Title: "b", Text: "graph neural networks"},
		{Title: "c", Text: "path planning robotics"},
		{Title: "d", Text: "graph path algorithms analysis"},
	}
	ix, err := Build(papers, NewTokenizer(2, nil))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	hits := ix.Rank(ix.QueryVector("graph path algorithms"), 10)
	if len(hits) == 0 || len(hits) > len(papers) {
		t.Fatalf("unexpected hit count %d", len(hits))
	}
	for i, h := range hits {
		if h.Score <= 0 || h.Score > 1 {
			t.Errorf("hit %d score %v outside (0, 1]", i, h.Score)
		}
		if i > 0 && hits[i-1].Score < h.Score {
			t.Errorf("scores not non-increasing at %d: %v < %v", i, hits[i-1].Score, h.Score)
		}
	}
}

func TestRank_TieBreakByCorpusOrder(t *testing.T) {
	papers := []domain.Paper{
		{Title: "first twin", Text: "sparse matrix factorization"},
		{Title: "unrelated", Text: "ocean current modelling"},
		{Title: "second twin", Text: "sparse matrix factorization"},
	}
	ix, err := Build(papers, NewTokenizer(2, nil))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	hits := ix.Rank(ix.QueryVector("sparse matrix"), 10)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Score != hits[1].Score {
		t.Errorf("identical documents scored differently: %v vs %v", hits[0].Score, hits[1].Score)
	}
	if hits[0].Position != 0 || hits[1].Position != 2 {
		t.Errorf("tie not broken by corpus order: positions %d, %d", hits[0].Position, hits[1].Position)
	}
}

func TestRank_TruncatesToK(t *testing.T) {
	papers := []domain.Paper{
		{Title: "a", Text: "storage engine design"},
		{Title: "b", Text: "storage layout"},
		{Title: "c", Text: "storage compaction"},
	}
	ix, err := Build(papers, NewTokenizer(2, nil))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if hits := ix.Rank(ix.QueryVector("storage"), 2); len(hits) != 2 {
		t.Errorf("expected 2 hits, got %d", len(hits))
	}
	if hits := ix.Rank(ix.QueryVector("storage"), 0); hits != nil {
		t.Errorf("expected no hits for k=0, got %d", len(hits))
	}
}

func TestRank_ZeroQuery(t *testing.T) {
	ix, err := Build(testCorpus(), NewTokenizer(2, nil))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if hits := ix.Rank(SparseVector{}, 5); len(hits) != 0 {
		t.Errorf("expected no hits for zero query, got %d", len(hits))
	}
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		score  float64
		digits int
		want   float64
	}{
		{0.123456, 4, 0.1235},
		{0.99995, 4, 1},
		{0.5, 4, 0.5},
		{0.123456, 2, 0.12},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := RoundScore(tt.score, tt.digits); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("RoundScore(%v, %d) = %v, want %v", tt.score, tt.digits, got, tt.want)
		}
	}
}
