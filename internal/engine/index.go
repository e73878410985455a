package engine

import (
	"fmt"

	"github.com/litmatch/litmatch/internal/domain"
)

// Index is the immutable product of one build: the tokenization rules, the
// frozen vocabulary with idf weights, the corpus, and one normalized TF-IDF
// vector per paper, aligned to corpus order. Rebuilds construct a new Index
// and swap the handle; nothing mutates an existing one, so any number of
// queries may read it concurrently.
type Index struct {
	tokenizer *Tokenizer
	vocab     Vocabulary
	papers    []domain.Paper
	vectors   []SparseVector
}

// Build tokenizes the corpus, freezes the vocabulary, and vectorizes every
// paper. Corpus order is preserved; it is the ranking tie-break key.
// An empty corpus is a configuration failure, not an empty index.
func Build(papers []domain.Paper, tokenizer *Tokenizer) (*Index, error) {
	if len(papers) == 0 {
		return nil, fmt.Errorf("%w: corpus is empty", domain.ErrCorpusUnavailable)
	}

	docs := make([][]string, len(papers))
	for i, p := range papers {
		docs[i] = tokenizer.Tokenize(p.Text)
	}
	vocab := buildVocabulary(docs)

	vectors := make([]SparseVector, len(papers))
	for i, tokens := range docs {
		vectors[i] = vectorize(tokens, vocab)
	}

	corpus := make([]domain.Paper, len(papers))
	copy(corpus, papers)

	return &Index{
		tokenizer: tokenizer,
		vocab:     vocab,
		papers:    corpus,
		vectors:   vectors,
	}, nil
}

// vectorize computes weight = tf × idf over a frozen vocabulary and
// L2-normalizes. Terms outside the vocabulary contribute nothing; a text
// with no recognized terms yields the zero vector.
func vectorize(tokens []string, vocab Vocabulary) SparseVector {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	raw := make(map[int]float64, len(counts))
	for term, tf := range counts {
		st, ok := vocab.lookup(term)
		if !ok {
			continue
		}
		raw[st.index] = float64(tf) * st.idf
	}
	return newSparseVector(raw)
}

// QueryVector vectorizes arbitrary text in the index's frozen vocabulary
// space. Out-of-vocabulary terms are dropped silently; the result is never
// added to the index.
func (ix *Index) QueryVector(text string) SparseVector {
	return vectorize(ix.tokenizer.Tokenize(text), ix.vocab)
}

// Documents returns the corpus size.
func (ix *Index) Documents() int { return len(ix.papers) }

// Terms returns the vocabulary size.
func (ix *Index) Terms() int { return ix.vocab.Size() }

// Paper returns the corpus record at position i.
func (ix *Index) Paper(i int) domain.Paper { return ix.papers[i] }
