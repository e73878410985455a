// Package recommend implements the recommendation facade: request
// validation, index lifecycle, and ranked retrieval against the current
// index.
package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/litmatch/litmatch/internal/domain"
	domrec "github.com/litmatch/litmatch/internal/domain/recommend"
	"github.com/litmatch/litmatch/internal/engine"
	"github.com/litmatch/litmatch/internal/metrics"
)

// Response is the outcome of one recommendation query.
type Response struct {
	Query string
	Items []domrec.Recommendation
}

// Options tunes the service.
type Options struct {
	Limits    domrec.Limits
	Precision int // response score rounding, decimal digits
	CacheSize int // response cache capacity, <= 0 disables
}

// Service answers recommendation queries against the current index. The
// index handle is the only shared mutable state: Rebuild swaps it
// atomically, every query reads it through a single load, and the Index
// itself is immutable, so queries run concurrently without locks.
type Service struct {
	store     CorpusStore
	tokenizer *engine.Tokenizer
	limits    domrec.Limits
	precision int
	index     atomic.Pointer[engine.Index]
	cache     *responseCache
	logger    *zap.Logger
}

// New creates a recommendation service. No index exists until the first
// successful Rebuild; until then Recommend fails with domain.ErrNotIndexed.
func New(store CorpusStore, tokenizer *engine.Tokenizer, opts Options, logger *zap.Logger) *Service {
	if opts.Precision <= 0 {
		opts.Precision = engine.DefaultScorePrecision
	}
	s := &Service{
		store:     store,
		tokenizer: tokenizer,
		limits:    opts.Limits,
		precision: opts.Precision,
		logger:    logger,
	}
	if opts.CacheSize > 0 {
		s.cache = newResponseCache(opts.CacheSize)
	}
	return s
}

// Ready reports whether a successful build has installed an index.
func (s *Service) Ready() bool {
	return s.index.Load() != nil
}

// Limits returns the request limits the service validates against.
func (s *Service) Limits() domrec.Limits {
	return s.limits
}

// Stats returns the dimensions of the current index, ok=false when none has
// been built yet.
func (s *Service) Stats() (documents, terms int, ok bool) {
	ix := s.index.Load()
	if ix == nil {
		return 0, 0, false
	}
	return ix.Documents(), ix.Terms(), true
}

// Rebuild loads the corpus and builds a fresh index. On success the new
// index replaces the current one atomically and the response cache is
// flushed; on failure the previous index (if any) keeps serving. A reader
// never observes a partially built index.
func (s *Service) Rebuild(ctx context.Context) error {
	start := time.Now()

	papers, err := s.store.Load(ctx)
	if err != nil {
		metrics.IndexBuildsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("load corpus: %w", err)
	}

	ix, err := engine.Build(papers, s.tokenizer)
	if err != nil {
		metrics.IndexBuildsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("build index: %w", err)
	}

	s.index.Store(ix)
	if s.cache != nil {
		s.cache.Flush()
	}

	metrics.IndexBuildsTotal.WithLabelValues("ok").Inc()
	metrics.IndexBuildDuration.Observe(time.Since(start).Seconds())
	metrics.IndexDocuments.Set(float64(ix.Documents()))
	metrics.IndexTerms.Set(float64(ix.Terms()))

	s.logger.Info("index rebuilt",
		zap.Int("documents", ix.Documents()),
		zap.Int("terms", ix.Terms()),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// Recommend returns the top papers for the request text, best first. It is a
// pure read against the current index: either a complete score-sorted list
// or an error, never a partial result. The computation is bounded and does
// no I/O; deadline enforcement is the caller's job.
func (s *Service) Recommend(_ context.Context, req domrec.Request) (Response, error) {
	ix := s.index.Load()
	if ix == nil {
		return Response{}, domain.ErrNotIndexed
	}

	if s.cache != nil {
		if resp, ok := s.cache.Get(req); ok {
			metrics.RecommendCacheTotal.WithLabelValues("hit").Inc()
			return resp, nil
		}
		metrics.RecommendCacheTotal.WithLabelValues("miss").Inc()
	}

	hits := ix.Rank(ix.QueryVector(req.Text()), req.MaxResults())

	items := make([]domrec.Recommendation, len(hits))
	for i, h := range hits {
		items[i] = domrec.NewRecommendation(
			ix.Paper(h.Position),
			engine.RoundScore(h.Score, s.precision),
			i+1,
		)
	}

	resp := Response{Query: req.Text(), Items: items}
	if s.cache != nil {
		s.cache.Put(req, resp)
	}
	return resp, nil
}
