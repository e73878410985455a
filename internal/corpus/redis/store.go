// Package redis loads the paper corpus from a Redis-compatible store via
// rueidis. Papers are JSON documents under "<prefix>paper:<key>".
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/rueidis"

	"github.com/litmatch/litmatch/internal/domain"
)

// Config holds connection parameters for the Redis corpus store.
type Config struct {
	Addrs     []string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
}

// Store reads JSON paper records from Redis.
type Store struct {
	client rueidis.Client
	prefix string
}

// New creates a Redis corpus store.
func New(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{client: client, prefix: cfg.KeyPrefix}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close shuts down the client.
func (s *Store) Close() {
	s.client.Close()
}

// WaitForReady polls Ping until the store responds or the timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for corpus store: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// paperRecord mirrors the stored JSON shape.
type paperRecord struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url,omitempty"`
}

// Load scans "<prefix>paper:*" and fetches every record. Keys are sorted
// before fetching so corpus order, and with it the ranking tie-break, is
// stable across loads.
func (s *Store) Load(ctx context.Context) ([]domain.Paper, error) {
	pattern := s.prefix + "paper:*"

	keys, err := s.scan(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorpusUnavailable, err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no papers under %q", domain.ErrCorpusUnavailable, pattern)
	}
	sort.Strings(keys)

	papers := make([]domain.Paper, 0, len(keys))
	for _, key := range keys {
		cmd := s.client.B().Get().Key(key).Build()
		data, err := s.client.Do(ctx, cmd).AsBytes()
		if err != nil {
			if rueidis.IsRedisNil(err) {
				// Key vanished between scan and get.
				continue
			}
			return nil, fmt.Errorf("%w: get %s: %w", domain.ErrCorpusUnavailable, key, err)
		}

		var rec paperRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrCorpusUnavailable, key, err)
		}
		papers = append(papers, domain.Paper{ID: rec.ID, Title: rec.Title, Text: rec.Text, URL: rec.URL})
	}

	if len(papers) == 0 {
		return nil, fmt.Errorf("%w: no papers under %q", domain.ErrCorpusUnavailable, pattern)
	}
	return papers, nil
}

// scan iterates keys matching a pattern.
func (s *Store) scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		cmd := s.client.B().Scan().Cursor(cursor).Match(pattern).Count(100).Build()
		res, err := s.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		keys = append(keys, res.Elements...)
		cursor = res.Cursor
		if cursor == 0 {
			return keys, nil
		}
	}
}
