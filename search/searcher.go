package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AubakirovArman/skai/ai"
	"github.com/AubakirovArman/skai/core"
	"github.com/AubakirovArman/skai/storage"
)

// Searcher runs the two-level retrieval pipeline: normalize, embed,
// fan out over sections and subsections, merge, rank.
type Searcher struct {
	store      storage.VectorStore
	embedder   ai.Embedder
	normalizer *Normalizer
	config     Config
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithConfig replaces the default retrieval configuration.
func WithConfig(config Config) Option {
	return func(s *Searcher) error {
		if err := config.Validate(); err != nil {
			return err
		}
		s.config = config
		return nil
	}
}

// WithNormalizer replaces the default query normalizer.
func WithNormalizer(normalizer *Normalizer) Option {
	return func(s *Searcher) error {
		if normalizer != nil {
			s.normalizer = normalizer
		}
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(store storage.VectorStore, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		store:      store,
		embedder:   embedder,
		normalizer: NewNormalizer(),
		config:     DefaultConfig(),
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// QueryOption overrides retrieval parameters for a single query.
type QueryOption func(*Config)

// WithQueryTopK overrides the per-level candidate count for one query.
func WithQueryTopK(topK int) QueryOption {
	return func(c *Config) {
		c.TopK = topK
	}
}

// WithQueryLimit overrides the result limit for one query.
func WithQueryLimit(limit int) QueryOption {
	return func(c *Config) {
		c.Limit = limit
	}
}

// WithQueryMinScore overrides the similarity threshold for one query.
func WithQueryMinScore(minScore float64) QueryOption {
	return func(c *Config) {
		c.MinScore = minScore
	}
}

// Search runs the retrieval pipeline for a query.
func (s *Searcher) Search(ctx context.Context, query string, opts ...QueryOption) (*core.SearchResponse, error) {
	return s.SearchWithMonitor(ctx, query, nil, opts...)
}

// SearchWithMonitor runs the retrieval pipeline with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, monitor SearchMonitor, opts ...QueryOption) (*core.SearchResponse, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	// Per-query config snapshot
	config := s.config
	for _, opt := range opts {
		opt(&config)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	monitor.Start(query)

	normalized := s.normalizer.Normalize(query)
	if normalized == "" {
		return nil, ErrEmptyQuery
	}
	monitor.AfterNormalize(normalized)

	vector, err := s.embedder.EmbedText(ctx, normalized)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", normalized, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
	}
	monitor.AfterEmbedding(len(vector))

	sections, err := s.store.NearestSections(ctx, vector, config.TopK)
	if err != nil {
		s.logger.Error("error querying section candidates", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	monitor.AfterSectionSearch(sections)

	subsections, err := s.store.NearestSubsections(ctx, vector, config.TopK)
	if err != nil {
		s.logger.Error("error querying subsection candidates", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	monitor.AfterSubsectionSearch(subsections)

	pool := make([]core.Candidate, 0, len(sections)+len(subsections))
	pool = append(pool, sections...)
	pool = append(pool, subsections...)

	ranked := Rank(pool, config.MinScore, config.Limit)
	results := shapeResults(ranked)

	s.logger.Debug("search complete",
		"query", normalized,
		"sections", len(sections),
		"subsections", len(subsections),
		"results", len(results))

	response := &core.SearchResponse{
		Query:           query,
		NormalizedQuery: normalized,
		Results:         results,
	}
	monitor.Finish(results)

	return response, nil
}

// Config returns the searcher's default retrieval configuration.
func (s *Searcher) Config() Config {
	return s.config
}
