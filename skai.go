// Copyright 2025 Arman Aubakirov
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package skai

import (
	"context"
	"io"
	"log/slog"

	"github.com/AubakirovArman/skai/ai"
	"github.com/AubakirovArman/skai/ai/bge"
	"github.com/AubakirovArman/skai/ai/openai"
	"github.com/AubakirovArman/skai/reembed"
	"github.com/AubakirovArman/skai/search"
	"github.com/AubakirovArman/skai/storage/embedcache"
	"github.com/AubakirovArman/skai/storage/postgres"
)

// Engine wires the vector store, the embedder, and the optional
// embedding cache into one handle.
type Engine struct {
	store    *postgres.Store
	cache    *embedcache.Cache
	embedder ai.Embedder
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig  *ai.Config
	useOpenAI bool
	cachePath string
}

// WithAIConfig replaces the default embedding service configuration.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithOpenAIEmbedder routes embedding through an OpenAI-compatible API
// instead of the native encode endpoint.
func WithOpenAIEmbedder() EngineOption {
	return func(o *engineOptions) {
		o.useOpenAI = true
	}
}

// WithEmbeddingCache enables a persistent embedding cache at the given
// directory.
func WithEmbeddingCache(path string) EngineOption {
	return func(o *engineOptions) {
		o.cachePath = path
	}
}

// NewEngine connects to the database and prepares the embedder. The
// embedding service itself is dialed lazily on first use.
func NewEngine(ctx context.Context, dsn string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if err := options.aiConfig.Validate(); err != nil {
		return nil, err
	}

	store, err := postgres.NewStore(ctx, dsn)
	if err != nil {
		return nil, err
	}

	config := options.aiConfig
	useOpenAI := options.useOpenAI
	var embedder ai.Embedder = ai.NewLazy(func() (ai.Embedder, error) {
		if useOpenAI {
			return openai.NewEmbedder(config)
		}
		return bge.NewEmbedder(config)
	})

	var cache *embedcache.Cache
	if options.cachePath != "" {
		cache, err = embedcache.Open(options.cachePath, false)
		if err != nil {
			store.Close()
			return nil, err
		}
		embedder, err = ai.NewCached(embedder, cache, config.Model)
		if err != nil {
			cache.Close()
			store.Close()
			return nil, err
		}
	}

	return &Engine{
		store:    store,
		cache:    cache,
		embedder: embedder,
		logger:   slog.Default(),
	}, nil
}

// Close releases the database pool and the embedding cache.
func (e *Engine) Close() error {
	e.store.Close()

	if e.cache != nil {
		if err := e.cache.Close(); err != nil {
			e.logger.Error("error closing embedding cache", "err", err)
			return err
		}
	}
	return nil
}

// Store returns the underlying vector store.
func (e *Engine) Store() *postgres.Store {
	return e.store
}

// Embedder returns the configured embedder.
func (e *Engine) Embedder() ai.Embedder {
	return e.embedder
}

// NewSearcher creates a searcher backed by this engine.
func (e *Engine) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(e.store, e.embedder, opts...)
}

// NewReembedder creates a reembedder backed by this engine.
// progress: where to write progress output (typically os.Stderr)
func (e *Engine) NewReembedder(config *reembed.Config, progress io.Writer) (*reembed.Reembedder, error) {
	return reembed.NewReembedder(e.store, e.embedder, config, progress)
}
