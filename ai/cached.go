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


package ai

import (
	"context"
	"log/slog"
)

// Cached wraps an Embedder with a Cache. Lookups and stores that fail are
// logged and treated as misses: the cache accelerates repeated embeddings
// but never changes the outcome of a request.
type Cached struct {
	inner  Embedder
	cache  Cache
	model  string
	logger *slog.Logger
}

var _ Embedder = (*Cached)(nil)

// NewCached creates a caching embedder. The model identifier is part of every
// cache key so switching models never serves stale vectors.
func NewCached(inner Embedder, cache Cache, model string) (*Cached, error) {
	if inner == nil {
		return nil, ErrEmbedderRequired
	}
	if cache == nil {
		return nil, ErrCacheRequired
	}

	return &Cached{
		inner:  inner,
		cache:  cache,
		model:  model,
		logger: slog.Default().With("component", "cached-embedder"),
	}, nil
}

// EmbedText returns the cached vector for text, or embeds and caches it.
func (c *Cached) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vector, found, err := c.cache.Get(c.model, text)
	if err != nil {
		c.logger.Warn("cache lookup failed", "err", err)
	}
	if found {
		return vector, nil
	}

	vector, err = c.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Put(c.model, text, vector); err != nil {
		c.logger.Warn("cache store failed", "err", err)
	}
	return vector, nil
}

// EmbedTexts embeds a batch, serving cached entries and delegating only the
// misses to the wrapped embedder.
func (c *Cached) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	missing := make([]int, 0, len(texts))

	for i, text := range texts {
		vector, found, err := c.cache.Get(c.model, text)
		if err != nil {
			c.logger.Warn("cache lookup failed", "err", err)
		}
		if found {
			vectors[i] = vector
		} else {
			missing = append(missing, i)
		}
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	missingTexts := make([]string, len(missing))
	for i, idx := range missing {
		missingTexts[i] = texts[idx]
	}

	embedded, err := c.inner.EmbedTexts(ctx, missingTexts)
	if err != nil {
		return nil, err
	}
	if len(embedded) != len(missing) {
		return nil, ErrEmptyResponse
	}

	for i, idx := range missing {
		vectors[idx] = embedded[i]
		if err := c.cache.Put(c.model, texts[idx], embedded[i]); err != nil {
			c.logger.Warn("cache store failed", "err", err)
		}
	}
	return vectors, nil
}
