package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapCache is an in-memory Cache for tests.
type mapCache struct {
	entries map[string][]float32
	puts    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]float32)}
}

func (m *mapCache) Get(model, text string) ([]float32, bool, error) {
	v, ok := m.entries[model+"\x00"+text]
	return v, ok, nil
}

func (m *mapCache) Put(model, text string, vector []float32) error {
	m.puts++
	m.entries[model+"\x00"+text] = vector
	return nil
}

func TestNewCachedValidation(t *testing.T) {
	inner := &countingEmbedder{}

	_, err := NewCached(nil, newMapCache(), "BAAI/bge-m3")
	assert.ErrorIs(t, err, ErrEmbedderRequired)

	_, err = NewCached(inner, nil, "BAAI/bge-m3")
	assert.ErrorIs(t, err, ErrCacheRequired)
}

func TestCachedEmbedText(t *testing.T) {
	inner := &countingEmbedder{}
	cache := newMapCache()
	cached, err := NewCached(inner, cache, "BAAI/bge-m3")
	require.NoError(t, err)

	ctx := context.Background()

	first, err := cached.EmbedText(ctx, "совет директоров")
	require.NoError(t, err)
	second, err := cached.EmbedText(ctx, "совет директоров")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), inner.calls.Load(), "second call must be served from cache")
	assert.Equal(t, 1, cache.puts)
}

func TestCachedEmbedTextsMixedHits(t *testing.T) {
	inner := &countingEmbedder{}
	cache := newMapCache()
	cached, err := NewCached(inner, cache, "BAAI/bge-m3")
	require.NoError(t, err)

	ctx := context.Background()

	// Warm the cache with one of the two texts.
	_, err = cached.EmbedText(ctx, "раздел один")
	require.NoError(t, err)
	callsBefore := inner.calls.Load()

	vectors, err := cached.EmbedTexts(ctx, []string{"раздел один", "раздел два"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.NotNil(t, vectors[0])
	assert.NotNil(t, vectors[1])

	// Only the miss reaches the wrapped embedder.
	assert.Equal(t, callsBefore+1, inner.calls.Load())
}

func TestCachedAllHitsSkipsEmbedder(t *testing.T) {
	inner := &countingEmbedder{}
	cache := newMapCache()
	cached, err := NewCached(inner, cache, "BAAI/bge-m3")
	require.NoError(t, err)

	ctx := context.Background()
	texts := []string{"один", "два"}

	_, err = cached.EmbedTexts(ctx, texts)
	require.NoError(t, err)
	callsBefore := inner.calls.Load()

	_, err = cached.EmbedTexts(ctx, texts)
	require.NoError(t, err)
	assert.Equal(t, callsBefore, inner.calls.Load())
}
