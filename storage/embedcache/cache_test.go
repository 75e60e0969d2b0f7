package embedcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AubakirovArman/skai/storage"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = cache.Close()
	})
	return cache
}

func TestCachePutGet(t *testing.T) {
	cache := newTestCache(t)

	vector := []float32{0.1, -0.2, 0.3}
	require.NoError(t, cache.Put("bge-m3", "совет директоров", vector))

	got, found, err := cache.Get("bge-m3", "совет директоров")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, vector, got)
}

func TestCacheMiss(t *testing.T) {
	cache := newTestCache(t)

	got, found, err := cache.Get("bge-m3", "never stored")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestCacheModelIsolation(t *testing.T) {
	cache := newTestCache(t)

	require.NoError(t, cache.Put("model-a", "text", []float32{1}))

	_, found, err := cache.Get("model-b", "text")
	require.NoError(t, err)
	assert.False(t, found, "same text under a different model must miss")
}

func TestCacheOverwrite(t *testing.T) {
	cache := newTestCache(t)

	require.NoError(t, cache.Put("m", "t", []float32{1, 2}))
	require.NoError(t, cache.Put("m", "t", []float32{3, 4}))

	got, found, err := cache.Get("m", "t")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []float32{3, 4}, got)
}

func TestCacheClosed(t *testing.T) {
	cache, err := Open("", true)
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	_, _, err = cache.Get("m", "t")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = cache.Put("m", "t", []float32{1})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestMakeKeyDistinguishesBoundary(t *testing.T) {
	// "ab" + "c" and "a" + "bc" must not collide.
	assert.NotEqual(t, makeKey("ab", "c"), makeKey("a", "bc"))
}
