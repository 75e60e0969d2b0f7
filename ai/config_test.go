package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:8001", cfg.Host)
	assert.Equal(t, "BAAI/bge-m3", cfg.Model)
	assert.Equal(t, 1024, cfg.Dimension)
	require.NoError(t, cfg.Validate())
}

func TestNewConfigAppliesOptions(t *testing.T) {
	cfg := NewConfig(
		WithHost("https://bge-m3.sk-ai.kz"),
		WithModel("BAAI/bge-m3"),
		WithDimension(1024),
	)
	assert.Equal(t, "https://bge-m3.sk-ai.kz", cfg.Host)
	require.NoError(t, cfg.Validate())
}

func TestConfigNormalize(t *testing.T) {
	t.Run("strips trailing slash", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:8001/"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:8001", cfg.Host)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		cfg := NewConfig(WithHost("  http://localhost:8001 "), WithModel(" BAAI/bge-m3 "))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:8001", cfg.Host)
		assert.Equal(t, "BAAI/bge-m3", cfg.Model)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("missing host", func(t *testing.T) {
		cfg := NewConfig(WithHost(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := NewConfig(WithModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive dimension", func(t *testing.T) {
		cfg := NewConfig(WithDimension(0))
		assert.Error(t, cfg.Validate())
	})
}
