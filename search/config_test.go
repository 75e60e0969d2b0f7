package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, DefaultTopK, config.TopK)
	assert.Equal(t, DefaultLimit, config.Limit)
	assert.Equal(t, DefaultMinScore, config.MinScore)
	assert.Equal(t, DefaultCharBudget, config.CharBudget)
	require.NoError(t, config.Validate())
}

func TestNewConfigOptions(t *testing.T) {
	config := NewConfig(
		WithTopK(5),
		WithLimit(8),
		WithMinScore(0.5),
		WithCharBudget(10000),
	)

	assert.Equal(t, 5, config.TopK)
	assert.Equal(t, 8, config.Limit)
	assert.Equal(t, 0.5, config.MinScore)
	assert.Equal(t, 10000, config.CharBudget)
	require.NoError(t, config.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify ConfigOption
	}{
		{"zero top-k", WithTopK(0)},
		{"negative limit", WithLimit(-1)},
		{"min score above one", WithMinScore(1.5)},
		{"min score below minus one", WithMinScore(-1.5)},
		{"zero char budget", WithCharBudget(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewConfig(tt.modify)
			err := config.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}
