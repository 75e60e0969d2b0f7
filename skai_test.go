package skai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AubakirovArman/skai/ai"
	"github.com/AubakirovArman/skai/storage"
)

func TestNewEngineRejectsInvalidAIConfig(t *testing.T) {
	config := ai.NewConfig(ai.WithHost(""))

	_, err := NewEngine(context.Background(), "postgres://localhost/skai",
		WithAIConfig(config))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Host is required")
}

func TestNewEngineRejectsEmptyDSN(t *testing.T) {
	_, err := NewEngine(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}
