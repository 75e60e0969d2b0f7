package reembed

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AubakirovArman/skai/ai/mock"
	"github.com/AubakirovArman/skai/core"
)

func testConfig() *Config {
	return &Config{
		BatchSize:      10,
		ReportInterval: 10,
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
		Workers:        4,
	}
}

func TestNewReembedderValidation(t *testing.T) {
	t.Run("nil writer", func(t *testing.T) {
		_, err := NewReembedder(nil, mock.NewMockEmbedder(), nil, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrWriterRequired)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewReembedder(newFakeWriter(), nil, nil, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmbedderRequired)
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		r, err := NewReembedder(newFakeWriter(), mock.NewMockEmbedder(), nil, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().BatchSize, r.config.BatchSize)
	})
}

func TestReembedderRunBothLevels(t *testing.T) {
	writer := newFakeWriter()
	writer.addTargets(core.LevelSection, 23)
	writer.addTargets(core.LevelSubsection, 41)

	var buf bytes.Buffer
	r, err := NewReembedder(writer, mock.NewMockEmbedder(), testConfig(), &buf)
	require.NoError(t, err)

	require.NoError(t, r.Run(context.Background()))

	assert.Len(t, writer.updatedIDs[core.LevelSection], 23)
	assert.Len(t, writer.updatedIDs[core.LevelSubsection], 41)
	assert.Contains(t, buf.String(), "Starting reembedding of 64 rows")
	assert.Contains(t, buf.String(), "Reembedding complete")
}

func TestReembedderRunEmptyDatabase(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewReembedder(newFakeWriter(), mock.NewMockEmbedder(), testConfig(), &buf)
	require.NoError(t, err)

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, buf.String(), "No rows found")
}

func TestReembedderRunPropagatesBatchError(t *testing.T) {
	writer := newFakeWriter()
	writer.addTargets(core.LevelSection, 5)

	embedder := mock.NewMockEmbedder()
	cause := errors.New("embedding service down")
	embedder.EmbedTextsFunc = func(_ context.Context, _ []string) ([][]float32, error) {
		return nil, cause
	}

	var buf bytes.Buffer
	r, err := NewReembedder(writer, embedder, testConfig(), &buf)
	require.NoError(t, err)

	err = r.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestReembedderRunContextCancelled(t *testing.T) {
	writer := newFakeWriter()
	writer.addTargets(core.LevelSection, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	r, err := NewReembedder(writer, mock.NewMockEmbedder(), testConfig(), &buf)
	require.NoError(t, err)

	err = r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
