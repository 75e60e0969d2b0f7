package reembed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AubakirovArman/skai/ai/mock"
	"github.com/AubakirovArman/skai/core"
)

func TestBatchProcessorProcess(t *testing.T) {
	writer := newFakeWriter()
	writer.addTargets(core.LevelSubsection, 3)

	processor := NewBatchProcessor(writer, mock.NewMockEmbedder(), 3, time.Millisecond)
	err := processor.Process(context.Background(), writer.targets[core.LevelSubsection])
	require.NoError(t, err)

	require.Len(t, writer.updatedIDs[core.LevelSubsection], 3)
	require.Len(t, writer.updatedVectors[core.LevelSubsection], 3)
	for _, vector := range writer.updatedVectors[core.LevelSubsection] {
		assert.Len(t, vector, mock.Dimension)
		assert.InDelta(t, 1.0, magnitude(vector), 1e-5, "stored vectors must be unit length")
	}
}

func TestBatchProcessorEmptyBatch(t *testing.T) {
	processor := NewBatchProcessor(newFakeWriter(), mock.NewMockEmbedder(), 3, time.Millisecond)
	require.NoError(t, processor.Process(context.Background(), nil))
}

func TestBatchProcessorRetriesEmbedding(t *testing.T) {
	writer := newFakeWriter()
	writer.addTargets(core.LevelSection, 2)

	embedder := mock.NewMockEmbedder()
	failures := 2
	embedder.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
		if failures > 0 {
			failures--
			return nil, errors.New("transient")
		}
		vectors := make([][]float32, len(texts))
		for i := range vectors {
			vectors[i] = make([]float32, mock.Dimension)
			vectors[i][0] = 1
		}
		return vectors, nil
	}

	processor := NewBatchProcessor(writer, embedder, 3, time.Millisecond)
	err := processor.Process(context.Background(), writer.targets[core.LevelSection])
	require.NoError(t, err)
	assert.Len(t, writer.updatedIDs[core.LevelSection], 2)
}

func TestBatchProcessorFailsAfterRetriesExhausted(t *testing.T) {
	writer := newFakeWriter()
	writer.addTargets(core.LevelSection, 1)

	embedder := mock.NewMockEmbedder()
	cause := errors.New("service down")
	embedder.EmbedTextsFunc = func(_ context.Context, _ []string) ([][]float32, error) {
		return nil, cause
	}

	processor := NewBatchProcessor(writer, embedder, 2, time.Millisecond)
	err := processor.Process(context.Background(), writer.targets[core.LevelSection])
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, writer.updatedIDs[core.LevelSection])
}

func TestBatchProcessorCountMismatch(t *testing.T) {
	writer := newFakeWriter()
	writer.addTargets(core.LevelSection, 2)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(_ context.Context, _ []string) ([][]float32, error) {
		return [][]float32{{1}}, nil
	}

	processor := NewBatchProcessor(writer, embedder, 1, time.Millisecond)
	err := processor.Process(context.Background(), writer.targets[core.LevelSection])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestBatchProcessorUpdateError(t *testing.T) {
	writer := newFakeWriter()
	writer.addTargets(core.LevelSection, 1)
	writer.updateErr = errors.New("write failed")

	processor := NewBatchProcessor(writer, mock.NewMockEmbedder(), 1, time.Millisecond)
	err := processor.Process(context.Background(), writer.targets[core.LevelSection])
	assert.ErrorIs(t, err, writer.updateErr)
}
