package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/AubakirovArman/skai/ai"
	"github.com/AubakirovArman/skai/storage"
)

// BatchProcessor handles embedding generation for batches of targets.
type BatchProcessor struct {
	writer         storage.EmbeddingWriter
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(writer storage.EmbeddingWriter, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		writer:         writer,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates embeddings for a batch of targets and writes them back.
// Vectors are normalized after embedding to ensure compatibility with cosine similarity.
func (bp *BatchProcessor) Process(ctx context.Context, targets []storage.EmbeddingTarget) error {
	if len(targets) == 0 {
		return nil
	}
	level := targets[0].Level

	texts := make([]string, len(targets))
	ids := make([]string, len(targets))
	for i, target := range targets {
		texts[i] = target.Text
		ids[i] = target.ID
	}

	// Generate embeddings with retry
	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(targets) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(targets), len(embeddings))
	}

	vectors := make([][]float32, len(embeddings))
	for i := range embeddings {
		vectors[i] = NormalizeVector(embeddings[i])
	}

	if err := bp.writer.UpdateEmbeddings(ctx, level, ids, vectors); err != nil {
		return fmt.Errorf("failed to update embeddings: %w", err)
	}

	return nil
}
