package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use and deterministic:
// identical input text yields an identical vector.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector has the dimension the backend was configured with
	// and is normalized to unit length.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Cache stores embedding vectors keyed by model and input text.
// Because embeddings are deterministic per input, a cache hit is always
// equivalent to recomputing the vector.
type Cache interface {
	// Get returns the cached vector for the given model and text,
	// with found reporting whether an entry exists.
	Get(model, text string) (vector []float32, found bool, err error)

	// Put stores the vector for the given model and text.
	Put(model, text string, vector []float32) error
}
