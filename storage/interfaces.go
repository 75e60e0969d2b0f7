package storage

import (
	"context"

	"github.com/AubakirovArman/skai/core"
)

// VectorStore retrieves nearest-neighbor candidates at both retrieval
// levels. Implementations order results by vector distance and never
// return rows without an embedding.
type VectorStore interface {
	// NearestSections returns up to k section-level candidates nearest
	// to the query vector, most similar first.
	NearestSections(ctx context.Context, vector []float32, k int) ([]core.Candidate, error)

	// NearestSubsections returns up to k subsection-level candidates
	// nearest to the query vector, most similar first.
	NearestSubsections(ctx context.Context, vector []float32, k int) ([]core.Candidate, error)
}

// EmbeddingTarget is a row whose embedding is to be recomputed.
type EmbeddingTarget struct {
	ID    string
	Level core.Level
	Text  string
}

// EmbeddingWriter enumerates rows for re-embedding and writes freshly
// computed vectors back.
type EmbeddingWriter interface {
	// ListTargets returns up to limit targets at the given level with
	// id greater than afterID, ordered by id. An empty afterID starts
	// from the beginning.
	ListTargets(ctx context.Context, level core.Level, afterID string, limit int) ([]EmbeddingTarget, error)

	// CountTargets returns the total number of rows at the given level.
	CountTargets(ctx context.Context, level core.Level) (int, error)

	// UpdateEmbeddings stores one vector per id. The two slices must
	// have equal length.
	UpdateEmbeddings(ctx context.Context, level core.Level, ids []string, vectors [][]float32) error
}
