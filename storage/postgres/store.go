// Copyright 2025 Arman Aubakirov
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	pgxvector "github.com/pgvector/pgvector-go/pgx"

	"github.com/AubakirovArman/skai/core"
	"github.com/AubakirovArman/skai/storage"
)

// Untitled rows fall back to fixed placeholders so that result shaping
// never emits an empty title.
const (
	sectionTitleFallback    = "Без названия"
	subsectionTitleFallback = "Подраздел"
)

const nearestSectionsSQL = `
SELECT
    s.document_id::text,
    s.id::text,
    COALESCE(NULLIF(s.title, ''), NULLIF(s.section_label, ''), '` + sectionTitleFallback + `') AS title,
    COALESCE(s.text, ''),
    COALESCE(s.token_count, 0),
    COALESCE(s.char_count, 0),
    1 - (s.embedding <=> $1) AS similarity,
    d.filename,
    COALESCE(d.title, '') AS doc_title
FROM sections s
JOIN documents d ON s.document_id = d.id
WHERE s.embedding IS NOT NULL
ORDER BY s.embedding <=> $1
LIMIT $2`

const nearestSubsectionsSQL = `
SELECT
    ss.document_id::text,
    ss.section_id::text,
    ss.id::text,
    COALESCE(NULLIF(ss.title, ''), '` + subsectionTitleFallback + `') AS title,
    COALESCE(ss.text, ''),
    COALESCE(ss.token_count, 0),
    COALESCE(ss.char_count, 0),
    1 - (ss.embedding <=> $1) AS similarity,
    d.filename,
    COALESCE(d.title, '') AS doc_title
FROM subsections ss
JOIN documents d ON ss.document_id = d.id
WHERE ss.embedding IS NOT NULL
ORDER BY ss.embedding <=> $1
LIMIT $2`

// Store provides retrieval and embedding maintenance over PostgreSQL.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used by the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore connects to PostgreSQL, registers pgvector types on every
// pooled connection, and verifies connectivity.
func NewStore(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%w: empty dsn", storage.ErrInvalidQuery)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dsn: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvector.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{
		pool:   pool,
		logger: slog.Default().With("component", "postgres-store"),
	}
	for _, opt := range opts {
		opt(store)
	}

	store.logger.Debug("connected to database")
	return store, nil
}

// Ping verifies the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// NearestSections returns up to k section candidates nearest to the
// query vector, most similar first.
func (s *Store) NearestSections(ctx context.Context, vector []float32, k int) ([]core.Candidate, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", storage.ErrInvalidQuery, k)
	}

	rows, err := s.pool.Query(ctx, nearestSectionsSQL, pgvector.NewVector(vector), k)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	candidates := make([]core.Candidate, 0, k)
	for rows.Next() {
		c := core.Candidate{Level: core.LevelSection}
		err := rows.Scan(
			&c.DocumentID,
			&c.SectionID,
			&c.Title,
			&c.Text,
			&c.TokenCount,
			&c.CharCount,
			&c.Similarity,
			&c.Filename,
			&c.DocTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan section row: %w", err)
		}
		if err := core.ValidateCandidate(&c); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read section rows: %w", err)
	}

	s.logger.Debug("retrieved section candidates", "count", len(candidates), "k", k)
	return candidates, nil
}

// NearestSubsections returns up to k subsection candidates nearest to
// the query vector, most similar first.
func (s *Store) NearestSubsections(ctx context.Context, vector []float32, k int) ([]core.Candidate, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", storage.ErrInvalidQuery, k)
	}

	rows, err := s.pool.Query(ctx, nearestSubsectionsSQL, pgvector.NewVector(vector), k)
	if err != nil {
		return nil, fmt.Errorf("failed to query subsections: %w", err)
	}
	defer rows.Close()

	candidates := make([]core.Candidate, 0, k)
	for rows.Next() {
		c := core.Candidate{Level: core.LevelSubsection}
		err := rows.Scan(
			&c.DocumentID,
			&c.SectionID,
			&c.SubsectionID,
			&c.Title,
			&c.Text,
			&c.TokenCount,
			&c.CharCount,
			&c.Similarity,
			&c.Filename,
			&c.DocTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subsection row: %w", err)
		}
		if err := core.ValidateCandidate(&c); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subsection rows: %w", err)
	}

	s.logger.Debug("retrieved subsection candidates", "count", len(candidates), "k", k)
	return candidates, nil
}

func tableForLevel(level core.Level) (string, error) {
	switch level {
	case core.LevelSection:
		return "sections", nil
	case core.LevelSubsection:
		return "subsections", nil
	default:
		return "", fmt.Errorf("%w: %q", core.ErrInvalidLevel, level)
	}
}

// ListTargets returns up to limit re-embedding targets at the given
// level with id greater than afterID, ordered by id.
func (s *Store) ListTargets(ctx context.Context, level core.Level, afterID string, limit int) ([]storage.EmbeddingTarget, error) {
	table, err := tableForLevel(level)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", storage.ErrInvalidQuery, limit)
	}

	sql := fmt.Sprintf(`
SELECT id::text, COALESCE(text, '')
FROM %s
WHERE ($1 = '' OR id::text > $1)
ORDER BY id::text
LIMIT $2`, table)

	rows, err := s.pool.Query(ctx, sql, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}
	defer rows.Close()

	targets := make([]storage.EmbeddingTarget, 0, limit)
	for rows.Next() {
		t := storage.EmbeddingTarget{Level: level}
		if err := rows.Scan(&t.ID, &t.Text); err != nil {
			return nil, fmt.Errorf("failed to scan target row: %w", err)
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read target rows: %w", err)
	}
	return targets, nil
}

// CountTargets returns the total number of rows at the given level.
func (s *Store) CountTargets(ctx context.Context, level core.Level) (int, error) {
	table, err := tableForLevel(level)
	if err != nil {
		return 0, err
	}

	var count int
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := s.pool.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count targets: %w", err)
	}
	return count, nil
}

// UpdateEmbeddings writes one vector per id in a single batch.
func (s *Store) UpdateEmbeddings(ctx context.Context, level core.Level, ids []string, vectors [][]float32) error {
	table, err := tableForLevel(level)
	if err != nil {
		return err
	}
	if len(ids) != len(vectors) {
		return fmt.Errorf("%w: %d ids, %d vectors", storage.ErrLengthMismatch, len(ids), len(vectors))
	}
	if len(ids) == 0 {
		return nil
	}

	sql := fmt.Sprintf("UPDATE %s SET embedding = $1 WHERE id::text = $2", table)

	batch := &pgx.Batch{}
	for i, id := range ids {
		batch.Queue(sql, pgvector.NewVector(vectors[i]), id)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range ids {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to update embedding: %w", err)
		}
	}

	s.logger.Debug("updated embeddings", "level", level, "count", len(ids))
	return nil
}
