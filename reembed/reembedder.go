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


package reembed

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/AubakirovArman/skai/ai"
	"github.com/AubakirovArman/skai/core"
	"github.com/AubakirovArman/skai/storage"
)

// Config holds configuration for the reembedding operation.
type Config struct {
	// BatchSize is the number of rows to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of rows)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// Workers is the number of batches embedded concurrently
	Workers int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}

	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
		Workers:        workers,
	}
}

// Reembedder orchestrates the reembedding of all sections and
// subsections in a database.
type Reembedder struct {
	writer    storage.EmbeddingWriter
	embedder  ai.Embedder
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
}

// NewReembedder creates a new reembedder.
// progress: where to write progress output (typically os.Stderr)
func NewReembedder(writer storage.EmbeddingWriter, embedder ai.Embedder, config *Config, progress io.Writer) (*Reembedder, error) {
	if writer == nil {
		return nil, ErrWriterRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.Workers < 1 {
		config.Workers = 1
	}

	return &Reembedder{
		writer:    writer,
		embedder:  embedder,
		config:    config,
		progress:  progress,
		processor: NewBatchProcessor(writer, embedder, config.MaxRetries, config.RetryDelay),
	}, nil
}

// Run executes the reembedding operation over both levels.
// Progress is reported to the configured writer.
func (r *Reembedder) Run(ctx context.Context) error {
	levels := []core.Level{core.LevelSection, core.LevelSubsection}

	total := 0
	for _, level := range levels {
		count, err := r.writer.CountTargets(ctx, level)
		if err != nil {
			return fmt.Errorf("failed to count %s rows: %w", level, err)
		}
		total += count
	}

	if total == 0 {
		fmt.Fprintf(r.progress, "No rows found in database (0 rows)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reembedding of %d rows (batch size: %d, workers: %d)\n",
		total, r.config.BatchSize, r.config.Workers)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	pool, err := ants.NewPool(r.config.Workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	for _, level := range levels {
		iterator := NewTargetIterator(r.writer, level, r.config.BatchSize)
		err := iterator.ForEach(runCtx, func(batch []storage.EmbeddingTarget) error {
			wg.Add(1)
			submitErr := pool.Submit(func() {
				defer wg.Done()
				if err := r.processor.Process(runCtx, batch); err != nil {
					fail(fmt.Errorf("failed to process %s batch: %w", level, err))
					return
				}
				tracker.Increment(len(batch))
			})
			if submitErr != nil {
				wg.Done()
				return submitErr
			}
			return nil
		})
		if err != nil {
			wg.Wait()
			mu.Lock()
			defer mu.Unlock()
			if firstErr != nil {
				return firstErr
			}
			return err
		}
	}

	wg.Wait()

	mu.Lock()
	err = firstErr
	mu.Unlock()
	if err != nil {
		return err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reembedding complete. Processed %d rows in %v (%.1f rows/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())

	return nil
}
