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

	"github.com/AubakirovArman/skai/core"
	"github.com/AubakirovArman/skai/storage"
)

const (
	// DefaultBatchSize is the default number of rows to fetch in each batch
	DefaultBatchSize = 100
)

// TargetIterator walks all embedding targets at one level in id order,
// fetching them in batches via keyset pagination.
type TargetIterator struct {
	writer    storage.EmbeddingWriter
	level     core.Level
	batchSize int
}

// NewTargetIterator creates a new target iterator.
// batchSize: number of rows to fetch in each batch (must be > 0)
func NewTargetIterator(writer storage.EmbeddingWriter, level core.Level, batchSize int) *TargetIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &TargetIterator{
		writer:    writer,
		level:     level,
		batchSize: batchSize,
	}
}

// ForEach iterates over all targets, calling fn for each batch.
// Iteration stops on first error from fn or when all rows are processed.
// Context cancellation is checked between batches.
func (it *TargetIterator) ForEach(ctx context.Context, fn func([]storage.EmbeddingTarget) error) error {
	afterID := ""
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		batch, err := it.writer.ListTargets(ctx, it.level, afterID, it.batchSize)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			return nil
		}

		if err := fn(batch); err != nil {
			return err
		}

		if len(batch) < it.batchSize {
			return nil
		}
		afterID = batch[len(batch)-1].ID
	}
}
