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


package ai

import "errors"

var (
	// ErrInitialization indicates the embedding backend could not be
	// constructed. There is no recovery path: every caller waiting on the
	// initialization receives this error.
	ErrInitialization = errors.New("embedder initialization failed")

	// ErrDimensionMismatch indicates the backend returned vectors of a
	// different dimension than configured.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrEmptyResponse indicates the backend returned no vectors for a
	// non-empty request.
	ErrEmptyResponse = errors.New("embedding service returned no vectors")

	// ErrEmbedderRequired is returned when a wrapped embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrCacheRequired is returned when an embedding cache is not provided.
	ErrCacheRequired = errors.New("cache required")
)
