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


package search

import "errors"

var (
	// ErrStoreRequired is returned when a vector store is not provided.
	ErrStoreRequired = errors.New("vector store required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrConfiguration indicates invalid search configuration.
	ErrConfiguration = errors.New("invalid search configuration")

	// ErrEmbedding indicates the query could not be embedded.
	ErrEmbedding = errors.New("query embedding failed")

	// ErrStorage indicates candidate retrieval failed.
	ErrStorage = errors.New("candidate retrieval failed")

	// ErrEmptyQuery is returned when the query is empty after normalization.
	ErrEmptyQuery = errors.New("empty query")
)
