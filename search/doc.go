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


// Package search implements two-level semantic retrieval over corporate
// governance documents.
//
// The Searcher type implements a multi-stage search pipeline:
//   - Query normalization with domain abbreviation expansion
//   - Query embedding through a pluggable embedder
//   - Nearest-neighbor retrieval at section and subsection level
//   - Merging, similarity filtering, and deterministic ranking
//
// Retrieval fans out over both granularities so that short focused
// subsections and broader sections compete in a single ranked list.
package search
