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


// Package ai defines the embedding interfaces and configuration shared by
// all embedder implementations.
//
// The Embedder interface turns text into fixed-dimension unit vectors
// suitable for cosine similarity via inner product. Concrete backends live
// in the bge and openai subpackages; Lazy adds guarded first-use
// initialization and Cached adds a content-addressed embedding cache on top
// of any backend.
package ai
