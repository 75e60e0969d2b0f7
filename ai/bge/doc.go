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


// Package bge implements ai.Embedder against a BGE-M3 embedding service.
//
// The service exposes a single /encode endpoint that accepts a batch of
// texts and returns L2-normalized 1024-dimension dense vectors.
package bge
