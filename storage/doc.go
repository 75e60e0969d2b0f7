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


// Package storage defines the vector-store interfaces consumed by search
// and reembed, together with the error values shared by all backends.
//
// The postgres subpackage implements nearest-neighbor retrieval over the
// sections/subsections/documents schema; the embedcache subpackage provides
// a content-addressed embedding cache.
package storage
