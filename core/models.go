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


package core

// Level identifies the granularity a candidate was retrieved from.
type Level string

const (
	// LevelSection marks a candidate drawn from the section table.
	LevelSection Level = "section"
	// LevelSubsection marks a candidate drawn from the subsection table.
	LevelSubsection Level = "subsection"
)

// Candidate is a query-scoped projection over a section or subsection row.
// Candidates exist only for the duration of a single search: they are built
// from storage rows after retrieval, ranked, shaped into SearchResults and
// discarded. They are never persisted.
type Candidate struct {
	Level        Level
	DocumentID   string
	SectionID    string
	SubsectionID string // empty for section-level candidates
	Title        string
	Text         string
	TokenCount   int
	CharCount    int
	Similarity   float64 // cosine similarity in [-1, 1]
	Filename     string
	DocTitle     string
}

// SearchResult is the wire-level shape of a ranked candidate. Identifier
// fields are strings; SectionID and SubsectionID are null when absent.
type SearchResult struct {
	Level        Level   `json:"level"`
	DocumentID   string  `json:"document_id"`
	SectionID    *string `json:"section_id"`
	SubsectionID *string `json:"subsection_id"`
	Title        string  `json:"title"`
	Text         string  `json:"text"`
	Similarity   float64 `json:"similarity"`
	Filename     string  `json:"filename"`
	DocTitle     string  `json:"doc_title"`
}

// SearchResponse is returned to the caller for every successful search.
// It carries the raw and normalized query alongside the results so callers
// can audit how the query was rewritten before embedding.
type SearchResponse struct {
	Query           string         `json:"query"`
	NormalizedQuery string         `json:"normalized_query"`
	Results         []SearchResult `json:"results"`
}
