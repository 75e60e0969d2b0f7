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

import (
	"strings"

	"github.com/AubakirovArman/skai/core"
)

// shapeResults converts ranked candidates into the external result form.
// Identifier fields absent at a given level come back as nil rather than
// empty strings so JSON consumers see explicit nulls.
func shapeResults(ranked []core.Candidate) []core.SearchResult {
	results := make([]core.SearchResult, 0, len(ranked))
	for _, c := range ranked {
		r := core.SearchResult{
			Level:      c.Level,
			DocumentID: c.DocumentID,
			Title:      c.Title,
			Text:       strings.TrimSpace(c.Text),
			Similarity: c.Similarity,
			Filename:   c.Filename,
			DocTitle:   c.DocTitle,
		}
		sectionID := c.SectionID
		r.SectionID = &sectionID
		if c.Level == core.LevelSubsection {
			subsectionID := c.SubsectionID
			r.SubsectionID = &subsectionID
		}
		results = append(results, r)
	}
	return results
}
