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
	"sort"

	"github.com/AubakirovArman/skai/core"
)

// Rank filters the merged candidate pool by minScore and orders it:
// similarity descending, sections before subsections on equal
// similarity, then larger char count first. At most limit candidates
// are returned. The input slice is not modified.
func Rank(pool []core.Candidate, minScore float64, limit int) []core.Candidate {
	ranked := make([]core.Candidate, 0, len(pool))
	for _, c := range pool {
		if c.Similarity >= minScore {
			ranked = append(ranked, c)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Similarity != b.Similarity {
			return a.Similarity > b.Similarity
		}
		if a.Level != b.Level {
			return a.Level == core.LevelSection
		}
		return a.CharCount > b.CharCount
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
