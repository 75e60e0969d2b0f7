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
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/AubakirovArman/skai/core"
)

const (
	// maxResultChars caps the text of a single context block.
	maxResultChars = 2000

	contextSeparator = "\n---\n"

	unknownDocument = "Не указано"
)

// BuildContext assembles ranked results into a numbered plain-text
// context for prompt construction. Blocks are added in rank order until
// the next block would exceed charBudget; at least zero blocks are
// produced, never a truncated block.
func BuildContext(results []core.SearchResult, charBudget int) string {
	if charBudget <= 0 {
		charBudget = DefaultCharBudget
	}

	blocks := make([]string, 0, len(results))
	total := 0
	for _, result := range results {
		text := result.Text
		if len(text) > maxResultChars {
			text = truncateRunes(text, maxResultChars) + "..."
		}

		document := result.DocTitle
		if document == "" {
			document = result.Filename
		}
		if document == "" {
			document = unknownDocument
		}

		block := fmt.Sprintf("[%d] %s\nДокумент: %s\nСходство: %.1f%%\nТекст: %s\n",
			len(blocks)+1, result.Title, document, result.Similarity*100, text)

		if total+len(block) > charBudget {
			break
		}
		blocks = append(blocks, block)
		total += len(block)
	}

	return strings.Join(blocks, contextSeparator)
}

// truncateRunes cuts s to at most n bytes without splitting a rune.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Back up to a rune boundary.
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
