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
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	quotePattern      = regexp.MustCompile(`[«»„“”]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// defaultReplacements maps corporate governance abbreviations to their
// expansions. Keys and values are lowercase; matching is whole-word.
var defaultReplacements = map[string]string{
	"ао":  "акционерное общество",
	"сд":  "совет директоров",
	"кнв": "комитет по назначениям и вознаграждениям",
	"кс":  "корпоративный секретарь",
}

// Normalizer canonicalizes user queries before embedding: lowercasing,
// quote unification, whitespace collapsing, and whole-word abbreviation
// expansion.
type Normalizer struct {
	// replacements, ordered by abbreviation for deterministic expansion.
	abbreviations []string
	replacements  map[string]string
}

// NewNormalizer creates a Normalizer with the default abbreviation table.
func NewNormalizer() *Normalizer {
	n, err := NewNormalizerWithReplacements(defaultReplacements)
	if err != nil {
		// The default table is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return n
}

// NewNormalizerWithReplacements creates a Normalizer with a custom
// abbreviation table. The table is validated: every abbreviation and
// expansion must be non-empty and lowercase, and no abbreviation may
// occur as a whole word inside another entry's expansion, otherwise a
// second pass over already-expanded text would corrupt it.
func NewNormalizerWithReplacements(replacements map[string]string) (*Normalizer, error) {
	abbreviations := make([]string, 0, len(replacements))
	for abbr, expansion := range replacements {
		if strings.TrimSpace(abbr) == "" {
			return nil, fmt.Errorf("%w: empty abbreviation", ErrConfiguration)
		}
		if strings.TrimSpace(expansion) == "" {
			return nil, fmt.Errorf("%w: empty expansion for %q", ErrConfiguration, abbr)
		}
		if abbr != strings.ToLower(abbr) || expansion != strings.ToLower(expansion) {
			return nil, fmt.Errorf("%w: abbreviation table must be lowercase: %q", ErrConfiguration, abbr)
		}
		abbreviations = append(abbreviations, abbr)
	}
	sort.Strings(abbreviations)

	for _, abbr := range abbreviations {
		for _, expansion := range replacements {
			if containsWholeWord(expansion, abbr) {
				return nil, fmt.Errorf("%w: abbreviation %q occurs inside expansion %q",
					ErrConfiguration, abbr, expansion)
			}
		}
	}

	return &Normalizer{
		abbreviations: abbreviations,
		replacements:  replacements,
	}, nil
}

// Normalize canonicalizes a query. The result is stable: normalizing an
// already-normalized query returns it unchanged.
func (n *Normalizer) Normalize(query string) string {
	s := strings.ToLower(strings.TrimSpace(query))
	s = quotePattern.ReplaceAllString(s, `"`)
	s = whitespacePattern.ReplaceAllString(s, " ")

	for _, abbr := range n.abbreviations {
		s = expandWholeWord(s, abbr, n.replacements[abbr])
	}

	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// isWordRune reports whether r is part of a word for boundary purposes.
// Unlike regexp's ASCII-only \b, this includes Cyrillic and any other
// Unicode letters.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// containsWholeWord reports whether word occurs in s delimited by
// non-word runes or string edges.
func containsWholeWord(s, word string) bool {
	for offset := 0; offset+len(word) <= len(s); {
		idx := strings.Index(s[offset:], word)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(word)
		if isWholeWordAt(s, start, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		offset = start + size
	}
	return false
}

// expandWholeWord replaces every whole-word occurrence of word in s with
// replacement.
func expandWholeWord(s, word, replacement string) string {
	var b strings.Builder
	offset := 0
	for offset < len(s) {
		idx := strings.Index(s[offset:], word)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(word)
		if isWholeWordAt(s, start, end) {
			b.WriteString(s[offset:start])
			b.WriteString(replacement)
			offset = end
			continue
		}
		// Not a word boundary: keep scanning one rune past the match
		// start so overlapping occurrences are still found.
		_, size := utf8.DecodeRuneInString(s[start:])
		b.WriteString(s[offset : start+size])
		offset = start + size
	}
	if offset == 0 {
		return s
	}
	b.WriteString(s[offset:])
	return b.String()
}

// isWholeWordAt reports whether s[start:end] is delimited by non-word
// runes or string edges.
func isWholeWordAt(s string, start, end int) bool {
	if start > 0 {
		before, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(before) {
			return false
		}
	}
	if end < len(s) {
		after, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(after) {
			return false
		}
	}
	return true
}
