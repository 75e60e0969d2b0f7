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

import "fmt"

// ValidateCandidate validates a Candidate according to domain rules.
//
// Validation rules:
//   - Level must be section or subsection
//   - DocumentID and SectionID must not be empty
//   - SubsectionID must be empty for section-level candidates and
//     non-empty for subsection-level ones
//   - Similarity must be within [-1, 1]
//
// NOT validated:
//   - Title and Text (a row may legitimately have neither)
//   - TokenCount and CharCount (informational only)
func ValidateCandidate(c *Candidate) error {
	if c == nil {
		return fmt.Errorf("%w: candidate is nil", ErrInvalidCandidate)
	}

	if err := ValidateLevel(c.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, err)
	}

	if c.DocumentID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptyDocumentID)
	}

	if c.SectionID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptySectionID)
	}

	switch c.Level {
	case LevelSection:
		if c.SubsectionID != "" {
			return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrUnexpectedSubsectionID)
		}
	case LevelSubsection:
		if c.SubsectionID == "" {
			return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptySubsectionID)
		}
	}

	if c.Similarity < -1 || c.Similarity > 1 {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrInvalidSimilarity)
	}

	return nil
}

// ValidateLevel validates that a Level has a known value.
func ValidateLevel(level Level) error {
	switch level {
	case LevelSection, LevelSubsection:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
}
