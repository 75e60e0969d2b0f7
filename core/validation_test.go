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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSectionCandidate() Candidate {
	return Candidate{
		Level:      LevelSection,
		DocumentID: "7b5e1f9a-0c94-4d6a-8a3f-2f6f9a1d4c11",
		SectionID:  "e2a7c10d-55b1-4c39-9f3e-6f0b8a2d9e42",
		Title:      "Общие положения",
		Text:       "Настоящее положение определяет порядок работы совета директоров.",
		TokenCount: 14,
		CharCount:  64,
		Similarity: 0.72,
		Filename:   "sd_polozhenie.pdf",
		DocTitle:   "Положение о совете директоров",
	}
}

func TestValidateCandidate(t *testing.T) {
	t.Run("valid section candidate", func(t *testing.T) {
		c := validSectionCandidate()
		require.NoError(t, ValidateCandidate(&c))
	})

	t.Run("valid subsection candidate", func(t *testing.T) {
		c := validSectionCandidate()
		c.Level = LevelSubsection
		c.SubsectionID = "0f3d2b6c-8e17-4a5d-b2c9-4e6a1f8d7b20"
		require.NoError(t, ValidateCandidate(&c))
	})

	t.Run("nil candidate", func(t *testing.T) {
		err := ValidateCandidate(nil)
		assert.ErrorIs(t, err, ErrInvalidCandidate)
	})

	t.Run("unknown level", func(t *testing.T) {
		c := validSectionCandidate()
		c.Level = Level("chunk")
		err := ValidateCandidate(&c)
		assert.ErrorIs(t, err, ErrInvalidLevel)
	})

	t.Run("empty document id", func(t *testing.T) {
		c := validSectionCandidate()
		c.DocumentID = ""
		err := ValidateCandidate(&c)
		assert.ErrorIs(t, err, ErrEmptyDocumentID)
	})

	t.Run("empty section id", func(t *testing.T) {
		c := validSectionCandidate()
		c.SectionID = ""
		err := ValidateCandidate(&c)
		assert.ErrorIs(t, err, ErrEmptySectionID)
	})

	t.Run("section with subsection id", func(t *testing.T) {
		c := validSectionCandidate()
		c.SubsectionID = "0f3d2b6c-8e17-4a5d-b2c9-4e6a1f8d7b20"
		err := ValidateCandidate(&c)
		assert.ErrorIs(t, err, ErrUnexpectedSubsectionID)
	})

	t.Run("subsection without subsection id", func(t *testing.T) {
		c := validSectionCandidate()
		c.Level = LevelSubsection
		err := ValidateCandidate(&c)
		assert.ErrorIs(t, err, ErrEmptySubsectionID)
	})

	t.Run("similarity out of range", func(t *testing.T) {
		for _, sim := range []float64{-1.01, 1.01} {
			c := validSectionCandidate()
			c.Similarity = sim
			err := ValidateCandidate(&c)
			assert.ErrorIs(t, err, ErrInvalidSimilarity)
		}
	})

	t.Run("similarity boundaries are valid", func(t *testing.T) {
		for _, sim := range []float64{-1, 0, 1} {
			c := validSectionCandidate()
			c.Similarity = sim
			assert.NoError(t, ValidateCandidate(&c))
		}
	})
}

func TestValidateLevel(t *testing.T) {
	assert.NoError(t, ValidateLevel(LevelSection))
	assert.NoError(t, ValidateLevel(LevelSubsection))
	assert.ErrorIs(t, ValidateLevel(Level("document")), ErrInvalidLevel)
	assert.ErrorIs(t, ValidateLevel(Level("")), ErrInvalidLevel)
}
