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

import "errors"

// Domain validation errors
var (
	// ErrInvalidCandidate indicates a Candidate failed validation.
	ErrInvalidCandidate = errors.New("invalid candidate")

	// ErrInvalidLevel indicates an unknown Level value.
	ErrInvalidLevel = errors.New("invalid level")

	// ErrInvalidSimilarity indicates a similarity outside [-1, 1].
	ErrInvalidSimilarity = errors.New("similarity must be within [-1, 1]")

	// ErrEmptyDocumentID indicates the DocumentID field is empty.
	ErrEmptyDocumentID = errors.New("document id cannot be empty")

	// ErrEmptySectionID indicates the SectionID field is empty.
	ErrEmptySectionID = errors.New("section id cannot be empty")

	// ErrUnexpectedSubsectionID indicates a section-level candidate carries
	// a subsection id.
	ErrUnexpectedSubsectionID = errors.New("section-level candidate cannot have a subsection id")

	// ErrEmptySubsectionID indicates a subsection-level candidate is missing
	// its subsection id.
	ErrEmptySubsectionID = errors.New("subsection id cannot be empty")
)
