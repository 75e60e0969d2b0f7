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

import "fmt"

// Default retrieval parameters.
const (
	// DefaultTopK is the per-level candidate count fetched from storage.
	DefaultTopK = 8

	// DefaultLimit is the maximum number of ranked results returned.
	DefaultLimit = 12

	// DefaultMinScore is the similarity threshold below which candidates
	// are discarded.
	DefaultMinScore = 0.3

	// DefaultCharBudget caps the size of assembled context text.
	DefaultCharBudget = 4000
)

// Config holds retrieval and ranking parameters.
type Config struct {
	// TopK is the number of candidates fetched per level.
	TopK int

	// Limit is the maximum number of results after ranking.
	Limit int

	// MinScore is the minimum cosine similarity a candidate must reach.
	MinScore float64

	// CharBudget is the character budget for BuildContext.
	CharBudget int
}

// ConfigOption is a function that modifies a Config.
type ConfigOption func(*Config)

// WithTopK sets the per-level candidate count.
func WithTopK(topK int) ConfigOption {
	return func(c *Config) {
		c.TopK = topK
	}
}

// WithLimit sets the maximum result count.
func WithLimit(limit int) ConfigOption {
	return func(c *Config) {
		c.Limit = limit
	}
}

// WithMinScore sets the similarity threshold.
func WithMinScore(minScore float64) ConfigOption {
	return func(c *Config) {
		c.MinScore = minScore
	}
}

// WithCharBudget sets the context character budget.
func WithCharBudget(budget int) ConfigOption {
	return func(c *Config) {
		c.CharBudget = budget
	}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		TopK:       DefaultTopK,
		Limit:      DefaultLimit,
		MinScore:   DefaultMinScore,
		CharBudget: DefaultCharBudget,
	}
}

// NewConfig creates a Config with defaults, then applies the given options.
func NewConfig(opts ...ConfigOption) Config {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

// Validate checks the configuration for correctness.
func (c Config) Validate() error {
	if c.TopK <= 0 {
		return fmt.Errorf("%w: TopK must be positive, got %d", ErrConfiguration, c.TopK)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("%w: Limit must be positive, got %d", ErrConfiguration, c.Limit)
	}
	if c.MinScore < -1 || c.MinScore > 1 {
		return fmt.Errorf("%w: MinScore must be in [-1, 1], got %g", ErrConfiguration, c.MinScore)
	}
	if c.CharBudget <= 0 {
		return fmt.Errorf("%w: CharBudget must be positive, got %d", ErrConfiguration, c.CharBudget)
	}
	return nil
}
