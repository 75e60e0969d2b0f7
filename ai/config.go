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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for embedding backends.
type Config struct {
	// Host is the base URL of the embedding service.
	// Example: "http://localhost:8001" for a local BGE-M3 service,
	// "http://localhost:11434" for an OpenAI-compatible server.
	Host string

	// Model is the model identifier to embed with.
	// Example: "BAAI/bge-m3", "text-embedding-3-small"
	Model string

	// Dimension is the expected vector dimension.
	// Default: 1024 (BGE-M3 dense vectors).
	Dimension int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the embedding service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the embedding model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithDimension sets the expected vector dimension.
func WithDimension(dim int) ConfigOption {
	return func(c *Config) {
		c.Dimension = dim
	}
}

// DefaultConfig returns a Config with defaults for a local BGE-M3 service.
func DefaultConfig() *Config {
	return &Config{
		Host:      "http://localhost:8001",
		Model:     "BAAI/bge-m3",
		Dimension: 1024,
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options. This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("https://bge-m3.sk-ai.kz"),
//	    ai.WithModel("BAAI/bge-m3"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// Trailing slashes are stripped from the host so implementations can append
// their endpoint paths uniformly.
func (c *Config) Normalize() {
	c.Host = strings.TrimRight(strings.TrimSpace(c.Host), "/")
	c.Model = strings.TrimSpace(c.Model)
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.Dimension <= 0 {
		return errors.New("ai config: Dimension must be positive")
	}
	return nil
}
