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


package bge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/AubakirovArman/skai/ai"
)

const defaultTimeout = 60 * time.Second

// encodeRequest is the wire format of the /encode endpoint.
type encodeRequest struct {
	Texts             []string `json:"texts"`
	ReturnDense       bool     `json:"return_dense"`
	ReturnSparse      bool     `json:"return_sparse"`
	ReturnColbertVecs bool     `json:"return_colbert_vecs"`
}

// encodeResponse carries the dense vectors; sparse and colbert outputs are
// never requested.
type encodeResponse struct {
	DenseVecs [][]float32 `json:"dense_vecs"`
}

// Client implements ai.Embedder against a BGE-M3 embedding service.
type Client struct {
	baseURL    string
	dimension  int
	httpClient *http.Client
	logger     *slog.Logger
}

// newClient is an internal constructor that returns the concrete type.
func newClient(config *ai.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		baseURL:    config.Host,
		dimension:  config.Dimension,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default().With("component", "bge-embedder"),
	}, nil
}

// NewClient creates a BGE-M3 client for the composition root, which may want
// the concrete type for health checks.
func NewClient(config *ai.Config) (*Client, error) {
	return newClient(config)
}

// NewEmbedder creates a new embedder using the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newClient(config)
}

// EmbedText generates a vector embedding for a single text string.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedTexts generates vector embeddings for multiple text strings in a batch.
func (c *Client) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	c.logger.Debug("encoding texts", "count", len(texts))

	resp, err := c.encode(ctx, texts)
	if err != nil {
		c.logger.Error("encode request failed", "count", len(texts), "err", err)
		return nil, err
	}

	if len(resp.DenseVecs) != len(texts) {
		return nil, fmt.Errorf("%w: requested %d, received %d",
			ai.ErrEmptyResponse, len(texts), len(resp.DenseVecs))
	}
	for _, vec := range resp.DenseVecs {
		if len(vec) != c.dimension {
			return nil, fmt.Errorf("%w: expected %d, received %d",
				ai.ErrDimensionMismatch, c.dimension, len(vec))
		}
	}

	return resp.DenseVecs, nil
}

// Health verifies the service answers an encode request.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.encode(ctx, []string{"health check"})
	return err
}

func (c *Client) encode(ctx context.Context, texts []string) (*encodeResponse, error) {
	body, err := json.Marshal(encodeRequest{
		Texts:       texts,
		ReturnDense: true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/encode", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build encode request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call embedding service: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(httpResp.Body, 4096))
		return nil, fmt.Errorf("embedding service error (%d): %s", httpResp.StatusCode, detail)
	}

	var resp encodeResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode encode response: %w", err)
	}
	return &resp, nil
}
