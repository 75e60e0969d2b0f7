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
	"context"
	"fmt"
	"sync"
)

// Lazy defers construction of an Embedder until its first use.
//
// Backends may be expensive to construct (model loading, connection setup),
// so the composition root can hand a Lazy to every consumer and pay that
// cost only when the first query arrives. Exactly one caller runs the
// constructor; concurrent callers block until it finishes and then share the
// same handle. A failed construction is final: the wrapped error is returned
// to the first caller and every later one, and the constructor is never
// retried.
type Lazy struct {
	construct func() (Embedder, error)

	once     sync.Once
	embedder Embedder
	err      error
}

var _ Embedder = (*Lazy)(nil)

// NewLazy wraps a constructor in a lazily-initialized Embedder.
func NewLazy(construct func() (Embedder, error)) *Lazy {
	return &Lazy{construct: construct}
}

func (l *Lazy) get() (Embedder, error) {
	l.once.Do(func() {
		l.embedder, l.err = l.construct()
		if l.err != nil {
			l.embedder = nil
			l.err = fmt.Errorf("%w: %w", ErrInitialization, l.err)
		}
	})
	return l.embedder, l.err
}

// EmbedText initializes the backend if needed and embeds a single text.
func (l *Lazy) EmbedText(ctx context.Context, text string) ([]float32, error) {
	embedder, err := l.get()
	if err != nil {
		return nil, err
	}
	return embedder.EmbedText(ctx, text)
}

// EmbedTexts initializes the backend if needed and embeds a batch of texts.
func (l *Lazy) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	embedder, err := l.get()
	if err != nil {
		return nil, err
	}
	return embedder.EmbedTexts(ctx, texts)
}
