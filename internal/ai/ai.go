// Package ai declares the language model and embedding services the matching
// engine depends on. Concrete providers live in the subpackages.
package ai

import (
	"context"
	"time"
)

// Generator produces a free-form text reply for a prompt.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Embedder encodes text into a fixed-length dense vector. The same text must
// always produce the same vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Provider bundles a chat model and an embedding model of one backend.
type Provider interface {
	Generator
	Embedder
	Name() string
	Model() string
	EmbeddingModel() string
}

type timeoutGenerator struct {
	next    Generator
	timeout time.Duration
}

// WithTimeout bounds every GenerateContent call of next by timeout. A
// non-positive timeout returns next unchanged.
func WithTimeout(next Generator, timeout time.Duration) Generator {
	if timeout <= 0 {
		return next
	}
	return &timeoutGenerator{next: next, timeout: timeout}
}

func (g *timeoutGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.next.GenerateContent(ctx, prompt)
}
