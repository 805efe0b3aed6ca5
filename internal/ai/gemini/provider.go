package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const providerName = "gemini"

// Config describes how to reach the Gemini API.
type Config struct {
	APIKey         string
	Model          string
	EmbeddingModel string
	MaxRetries     int
}

// Provider serves both chat generation and embeddings from one GenAI client.
type Provider struct {
	*Generator
	*Embedder
}

// NewProvider creates the GenAI client and wires a Generator and an Embedder to it.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger) (*Provider, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	generator, err := NewGenerator(client, cfg.Model, cfg.MaxRetries, logger)
	if err != nil {
		return nil, err
	}

	embedder, err := NewEmbedder(client, cfg.EmbeddingModel)
	if err != nil {
		return nil, err
	}

	return &Provider{Generator: generator, Embedder: embedder}, nil
}

func (p *Provider) Name() string { return providerName }

func (p *Provider) Model() string { return p.Generator.Model() }
