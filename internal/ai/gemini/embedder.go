package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultEmbeddingModel = "text-embedding-004"
	taskSimilarity        = "SEMANTIC_SIMILARITY"
)

type embedContentAPI interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Embedder encodes text with a Gemini embedding model.
type Embedder struct {
	models embedContentAPI
	model  string
}

// NewEmbedder creates an Embedder on top of an existing GenAI client.
func NewEmbedder(client *genai.Client, model string) (*Embedder, error) {
	if client == nil || client.Models == nil {
		return nil, errors.New("genai client is required")
	}
	return newEmbedder(client.Models, model), nil
}

func newEmbedder(models embedContentAPI, model string) *Embedder {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultEmbeddingModel
	}
	return &Embedder{models: models, model: model}
}

// Embed returns the embedding of text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text to embed must not be empty")
	}

	resp, err := e.models.EmbedContent(ctx, e.model, genai.Text(text), &genai.EmbedContentConfig{TaskType: taskSimilarity})
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}

	if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil || len(resp.Embeddings[0].Values) == 0 {
		return nil, errors.New("gemini api returned empty embedding")
	}

	return resp.Embeddings[0].Values, nil
}

// EmbeddingModel returns the embedding model identifier.
func (e *Embedder) EmbeddingModel() string {
	if e == nil {
		return ""
	}
	return e.model
}
