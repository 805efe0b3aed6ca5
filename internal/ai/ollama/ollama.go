// Package ollama implements the ai.Provider contract on top of the Ollama REST API.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	providerName          = "ollama"
	defaultBaseURL        = "http://localhost:11434"
	defaultModel          = "llama3.2"
	defaultEmbeddingModel = "all-minilm"
)

// Config holds the endpoint and model identifiers. Token is sent as a bearer
// token when set (Ollama Cloud); local servers need none.
type Config struct {
	BaseURL        string
	Model          string
	EmbeddingModel string
	Token          string
}

// Provider talks to /api/chat and /api/embed.
type Provider struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a Provider, filling unset fields with defaults.
func New(cfg Config, httpClient *http.Client) *Provider {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model = strings.TrimSpace(cfg.Model); cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.EmbeddingModel = strings.TrimSpace(cfg.EmbeddingModel); cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = defaultEmbeddingModel
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Provider{cfg: cfg, httpClient: httpClient}
}

func (p *Provider) Name() string { return providerName }

// Model returns the chat model identifier.
func (p *Provider) Model() string { return p.cfg.Model }

// EmbeddingModel returns the embedding model identifier.
func (p *Provider) EmbeddingModel() string { return p.cfg.EmbeddingModel }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

type embedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// GenerateContent sends prompt as a single user message and returns the reply.
func (p *Provider) GenerateContent(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	var resp chatResponse
	err := p.post(ctx, "/api/chat", chatRequest{
		Model:    p.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Stream:   false,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("ollama chat: %w", err)
	}

	output := strings.TrimSpace(resp.Message.Content)
	if output == "" {
		return "", errors.New("ollama chat: empty response")
	}
	return output, nil
}

// Embed returns the embedding of text.
func (p *Provider) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text to embed must not be empty")
	}

	var resp embedResponse
	if err := p.post(ctx, "/api/embed", embedRequest{Model: p.cfg.EmbeddingModel, Input: text}, &resp); err != nil {
		return nil, fmt.Errorf("ollama embed: %w", err)
	}

	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0]) == 0 {
		return nil, errors.New("ollama embed: empty response")
	}
	return resp.Embeddings[0], nil
}

func (p *Provider) post(ctx context.Context, path string, payload, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.Token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
