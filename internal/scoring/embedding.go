package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/spigell/resume-matcher/internal/ai"
	"github.com/spigell/resume-matcher/internal/sections"
)

// EmbeddingResult holds the weighted similarity of every section and their sum.
type EmbeddingResult struct {
	Contributions map[sections.Label]float64
	Total         float64
}

// EmbeddingScorer compares resume sections with a job description in embedding space.
type EmbeddingScorer struct {
	embedder ai.Embedder
}

func NewEmbeddingScorer(embedder ai.Embedder) *EmbeddingScorer {
	return &EmbeddingScorer{embedder: embedder}
}

// Score sums weight * cosine(section, jd) over every section. Sections that
// are blank or weigh nothing are not encoded and contribute 0. Encoding
// failures are returned to the caller.
func (s *EmbeddingScorer) Score(ctx context.Context, set sections.Set, jdText string, weights sections.WeightVector) (*EmbeddingResult, error) {
	result := &EmbeddingResult{Contributions: make(map[sections.Label]float64, len(sections.Labels))}

	var jdVec []float32
	for _, label := range sections.Labels {
		result.Contributions[label] = 0

		text := set[label]
		weight := weights[label]
		if strings.TrimSpace(text) == "" || weight == 0 {
			continue
		}

		if jdVec == nil {
			vec, err := s.embedder.Embed(ctx, jdText)
			if err != nil {
				return nil, fmt.Errorf("embedding job description: %w", err)
			}
			jdVec = vec
		}

		vec, err := s.embedder.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embedding %s section: %w", label, err)
		}

		contribution := Cosine(vec, jdVec) * weight
		result.Contributions[label] = contribution
		result.Total += contribution
	}

	return result, nil
}

// Cosine returns the cosine similarity of a and b in [-1, 1]. Vectors of
// different length or with zero norm yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return clamp(dot/(math.Sqrt(normA)*math.Sqrt(normB)), -1, 1)
}
