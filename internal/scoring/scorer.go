// Package scoring rates how well a resume matches a job description by
// blending embedding similarity, a language model judgment and keyword overlap.
package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/spigell/resume-matcher/internal/ai"
	"github.com/spigell/resume-matcher/internal/jd"
	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/sections"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Signal weights of the final score.
const (
	EmbeddingWeight = 0.60
	LLMWeight       = 0.25
	KeywordWeight   = 0.15
)

// Breakdown is the result of scoring one resume. All values are in [0, 100]
// with two decimals.
type Breakdown struct {
	EmbeddingScore float64 `mapstructure:"embedding_score" json:"embedding_score"`
	LLMScore       float64 `mapstructure:"llm_score" json:"llm_score"`
	KeywordOverlap float64 `mapstructure:"keyword_overlap" json:"keyword_overlap"`
	FinalScore     float64 `mapstructure:"final_score" json:"final_score"`
}

// Map returns the breakdown keyed by field name.
func (b Breakdown) Map() map[string]float64 {
	// a flat struct of floats always decodes
	var raw map[string]any
	_ = mapstructure.Decode(b, &raw)

	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		if f, ok := v.(float64); ok {
			out[k] = f
		}
	}
	return out
}

// Combine blends sub-scores given in [0, 1] into a Breakdown.
func Combine(embedding, llm, overlap float64) Breakdown {
	final := EmbeddingWeight*embedding + LLMWeight*llm + KeywordWeight*overlap

	return Breakdown{
		EmbeddingScore: percent(embedding),
		LLMScore:       percent(llm),
		KeywordOverlap: percent(overlap),
		FinalScore:     percent(final),
	}
}

// percent scales v to [0, 100] and rounds to two decimals.
func percent(v float64) float64 {
	return math.Round(clamp(v, 0, 1)*100*100) / 100
}

type relevanceJudge interface {
	Evaluate(ctx context.Context, jdText string, set sections.Set, role string) float64
}

// Scorer runs every signal for a (resume, job description) pair.
type Scorer struct {
	embeddings *EmbeddingScorer
	judge      relevanceJudge
	logger     *zap.Logger
}

// NewScorer wires the embedding scorer and the relevance judge to shared services.
func NewScorer(embedder ai.Embedder, generator ai.Generator, logger *zap.Logger, maxLogLength int) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scorer{
		embeddings: NewEmbeddingScorer(embedder),
		judge:      NewJudge(generator, logger, maxLogLength),
		logger:     logger,
	}
}

// ExtractSections splits text into resume sections.
func (s *Scorer) ExtractSections(text string) sections.Set {
	return sections.Extract(text)
}

// Score computes the Breakdown of resumeText against jdText. Only embedding
// failures are returned; the judge degrades to its minimum instead.
func (s *Scorer) Score(ctx context.Context, resumeText, jdText string) (Breakdown, error) {
	role := jd.JobRole(jdText)
	requirements := jd.Preprocess(jdText)

	set := sections.Extract(resumeText)
	weights := sections.Weights(set)

	embedding, err := s.embeddings.Score(ctx, set, requirements, weights)
	if err != nil {
		return Breakdown{}, fmt.Errorf("embedding similarity: %w", err)
	}

	overlap := keywords.Overlap(requirements, set.Full())
	relevance := s.judge.Evaluate(ctx, requirements, set, role)

	breakdown := Combine(embedding.Total, relevance, overlap)

	s.logger.Debug("scored resume",
		zap.String("role", role),
		zap.Any("weights", weights),
		zap.Any("section_similarity", embedding.Contributions),
		zap.Float64("final_score", breakdown.FinalScore),
	)

	return breakdown, nil
}
