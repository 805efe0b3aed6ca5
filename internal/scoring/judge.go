package scoring

import (
	"context"
	_ "embed"
	"strings"
	"unicode/utf8"

	"github.com/spigell/resume-matcher/internal/ai"
	"github.com/spigell/resume-matcher/internal/sections"
	"github.com/spigell/resume-matcher/internal/utils"

	"go.uber.org/zap"
)

//go:embed judge_prompt.md
var judgePromptTemplate string

const defaultMaxLogLength = 200

// Judge asks a language model how relevant a candidate is for a role.
type Judge struct {
	generator ai.Generator
	logger    *zap.Logger
	maxLogLen int
}

// NewJudge creates a Judge. A non-positive maxLogLength falls back to the default.
func NewJudge(generator ai.Generator, logger *zap.Logger, maxLogLength int) *Judge {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Judge{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Evaluate returns the model's relevance rating in [0, 1]. It never fails:
// candidates without skills, experience and projects, and any model error,
// resolve to MinRelevance.
func (j *Judge) Evaluate(ctx context.Context, jdText string, set sections.Set, role string) float64 {
	if set.Empty(sections.Skills) && set.Empty(sections.Experience) && set.Empty(sections.Projects) {
		j.logger.Debug("skipping relevance judge", zap.String("reason", "all relevant sections are empty"))
		return MinRelevance
	}

	prompt := buildJudgePrompt(jdText, set, role)

	j.logger.Debug("relevance judge request",
		zap.String("role", role),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, j.maxLogLen)),
	)

	reply, err := j.generator.GenerateContent(ctx, prompt)
	if err != nil {
		j.logger.Warn("relevance judge failed, using minimum score", zap.Error(err))
		return MinRelevance
	}

	score := ParseRelevance(reply)

	j.logger.Debug("relevance judge response",
		zap.String("response_preview", utils.TruncateForLog(reply, j.maxLogLen)),
		zap.Float64("score", score),
	)

	return score
}

func buildJudgePrompt(jdText string, set sections.Set, role string) string {
	return strings.NewReplacer(
		"{{ROLE}}", role,
		"{{JOB_REQUIREMENTS}}", jdText,
		"{{SKILLS}}", set[sections.Skills],
		"{{EXPERIENCE}}", set[sections.Experience],
		"{{PROJECTS}}", set[sections.Projects],
	).Replace(judgePromptTemplate)
}
