// Package ranking scores many resumes against one job description and
// orders them by final score.
package ranking

import (
	"context"
	"sort"

	"github.com/spigell/resume-matcher/internal/documents"
	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/scoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type scorer interface {
	Score(ctx context.Context, resumeText, jdText string) (scoring.Breakdown, error)
}

// Entry is one ranked resume.
type Entry struct {
	Rank      int               `json:"rank"`
	Name      string            `json:"name"`
	Email     string            `json:"email,omitempty"`
	Breakdown scoring.Breakdown `json:"scores"`
}

// Failure records a resume that could not be scored.
type Failure struct {
	Name string `json:"name"`
	Err  error  `json:"-"`
}

// Options filter the ranking. Zero values keep every entry.
type Options struct {
	MinScore float64
	Top      int
}

// Result of one ranking run.
type Result struct {
	RunID   string  `json:"run_id"`
	Entries []Entry `json:"entries"`
	// Scored holds every resume that was scored, before filtering, in input order.
	Scored   []Entry   `json:"-"`
	Failures []Failure `json:"failures,omitempty"`
}

type Ranker struct {
	scorer scorer
	logger *zap.Logger
}

func New(s scorer, log *zap.Logger) *Ranker {
	return &Ranker{scorer: s, logger: logger.WithFields(log)}
}

// Rank scores every resume, drops those below opts.MinScore and keeps at
// most opts.Top of the best. Ties are ordered by name. A resume that fails to
// score is reported in Failures and left out of the ranking.
func (r *Ranker) Rank(ctx context.Context, jd *documents.Document, resumes []*documents.Document, opts Options) *Result {
	result := &Result{RunID: uuid.NewString()}
	log := r.logger.With(zap.String("run_id", result.RunID), zap.String(logger.FieldJD, jd.Name))

	entries := make([]Entry, 0, len(resumes))
	for _, resume := range resumes {
		breakdown, err := r.scorer.Score(ctx, resume.Text, jd.Text)
		if err != nil {
			log.Warn("scoring resume failed", zap.String(logger.FieldResume, resume.Name), zap.Error(err))
			result.Failures = append(result.Failures, Failure{Name: resume.Name, Err: err})
			continue
		}

		log.Info("scored resume",
			zap.String(logger.FieldResume, resume.Name),
			zap.Float64("final_score", breakdown.FinalScore),
		)

		entry := Entry{Name: resume.Name, Email: documents.ExtractEmail(resume.Text), Breakdown: breakdown}
		result.Scored = append(result.Scored, entry)

		if breakdown.FinalScore < opts.MinScore {
			log.Debug("dropped by score threshold",
				zap.String(logger.FieldResume, resume.Name),
				zap.Float64("threshold", opts.MinScore),
			)
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Breakdown.FinalScore != entries[j].Breakdown.FinalScore {
			return entries[i].Breakdown.FinalScore > entries[j].Breakdown.FinalScore
		}
		return entries[i].Name < entries[j].Name
	})

	if opts.Top > 0 && len(entries) > opts.Top {
		entries = entries[:opts.Top]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	result.Entries = entries
	return result
}
