// Package summary produces one fit summary per resume for a job description,
// batching model calls and caching the results.
package summary

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spigell/resume-matcher/internal/ai"
	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/summary/cache"
	"github.com/spigell/resume-matcher/internal/utils"

	"go.uber.org/zap"
)

//go:embed batch_prompt.md
var batchPromptTemplate string

const (
	DefaultBatchSize      = 3
	DefaultMaxResumeChars = 2000
	defaultMaxLogLength   = 200

	minBatchSize = 2
	maxBatchSize = 3
)

// ErrLengthMismatch is returned when resume texts and names do not pair up.
var ErrLengthMismatch = errors.New("resume texts and names differ in length")

// Config tunes the pipeline. Zero values select the defaults.
type Config struct {
	BatchSize      int
	MaxResumeChars int
	MaxLogLength   int
}

// Result is the summary of one resume.
type Result struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// Report lists the summaries in request order and the resumes left without one.
type Report struct {
	Results []Result
	Missing []string
}

// Pipeline summarizes resumes against a job description.
type Pipeline struct {
	generator ai.Generator
	store     cache.Store
	cfg       Config
	logger    *zap.Logger
}

type item struct {
	name string
	text string
}

func New(generator ai.Generator, store cache.Store, cfg Config, log *zap.Logger) *Pipeline {
	if cfg.BatchSize < minBatchSize || cfg.BatchSize > maxBatchSize {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.MaxResumeChars <= 0 {
		cfg.MaxResumeChars = DefaultMaxResumeChars
	}
	if cfg.MaxLogLength <= 0 {
		cfg.MaxLogLength = defaultMaxLogLength
	}

	return &Pipeline{
		generator: generator,
		store:     store,
		cfg:       cfg,
		logger:    logger.WithFields(log),
	}
}

// Summarize returns a summary per resume in the order of names. Resumes the
// model failed to summarize are left out; use Run to learn which.
func (p *Pipeline) Summarize(ctx context.Context, texts []string, jdText string, names []string, jdID string) ([]Result, error) {
	report, err := p.Run(ctx, texts, jdText, names, jdID)
	if err != nil {
		return nil, err
	}
	return report.Results, nil
}

// Run serves cached summaries first, then asks the model for the rest in
// batches. A resume the batch reply does not cover is retried on its own,
// and whatever is still missing after all batches gets one more try.
func (p *Pipeline) Run(ctx context.Context, texts []string, jdText string, names []string, jdID string) (*Report, error) {
	if len(texts) != len(names) {
		return nil, fmt.Errorf("%w: %d texts, %d names", ErrLengthMismatch, len(texts), len(names))
	}

	log := p.logger.With(zap.String(logger.FieldJD, jdID))
	summaries := make(map[string]string, len(names))

	var pending []item
	queued := make(map[string]bool, len(names))
	for i, name := range names {
		if _, done := summaries[name]; done || queued[name] {
			continue
		}
		cached, err := p.store.Get(ctx, jdID, name)
		switch {
		case err == nil:
			log.Debug("summary cache hit", zap.String(logger.FieldResume, name))
			summaries[name] = cached
			continue
		case !errors.Is(err, cache.ErrNotFound):
			log.Warn("reading summary cache", zap.String(logger.FieldResume, name), zap.Error(err))
		}
		queued[name] = true
		pending = append(pending, item{name: name, text: texts[i]})
	}

	for start := 0; start < len(pending); start += p.cfg.BatchSize {
		batch := pending[start:min(start+p.cfg.BatchSize, len(pending))]

		blocks := p.request(ctx, log, jdText, batch)
		for i, it := range batch {
			if _, done := summaries[it.name]; done {
				continue
			}
			if i < len(blocks) {
				summaries[it.name] = p.save(ctx, log, jdID, it.name, blocks[i])
				continue
			}
			log.Info("batch reply has no summary, repairing", zap.String(logger.FieldResume, it.name))
			p.repair(ctx, log, jdText, jdID, it, summaries)
		}
	}

	for _, it := range pending {
		if _, done := summaries[it.name]; done {
			continue
		}
		log.Info("retrying unsummarized resume", zap.String(logger.FieldResume, it.name))
		p.repair(ctx, log, jdText, jdID, it, summaries)
	}

	report := &Report{Results: make([]Result, 0, len(names))}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		if s, ok := summaries[name]; ok {
			report.Results = append(report.Results, Result{Name: name, Summary: s})
			continue
		}
		report.Missing = append(report.Missing, name)
	}

	if len(report.Missing) > 0 {
		log.Warn("some resumes were not summarized", zap.Strings("resumes", report.Missing))
	}

	return report, nil
}

// ClearCache drops every cached summary.
func (p *Pipeline) ClearCache(ctx context.Context) error {
	if err := p.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear summary cache: %w", err)
	}
	return nil
}

func (p *Pipeline) repair(ctx context.Context, log *zap.Logger, jdText, jdID string, it item, summaries map[string]string) {
	blocks := p.request(ctx, log, jdText, []item{it})
	if len(blocks) == 0 {
		log.Warn("repair produced no summary", zap.String(logger.FieldResume, it.name))
		return
	}
	summaries[it.name] = p.save(ctx, log, jdID, it.name, blocks[0])
}

// request sends one prompt for batch and returns the parsed blocks. A
// transport error becomes an error reply, which holds no blocks.
func (p *Pipeline) request(ctx context.Context, log *zap.Logger, jdText string, batch []item) []string {
	prompt := p.buildPrompt(jdText, batch)

	log.Debug("summary request",
		zap.Int("batch_size", len(batch)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, p.cfg.MaxLogLength)),
	)

	reply, err := p.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Warn("summary request failed", zap.Int("batch_size", len(batch)), zap.Error(err))
		reply = "Error: " + err.Error()
	}

	blocks := ParseBlocks(reply)

	log.Debug("summary response",
		zap.Int("blocks", len(blocks)),
		zap.String("response_preview", utils.TruncateForLog(reply, p.cfg.MaxLogLength)),
	)

	return blocks
}

func (p *Pipeline) save(ctx context.Context, log *zap.Logger, jdID, name, raw string) string {
	summary := Normalize(raw)
	if err := p.store.Put(ctx, jdID, name, summary); err != nil {
		log.Warn("writing summary cache", zap.String(logger.FieldResume, name), zap.Error(err))
	}
	return summary
}

func (p *Pipeline) buildPrompt(jdText string, batch []item) string {
	var resumes strings.Builder
	for i, it := range batch {
		if i > 0 {
			resumes.WriteString("\n\n")
		}
		resumes.WriteString(ResumeStartMarker + " " + it.name + "\n")
		resumes.WriteString(truncateRunes(strings.TrimSpace(it.text), p.cfg.MaxResumeChars))
		resumes.WriteString("\n" + ResumeEndMarker)
	}

	return strings.NewReplacer(
		"{{JOB_DESCRIPTION}}", strings.TrimSpace(jdText),
		"{{COUNT}}", strconv.Itoa(len(batch)),
		"{{RESUMES}}", resumes.String(),
	).Replace(batchPromptTemplate)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
