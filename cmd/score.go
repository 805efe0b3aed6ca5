package cmd

import (
	"context"

	"github.com/spigell/resume-matcher/internal/documents"
	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/ranking"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score --jd FILE RESUME...",
	Short: "Score every resume against the job description",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		score(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	addJDFlags(scoreCmd)
}

func score(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	svc := setup()
	log := svc.logger

	format, err := outputFormat(cmd)
	if err != nil {
		log.Fatal("parsing flags", zap.Error(err))
	}

	jd, resumes := loadInputs(cmd, args, log)

	scorer, err := svc.scorer(ctx)
	if err != nil {
		log.Fatal("building scorer", zap.Error(err))
	}

	entries := make([]ranking.Entry, 0, len(resumes))
	for _, resume := range resumes {
		breakdown, err := scorer.Score(ctx, resume.Text, jd.Text)
		if err != nil {
			log.Fatal("scoring resume", append(logger.PairFields(jd.Name, resume.Name), zap.Error(err))...)
		}
		entries = append(entries, ranking.Entry{Name: resume.Name, Email: documents.ExtractEmail(resume.Text), Breakdown: breakdown})
	}

	out := cmd.OutOrStdout()
	if format == outputJSON {
		scores := make(map[string]map[string]float64, len(entries))
		for _, e := range entries {
			scores[e.Name] = e.Breakdown.Map()
		}
		if err := writeJSON(out, scores); err != nil {
			log.Fatal("writing output", zap.Error(err))
		}
		return
	}

	writeEntries(out, entries, false)
}
